// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package toml

// Config is a collection of configurations throughout the system
type Config struct {
	Global  GlobalConfig  `toml:"global,omitempty"`
	Log     LogConfig     `toml:"log,omitempty"`
	Chain   ChainConfig   `toml:"chain,omitempty"`
	Indexer IndexerConfig `toml:"indexer,omitempty"`
	Witness WitnessConfig `toml:"witness,omitempty"`
	RPC     RPCConfig     `toml:"rpc,omitempty"`
	Pprof   PprofConfig   `toml:"pprof,omitempty"`
}

// GlobalConfig is to marshal/unmarshal toml global config vars
type GlobalConfig struct {
	Name           string `toml:"name,omitempty"`
	BasePath       string `toml:"basepath,omitempty" validate:"required"`
	LogLvl         string `toml:"log,omitempty" validate:"omitempty,oneof=trace debug info warn error critical"`
	LogFormat      string `toml:"log-format,omitempty" validate:"omitempty,oneof=console plain"`
	PublishMetrics bool   `toml:"publish-metrics,omitempty"`
	MetricsAddress string `toml:"metrics-address,omitempty" validate:"omitempty,hostname_port"`
}

// LogConfig represents the log levels for individual packages
type LogConfig struct {
	IndexerLvl string `toml:"indexer,omitempty" validate:"omitempty,oneof=trace debug info warn error critical"`
	WitnessLvl string `toml:"witness,omitempty" validate:"omitempty,oneof=trace debug info warn error critical"`
	RPCLvl     string `toml:"rpc,omitempty" validate:"omitempty,oneof=trace debug info warn error critical"`
}

// ChainConfig is the configuration of the substrate node connection
type ChainConfig struct {
	Endpoint string `toml:"endpoint,omitempty" validate:"required,url"`
	// RequestTimeout is in seconds.
	RequestTimeout uint32 `toml:"request-timeout,omitempty" validate:"gt=0"`
}

// IndexerConfig is the configuration of the justification indexer
type IndexerConfig struct {
	SaveInterval  uint32 `toml:"save-interval,omitempty" validate:"gt=0"`
	StrictTargets bool   `toml:"strict-targets"`
	// AuthoritySetCache is the number of authority sets cached in memory.
	AuthoritySetCache int64 `toml:"authority-set-cache,omitempty" validate:"gte=0"`
}

// WitnessConfig is the configuration of the witness data provider
// and of the verification computation
type WitnessConfig struct {
	// Endpoint is the witness rpc server used by the verification
	// computation. The chain is used directly when empty.
	Endpoint        string `toml:"endpoint,omitempty" validate:"omitempty,url"`
	MaxAuthorities  int    `toml:"max-authorities,omitempty" validate:"gte=0"`
	MaxHeaderLength int    `toml:"max-header-length,omitempty" validate:"gt=0"`
	VerifyAll       bool   `toml:"verify-all,omitempty"`
	// RetryWait is in milliseconds.
	RetryWait uint32 `toml:"retry-wait,omitempty"`
	// RequestTimeout is in seconds.
	RequestTimeout uint32 `toml:"request-timeout,omitempty" validate:"gt=0"`
}

// RPCConfig is to marshal/unmarshal toml RPC config vars
type RPCConfig struct {
	Enabled  bool     `toml:"enabled,omitempty"`
	External bool     `toml:"external,omitempty"`
	Port     uint32   `toml:"port,omitempty" validate:"lte=65535"`
	Host     string   `toml:"host,omitempty"`
	Modules  []string `toml:"modules,omitempty" validate:"dive,oneof=witness"`
}

// PprofConfig is the configuration of the pprof HTTP server
type PprofConfig struct {
	Enabled          bool   `toml:"enabled,omitempty"`
	ListeningAddress string `toml:"listening-address,omitempty" validate:"omitempty,hostname_port"`
	BlockProfileRate int    `toml:"block-profile-rate,omitempty"`
	MutexProfileRate int    `toml:"mutex-profile-rate,omitempty"`
}
