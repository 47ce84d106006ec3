// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package config loads, validates and exports the bridge TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ctoml "github.com/ChainSafe/grandpa-bridge/dot/config/toml"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/naoina/toml"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "config"))

const (
	// DefaultName is the default name of the bridge.
	DefaultName = "dev"
	// DefaultBasePath is the default data directory.
	DefaultBasePath = "~/.grandpa-bridge/dev"
	// DefaultLogLevel is the default global log level.
	DefaultLogLevel = "info"
	// DefaultMetricsAddress is the default prometheus listening address.
	DefaultMetricsAddress = "localhost:9876"

	// DefaultChainEndpoint is a local substrate node websocket endpoint.
	DefaultChainEndpoint = "ws://127.0.0.1:9944"
	// DefaultRequestTimeout is the default request timeout in seconds.
	DefaultRequestTimeout = 30

	// DefaultSaveInterval is the default number of blocks between
	// two stored justifications.
	DefaultSaveInterval = 90
	// DefaultAuthoritySetCache is the default number of cached authority sets.
	DefaultAuthoritySetCache = 64

	// DefaultMaxHeaderLength is the default maximum encoded header length.
	DefaultMaxHeaderLength = 4096
	// DefaultRetryWait is the default wait between two chain fetches,
	// in milliseconds.
	DefaultRetryWait = 1000

	// DefaultRPCHost is the default witness rpc listening host.
	DefaultRPCHost = "localhost"
	// DefaultRPCPort is the default witness rpc listening port.
	DefaultRPCPort = 8545

	// DefaultPprofAddress is the default pprof listening address.
	DefaultPprofAddress = "localhost:6060"
)

// Default returns the default configuration, for a local development node.
func Default() *ctoml.Config {
	return &ctoml.Config{
		Global: ctoml.GlobalConfig{
			Name:           DefaultName,
			BasePath:       DefaultBasePath,
			LogLvl:         DefaultLogLevel,
			MetricsAddress: DefaultMetricsAddress,
		},
		Chain: ctoml.ChainConfig{
			Endpoint:       DefaultChainEndpoint,
			RequestTimeout: DefaultRequestTimeout,
		},
		Indexer: ctoml.IndexerConfig{
			SaveInterval:      DefaultSaveInterval,
			StrictTargets:     true,
			AuthoritySetCache: DefaultAuthoritySetCache,
		},
		Witness: ctoml.WitnessConfig{
			MaxHeaderLength: DefaultMaxHeaderLength,
			RetryWait:       DefaultRetryWait,
			RequestTimeout:  DefaultRequestTimeout,
		},
		RPC: ctoml.RPCConfig{
			Host:    DefaultRPCHost,
			Port:    DefaultRPCPort,
			Modules: []string{"witness"},
		},
		Pprof: ctoml.PprofConfig{
			ListeningAddress: DefaultPprofAddress,
		},
	}
}

// Load decodes the TOML file at the path given on top of the base
// configuration, and returns the result. Values absent from the file
// keep their base value.
func Load(path string, base *ctoml.Config) (*ctoml.Config, error) {
	fp, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("finding absolute path of %s: %w", path, err)
	}

	file, err := os.Open(filepath.Clean(fp))
	if err != nil {
		return nil, fmt.Errorf("opening configuration file: %w", err)
	}
	defer func() {
		closeErr := file.Close()
		if closeErr != nil {
			logger.Warnf("closing configuration file: %s", closeErr)
		}
	}()

	cfg := *base
	cfg.RPC.Modules = nil
	err = toml.NewDecoder(file).Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("decoding toml configuration %s: %w", fp, err)
	}

	if cfg.RPC.Modules == nil {
		cfg.RPC.Modules = append([]string(nil), base.RPC.Modules...)
	}
	return &cfg, nil
}

// Validate checks the configuration values.
func Validate(cfg *ctoml.Config) error {
	err := validator.New().Struct(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Export writes the configuration as TOML to the path given.
func Export(cfg *ctoml.Config, path string) error {
	raw, err := toml.Marshal(*cfg)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	err = os.WriteFile(path, raw, 0600)
	if err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}

// ExpandDir expands a leading ~ to the home directory of the user
// and returns the cleaned absolute path.
func ExpandDir(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("finding absolute path of %s: %w", path, err)
	}
	return absolute, nil
}

// LogLevel parses the package log level given, falling back on the
// global log level when it is empty.
func LogLevel(global, pkg string) (log.Level, error) {
	level := pkg
	if level == "" {
		level = global
	}
	if level == "" {
		level = DefaultLogLevel
	}
	return log.ParseLevel(level)
}
