// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"github.com/urfave/cli"
)

// Global flags
var (
	// ConfigFlag TOML configuration file
	ConfigFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	// ChainFlag is the chain id used to load the default configuration
	ChainFlag = cli.StringFlag{
		Name:  "chain",
		Value: "dev",
		Usage: "Chain id used to load the default configuration: dev or avail",
	}
	// BasePathFlag data directory for the bridge
	BasePathFlag = cli.StringFlag{
		Name:  "basepath",
		Usage: "Data directory for the bridge",
	}
	// LogFlag global log level
	LogFlag = cli.StringFlag{
		Name:  "log",
		Usage: "Global log level. Supports levels critical, error, warn, info, debug and trace",
	}
	// LogFormatFlag log output format
	LogFormatFlag = cli.StringFlag{
		Name:  "log-format",
		Usage: "Log output format, either console or plain",
	}
	// EndpointFlag substrate node websocket endpoint
	EndpointFlag = cli.StringFlag{
		Name:  "endpoint",
		Usage: "Websocket endpoint of the substrate node, eg. ws://127.0.0.1:9944",
	}
	// PublishMetricsFlag publishes bridge metrics to prometheus.
	PublishMetricsFlag = cli.BoolFlag{
		Name:  "publish-metrics",
		Usage: "Publish bridge metrics",
	}
	// MetricsAddressFlag sets the metrics listening address
	MetricsAddressFlag = cli.StringFlag{
		Name:  "metrics-address",
		Usage: "Set the metrics listening address, eg. localhost:9876",
	}
)

// Pprof flags
var (
	// PprofServerFlag enables the pprof HTTP server
	PprofServerFlag = cli.BoolFlag{
		Name:  "pprofserver",
		Usage: "Enable the pprof HTTP server",
	}
	// PprofAddressFlag pprof HTTP server listening address
	PprofAddressFlag = cli.StringFlag{
		Name:  "pprofaddress",
		Usage: "pprof HTTP server listening address, if it is enabled.",
	}
)

// Indexer flags
var (
	// SaveIntervalFlag number of blocks between two stored justifications
	SaveIntervalFlag = cli.UintFlag{
		Name:  "save-interval",
		Usage: "Number of blocks between two stored justifications",
	}
	// NoStrictTargetsFlag accepts precommits targeting descendants of the commit target
	NoStrictTargetsFlag = cli.BoolFlag{
		Name:  "no-strict-targets",
		Usage: "Accept precommits which do not target the commit target",
	}
)

// RPC flags
var (
	// RPCEnabledFlag enables the witness rpc server
	RPCEnabledFlag = cli.BoolFlag{
		Name:  "rpc",
		Usage: "Enable the witness HTTP-RPC server",
	}
	// RPCExternalFlag accepts rpc requests from other hosts
	RPCExternalFlag = cli.BoolFlag{
		Name:  "rpc-external",
		Usage: "Accept HTTP-RPC requests from hosts other than localhost",
	}
	// RPCHostFlag HTTP-RPC server listening hostname
	RPCHostFlag = cli.StringFlag{
		Name:  "rpchost",
		Usage: "HTTP-RPC server listening hostname",
	}
	// RPCPortFlag HTTP-RPC server listening port
	RPCPortFlag = cli.UintFlag{
		Name:  "rpcport",
		Usage: "HTTP-RPC server listening port",
	}
)

// Computation flags
var (
	// BlockFlag block number to verify
	BlockFlag = cli.UintFlag{
		Name:  "block",
		Usage: "Block number of the justification",
	}
	// SetIDFlag authority set id finalising the block
	SetIDFlag = cli.Uint64Flag{
		Name:  "set-id",
		Usage: "Id of the authority set finalising the block",
	}
	// SetHashFlag authority set commitment
	SetHashFlag = cli.StringFlag{
		Name:  "set-hash",
		Usage: "Commitment of the authority set finalising the block, as 0x prefixed hex",
	}
	// WitnessFlag witness rpc server used by the computation
	WitnessFlag = cli.StringFlag{
		Name:  "witness",
		Usage: "Witness HTTP-RPC server, eg. http://localhost:8545. The chain is used directly if unset",
	}
	// VerifyAllFlag verifies every signature instead of a single one
	VerifyAllFlag = cli.BoolFlag{
		Name:  "verify-all",
		Usage: "Verify every signature of the justification instead of a single one",
	}
	// MaxAuthoritiesFlag maximum number of authorities of a new set
	MaxAuthoritiesFlag = cli.IntFlag{
		Name:  "max-authorities",
		Usage: "Maximum number of authorities a rotation can introduce, 0 for no maximum",
	}
)

// Export flags
var (
	// OutputFlag exported configuration file path
	OutputFlag = cli.StringFlag{
		Name:  "output",
		Value: "config.toml",
		Usage: "Path of the exported TOML configuration file",
	}
)

var (
	// GlobalFlags are flags valid for all commands
	GlobalFlags = []cli.Flag{
		ConfigFlag,
		ChainFlag,
		BasePathFlag,
		LogFlag,
		LogFormatFlag,
		EndpointFlag,
		PublishMetricsFlag,
		MetricsAddressFlag,
	}

	// RPCFlags are flags of the witness rpc server
	RPCFlags = []cli.Flag{
		RPCExternalFlag,
		RPCHostFlag,
		RPCPortFlag,
	}

	// PprofFlags are flags of the pprof server
	PprofFlags = []cli.Flag{
		PprofServerFlag,
		PprofAddressFlag,
	}

	// ComputationFlags are flags of the verification computation
	ComputationFlags = []cli.Flag{
		BlockFlag,
		SetIDFlag,
		SetHashFlag,
		WitnessFlag,
		VerifyAllFlag,
	}
)

// Command flags, global flags included so they can be set after the command name
var (
	IndexFlags = joinFlags(
		[]cli.Flag{SaveIntervalFlag, NoStrictTargetsFlag, RPCEnabledFlag},
		RPCFlags, PprofFlags, GlobalFlags)

	ServeFlags = joinFlags(RPCFlags, PprofFlags, GlobalFlags)

	JustificationFlags = joinFlags(ComputationFlags, GlobalFlags)

	RotateFlags = joinFlags([]cli.Flag{MaxAuthoritiesFlag}, ComputationFlags, GlobalFlags)

	ExportFlags = joinFlags([]cli.Flag{OutputFlag}, GlobalFlags)
)

func joinFlags(groups ...[]cli.Flag) (flags []cli.Flag) {
	for _, group := range groups {
		flags = append(flags, group...)
	}
	return flags
}

// FixFlagOrder allows us to use various flag order formats (ie, `bridge
// index --config config.toml` and `bridge --config config.toml index`)
// by checking and setting local flag values as global flag values.
func FixFlagOrder(f func(ctx *cli.Context) error) func(*cli.Context) error {
	return func(ctx *cli.Context) error {
		for _, flagName := range ctx.FlagNames() {
			if ctx.GlobalIsSet(flagName) || !ctx.IsSet(flagName) {
				continue
			}

			// local flags only fail to be set as global flags
			err := ctx.GlobalSet(flagName, ctx.String(flagName))
			if err == nil {
				logger.Trace("global flag fixed with name: " + flagName)
			}
		}

		return f(ctx)
	}
}
