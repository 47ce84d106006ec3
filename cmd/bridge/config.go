// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"fmt"
	"time"

	"github.com/ChainSafe/grandpa-bridge/chain/avail"
	"github.com/ChainSafe/grandpa-bridge/dot/config"
	ctoml "github.com/ChainSafe/grandpa-bridge/dot/config/toml"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/urfave/cli"
)

// loadConfig builds the configuration from the chain defaults, the
// configuration file and the command line flags, in increasing priority.
func loadConfig(ctx *cli.Context) (cfg *ctoml.Config, err error) {
	cfg, err = defaultConfig(ctx.GlobalString(ChainFlag.Name))
	if err != nil {
		return nil, err
	}

	if file := ctx.GlobalString(ConfigFlag.Name); file != "" {
		cfg, err = config.Load(file, cfg)
		if err != nil {
			return nil, err
		}
		logger.Debugf("loaded configuration file %s", file)
	}

	setGlobalConfig(ctx, &cfg.Global, &cfg.Chain)
	setIndexerConfig(ctx, &cfg.Indexer)
	setRPCConfig(ctx, &cfg.RPC)
	setWitnessConfig(ctx, &cfg.Witness)
	setPprofConfig(ctx, &cfg.Pprof)

	err = config.Validate(cfg)
	if err != nil {
		return nil, err
	}

	err = setupLogger(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig(chain string) (*ctoml.Config, error) {
	switch chain {
	case "", "dev":
		return config.Default(), nil
	case "avail":
		return avail.DefaultConfig(), nil
	default:
		return nil, fmt.Errorf("unknown chain id: %s", chain)
	}
}

func setGlobalConfig(ctx *cli.Context, global *ctoml.GlobalConfig, chain *ctoml.ChainConfig) {
	if basePath := ctx.GlobalString(BasePathFlag.Name); basePath != "" {
		global.BasePath = basePath
	}
	if level := ctx.GlobalString(LogFlag.Name); level != "" {
		global.LogLvl = level
	}
	if format := ctx.GlobalString(LogFormatFlag.Name); format != "" {
		global.LogFormat = format
	}
	if ctx.GlobalBool(PublishMetricsFlag.Name) {
		global.PublishMetrics = true
	}
	if address := ctx.GlobalString(MetricsAddressFlag.Name); address != "" {
		global.MetricsAddress = address
	}
	if endpoint := ctx.GlobalString(EndpointFlag.Name); endpoint != "" {
		chain.Endpoint = endpoint
	}
}

func setIndexerConfig(ctx *cli.Context, indexer *ctoml.IndexerConfig) {
	if ctx.IsSet(SaveIntervalFlag.Name) {
		indexer.SaveInterval = uint32(ctx.Uint(SaveIntervalFlag.Name))
	}
	if ctx.Bool(NoStrictTargetsFlag.Name) {
		indexer.StrictTargets = false
	}
}

func setRPCConfig(ctx *cli.Context, rpc *ctoml.RPCConfig) {
	if ctx.Bool(RPCEnabledFlag.Name) {
		rpc.Enabled = true
	}
	if ctx.Bool(RPCExternalFlag.Name) {
		rpc.External = true
	}
	if host := ctx.String(RPCHostFlag.Name); host != "" {
		rpc.Host = host
	}
	if ctx.IsSet(RPCPortFlag.Name) {
		rpc.Port = uint32(ctx.Uint(RPCPortFlag.Name))
	}
}

func setWitnessConfig(ctx *cli.Context, witness *ctoml.WitnessConfig) {
	if endpoint := ctx.String(WitnessFlag.Name); endpoint != "" {
		witness.Endpoint = endpoint
	}
	if ctx.Bool(VerifyAllFlag.Name) {
		witness.VerifyAll = true
	}
	if ctx.IsSet(MaxAuthoritiesFlag.Name) {
		witness.MaxAuthorities = ctx.Int(MaxAuthoritiesFlag.Name)
	}
}

func setPprofConfig(ctx *cli.Context, pprof *ctoml.PprofConfig) {
	if ctx.Bool(PprofServerFlag.Name) {
		pprof.Enabled = true
	}
	if address := ctx.String(PprofAddressFlag.Name); address != "" {
		pprof.ListeningAddress = address
	}
}

// setupLogger sets the global log level and format. Package log
// levels are set by the constructors of each service.
func setupLogger(cfg *ctoml.Config) error {
	level, err := config.LogLevel(cfg.Global.LogLvl, "")
	if err != nil {
		return fmt.Errorf("parsing global log level: %w", err)
	}

	options := []log.Option{log.SetLevel(level)}
	if cfg.Global.LogFormat != "" {
		format, err := log.ParseFormat(cfg.Global.LogFormat)
		if err != nil {
			return fmt.Errorf("parsing log format: %w", err)
		}
		options = append(options, log.SetFormat(format))
	}

	log.Patch(options...)
	return nil
}

func seconds(s uint32) time.Duration {
	return time.Duration(s) * time.Second
}

func milliseconds(ms uint32) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
