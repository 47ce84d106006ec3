// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ChainSafe/grandpa-bridge/dot/config"
	ctoml "github.com/ChainSafe/grandpa-bridge/dot/config/toml"
	"github.com/ChainSafe/grandpa-bridge/dot/indexer"
	"github.com/ChainSafe/grandpa-bridge/dot/rpc"
	"github.com/ChainSafe/grandpa-bridge/dot/rpc/client"
	"github.com/ChainSafe/grandpa-bridge/dot/state"
	"github.com/ChainSafe/grandpa-bridge/internal/database/badger"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/internal/metrics"
	"github.com/ChainSafe/grandpa-bridge/internal/pprof"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa"
	"github.com/ChainSafe/grandpa-bridge/lib/services"
	"github.com/ChainSafe/grandpa-bridge/lib/witness"
)

// stores holds the persistent state of the bridge.
type stores struct {
	db             *badger.Database
	justifications *state.JustificationStore
	authoritySets  *state.AuthoritySetStore
}

func openStores(cfg *ctoml.Config) (s *stores, err error) {
	basePath, err := config.ExpandDir(cfg.Global.BasePath)
	if err != nil {
		return nil, err
	}

	db, err := badger.New(badger.Settings{
		Path:       filepath.Join(basePath, "db"),
		SyncWrites: true,
		Logger:     log.NewFromGlobal(log.AddContext("pkg", "badger")),
	})
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	justifications, err := state.NewJustificationStore(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating justification store: %w", err)
	}

	authoritySets, err := state.NewAuthoritySetStore(db, cfg.Indexer.AuthoritySetCache)
	if err != nil {
		justifications.Close()
		_ = db.Close()
		return nil, fmt.Errorf("creating authority set store: %w", err)
	}

	logger.Debugf("opened database at %s", basePath)
	return &stores{
		db:             db,
		justifications: justifications,
		authoritySets:  authoritySets,
	}, nil
}

func (s *stores) close() {
	s.authoritySets.Close()
	s.justifications.Close()
	err := s.db.Close()
	if err != nil {
		logger.Errorf("closing database: %s", err)
	}
}

func dialChain(ctx context.Context, chain ctoml.ChainConfig) (*client.Client, error) {
	return client.Dial(ctx, chain.Endpoint, client.WithRequestTimeout(seconds(chain.RequestTimeout)))
}

// newIndexerChainReaderFactory dials a new connection for each event.
func newIndexerChainReaderFactory(chain ctoml.ChainConfig) indexer.ChainReaderFactory {
	return func(ctx context.Context) (indexer.ChainReader, error) {
		c, err := dialChain(ctx, chain)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

// newWitnessChainReaderFactory dials a new connection for each attempt.
func newWitnessChainReaderFactory(chain ctoml.ChainConfig) witness.ChainReaderFactory {
	return func(ctx context.Context) (witness.ChainReader, error) {
		c, err := dialChain(ctx, chain)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}

func newVerifier(cfg *ctoml.Config) *grandpa.Verifier {
	return grandpa.NewVerifier(grandpa.WithStrictTargets(cfg.Indexer.StrictTargets))
}

func newIndexer(cfg *ctoml.Config, s *stores, source indexer.JustificationSource) (
	*indexer.Service, error) {
	level, err := config.LogLevel(cfg.Global.LogLvl, cfg.Log.IndexerLvl)
	if err != nil {
		return nil, fmt.Errorf("parsing indexer log level: %w", err)
	}

	return indexer.NewService(indexer.Config{
		Source:         source,
		Store:          s.justifications,
		NewChainReader: newIndexerChainReaderFactory(cfg.Chain),
		AuthoritySets:  s.authoritySets,
		Verifier:       newVerifier(cfg),
		SaveInterval:   cfg.Indexer.SaveInterval,
		LogLevel:       level,
	})
}

func newChainProvider(cfg *ctoml.Config, s *stores) (*witness.ChainProvider, error) {
	level, err := config.LogLevel(cfg.Global.LogLvl, cfg.Log.WitnessLvl)
	if err != nil {
		return nil, fmt.Errorf("parsing witness log level: %w", err)
	}

	return witness.NewChainProvider(witness.ChainProviderConfig{
		Store:           s.justifications,
		AuthoritySets:   s.authoritySets,
		NewChainReader:  newWitnessChainReaderFactory(cfg.Chain),
		Verifier:        newVerifier(cfg),
		MaxHeaderLength: cfg.Witness.MaxHeaderLength,
		RetryWait:       milliseconds(cfg.Witness.RetryWait),
		LogLevel:        level,
	}), nil
}

func newRPCServer(cfg *ctoml.Config, provider witness.Provider) (*rpc.HTTPServer, error) {
	level, err := config.LogLevel(cfg.Global.LogLvl, cfg.Log.RPCLvl)
	if err != nil {
		return nil, fmt.Errorf("parsing rpc log level: %w", err)
	}

	return rpc.NewHTTPServer(&rpc.HTTPServerConfig{
		WitnessAPI:  provider,
		Host:        cfg.RPC.Host,
		RPCPort:     cfg.RPC.Port,
		RPCExternal: cfg.RPC.External,
		Modules:     cfg.RPC.Modules,
		// a witness request may fetch from the chain up to its own timeout.
		RequestTimeout: 2 * seconds(cfg.Witness.RequestTimeout),
		LogLevel:       level,
	})
}

func registerMonitoring(cfg *ctoml.Config, registry *services.ServiceRegistry) {
	if cfg.Global.PublishMetrics {
		registry.RegisterService(metrics.NewServer(cfg.Global.MetricsAddress, nil))
	}

	if cfg.Pprof.Enabled {
		registry.RegisterService(pprof.NewService(pprof.Settings{
			ListeningAddress: cfg.Pprof.ListeningAddress,
			BlockProfileRate: cfg.Pprof.BlockProfileRate,
			MutexProfileRate: cfg.Pprof.MutexProfileRate,
		}, logger))
	}
}

// newComputation creates the verification computation over the witness
// rpc server configured, or over the chain and the local stores if none
// is configured. The cleanup function must be called once done.
func newComputation(cfg *ctoml.Config) (computation *witness.Computation,
	cleanup func(), err error) {
	var provider witness.Provider
	cleanup = func() {}

	if cfg.Witness.Endpoint != "" {
		provider = witness.NewRemoteProvider(cfg.Witness.Endpoint, seconds(cfg.Witness.RequestTimeout))
	} else {
		var s *stores
		s, err = openStores(cfg)
		if err != nil {
			return nil, nil, err
		}
		cleanup = s.close

		provider, err = newChainProvider(cfg, s)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	bridge := witness.NewBridge(provider,
		witness.WithVerifyAll(cfg.Witness.VerifyAll),
		witness.WithMaxHeaderLength(cfg.Witness.MaxHeaderLength))
	computation = witness.NewComputation(bridge, nil,
		witness.WithMaxAuthorities(cfg.Witness.MaxAuthorities))
	return computation, cleanup, nil
}
