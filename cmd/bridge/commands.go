// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/grandpa-bridge/dot/config"
	"github.com/ChainSafe/grandpa-bridge/dot/rpc/client"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/services"
	"github.com/ChainSafe/grandpa-bridge/lib/witness"
	"github.com/urfave/cli"
)

var (
	// ErrMissingFlag is returned when a required flag is not set.
	ErrMissingFlag = errors.New("missing required flag")
	// ErrIndexerStopped is returned when the indexer stops by itself.
	ErrIndexerStopped = errors.New("indexer stopped")
)

var (
	indexCommand = cli.Command{
		Action:    FixFlagOrder(indexAction),
		Name:      "index",
		Usage:     "Verify and store the justifications finalised by the chain",
		ArgsUsage: "",
		Flags:     IndexFlags,
		Description: "The index command subscribes to the GRANDPA justifications of the node,\n" +
			"\tverifies one every save interval blocks and stores its record.\n" +
			"\tUsage: bridge --chain avail index --rpc",
	}
	serveCommand = cli.Command{
		Action:    FixFlagOrder(serveAction),
		Name:      "serve",
		Usage:     "Serve witness data from the stored justifications and the chain",
		ArgsUsage: "",
		Flags:     ServeFlags,
		Description: "The serve command starts the witness HTTP-RPC server only.\n" +
			"\tUsage: bridge --chain avail serve --rpcport 8545",
	}
	justificationCommand = cli.Command{
		Action:    FixFlagOrder(justificationAction),
		Name:      "justification",
		Usage:     "Verify the justification of a block against an authority set commitment",
		ArgsUsage: "",
		Flags:     JustificationFlags,
		Description: "The justification command prints the trace of the verification.\n" +
			"\tUsage: bridge justification --block 90 --set-id 3 --set-hash 0x...",
	}
	rotateCommand = cli.Command{
		Action:    FixFlagOrder(rotateAction),
		Name:      "rotate",
		Usage:     "Derive the next authority set commitment from an epoch end block",
		ArgsUsage: "",
		Flags:     RotateFlags,
		Description: "The rotate command prints the trace of the rotation.\n" +
			"\tUsage: bridge rotate --block 180 --set-id 3 --set-hash 0x...",
	}
	exportConfigCommand = cli.Command{
		Action:    FixFlagOrder(exportConfigAction),
		Name:      "export-config",
		Usage:     "Export the configuration to a TOML file",
		ArgsUsage: "",
		Flags:     ExportFlags,
		Description: "The export-config command writes the configuration resulting from\n" +
			"\tthe defaults, the configuration file and the flags.\n" +
			"\tUsage: bridge --chain avail export-config --output config.toml",
	}
)

func indexAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	s, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	stream := client.NewJustificationStream(cfg.Chain.Endpoint,
		milliseconds(cfg.Witness.RetryWait),
		client.WithRequestTimeout(seconds(cfg.Chain.RequestTimeout)))
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), seconds(cfg.Chain.RequestTimeout))
		defer cancel()
		err := stream.Close(closeCtx)
		if err != nil {
			logger.Warnf("closing justification stream: %s", err)
		}
	}()

	indexerService, err := newIndexer(cfg, s, stream)
	if err != nil {
		return err
	}

	registry := services.NewServiceRegistry(logger)
	registerMonitoring(cfg, registry)
	if cfg.RPC.Enabled {
		provider, err := newChainProvider(cfg, s)
		if err != nil {
			return err
		}
		rpcServer, err := newRPCServer(cfg, provider)
		if err != nil {
			return err
		}
		registry.RegisterService(rpcServer)
	}
	registry.RegisterService(indexerService)

	err = registry.StartAll()
	if err != nil {
		return err
	}
	defer registry.StopAll()

	logger.Infof("indexing justifications of %s from %s", cfg.Global.Name, cfg.Chain.Endpoint)
	if !waitForShutdown(indexerService.Done()) {
		return ErrIndexerStopped
	}
	return nil
}

func serveAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	s, err := openStores(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	provider, err := newChainProvider(cfg, s)
	if err != nil {
		return err
	}

	rpcServer, err := newRPCServer(cfg, provider)
	if err != nil {
		return err
	}

	registry := services.NewServiceRegistry(logger)
	registerMonitoring(cfg, registry)
	registry.RegisterService(rpcServer)

	err = registry.StartAll()
	if err != nil {
		return err
	}
	defer registry.StopAll()

	logger.Infof("serving witness data on %s", rpcServer.Address())
	waitForShutdown(nil)
	return nil
}

func justificationAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	blockNumber, setID, setHash, err := parseComputationFlags(ctx)
	if err != nil {
		return err
	}

	computation, cleanup, err := newComputation(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trace, err := computation.VerifySimpleJustification(runCtx, blockNumber, setID, setHash)
	if err != nil {
		return fmt.Errorf("verifying justification of block %d: %w", blockNumber, err)
	}
	return printJSON(ctx, trace)
}

func rotateAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	blockNumber, setID, setHash, err := parseComputationFlags(ctx)
	if err != nil {
		return err
	}

	computation, cleanup, err := newComputation(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trace, err := computation.Rotate(runCtx, witness.RotateInput{
		AuthoritySetID:      setID,
		AuthoritySetHash:    setHash,
		EpochEndBlockNumber: blockNumber,
	})
	if err != nil {
		return fmt.Errorf("rotating at block %d: %w", blockNumber, err)
	}
	return printJSON(ctx, trace)
}

func exportConfigAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	output := ctx.String(OutputFlag.Name)
	err = config.Export(cfg, output)
	if err != nil {
		return err
	}

	logger.Infof("exported configuration to %s", output)
	return nil
}

func parseComputationFlags(ctx *cli.Context) (blockNumber uint32, setID uint64,
	setHash common.Hash, err error) {
	if !ctx.IsSet(BlockFlag.Name) {
		return 0, 0, setHash, fmt.Errorf("%w: --%s", ErrMissingFlag, BlockFlag.Name)
	}
	blockNumber = uint32(ctx.Uint(BlockFlag.Name))

	setID = ctx.Uint64(SetIDFlag.Name)

	hexHash := ctx.String(SetHashFlag.Name)
	if hexHash == "" {
		return 0, 0, setHash, fmt.Errorf("%w: --%s", ErrMissingFlag, SetHashFlag.Name)
	}
	setHash, err = common.HexToHash(hexHash)
	if err != nil {
		return 0, 0, setHash, fmt.Errorf("parsing authority set hash: %w", err)
	}

	return blockNumber, setID, setHash, nil
}

func printJSON(ctx *cli.Context, v interface{}) error {
	encoder := json.NewEncoder(ctx.App.Writer)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("encoding trace: %w", err)
	}
	return nil
}

// waitForShutdown blocks until an interrupt or termination signal is
// received, or until done is closed. It returns false if done was closed.
func waitForShutdown(done <-chan struct{}) (signalled bool) {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)

	select {
	case sig := <-sigc:
		logger.Infof("received %s, shutting down", sig)
		return true
	case <-done:
		return false
	}
}
