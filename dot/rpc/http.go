// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package rpc is the witness JSON-RPC server, serving justification and
// rotation data to verification computations running in another process.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/ChainSafe/grandpa-bridge/dot/rpc/modules"
	"github.com/ChainSafe/grandpa-bridge/internal/httpserver"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc"))

var (
	// ErrServerExited is returned when the server exits without being stopped.
	ErrServerExited = errors.New("rpc server exited unexpectedly")
	// ErrStopTimeout is returned when the server does not stop in time.
	ErrStopTimeout = errors.New("rpc server exit timeout")
	// ErrUnknownModule is returned when enabling an unknown rpc module.
	ErrUnknownModule = errors.New("unknown rpc module")
)

// HTTPServerConfig configures the HTTPServer
type HTTPServerConfig struct {
	WitnessAPI modules.WitnessAPI
	Host       string
	RPCPort    uint32
	// RPCExternal allows requests from hosts other than localhost.
	RPCExternal bool
	Modules     []string
	// RequestTimeout bounds the handling of a single request,
	// and is unlimited when zero.
	RequestTimeout time.Duration
	LogLevel       log.Level
}

// HTTPServer gateway for RPC server
type HTTPServer struct {
	rpcServer    *rpc.Server
	serverConfig *HTTPServerConfig
	server       *httpserver.Server
	cancel       context.CancelFunc
	done         chan error
}

// NewHTTPServer creates a new http server and registers an associated rpc server
func NewHTTPServer(cfg *HTTPServerConfig) (*HTTPServer, error) {
	logger.Patch(log.SetLevel(cfg.LogLevel))

	h := &HTTPServer{
		rpcServer:    rpc.NewServer(),
		serverConfig: cfg,
	}

	err := h.RegisterModules(cfg.Modules)
	if err != nil {
		return nil, err
	}

	// method names are received as service_method and are
	// translated to the gorilla service.Method format.
	h.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json")
	h.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json;charset=UTF-8")
	h.rpcServer.RegisterValidateRequestFunc(rpcValidator(cfg.RPCExternal, validator.New()))

	r := mux.NewRouter()
	r.Handle("/", h.rpcServer)

	address := net.JoinHostPort(cfg.Host, strconv.FormatUint(uint64(cfg.RPCPort), 10))
	h.server = httpserver.New("rpc", address, r, logger,
		httpserver.WriteTimeout(cfg.RequestTimeout))
	return h, nil
}

// RegisterModules registers the RPC services associated with the given API modules
func (h *HTTPServer) RegisterModules(mods []string) error {
	for _, mod := range mods {
		logger.Debugf("enabling rpc module %s", mod)
		var srvc interface{}
		switch mod {
		case "witness":
			srvc = modules.NewWitnessModule(h.serverConfig.WitnessAPI)
		default:
			return fmt.Errorf("%w: %s", ErrUnknownModule, mod)
		}

		err := h.rpcServer.RegisterService(srvc, mod)
		if err != nil {
			return fmt.Errorf("registering module %s: %w", mod, err)
		}
	}
	return nil
}

// Start starts the rpc http server and blocks until it is listening.
func (h *HTTPServer) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	ready := make(chan struct{})
	h.done = make(chan error)

	go h.server.Run(ctx, ready, h.done)

	select {
	case <-ready:
		logger.Infof("rpc server listening on http://%s", h.server.GetAddress())
		return nil
	case err := <-h.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerExited
	}
}

// Address returns the address the server listens on.
func (h *HTTPServer) Address() string {
	return h.server.GetAddress()
}

// Stop stops the server
func (h *HTTPServer) Stop() error {
	h.cancel()

	const stopTimeout = 30 * time.Second
	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case err := <-h.done:
		if err != nil {
			return fmt.Errorf("stopping rpc server: %w", err)
		}
		return nil
	case <-timer.C:
		return ErrStopTimeout
	}
}
