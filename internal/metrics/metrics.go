// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/grandpa-bridge/internal/httpserver"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "metrics"))

var (
	// ErrServerExited is returned when the metrics server exits without being stopped.
	ErrServerExited = errors.New("metrics server exited unexpectedly")
	// ErrStopTimeout is returned when the metrics server does not stop in time.
	ErrStopTimeout = errors.New("metrics server exit timeout")
)

// Server is a metrics http server
type Server struct {
	cancel context.CancelFunc
	server *httpserver.Server
	done   chan error
}

// NewServer is a constructor for metrics server. The gatherer
// defaults to the prometheus default registry when nil.
func NewServer(address string, gatherer prometheus.Gatherer) (s *Server) {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	m := http.NewServeMux()
	m.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return &Server{
		server: httpserver.New("metrics", address, m, logger),
	}
}

// Start will start the metrics server and block until it is listening.
func (s *Server) Start() (err error) {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	ready := make(chan struct{})
	s.done = make(chan error)

	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		logger.Infof("metrics available at http://%s/metrics", s.server.GetAddress())
		return nil
	case err := <-s.done:
		cancel()
		if err != nil {
			return err
		}
		return ErrServerExited
	}
}

// Address returns the address the metrics server listens on.
func (s *Server) Address() string {
	return s.server.GetAddress()
}

// Stop will stop the metrics server
func (s *Server) Stop() (err error) {
	s.cancel()

	const stopTimeout = 30 * time.Second
	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case err := <-s.done:
		if err != nil {
			return fmt.Errorf("stopping metrics server: %w", err)
		}
		return nil
	case <-timer.C:
		return ErrStopTimeout
	}
}
