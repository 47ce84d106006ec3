// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package pprof serves the runtime profiles of the bridge over HTTP.
package pprof

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/ChainSafe/grandpa-bridge/internal/httpserver"
)

// DefaultAddress is the listening address used when none is set.
const DefaultAddress = "localhost:6060"

// ErrServerDoneBeforeReady is returned when the server exits before listening.
var ErrServerDoneBeforeReady = errors.New("server terminated before being ready")

// Settings configures the pprof service.
type Settings struct {
	ListeningAddress string
	// BlockProfileRate and MutexProfileRate are applied with
	// runtime.SetBlockProfileRate and runtime.SetMutexProfileFraction
	// while the service runs. Zero disables the profile.
	BlockProfileRate int
	MutexProfileRate int
}

// Runner runs an HTTP server until its context is canceled.
type Runner interface {
	Run(ctx context.Context, ready chan<- struct{}, done chan<- error)
	GetAddress() (address string)
}

// Service is a pprof HTTP server usable in a services.ServiceRegistry.
type Service struct {
	settings Settings
	server   Runner
	cancel   context.CancelFunc
	done     chan error
}

// NewService creates a pprof service listening on the settings address.
func NewService(settings Settings, logger httpserver.Logger) *Service {
	if settings.ListeningAddress == "" {
		settings.ListeningAddress = DefaultAddress
	}

	return &Service{
		settings: settings,
		server:   httpserver.New("pprof", settings.ListeningAddress, newHandler(), logger),
		done:     make(chan error),
	}
}

// Start sets the profiling rates and returns once the server listens.
func (s *Service) Start() error {
	setProfileRates(s.settings.BlockProfileRate, s.settings.MutexProfileRate)

	ctx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	go s.server.Run(ctx, ready, s.done)

	select {
	case <-ready:
		s.cancel = cancel
		return nil
	case err := <-s.done:
		cancel()
		setProfileRates(0, 0)
		if err == nil {
			err = ErrServerDoneBeforeReady
		}
		return fmt.Errorf("starting pprof server: %w", err)
	}
}

// Stop shuts the server down and disables the block and mutex profiles.
func (s *Service) Stop() error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	s.cancel = nil
	err := <-s.done
	setProfileRates(0, 0)
	if err != nil {
		return fmt.Errorf("stopping pprof server: %w", err)
	}
	return nil
}

// Address returns the address the pprof server listens on.
func (s *Service) Address() string {
	return s.server.GetAddress()
}

func setProfileRates(block, mutex int) {
	runtime.SetBlockProfileRate(block)
	runtime.SetMutexProfileFraction(mutex)
}
