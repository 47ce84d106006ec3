// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"time"
)

// Default timeouts of the HTTP server.
const (
	DefaultReadTimeout       = 10 * time.Second
	DefaultReadHeaderTimeout = time.Second
	DefaultShutdownTimeout   = 3 * time.Second
)

// Option is a functional option for the HTTP server.
type Option func(s *optionalSettings)

type optionalSettings struct {
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	shutdownTimeout   time.Duration
}

func newOptionalSettings(options []Option) optionalSettings {
	settings := optionalSettings{
		readTimeout:       DefaultReadTimeout,
		readHeaderTimeout: DefaultReadHeaderTimeout,
		shutdownTimeout:   DefaultShutdownTimeout,
	}
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// ReadTimeout sets the timeout to read a whole request.
// Non positive values are ignored.
func ReadTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) {
		if timeout > 0 {
			s.readTimeout = timeout
		}
	}
}

// ReadHeaderTimeout sets the timeout to read request headers.
// Non positive values are ignored.
func ReadHeaderTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) {
		if timeout > 0 {
			s.readHeaderTimeout = timeout
		}
	}
}

// WriteTimeout sets the timeout to handle a request and write its
// response. Zero, the default, means no timeout.
func WriteTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) {
		s.writeTimeout = timeout
	}
}

// ShutdownTimeout sets the timeout for in-flight requests to finish
// on shutdown. Non positive values are ignored.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *optionalSettings) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}
