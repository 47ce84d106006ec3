// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/retry"
)

// JustificationStream yields the GRANDPA justifications of a node and
// resubscribes on a new connection whenever the subscription ends.
// It is not safe for concurrent use.
type JustificationStream struct {
	endpoint  string
	retryWait time.Duration
	options   []Option

	client       *Client
	subscription *JustificationSubscription
}

// NewJustificationStream creates a justification stream for the endpoint
// given. It connects on the first call to Next.
func NewJustificationStream(endpoint string, retryWait time.Duration,
	options ...Option) *JustificationStream {
	return &JustificationStream{
		endpoint:  endpoint,
		retryWait: retryWait,
		options:   options,
	}
}

// Next returns the next justification, reconnecting until the context
// is done if the connection is lost.
func (s *JustificationStream) Next(ctx context.Context) (*types.Justification, error) {
	for {
		if s.subscription == nil {
			err := retry.UntilNoError(ctx, s.retryWait, func() error {
				return s.subscribe(ctx)
			})
			if err != nil {
				return nil, err
			}
		}

		justification, err := s.subscription.Next(ctx)
		if errors.Is(err, io.EOF) && ctx.Err() == nil {
			logger.Warnf("justification subscription to %s ended, resubscribing", s.endpoint)
			s.closeClient()
			continue
		}
		return justification, err
	}
}

func (s *JustificationStream) subscribe(ctx context.Context) error {
	c, err := Dial(ctx, s.endpoint, s.options...)
	if err != nil {
		logger.Debugf("subscribing to justifications: %s", err)
		return err
	}

	subscription, err := c.SubscribeJustifications(ctx)
	if err != nil {
		_ = c.Close()
		logger.Debugf("subscribing to justifications: %s", err)
		return fmt.Errorf("subscribing to justifications: %w", err)
	}

	s.client = c
	s.subscription = subscription
	return nil
}

func (s *JustificationStream) closeClient() {
	if s.client == nil {
		return
	}
	err := s.client.Close()
	if err != nil {
		logger.Debugf("closing client: %s", err)
	}
	s.client = nil
	s.subscription = nil
}

// Close unsubscribes and closes the connection, if any.
func (s *JustificationStream) Close(ctx context.Context) error {
	if s.subscription == nil {
		return nil
	}

	err := s.subscription.Close(ctx)
	s.closeClient()
	if err != nil {
		return fmt.Errorf("closing justification subscription: %w", err)
	}
	return nil
}
