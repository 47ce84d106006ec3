// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
)

// Subscription receives the notifications of a node subscription.
type Subscription struct {
	client            *Client
	id                json.RawMessage
	unsubscribeMethod string
	entry             *subscriptionEntry
}

// Subscribe calls the subscribe method given and returns the subscription.
func (c *Client) Subscribe(ctx context.Context, method, unsubscribeMethod string,
	params ...interface{}) (*Subscription, error) {
	var id json.RawMessage
	err := c.Call(ctx, method, &id, params...)
	if err != nil {
		return nil, err
	}

	entry := &subscriptionEntry{
		notifications: make(chan json.RawMessage, notificationBuffer),
		unsubscribed:  make(chan struct{}),
	}

	c.mutex.Lock()
	select {
	case <-c.done:
		c.mutex.Unlock()
		return nil, fmt.Errorf("%w: subscribing with %s", ErrClosed, method)
	default:
	}
	key := string(id)
	c.subscriptions[key] = entry
	delete(c.ended, key)
	early := c.early[key]
	delete(c.early, key)
	c.mutex.Unlock()

	for _, notification := range early {
		select {
		case entry.notifications <- notification:
		default:
			logger.Warnf("dropping early notification for subscription %s", key)
		}
	}

	logger.Debugf("subscribed with %s, subscription id %s", method, key)

	return &Subscription{
		client:            c,
		id:                id,
		unsubscribeMethod: unsubscribeMethod,
		entry:             entry,
	}, nil
}

// Next blocks until the next notification and decodes its result into
// result. It returns io.EOF once the connection is closed.
func (s *Subscription) Next(ctx context.Context, result interface{}) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.entry.unsubscribed:
		return io.EOF
	case notification, ok := <-s.entry.notifications:
		if !ok {
			s.client.mutex.Lock()
			readErr := s.client.readErr
			s.client.mutex.Unlock()
			logger.Debugf("subscription %s ended: %v", s.id, readErr)
			return io.EOF
		}

		err := json.Unmarshal(notification, result)
		if err != nil {
			return fmt.Errorf("decoding notification: %w", err)
		}
		return nil
	}
}

// Unsubscribe stops the subscription on the node.
func (s *Subscription) Unsubscribe(ctx context.Context) error {
	if !s.client.endSubscription(string(s.id), s.entry) {
		return nil
	}

	var unsubscribed bool
	err := s.client.Call(ctx, s.unsubscribeMethod, &unsubscribed, s.id)
	if err != nil {
		return fmt.Errorf("unsubscribing: %w", err)
	}
	return nil
}

// endSubscription removes the subscription entry and returns true if
// it was still registered. Later notifications for the id are dropped.
func (c *Client) endSubscription(key string, entry *subscriptionEntry) (ended bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.subscriptions[key]; !ok {
		return false
	}
	delete(c.subscriptions, key)
	close(entry.unsubscribed)
	c.ended[key] = struct{}{}
	return true
}

// JustificationSubscription yields the GRANDPA justifications finalised
// by the node, from grandpa_subscribeJustifications.
type JustificationSubscription struct {
	subscription *Subscription
}

// SubscribeJustifications subscribes to GRANDPA justifications.
func (c *Client) SubscribeJustifications(ctx context.Context) (*JustificationSubscription, error) {
	subscription, err := c.Subscribe(ctx, "grandpa_subscribeJustifications",
		"grandpa_unsubscribeJustifications")
	if err != nil {
		return nil, err
	}
	return &JustificationSubscription{subscription: subscription}, nil
}

// Next returns the next justification. It returns io.EOF once the
// subscription has ended.
func (s *JustificationSubscription) Next(ctx context.Context) (*types.Justification, error) {
	var encoded string
	err := s.subscription.Next(ctx, &encoded)
	if err != nil {
		return nil, err
	}

	data, err := common.HexToBytes(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding justification hex: %w", err)
	}

	justification, err := types.DecodeJustification(data)
	if err != nil {
		return nil, fmt.Errorf("decoding justification: %w", err)
	}
	return justification, nil
}

// Close unsubscribes from justifications.
func (s *JustificationSubscription) Close(ctx context.Context) error {
	return s.subscription.Unsubscribe(ctx)
}
