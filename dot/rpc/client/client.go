// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package client is a JSON-RPC client for substrate nodes over websocket.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/gorilla/websocket"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc-client"))

var (
	// ErrResponseVersion is returned when a response is not JSON-RPC 2.0.
	ErrResponseVersion = errors.New("unexpected response version received")
	// ErrResponseError is returned when the node answers with an error.
	ErrResponseError = errors.New("response error received")
	// ErrClosed is returned when using a closed client.
	ErrClosed = errors.New("client closed")
)

// DefaultRequestTimeout is the default timeout of a single request.
const DefaultRequestTimeout = 30 * time.Second

// notificationBuffer is the number of subscription notifications
// buffered before the read loop blocks.
const notificationBuffer = 16

// maxEarlySubscriptions is the number of unknown subscription ids for
// which notifications are held until the id is registered.
const maxEarlySubscriptions = 16

// Client is a JSON-RPC 2.0 client over a websocket connection.
// Requests can be made concurrently.
type Client struct {
	conn           *websocket.Conn
	requestTimeout time.Duration

	nextID     uint64
	writeMutex sync.Mutex

	mutex         sync.Mutex
	pending       map[uint64]chan *serverResponse
	subscriptions map[string]*subscriptionEntry
	// early holds notifications received before their subscription
	// id was registered.
	early map[string][]json.RawMessage
	// ended holds the ids of unsubscribed subscriptions, whose
	// notifications are dropped.
	ended map[string]struct{}

	closing   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	readErr   error
}

type subscriptionEntry struct {
	notifications chan json.RawMessage
	unsubscribed  chan struct{}
}

// Option configures a client.
type Option func(c *Client)

// WithRequestTimeout sets the timeout of each request.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.requestTimeout = timeout
	}
}

// Dial connects to the websocket endpoint given.
func Dial(ctx context.Context, endpoint string, options ...Option) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", endpoint, err)
	}

	c := &Client{
		conn:           conn,
		requestTimeout: DefaultRequestTimeout,
		pending:        make(map[uint64]chan *serverResponse),
		subscriptions:  make(map[string]*subscriptionEntry),
		early:          make(map[string][]json.RawMessage),
		ended:          make(map[string]struct{}),
		closing:        make(chan struct{}),
		done:           make(chan struct{}),
	}
	for _, option := range options {
		option(c)
	}

	go c.readLoop()

	logger.Debugf("connected to %s", endpoint)
	return c, nil
}

// Close closes the websocket connection and ends all subscriptions.
func (c *Client) Close() (err error) {
	c.closeOnce.Do(func() {
		close(c.closing)
		c.writeMutex.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.writeMutex.Unlock()
		err = c.conn.Close()
	})
	<-c.done
	return err
}

func (c *Client) readLoop() {
	defer c.shutdown()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.mutex.Lock()
			c.readErr = err
			c.mutex.Unlock()
			return
		}

		var response serverResponse
		err = json.Unmarshal(data, &response)
		if err != nil {
			logger.Warnf("discarding malformed message: %s", err)
			continue
		}

		if response.ID == nil {
			c.notify(&response)
			continue
		}

		c.mutex.Lock()
		responseCh, ok := c.pending[*response.ID]
		delete(c.pending, *response.ID)
		c.mutex.Unlock()
		if !ok {
			logger.Debugf("discarding response with unknown id %d", *response.ID)
			continue
		}
		responseCh <- &response
	}
}

func (c *Client) notify(response *serverResponse) {
	if response.Params == nil {
		return
	}

	id := string(response.Params.Subscription)

	c.mutex.Lock()
	entry, ok := c.subscriptions[id]
	if !ok {
		c.holdEarly(id, response.Params.Result)
	}
	c.mutex.Unlock()
	if !ok {
		return
	}

	select {
	case entry.notifications <- response.Params.Result:
	case <-entry.unsubscribed:
	case <-c.closing:
	}
}

// holdEarly keeps a notification for a subscription id not yet
// registered. It must be called with the mutex held.
func (c *Client) holdEarly(id string, result json.RawMessage) {
	if _, ended := c.ended[id]; ended {
		return
	}

	held, ok := c.early[id]
	switch {
	case !ok && len(c.early) >= maxEarlySubscriptions:
		logger.Debugf("dropping notification for unknown subscription %s", id)
		return
	case len(held) >= notificationBuffer:
		logger.Debugf("dropping early notification for subscription %s", id)
		return
	}
	c.early[id] = append(held, result)
}

func (c *Client) shutdown() {
	c.mutex.Lock()
	for id, responseCh := range c.pending {
		close(responseCh)
		delete(c.pending, id)
	}
	for id, entry := range c.subscriptions {
		close(entry.notifications)
		delete(c.subscriptions, id)
	}
	close(c.done)
	c.mutex.Unlock()
}

// Call sends a request with the method and params given, and decodes the
// JSON result in the result argument, which may be nil to discard it.
func (c *Client) Call(ctx context.Context, method string, result interface{}, params ...interface{}) error {
	if params == nil {
		params = []interface{}{}
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	id := atomic.AddUint64(&c.nextID, 1)
	responseCh := make(chan *serverResponse, 1)

	c.mutex.Lock()
	select {
	case <-c.done:
		c.mutex.Unlock()
		return fmt.Errorf("%w: calling %s", ErrClosed, method)
	default:
	}
	c.pending[id] = responseCh
	c.mutex.Unlock()

	request := clientRequest{
		Version: jsonRPCVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	}
	c.writeMutex.Lock()
	err := c.conn.WriteJSON(request)
	c.writeMutex.Unlock()
	if err != nil {
		c.removePending(id)
		return fmt.Errorf("writing %s request: %w", method, err)
	}

	select {
	case <-ctx.Done():
		c.removePending(id)
		return fmt.Errorf("waiting for %s response: %w", method, ctx.Err())
	case response, ok := <-responseCh:
		if !ok {
			return fmt.Errorf("%w: waiting for %s response", ErrClosed, method)
		}
		return decodeResult(method, response, result)
	}
}

func (c *Client) removePending(id uint64) {
	c.mutex.Lock()
	delete(c.pending, id)
	c.mutex.Unlock()
}

func decodeResult(method string, response *serverResponse, result interface{}) error {
	if response.Version != jsonRPCVersion {
		return fmt.Errorf("%w: %s", ErrResponseVersion, response.Version)
	}

	if response.Error != nil {
		return fmt.Errorf("%w: %s: %s (error code %d)",
			ErrResponseError, method, response.Error.Message, response.Error.Code)
	}

	if result == nil || len(response.Result) == 0 {
		return nil
	}

	err := json.Unmarshal(response.Result, result)
	if err != nil {
		return fmt.Errorf("decoding %s result: %w", method, err)
	}
	return nil
}
