// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package witness

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ChainSafe/grandpa-bridge/lib/grandpa"
	"github.com/gorilla/rpc/v2/json2"
)

// JSON-RPC methods served by the witness server.
const (
	GetJustificationMethod = "witness_getJustification"
	GetRotationMethod      = "witness_getRotation"
)

var _ Provider = (*RemoteProvider)(nil)

// RemoteProvider is a provider calling a witness JSON-RPC server over HTTP.
type RemoteProvider struct {
	endpoint string
	client   *http.Client
}

// NewRemoteProvider creates a provider for the witness server at the endpoint given.
func NewRemoteProvider(endpoint string, timeout time.Duration) *RemoteProvider {
	return &RemoteProvider{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Justification calls witness_getJustification.
func (p *RemoteProvider) Justification(ctx context.Context, request JustificationRequest) (
	*JustificationResponse, error) {
	response := new(JustificationResponse)
	err := p.call(ctx, GetJustificationMethod, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

// Rotation calls witness_getRotation.
func (p *RemoteProvider) Rotation(ctx context.Context, request RotationRequest) (
	*RotationResponse, error) {
	response := new(RotationResponse)
	err := p.call(ctx, GetRotationMethod, request, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (p *RemoteProvider) call(ctx context.Context, method string, args, reply interface{}) error {
	body, err := json2.EncodeClientRequest(method, args)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", method, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", method, err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := p.client.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", grandpa.ErrUpstreamFetch, method, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: status code %d",
			grandpa.ErrUpstreamFetch, method, response.StatusCode)
	}

	err = json2.DecodeClientResponse(response.Body, reply)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	return nil
}
