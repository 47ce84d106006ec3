// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package witness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ChainSafe/grandpa-bridge/dot/state"
	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/internal/retry"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa"
)

var _ Provider = (*ChainProvider)(nil)

// ChainProviderConfig is the configuration of a ChainProvider.
type ChainProviderConfig struct {
	Store           JustificationStore
	AuthoritySets   AuthoritySetStore
	NewChainReader  ChainReaderFactory
	Verifier        *grandpa.Verifier
	MaxHeaderLength int
	RetryWait       time.Duration
	LogLevel        log.Level
}

// ChainProvider answers witness requests from the justification store,
// falling back on the chain. Chain fetches are retried with a new chain
// reader on each attempt, until the context is done.
type ChainProvider struct {
	store          JustificationStore
	authoritySets  AuthoritySetStore
	newChainReader ChainReaderFactory
	verifier       *grandpa.Verifier
	maxHeaderLen   int
	retryWait      time.Duration
}

// NewChainProvider creates a chain backed provider.
func NewChainProvider(config ChainProviderConfig) *ChainProvider {
	logger.Patch(log.SetLevel(config.LogLevel))

	p := &ChainProvider{
		store:          config.Store,
		authoritySets:  config.AuthoritySets,
		newChainReader: config.NewChainReader,
		verifier:       config.Verifier,
		maxHeaderLen:   config.MaxHeaderLength,
		retryWait:      config.RetryWait,
	}

	if p.verifier == nil {
		p.verifier = grandpa.NewVerifier()
	}

	if p.maxHeaderLen == 0 {
		p.maxHeaderLen = DefaultMaxHeaderLength
	}

	if p.retryWait == 0 {
		const defaultRetryWait = time.Second
		p.retryWait = defaultRetryWait
	}

	return p
}

// Justification returns the stored justification record of the block if
// there is one, and otherwise fetches and verifies it from the chain.
func (p *ChainProvider) Justification(ctx context.Context, request JustificationRequest) (
	response *JustificationResponse, err error) {
	if p.store != nil {
		stored, err := p.store.Get(request.BlockNumber)
		switch {
		case err == nil:
			logger.Debugf("justification for block %d found in store", request.BlockNumber)
			return &JustificationResponse{
				AuthoritySetID: stored.AuthoritySetID,
				Record:         stored.Record,
			}, nil
		case !errors.Is(err, state.ErrNotFound):
			return nil, fmt.Errorf("reading stored justification: %w", err)
		}
	}

	err = retry.UntilNoError(ctx, p.retryWait, func() (err error) {
		response, err = p.fetchJustification(ctx, request)
		if err != nil && errors.Is(err, grandpa.ErrUpstreamFetch) {
			logger.Warnf("fetching justification for block %d: %s", request.BlockNumber, err)
			return err
		}
		return retry.Permanent(err)
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (p *ChainProvider) fetchJustification(ctx context.Context, request JustificationRequest) (
	response *JustificationResponse, err error) {
	reader, err := p.newChainReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: creating chain reader: %s", grandpa.ErrUpstreamFetch, err)
	}
	defer func() {
		closeErr := reader.Close()
		if closeErr != nil {
			logger.Debugf("closing chain reader: %s", closeErr)
		}
	}()

	hash, err := reader.BlockHash(ctx, request.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: block hash: %s", grandpa.ErrUpstreamFetch, err)
	}

	justification, err := reader.Justification(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: justification: %s", grandpa.ErrUpstreamFetch, err)
	} else if justification == nil {
		return nil, fmt.Errorf("%w: block %d with hash %s",
			ErrJustificationNotFound, request.BlockNumber, hash)
	}

	header, err := reader.Header(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %s", grandpa.ErrUpstreamFetch, err)
	}

	setID, err := reader.AuthoritySetID(ctx, header.ParentHash)
	if err != nil {
		return nil, fmt.Errorf("%w: authority set id: %s", grandpa.ErrUpstreamFetch, err)
	}

	if setID != request.AuthoritySetID {
		return nil, fmt.Errorf("%w: block %d was finalised by set %d instead of %d",
			ErrAuthoritySetIDMismatch, request.BlockNumber, setID, request.AuthoritySetID)
	}

	set, err := p.authoritySet(ctx, reader, setID, request.BlockNumber)
	if err != nil {
		return nil, err
	}

	record, err := p.verifier.Verify(justification, setID, set)
	if err != nil {
		return nil, fmt.Errorf("verifying justification: %w", err)
	}

	return &JustificationResponse{
		AuthoritySetID: setID,
		Record:         *record,
	}, nil
}

// authoritySet returns the authority set with the given id, from the
// authority set store if possible, otherwise from the chain state of
// the parent of the block.
func (p *ChainProvider) authoritySet(ctx context.Context, reader ChainReader,
	setID uint64, blockNumber uint32) (*types.AuthoritySet, error) {
	if p.authoritySets != nil {
		set, err := p.authoritySets.Get(setID)
		if err == nil {
			return set, nil
		} else if !errors.Is(err, state.ErrAuthoritySetNotFound) {
			return nil, fmt.Errorf("reading authority set: %w", err)
		}
	}

	if blockNumber == 0 {
		return nil, fmt.Errorf("%w: no parent block for block 0", grandpa.ErrMalformedEvidence)
	}

	authorities, err := reader.Authorities(ctx, blockNumber-1)
	if err != nil {
		return nil, fmt.Errorf("%w: authorities: %s", grandpa.ErrUpstreamFetch, err)
	}

	set, err := grandpa.NewAuthoritySet(setID, authorities)
	if err != nil {
		return nil, fmt.Errorf("creating authority set: %w", err)
	}

	if p.authoritySets != nil {
		err = p.authoritySets.Put(set)
		if err != nil {
			return nil, fmt.Errorf("storing authority set: %w", err)
		}
	}

	return set, nil
}

// Rotation fetches the header of the block and extracts its rotation data.
func (p *ChainProvider) Rotation(ctx context.Context, request RotationRequest) (
	response *RotationResponse, err error) {
	err = retry.UntilNoError(ctx, p.retryWait, func() (err error) {
		response, err = p.fetchRotation(ctx, request)
		if err != nil && errors.Is(err, grandpa.ErrUpstreamFetch) {
			logger.Warnf("fetching rotation for block %d: %s", request.BlockNumber, err)
			return err
		}
		return retry.Permanent(err)
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (p *ChainProvider) fetchRotation(ctx context.Context, request RotationRequest) (
	response *RotationResponse, err error) {
	reader, err := p.newChainReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: creating chain reader: %s", grandpa.ErrUpstreamFetch, err)
	}
	defer func() {
		closeErr := reader.Close()
		if closeErr != nil {
			logger.Debugf("closing chain reader: %s", closeErr)
		}
	}()

	hash, err := reader.BlockHash(ctx, request.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: block hash: %s", grandpa.ErrUpstreamFetch, err)
	}

	header, err := reader.Header(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %s", grandpa.ErrUpstreamFetch, err)
	}

	headerBytes, err := header.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}

	rotation, err := grandpa.ExtractRotation(headerBytes, p.maxHeaderLen)
	if err != nil {
		return nil, fmt.Errorf("extracting rotation of block %d: %w", request.BlockNumber, err)
	}

	return &RotationResponse{Rotation: *rotation}, nil
}
