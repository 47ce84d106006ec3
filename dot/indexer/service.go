// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package indexer verifies the GRANDPA justifications of a subscription
// and stores the verified records, every save interval blocks.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/lib/grandpa"
	"golang.org/x/sync/errgroup"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "indexer"))

// DefaultSaveInterval is the default number of blocks between two
// stored justifications.
const DefaultSaveInterval = 90

var (
	// ErrAlreadyStarted is returned when starting a started service.
	ErrAlreadyStarted = errors.New("indexer already started")
	// ErrMissingDependency is returned when a required dependency is not set.
	ErrMissingDependency = errors.New("missing dependency")
)

// Config is the configuration of the indexer service.
type Config struct {
	Source         JustificationSource
	Store          JustificationStore
	NewChainReader ChainReaderFactory
	// AuthoritySets is optional, and stores each authority set
	// the first time it is seen.
	AuthoritySets AuthoritySetStore
	// Verifier defaults to a strict targets grandpa verifier.
	Verifier Verifier
	// SaveInterval defaults to DefaultSaveInterval.
	SaveInterval uint32
	LogLevel     log.Level
}

// Service consumes justifications one at a time, verifies those due
// and appends their records to the store.
type Service struct {
	source         JustificationSource
	store          JustificationStore
	newChainReader ChainReaderFactory
	authoritySets  AuthoritySetStore
	verifier       Verifier
	saveInterval   uint32

	state     uint32
	latest    uint32
	hasLatest bool

	startOnce sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewService creates a new indexer service.
func NewService(config Config) (*Service, error) {
	switch {
	case config.Source == nil:
		return nil, fmt.Errorf("%w: justification source", ErrMissingDependency)
	case config.Store == nil:
		return nil, fmt.Errorf("%w: justification store", ErrMissingDependency)
	case config.NewChainReader == nil:
		return nil, fmt.Errorf("%w: chain reader factory", ErrMissingDependency)
	}

	logger.Patch(log.SetLevel(config.LogLevel))

	if config.Verifier == nil {
		config.Verifier = grandpa.NewVerifier()
	}

	if config.SaveInterval == 0 {
		config.SaveInterval = DefaultSaveInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		source:         config.Source,
		store:          config.Store,
		newChainReader: config.NewChainReader,
		authoritySets:  config.AuthoritySets,
		verifier:       config.Verifier,
		saveInterval:   config.SaveInterval,
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}, nil
}

// Start resumes after the latest stored justification and starts
// consuming the justification source.
func (s *Service) Start() (err error) {
	started := false
	s.startOnce.Do(func() {
		started = true

		var latest uint32
		latest, s.hasLatest, err = s.store.LatestBlockNumber()
		if err != nil {
			err = fmt.Errorf("reading latest stored block number: %w", err)
			close(s.done)
			return
		}
		s.latest = latest

		if s.hasLatest {
			logger.Infof("resuming after stored justification of block %d", latest)
		}
		logger.Infof("indexing justifications every %d blocks", s.saveInterval)

		go s.run()
	})

	if !started {
		return ErrAlreadyStarted
	}
	return err
}

// Stop stops the service and waits for the event being processed.
func (s *Service) Stop() error {
	s.startOnce.Do(func() {
		close(s.done)
	})
	s.cancel()
	<-s.done
	return nil
}

// Done is closed once the service has stopped, either by
// Stop or because the justification source has ended.
func (s *Service) Done() <-chan struct{} {
	return s.done
}

// State returns the current state of the service.
func (s *Service) State() State {
	return State(atomic.LoadUint32(&s.state))
}

func (s *Service) setState(state State) {
	atomic.StoreUint32(&s.state, uint32(state))
}

func (s *Service) run() {
	defer close(s.done)
	defer s.setState(Idle)

	for {
		s.setState(AwaitingEvent)
		justification, err := s.source.Next(s.ctx)
		switch {
		case err == nil:
		case s.ctx.Err() != nil:
			logger.Debug("indexer stopped")
			return
		case errors.Is(err, io.EOF):
			logger.Info("justification source ended")
			return
		default:
			logger.Warnf("discarding justification event: %s", err)
			eventsTotal.WithLabelValues(outcomeSourceError).Inc()
			continue
		}

		s.setState(Processing)
		outcome := s.handle(s.ctx, justification)
		eventsTotal.WithLabelValues(outcome).Inc()
		s.setState(Idle)
	}
}

// handle processes a single justification and returns the outcome.
func (s *Service) handle(ctx context.Context, justification *types.Justification) (outcome string) {
	if justification == nil {
		logger.Warn("discarding empty justification event")
		return outcomeMalformed
	}

	number := justification.Commit.TargetNumber

	if number%s.saveInterval != 0 {
		logger.Tracef("skipping justification of block %d: not due", number)
		return outcomeNotDue
	}

	if s.hasLatest && number <= s.latest {
		logger.Debugf("skipping justification of block %d: already stored up to block %d",
			number, s.latest)
		return outcomeDuplicate
	}

	stored, err := s.process(ctx, justification)
	switch {
	case err == nil:
		s.latest = number
		s.hasLatest = true
		logger.Infof("stored justification of block %d signed by %d out of %d authorities of set %d",
			number, stored.Record.SignedCount(), stored.Record.NumAuthorities, stored.AuthoritySetID)
		return outcomeStored
	case errors.Is(err, grandpa.ErrHeaderMismatch):
		logger.Warnf("dropping justification of block %d: %s", number, err)
		return outcomeHeaderMismatch
	case errors.Is(err, grandpa.ErrQuorumNotMet):
		logger.Warnf("dropping justification of block %d: %s", number, err)
		return outcomeQuorumNotMet
	case errors.Is(err, grandpa.ErrMalformedEvidence):
		logger.Warnf("dropping justification of block %d: %s", number, err)
		return outcomeMalformed
	case errors.Is(err, grandpa.ErrUpstreamFetch):
		logger.Errorf("dropping justification of block %d: %s", number, err)
		return outcomeUpstreamError
	default:
		logger.Errorf("failed processing justification of block %d: %s", number, err)
		return outcomeFailed
	}
}

// process verifies the justification using a chain reader created for
// this event only, and appends the verified record to the store.
func (s *Service) process(ctx context.Context, justification *types.Justification) (
	stored *types.StoredJustification, err error) {
	commit := justification.Commit
	if commit.TargetNumber == 0 {
		return nil, fmt.Errorf("%w: justification for the genesis block", grandpa.ErrMalformedEvidence)
	}

	reader, err := s.newChainReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: creating chain reader: %s", grandpa.ErrUpstreamFetch, err)
	}
	defer func() {
		closeErr := reader.Close()
		if closeErr != nil {
			logger.Debugf("closing chain reader: %s", closeErr)
		}
	}()

	header, err := reader.Header(ctx, commit.TargetHash)
	if err != nil {
		return nil, fmt.Errorf("%w: header: %s", grandpa.ErrUpstreamFetch, err)
	}

	err = grandpa.CheckHeader(header, commit)
	if err != nil {
		return nil, err
	}

	// the authority set which finalised the block is read in the state of
	// its parent, since a rotation at this block only applies to its children.
	var (
		setID       uint64
		authorities types.AuthorityList
	)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		setID, err = reader.AuthoritySetID(groupCtx, header.ParentHash)
		if err != nil {
			return fmt.Errorf("authority set id: %w", err)
		}
		return nil
	})
	group.Go(func() (err error) {
		authorities, err = reader.Authorities(groupCtx, commit.TargetNumber-1)
		if err != nil {
			return fmt.Errorf("authorities: %w", err)
		}
		return nil
	})
	err = group.Wait()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", grandpa.ErrUpstreamFetch, err)
	}

	set, err := grandpa.NewAuthoritySet(setID, authorities)
	if err != nil {
		return nil, fmt.Errorf("%w: authority set %d: %s", grandpa.ErrMalformedEvidence, setID, err)
	}

	record, err := s.verifier.Verify(justification, setID, set)
	if err != nil {
		return nil, fmt.Errorf("verifying justification: %w", err)
	}

	err = s.storeAuthoritySet(set)
	if err != nil {
		return nil, err
	}

	stored = &types.StoredJustification{
		AuthoritySetID: setID,
		Record:         *record,
	}
	err = s.store.Append(*stored)
	if err != nil {
		return nil, fmt.Errorf("storing justification: %w", err)
	}

	return stored, nil
}

func (s *Service) storeAuthoritySet(set *types.AuthoritySet) error {
	if s.authoritySets == nil {
		return nil
	}

	has, err := s.authoritySets.Has(set.ID)
	if err != nil {
		return fmt.Errorf("checking authority set %d is stored: %w", set.ID, err)
	} else if has {
		return nil
	}

	err = s.authoritySets.Put(set)
	if err != nil {
		return fmt.Errorf("storing authority set %d: %w", set.ID, err)
	}
	logger.Infof("stored authority set %d with %d authorities", set.ID, set.Len())
	return nil
}
