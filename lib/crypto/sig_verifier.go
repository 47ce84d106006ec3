// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"runtime"
	"sync"

	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bridge_crypto",
		Name:      "signature_batch_duration_seconds",
		Help:      "Time spent verifying a batch of signatures",
	})
	invalidCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bridge_crypto",
		Name:      "invalid_signatures_total",
		Help:      "total number of signatures failing verification",
	})
)

// SignatureInfo is a single signature to verify.
type SignatureInfo struct {
	PubKey ed25519.PublicKeyBytes
	Sign   ed25519.SignatureBytes
	Msg    []byte
}

// SignatureVerifier verifies batches of ed25519 signatures,
// spreading the work over several goroutines.
type SignatureVerifier struct {
	workers int
	logger  log.LeveledLogger
}

// NewSignatureVerifier creates a signature verifier using the given
// number of workers. A non positive number of workers defaults to the
// number of CPUs.
func NewSignatureVerifier(logger log.LeveledLogger, workers int) *SignatureVerifier {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &SignatureVerifier{
		workers: workers,
		logger:  logger,
	}
}

// VerifyAll verifies all the signatures and returns the
// validity of each one, in the order given.
func (sv *SignatureVerifier) VerifyAll(signatures []SignatureInfo) (valid []bool) {
	timer := prometheus.NewTimer(verifyDuration)
	defer timer.ObserveDuration()

	valid = make([]bool, len(signatures))
	if len(signatures) == 0 {
		return valid
	}

	workers := sv.workers
	if workers > len(signatures) {
		workers = len(signatures)
	}
	chunkSize := (len(signatures) + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < len(signatures); start += chunkSize {
		end := start + chunkSize
		if end > len(signatures) {
			end = len(signatures)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			entries := make([]ed25519.BatchEntry, end-start)
			for i, signature := range signatures[start:end] {
				entries[i] = ed25519.BatchEntry{
					PublicKey: signature.PubKey,
					Message:   signature.Msg,
					Signature: signature.Sign,
				}
			}
			// each goroutine writes a disjoint range
			copy(valid[start:end], ed25519.VerifyBatch(entries))
		}(start, end)
	}
	wg.Wait()

	invalid := 0
	for i, ok := range valid {
		if !ok {
			invalid++
			sv.logger.Tracef("signature %d by %s is invalid", i, signatures[i].PubKey)
		}
	}
	if invalid > 0 {
		invalidCounter.Add(float64(invalid))
		sv.logger.Debugf("%d of %d signatures are invalid", invalid, len(signatures))
	}

	return valid
}
