// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type permanentError struct {
	err error
}

func (p *permanentError) Error() string { return p.err.Error() }
func (p *permanentError) Unwrap() error { return p.err }

// Permanent marks an error as not worth retrying.
// UntilNoError returns it unwrapped as soon as it sees it.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// UntilNoError retries the function `f` until it returns a nil error
// or an error marked with Permanent.
// It waits `retryWait` after each failed call to `f`.
// If the context `ctx` is canceled, the function returns
// an error stating the number of failed tries,
// for how long it retried and the last error returned by `f`.
func UntilNoError(ctx context.Context, retryWait time.Duration,
	f func() (err error)) (err error) {
	failedTries := 0
	var lastErr error
	for ctx.Err() == nil {
		err = f()
		if err == nil {
			return nil
		}

		var permanent *permanentError
		if errors.As(err, &permanent) {
			return permanent.err
		}

		lastErr = err
		failedTries++
		waitCtx, waitCancel := context.WithTimeout(ctx, retryWait)
		<-waitCtx.Done()
		waitCancel()
	}

	return makeError(failedTries, retryWait, lastErr, ctx.Err())
}

func makeError(failedTries int, retryWait time.Duration, lastErr, ctxErr error) error {
	totalRetryTime := time.Duration(failedTries) * retryWait
	tryWord := "try"
	if failedTries > 1 {
		tryWord = "tries"
	}

	if lastErr == nil {
		return fmt.Errorf("failed after %d %s during %s (%w)",
			failedTries, tryWord, totalRetryTime, ctxErr)
	}
	return fmt.Errorf("failed after %d %s during %s (%s): %w",
		failedTries, tryWord, totalRetryTime, ctxErr, lastErr)
}
