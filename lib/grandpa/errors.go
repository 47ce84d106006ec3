// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"errors"
)

// ErrMalformedEvidence is returned when a justification cannot be checked at all,
// for example when it has no precommits or targets disagree
var ErrMalformedEvidence = errors.New("malformed justification evidence")

// ErrQuorumNotMet is returned when the valid signers do not reach two thirds of the authority set
var ErrQuorumNotMet = errors.New("quorum not met")

// ErrHeaderMismatch is returned when a fetched header does not hash to, or number as, its justification target
var ErrHeaderMismatch = errors.New("header does not match justification target")

// ErrNoRotationLog is returned when a header has no GRANDPA scheduled change consensus log
var ErrNoRotationLog = errors.New("no authority set rotation log in header")

// ErrUpstreamFetch is returned when chain data cannot be fetched
var ErrUpstreamFetch = errors.New("upstream fetch failed")

// ErrHeaderTooLong is returned when an encoded header exceeds the maximum header length
var ErrHeaderTooLong = errors.New("header exceeds maximum length")

// ErrMalformedHeader is returned when encoded header bytes are truncated or garbled
var ErrMalformedHeader = errors.New("malformed header")

// ErrInvalidActiveCount is returned when the active authority count is zero or above the number of keys
var ErrInvalidActiveCount = errors.New("invalid active authority count")

// ErrTooManyAuthorities is returned when padding more authority keys than the maximum
var ErrTooManyAuthorities = errors.New("too many authorities")
