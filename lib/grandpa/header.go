// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
)

// CheckHeader checks the header recomputed hash and number
// match the target of the commit.
func CheckHeader(header *types.Header, commit types.Commit) error {
	if header == nil {
		return fmt.Errorf("%w: no header for target %s", ErrHeaderMismatch, commit.TargetHash)
	}

	hash, err := header.Hash()
	if err != nil {
		return fmt.Errorf("hashing header: %w", err)
	}

	if hash != commit.TargetHash || header.Number != commit.TargetNumber {
		return fmt.Errorf("%w: header hash=%s number=%d for target hash=%s number=%d",
			ErrHeaderMismatch, hash, header.Number, commit.TargetHash, commit.TargetNumber)
	}
	return nil
}
