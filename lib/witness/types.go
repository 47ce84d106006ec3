// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package witness

import (
	"github.com/ChainSafe/grandpa-bridge/dot/types"
)

// JustificationRequest requests the verified justification record
// of a block, signed by the authority set with the given id.
type JustificationRequest struct {
	BlockNumber    uint32 `json:"blockNumber"`
	AuthoritySetID uint64 `json:"authoritySetId"`
}

// JustificationResponse holds a verified justification record
// and the authority set id it was verified against.
type JustificationResponse struct {
	AuthoritySetID uint64                            `json:"authoritySetId"`
	Record         types.VerifiedJustificationRecord `json:"record"`
}

// RotationRequest requests the rotation data of an epoch end block.
type RotationRequest struct {
	BlockNumber uint32 `json:"blockNumber"`
}

// RotationResponse holds the rotation data of an epoch end block.
type RotationResponse struct {
	Rotation types.RotationData `json:"rotation"`
}
