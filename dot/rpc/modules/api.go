// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"context"

	"github.com/ChainSafe/grandpa-bridge/lib/witness"
)

// WitnessAPI is the interface for the witness data provider.
type WitnessAPI interface {
	Justification(ctx context.Context, request witness.JustificationRequest) (
		*witness.JustificationResponse, error)
	Rotation(ctx context.Context, request witness.RotationRequest) (*witness.RotationResponse, error)
}
