// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"net/http"

	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/lib/witness"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc-modules"))

// JustificationRequest is the witness_getJustification request.
type JustificationRequest struct {
	BlockNumber    uint32 `json:"blockNumber" validate:"gt=0"`
	AuthoritySetID uint64 `json:"authoritySetId"`
}

// RotationRequest is the witness_getRotation request.
type RotationRequest struct {
	BlockNumber uint32 `json:"blockNumber" validate:"gt=0"`
}

// WitnessModule serves justification and rotation data
// to verification computations running in another process.
type WitnessModule struct {
	witnessAPI WitnessAPI
}

// NewWitnessModule creates a new witness rpc module.
func NewWitnessModule(api WitnessAPI) *WitnessModule {
	return &WitnessModule{
		witnessAPI: api,
	}
}

// GetJustification returns the verified justification record of a block
// finalised by the authority set requested.
func (wm *WitnessModule) GetJustification(r *http.Request, req *JustificationRequest,
	res *witness.JustificationResponse) error {
	response, err := wm.witnessAPI.Justification(r.Context(), witness.JustificationRequest{
		BlockNumber:    req.BlockNumber,
		AuthoritySetID: req.AuthoritySetID,
	})
	if err != nil {
		logger.Debugf("cannot serve justification of block %d for set id %d: %s",
			req.BlockNumber, req.AuthoritySetID, err)
		return err
	}

	*res = *response
	return nil
}

// GetRotation returns the rotation data of the epoch end block requested.
func (wm *WitnessModule) GetRotation(r *http.Request, req *RotationRequest,
	res *witness.RotationResponse) error {
	response, err := wm.witnessAPI.Rotation(r.Context(), witness.RotationRequest{
		BlockNumber: req.BlockNumber,
	})
	if err != nil {
		logger.Debugf("cannot serve rotation of block %d: %s", req.BlockNumber, err)
		return err
	}

	*res = *response
	return nil
}
