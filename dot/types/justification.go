// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
	"github.com/ChainSafe/grandpa-bridge/pkg/scale"
)

// Vote stages of the GRANDPA signed message enum.
const (
	PrevoteStage         = byte(0)
	PrecommitStage       = byte(1)
	PrimaryProposalStage = byte(2)
)

// SignedMessageLength is the length of a SCALE encoded precommit signed
// message: stage (1) + target hash (32) + target number (4) + round (8)
// + authority set id (8).
const SignedMessageLength = 1 + common.HashLength + 4 + 8 + 8

// ErrInvalidSignedMessage is returned when signed message bytes do not
// decode to a precommit message.
var ErrInvalidSignedMessage = errors.New("invalid signed message")

// Precommit is a vote for a block target.
type Precommit struct {
	TargetHash   common.Hash `json:"targetHash"`
	TargetNumber uint32      `json:"targetNumber"`
}

func (p Precommit) String() string {
	return fmt.Sprintf("hash=%s number=%d", p.TargetHash, p.TargetNumber)
}

// SignedPrecommit is a precommit with the signature of its voter.
type SignedPrecommit struct {
	Precommit Precommit
	Signature ed25519.SignatureBytes
	Signer    ed25519.PublicKeyBytes
}

// Commit is a target block and the precommits justifying it.
type Commit struct {
	TargetHash   common.Hash
	TargetNumber uint32
	Precommits   []SignedPrecommit
}

// Justification is a GRANDPA justification for block finality.
type Justification struct {
	Round           uint64
	Commit          Commit
	VotesAncestries []Header
}

// Encode writes the SCALE encoded justification
func (j Justification) Encode(encoder scale.Encoder) error {
	err := encoder.Encode(j.Round)
	if err != nil {
		return err
	}

	err = encoder.Write(j.Commit.TargetHash[:])
	if err != nil {
		return err
	}

	err = encoder.Encode(j.Commit.TargetNumber)
	if err != nil {
		return err
	}

	err = encoder.EncodeUintCompact(*big.NewInt(int64(len(j.Commit.Precommits))))
	if err != nil {
		return err
	}
	for _, precommit := range j.Commit.Precommits {
		err = encoder.Encode(precommit)
		if err != nil {
			return err
		}
	}

	err = encoder.EncodeUintCompact(*big.NewInt(int64(len(j.VotesAncestries))))
	if err != nil {
		return err
	}
	for _, header := range j.VotesAncestries {
		err = header.Encode(encoder)
		if err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a SCALE encoded justification into j
func (j *Justification) Decode(decoder scale.Decoder) error {
	err := decoder.Decode(&j.Round)
	if err != nil {
		return fmt.Errorf("decoding round: %w", err)
	}

	err = decoder.Read(j.Commit.TargetHash[:])
	if err != nil {
		return fmt.Errorf("decoding target hash: %w", err)
	}

	err = decoder.Decode(&j.Commit.TargetNumber)
	if err != nil {
		return fmt.Errorf("decoding target number: %w", err)
	}

	count, err := scale.DecodeCompactLength(decoder)
	if err != nil {
		return fmt.Errorf("decoding precommits length: %w", err)
	}
	j.Commit.Precommits = make([]SignedPrecommit, 0, minInt(count, maxPreallocation))
	for i := 0; i < count; i++ {
		var precommit SignedPrecommit
		err = decoder.Decode(&precommit)
		if err != nil {
			return fmt.Errorf("decoding precommit %d: %w", i, err)
		}
		j.Commit.Precommits = append(j.Commit.Precommits, precommit)
	}

	count, err = scale.DecodeCompactLength(decoder)
	if err != nil {
		return fmt.Errorf("decoding votes ancestries length: %w", err)
	}
	j.VotesAncestries = make([]Header, 0, minInt(count, maxPreallocation))
	for i := 0; i < count; i++ {
		var header Header
		err = header.Decode(decoder)
		if err != nil {
			return fmt.Errorf("decoding votes ancestry %d: %w", i, err)
		}
		j.VotesAncestries = append(j.VotesAncestries, header)
	}
	return nil
}

// DecodeJustification decodes SCALE encoded justification bytes.
func DecodeJustification(data []byte) (*Justification, error) {
	justification := new(Justification)
	err := scale.Unmarshal(data, justification)
	if err != nil {
		return nil, err
	}
	return justification, nil
}

// maxPreallocation caps the capacity allocated up front from an
// untrusted length prefix.
const maxPreallocation = 1024

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// FullVote is the message signed by a voter: the vote stage,
// the vote target, the round and the authority set id.
type FullVote struct {
	Stage byte
	Vote  Precommit
	Round uint64
	SetID uint64
}

// NewPrecommitMessage returns the signed message bytes of a precommit.
func NewPrecommitMessage(precommit Precommit, round, setID uint64) []byte {
	return scale.MustMarshal(FullVote{
		Stage: PrecommitStage,
		Vote:  precommit,
		Round: round,
		SetID: setID,
	})
}

// DecodeSignedMessage decodes signed message bytes, which must be
// exactly SignedMessageLength long and carry a precommit.
func DecodeSignedMessage(data []byte) (*FullVote, error) {
	if len(data) != SignedMessageLength {
		return nil, fmt.Errorf("%w: length %d instead of %d",
			ErrInvalidSignedMessage, len(data), SignedMessageLength)
	}

	vote := new(FullVote)
	err := scale.Unmarshal(data, vote)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSignedMessage, err)
	}

	if vote.Stage != PrecommitStage {
		return nil, fmt.Errorf("%w: stage %d is not a precommit",
			ErrInvalidSignedMessage, vote.Stage)
	}
	return vote, nil
}
