// Copyright 2021 ChainSafe Systems (ON)
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

// AuthorityEncodedLength is the length of a SCALE encoded authority,
// a 32 bytes public key followed by a u64 weight.
const AuthorityEncodedLength = ed25519.PublicKeyLength + 8

// Authority is a GRANDPA voter and its voting weight.
type Authority struct {
	Key    ed25519.PublicKeyBytes `json:"key"`
	Weight uint64                 `json:"weight"`
}

func (a Authority) String() string {
	return fmt.Sprintf("Authority Key=%s Weight=%d", a.Key, a.Weight)
}

// AuthorityList is an ordered list of authorities, SCALE encoded as
// Vec<(AuthorityId, AuthorityWeight)>.
type AuthorityList []Authority

// Encode writes the SCALE encoded list
func (l AuthorityList) Encode(encoder scale.Encoder) error {
	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(l))))
	if err != nil {
		return err
	}

	for _, authority := range l {
		err = encoder.Write(authority.Key[:])
		if err != nil {
			return err
		}
		err = encoder.Encode(authority.Weight)
		if err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a SCALE encoded list into l
func (l *AuthorityList) Decode(decoder scale.Decoder) error {
	length, err := scale.DecodeCompactLength(decoder)
	if err != nil {
		return fmt.Errorf("decoding authority count: %w", err)
	}

	list := make(AuthorityList, 0, minInt(length, maxPreallocation))
	for i := 0; i < length; i++ {
		var authority Authority
		err = decoder.Read(authority.Key[:])
		if err != nil {
			return fmt.Errorf("decoding authority %d key: %w", i, err)
		}
		err = decoder.Decode(&authority.Weight)
		if err != nil {
			return fmt.Errorf("decoding authority %d weight: %w", i, err)
		}
		list = append(list, authority)
	}

	*l = list
	return nil
}

// Keys returns the public keys of the authorities, in order.
func (l AuthorityList) Keys() []ed25519.PublicKeyBytes {
	keys := make([]ed25519.PublicKeyBytes, len(l))
	for i, authority := range l {
		keys[i] = authority.Key
	}
	return keys
}

// AuthoritySet is a versioned authority set. It binds the ordered
// authorities to their chained hash commitment, and must not be
// modified once built.
type AuthoritySet struct {
	ID          uint64        `json:"id"`
	Authorities AuthorityList `json:"authorities"`
	Commitment  common.Hash   `json:"commitment"`
}

// Len returns the number of authorities in the set.
func (s *AuthoritySet) Len() int {
	return len(s.Authorities)
}

// ErrUnknownConsensusMessage is returned when decoding a GRANDPA
// consensus message with an unknown variant index.
var ErrUnknownConsensusMessage = errors.New("unknown grandpa consensus message")

// GrandpaConsensusMessage variant indexes.
const (
	GrandpaScheduledChangeIndex = byte(1)
	GrandpaForcedChangeIndex    = byte(2)
	GrandpaOnDisabledIndex      = byte(3)
	GrandpaPauseIndex           = byte(4)
	GrandpaResumeIndex          = byte(5)
)

// GrandpaConsensusMessage is the payload of a GRANDPA consensus digest.
type GrandpaConsensusMessage interface {
	Index() byte
}

// GrandpaScheduledChange represents a GRANDPA scheduled authority change
type GrandpaScheduledChange struct {
	Auths AuthorityList
	Delay uint32
}

// Index returns the variant index
func (GrandpaScheduledChange) Index() byte { return GrandpaScheduledChangeIndex }

// GrandpaForcedChange represents a GRANDPA forced authority change
type GrandpaForcedChange struct {
	// BestFinalizedBlock is specified by the governance mechanism, defines
	// the starting block at which Delay is applied.
	BestFinalizedBlock uint32
	GrandpaScheduledChange
}

// Index returns the variant index
func (GrandpaForcedChange) Index() byte { return GrandpaForcedChangeIndex }

// GrandpaOnDisabled represents a GRANDPA authority being disabled
type GrandpaOnDisabled struct {
	ID uint64
}

// Index returns the variant index
func (GrandpaOnDisabled) Index() byte { return GrandpaOnDisabledIndex }

// GrandpaPause represents an authority set pause
type GrandpaPause struct {
	Delay uint32
}

// Index returns the variant index
func (GrandpaPause) Index() byte { return GrandpaPauseIndex }

// GrandpaResume represents an authority set resume
type GrandpaResume struct {
	Delay uint32
}

// Index returns the variant index
func (GrandpaResume) Index() byte { return GrandpaResumeIndex }

// EncodeGrandpaConsensusMessage returns the SCALE encoding of the message,
// variant index included.
func EncodeGrandpaConsensusMessage(message GrandpaConsensusMessage) ([]byte, error) {
	var body interface{}
	switch message := message.(type) {
	case GrandpaScheduledChange:
		body = message
	case GrandpaForcedChange:
		body = struct {
			BestFinalizedBlock uint32
			Auths              AuthorityList
			Delay              uint32
		}{message.BestFinalizedBlock, message.Auths, message.Delay}
	case GrandpaOnDisabled:
		body = message.ID
	case GrandpaPause:
		body = message.Delay
	case GrandpaResume:
		body = message.Delay
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownConsensusMessage, message)
	}

	encoded, err := scale.Marshal(body)
	if err != nil {
		return nil, err
	}
	return append([]byte{message.Index()}, encoded...), nil
}

// DecodeGrandpaConsensusMessage decodes the data of a GRANDPA consensus digest.
func DecodeGrandpaConsensusMessage(data []byte) (GrandpaConsensusMessage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrUnknownConsensusMessage)
	}

	body := data[1:]
	switch data[0] {
	case GrandpaScheduledChangeIndex:
		var message GrandpaScheduledChange
		err := scale.Unmarshal(body, &message)
		return message, err
	case GrandpaForcedChangeIndex:
		var message GrandpaForcedChange
		reader := scale.NewReader(body)
		err := reader.Decode(&message.BestFinalizedBlock)
		if err != nil {
			return nil, err
		}
		err = reader.Decode(&message.Auths)
		if err != nil {
			return nil, err
		}
		err = reader.Decode(&message.Delay)
		if err != nil {
			return nil, err
		}
		if reader.Remaining() > 0 {
			return nil, scale.ErrTrailingBytes
		}
		return message, nil
	case GrandpaOnDisabledIndex:
		var message GrandpaOnDisabled
		err := scale.Unmarshal(body, &message.ID)
		return message, err
	case GrandpaPauseIndex:
		var message GrandpaPause
		err := scale.Unmarshal(body, &message.Delay)
		return message, err
	case GrandpaResumeIndex:
		var message GrandpaResume
		err := scale.Unmarshal(body, &message.Delay)
		return message, err
	default:
		return nil, fmt.Errorf("%w: index %d", ErrUnknownConsensusMessage, data[0])
	}
}
