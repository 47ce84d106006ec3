// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/pkg/scale"
)

// ErrUnknownDigestItem is returned when decoding a digest item with an unknown type byte.
var ErrUnknownDigestItem = errors.New("unknown digest item type")

// ConsensusEngineID is a 4-character identifier of the consensus engine that produced the digest.
type ConsensusEngineID [4]byte

// NewConsensusEngineID casts a byte array to ConsensusEngineID
// if the input is longer than 4 bytes, it takes the first 4 bytes
func NewConsensusEngineID(in []byte) (res ConsensusEngineID) {
	copy(res[:], in)
	return res
}

// ToBytes turns ConsensusEngineID to a byte array
func (h ConsensusEngineID) ToBytes() []byte {
	b := [4]byte(h)
	return b[:]
}

func (h ConsensusEngineID) String() string {
	return string(h[:])
}

// BabeEngineID is the hard-coded babe ID
var BabeEngineID = ConsensusEngineID{'B', 'A', 'B', 'E'}

// GrandpaEngineID is the hard-coded grandpa ID
var GrandpaEngineID = ConsensusEngineID{'F', 'R', 'N', 'K'}

const (
	// OtherDigestType is the byte representation of OtherDigest
	OtherDigestType = byte(0)
	// ConsensusDigestType is the byte representation of ConsensusDigest
	ConsensusDigestType = byte(4)
	// SealDigestType is the byte representation of SealDigest
	SealDigestType = byte(5)
	// PreRuntimeDigestType is the byte representation of PreRuntimeDigest
	PreRuntimeDigestType = byte(6)
	// RuntimeEnvironmentUpdatedType is the byte representation of RuntimeEnvironmentUpdated
	RuntimeEnvironmentUpdatedType = byte(8)
)

// DigestItem is a header digest item.
// Encode writes the type byte followed by the item body, and
// Decode reads the item body which follows the type byte.
type DigestItem interface {
	String() string
	Type() byte
	Encode(encoder scale.Encoder) error
	Decode(decoder scale.Decoder) error
}

// Digest represents the block digest. It consists of digest items.
type Digest []DigestItem

// NewDigest returns a new Digest from the given DigestItems
func NewDigest(items ...DigestItem) Digest {
	return items
}

// Encode writes the SCALE encoded digest
func (d Digest) Encode(encoder scale.Encoder) error {
	err := encoder.EncodeUintCompact(*big.NewInt(int64(len(d))))
	if err != nil {
		return err
	}

	for i, item := range d {
		err = item.Encode(encoder)
		if err != nil {
			return fmt.Errorf("encoding digest item %d: %w", i, err)
		}
	}
	return nil
}

// Decode reads a SCALE encoded digest into d
func (d *Digest) Decode(decoder scale.Decoder) error {
	length, err := scale.DecodeCompactLength(decoder)
	if err != nil {
		return fmt.Errorf("decoding digest length: %w", err)
	}

	digest := Digest{}
	for i := 0; i < length; i++ {
		item, err := DecodeDigestItem(decoder)
		if err != nil {
			return fmt.Errorf("decoding digest item %d: %w", i, err)
		}
		digest = append(digest, item)
	}

	*d = digest
	return nil
}

// DecodeDigestItem decodes a single digest item, type byte included.
func DecodeDigestItem(decoder scale.Decoder) (DigestItem, error) {
	itemType, err := decoder.ReadOneByte()
	if err != nil {
		return nil, err
	}

	var item DigestItem
	switch itemType {
	case OtherDigestType:
		item = new(OtherDigest)
	case ConsensusDigestType:
		item = new(ConsensusDigest)
	case SealDigestType:
		item = new(SealDigest)
	case PreRuntimeDigestType:
		item = new(PreRuntimeDigest)
	case RuntimeEnvironmentUpdatedType:
		item = new(RuntimeEnvironmentUpdated)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownDigestItem, itemType)
	}

	err = item.Decode(decoder)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// OtherDigest is a digest item of arbitrary data.
type OtherDigest struct {
	Data []byte
}

// Type returns the OtherDigest type
func (d *OtherDigest) Type() byte { return OtherDigestType }

func (d *OtherDigest) String() string {
	return fmt.Sprintf("OtherDigest Data=0x%x", d.Data)
}

// Encode will encode the OtherDigest into the encoder
func (d *OtherDigest) Encode(encoder scale.Encoder) error {
	err := encoder.PushByte(OtherDigestType)
	if err != nil {
		return err
	}
	return encoder.Encode(d.Data)
}

// Decode will decode the OtherDigest body
func (d *OtherDigest) Decode(decoder scale.Decoder) (err error) {
	d.Data, err = scale.DecodeByteSlice(decoder)
	if err != nil {
		return fmt.Errorf("decoding data: %w", err)
	}
	return nil
}

// engineDigest is the shared shape of the digest items
// carrying a consensus engine id and opaque data.
type engineDigest struct {
	ConsensusEngineID ConsensusEngineID
	Data              []byte
}

func (d *engineDigest) encode(encoder scale.Encoder, itemType byte) error {
	err := encoder.PushByte(itemType)
	if err != nil {
		return err
	}

	err = encoder.Write(d.ConsensusEngineID[:])
	if err != nil {
		return err
	}

	return encoder.Encode(d.Data)
}

func (d *engineDigest) decode(decoder scale.Decoder) error {
	err := decoder.Read(d.ConsensusEngineID[:])
	if err != nil {
		return fmt.Errorf("decoding engine id: %w", err)
	}

	d.Data, err = scale.DecodeByteSlice(decoder)
	if err != nil {
		return fmt.Errorf("decoding data: %w", err)
	}
	return nil
}

// ConsensusDigest contains messages from the runtime to the consensus engine.
type ConsensusDigest engineDigest

// Type returns the ConsensusDigest type
func (d *ConsensusDigest) Type() byte { return ConsensusDigestType }

func (d *ConsensusDigest) String() string {
	return fmt.Sprintf("ConsensusDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID, d.Data)
}

// Encode will encode the ConsensusDigest into the encoder
func (d *ConsensusDigest) Encode(encoder scale.Encoder) error {
	return (*engineDigest)(d).encode(encoder, ConsensusDigestType)
}

// Decode will decode the ConsensusDigest body
func (d *ConsensusDigest) Decode(decoder scale.Decoder) error {
	return (*engineDigest)(d).decode(decoder)
}

// SealDigest contains the seal or signature. This is only used by native code.
type SealDigest engineDigest

// Type returns the SealDigest type
func (d *SealDigest) Type() byte { return SealDigestType }

func (d *SealDigest) String() string {
	return fmt.Sprintf("SealDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID, d.Data)
}

// Encode will encode the SealDigest into the encoder
func (d *SealDigest) Encode(encoder scale.Encoder) error {
	return (*engineDigest)(d).encode(encoder, SealDigestType)
}

// Decode will decode the SealDigest body
func (d *SealDigest) Decode(decoder scale.Decoder) error {
	return (*engineDigest)(d).decode(decoder)
}

// PreRuntimeDigest contains messages from the consensus engine to the runtime.
type PreRuntimeDigest engineDigest

// Type returns the PreRuntimeDigest type
func (d *PreRuntimeDigest) Type() byte { return PreRuntimeDigestType }

func (d *PreRuntimeDigest) String() string {
	return fmt.Sprintf("PreRuntimeDigest ConsensusEngineID=%s Data=0x%x", d.ConsensusEngineID, d.Data)
}

// Encode will encode the PreRuntimeDigest into the encoder
func (d *PreRuntimeDigest) Encode(encoder scale.Encoder) error {
	return (*engineDigest)(d).encode(encoder, PreRuntimeDigestType)
}

// Decode will decode the PreRuntimeDigest body
func (d *PreRuntimeDigest) Decode(decoder scale.Decoder) error {
	return (*engineDigest)(d).decode(decoder)
}

// RuntimeEnvironmentUpdated signals the runtime code or heap pages changed.
type RuntimeEnvironmentUpdated struct{}

// Type returns the RuntimeEnvironmentUpdated type
func (*RuntimeEnvironmentUpdated) Type() byte { return RuntimeEnvironmentUpdatedType }

func (*RuntimeEnvironmentUpdated) String() string { return "RuntimeEnvironmentUpdated" }

// Encode will encode the RuntimeEnvironmentUpdated type byte
func (*RuntimeEnvironmentUpdated) Encode(encoder scale.Encoder) error {
	return encoder.PushByte(RuntimeEnvironmentUpdatedType)
}

// Decode is a no-op since the item has no body
func (*RuntimeEnvironmentUpdated) Decode(scale.Decoder) error { return nil }

// DecodeDigestItemHex decodes a 0x prefixed hex encoded digest item,
// as found in the logs of an RPC header.
func DecodeDigestItemHex(s string) (DigestItem, error) {
	b, err := common.HexToBytes(s)
	if err != nil {
		return nil, err
	}

	reader := scale.NewReader(b)
	item, err := DecodeDigestItem(reader.Decoder())
	if err != nil {
		return nil, err
	}
	if reader.Remaining() > 0 {
		return nil, fmt.Errorf("%w: %d bytes left decoding digest item",
			scale.ErrTrailingBytes, reader.Remaining())
	}
	return item, nil
}
