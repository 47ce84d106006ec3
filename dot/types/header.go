// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/pkg/scale"
)

// Header is a block header
type Header struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         uint32      `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	Digest         Digest      `json:"digest"`
}

// NewHeader creates a new block header
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint32, digest Digest) *Header {
	return &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}
}

func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s Digest=%v",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot, bh.Digest)
}

// Encode writes the SCALE encoded header. The block number is compact encoded.
func (bh Header) Encode(encoder scale.Encoder) error {
	err := encoder.Write(bh.ParentHash[:])
	if err != nil {
		return err
	}

	err = encoder.EncodeUintCompact(*new(big.Int).SetUint64(uint64(bh.Number)))
	if err != nil {
		return err
	}

	err = encoder.Write(bh.StateRoot[:])
	if err != nil {
		return err
	}

	err = encoder.Write(bh.ExtrinsicsRoot[:])
	if err != nil {
		return err
	}

	return bh.Digest.Encode(encoder)
}

// Decode reads a SCALE encoded header into bh
func (bh *Header) Decode(decoder scale.Decoder) error {
	err := decoder.Read(bh.ParentHash[:])
	if err != nil {
		return fmt.Errorf("decoding parent hash: %w", err)
	}

	number, err := scale.DecodeCompactUint(decoder)
	if err != nil {
		return fmt.Errorf("decoding block number: %w", err)
	}
	if number > math.MaxUint32 {
		return fmt.Errorf("%w: block number %d", scale.ErrCompactOverflow, number)
	}
	bh.Number = uint32(number)

	err = decoder.Read(bh.StateRoot[:])
	if err != nil {
		return fmt.Errorf("decoding state root: %w", err)
	}

	err = decoder.Read(bh.ExtrinsicsRoot[:])
	if err != nil {
		return fmt.Errorf("decoding extrinsics root: %w", err)
	}

	return bh.Digest.Decode(decoder)
}

// Bytes returns the SCALE encoding of the header.
func (bh *Header) Bytes() ([]byte, error) {
	return scale.Marshal(*bh)
}

// Hash returns the blake2b-256 hash of the SCALE encoded header.
func (bh *Header) Hash() (common.Hash, error) {
	encoded, err := bh.Bytes()
	if err != nil {
		return common.Hash{}, fmt.Errorf("encoding header: %w", err)
	}
	return common.Blake2bHash(encoded)
}

// DecodeHeader decodes SCALE encoded header bytes.
func DecodeHeader(data []byte) (*Header, error) {
	header := new(Header)
	err := scale.Unmarshal(data, header)
	if err != nil {
		return nil, err
	}
	return header, nil
}
