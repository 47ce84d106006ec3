// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"bytes"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/pkg/scale"
)

// ExtractRotation walks the SCALE encoded header and locates the authority
// list of its first GRANDPA scheduled change consensus log. The returned
// header bytes are zero padded to maxHeaderLen.
func ExtractRotation(headerBytes []byte, maxHeaderLen int) (*types.RotationData, error) {
	if len(headerBytes) > maxHeaderLen {
		return nil, fmt.Errorf("%w: %d bytes for a maximum of %d",
			ErrHeaderTooLong, len(headerBytes), maxHeaderLen)
	}

	reader := scale.NewReader(headerBytes)

	// parent hash, compact block number, state root and extrinsics root
	err := reader.Skip(common.HashLength)
	if err != nil {
		return nil, fmt.Errorf("%w: parent hash: %s", ErrMalformedHeader, err)
	}
	_, err = reader.ReadCompactUint()
	if err != nil {
		return nil, fmt.Errorf("%w: block number: %s", ErrMalformedHeader, err)
	}
	err = reader.Skip(2 * common.HashLength)
	if err != nil {
		return nil, fmt.Errorf("%w: roots: %s", ErrMalformedHeader, err)
	}

	itemCount, err := reader.ReadCompactLength(1)
	if err != nil {
		return nil, fmt.Errorf("%w: digest length: %s", ErrMalformedHeader, err)
	}

	var rotation *types.RotationData
	for i := 0; i < itemCount; i++ {
		found, err := readDigestItem(reader)
		if err != nil {
			return nil, fmt.Errorf("%w: digest item %d: %s", ErrMalformedHeader, i, err)
		}
		if rotation == nil && found != nil {
			rotation = found
		}
	}

	if reader.Remaining() > 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedHeader, reader.Remaining())
	}

	if rotation == nil {
		return nil, ErrNoRotationLog
	}

	rotation.HeaderBytes = make([]byte, maxHeaderLen)
	copy(rotation.HeaderBytes, headerBytes)
	rotation.HeaderSize = uint64(len(headerBytes))
	return rotation, nil
}

// readDigestItem reads a digest item and returns the rotation data
// if the item is a GRANDPA scheduled change.
func readDigestItem(reader *scale.Reader) (*types.RotationData, error) {
	itemType, err := reader.ReadByte()
	if err != nil {
		return nil, err
	}

	switch itemType {
	case types.OtherDigestType:
		_, err = reader.ReadByteSlice()
		return nil, err
	case types.RuntimeEnvironmentUpdatedType:
		return nil, nil
	case types.ConsensusDigestType, types.SealDigestType, types.PreRuntimeDigestType:
	default:
		return nil, fmt.Errorf("%w: %d", types.ErrUnknownDigestItem, itemType)
	}

	engineID, err := reader.ReadBytes(len(types.ConsensusEngineID{}))
	if err != nil {
		return nil, err
	}

	dataLength, err := reader.ReadCompactLength(1)
	if err != nil {
		return nil, err
	}
	dataStart := reader.Offset()

	data, err := reader.ReadBytes(dataLength)
	if err != nil {
		return nil, err
	}

	if itemType != types.ConsensusDigestType ||
		!bytes.Equal(engineID, types.GrandpaEngineID[:]) ||
		len(data) == 0 || data[0] != types.GrandpaScheduledChangeIndex {
		return nil, nil
	}

	payload := scale.NewReader(data[1:])
	numAuthorities, err := payload.ReadCompactLength(types.AuthorityEncodedLength)
	if err != nil {
		return nil, fmt.Errorf("scheduled change authority count: %w", err)
	}

	start := dataStart + 1 + payload.Offset()
	end := start + numAuthorities*types.AuthorityEncodedLength

	const delayLength = 4
	if payload.Remaining() != numAuthorities*types.AuthorityEncodedLength+delayLength {
		return nil, fmt.Errorf("scheduled change has %d bytes after the authority count, expected %d",
			payload.Remaining(), numAuthorities*types.AuthorityEncodedLength+delayLength)
	}

	return &types.RotationData{
		NumAuthorities:    uint64(numAuthorities),
		ConsensusLogStart: uint64(start),
		ConsensusLogEnd:   uint64(end),
	}, nil
}

// DecodeRotationAuthorities decodes the new authority list
// delimited by the rotation data.
func DecodeRotationAuthorities(rotation *types.RotationData) (types.AuthorityList, error) {
	header, err := rotation.Header()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedHeader, err)
	}

	start, end := rotation.ConsensusLogStart, rotation.ConsensusLogEnd
	if start > end || end > uint64(len(header)) {
		return nil, fmt.Errorf("%w: range [%d, %d) outside of %d header bytes",
			ErrMalformedHeader, start, end, len(header))
	}

	const authorityLength = uint64(types.AuthorityEncodedLength)
	length := end - start
	if length%authorityLength != 0 || length/authorityLength != rotation.NumAuthorities {
		return nil, fmt.Errorf("%w: range of %d bytes for %d authorities",
			ErrMalformedHeader, length, rotation.NumAuthorities)
	}

	reader := scale.NewReader(header[start:end])
	authorities := make(types.AuthorityList, rotation.NumAuthorities)
	for i := range authorities {
		err = reader.Decode(&authorities[i])
		if err != nil {
			return nil, fmt.Errorf("%w: authority %d: %s", ErrMalformedHeader, i, err)
		}
	}
	return authorities, nil
}
