// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scale

import (
	"fmt"
	"io"
	"math"
)

// MaxLength is the largest collection length accepted from a
// compact length prefix.
const MaxLength = math.MaxUint32

// byteSliceChunk is the largest allocation made ahead of the bytes
// actually read when decoding a byte slice.
const byteSliceChunk = 4096

// DecodeCompactUint reads a compact encoded unsigned integer.
// Unlike Decoder.DecodeUintCompact, it fails on truncated input.
func DecodeCompactUint(decoder Decoder) (uint64, error) {
	var first [1]byte
	err := readExact(decoder, first[:])
	if err != nil {
		return 0, fmt.Errorf("reading compact prefix: %w", err)
	}

	var extra int
	switch mode := first[0] & 3; mode {
	case 0:
		return uint64(first[0] >> 2), nil
	case 1:
		extra = 1
	case 2:
		extra = 3
	default:
		extra = int(first[0]>>2) + 4
		if extra > 8 {
			return 0, fmt.Errorf("%w: %d bytes integer", ErrCompactOverflow, extra)
		}
	}

	rest := make([]byte, extra)
	err = readExact(decoder, rest)
	if err != nil {
		return 0, fmt.Errorf("reading compact integer: %w", err)
	}

	if extra <= 3 {
		// the mode bits are part of the little endian value
		value := uint64(first[0])
		for i, b := range rest {
			value |= uint64(b) << (8 * (i + 1))
		}
		return value >> 2, nil
	}

	var value uint64
	for i, b := range rest {
		value |= uint64(b) << (8 * i)
	}
	return value, nil
}

// DecodeCompactLength reads a compact length prefix of at most MaxLength.
func DecodeCompactLength(decoder Decoder) (int, error) {
	length, err := DecodeCompactUint(decoder)
	if err != nil {
		return 0, err
	}
	if length > MaxLength {
		return 0, fmt.Errorf("%w: length %d", ErrCompactOverflow, length)
	}
	return int(length), nil
}

// DecodeByteSlice reads a compact length prefixed byte slice.
// Memory is allocated as bytes are read, so a length prefix larger
// than the input fails without allocating the claimed length.
func DecodeByteSlice(decoder Decoder) ([]byte, error) {
	length, err := DecodeCompactLength(decoder)
	if err != nil {
		return nil, err
	}

	var data []byte
	for len(data) < length {
		chunk := make([]byte, minInt(length-len(data), byteSliceChunk))
		err = readExact(decoder, chunk)
		if err != nil {
			return nil, fmt.Errorf("reading %d of %d bytes: %w", len(data), length, err)
		}
		data = append(data, chunk...)
	}
	return data, nil
}

func readExact(decoder Decoder, b []byte) error {
	err := decoder.Read(b)
	if err != nil {
		return fmt.Errorf("%w: %s", io.ErrUnexpectedEOF, err)
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
