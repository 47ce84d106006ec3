// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoPrefix is returned when trying to convert a hex-encoded string with no 0x prefix
var ErrNoPrefix = errors.New("could not byteify non 0x prefixed string")

// HexToBytes turns a 0x prefixed hex string into a byte slice
func HexToBytes(in string) (b []byte, err error) {
	if !strings.HasPrefix(in, "0x") {
		return nil, ErrNoPrefix
	}

	in = in[2:]
	// Ensure we have an even length
	if len(in)%2 != 0 {
		in = "0" + in
	}

	return hex.DecodeString(in)
}

// MustHexToBytes turns a 0x prefixed hex string into a byte slice
// it panic if it cannot decode the string
func MustHexToBytes(in string) []byte {
	out, err := HexToBytes(in)
	if err != nil {
		panic(err)
	}
	return out
}

// BytesToHex turns a byte slice into a 0x prefixed hex string
func BytesToHex(in []byte) string {
	return "0x" + hex.EncodeToString(in)
}

// HexBytes is a byte slice encoded as a 0x prefixed hex string in JSON.
type HexBytes []byte

// String returns the 0x prefixed hex encoding.
func (b HexBytes) String() string {
	return BytesToHex(b)
}

// MarshalJSON encodes the bytes as a hex string.
func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON decodes a hex string.
func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}

	decoded, err := HexToBytes(s)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
