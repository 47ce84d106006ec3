// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

// Package scale provides SCALE marshalling helpers on top of the
// go-substrate-rpc-client codec.
package scale

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gsrpcscale "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// Encoder and Decoder are re-exported so custom types can implement
// the Encodeable and Decodeable interfaces without importing the codec.
type (
	Encoder    = gsrpcscale.Encoder
	Decoder    = gsrpcscale.Decoder
	Encodeable = gsrpcscale.Encodeable
	Decodeable = gsrpcscale.Decodeable
)

// ErrTrailingBytes is returned by Unmarshal when input remains after decoding.
var ErrTrailingBytes = errors.New("trailing bytes after decoding")

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return gsrpcscale.NewEncoder(w)
}

// Marshal returns the SCALE encoding of v.
func Marshal(v interface{}) (b []byte, err error) {
	buffer := bytes.NewBuffer(nil)
	err = gsrpcscale.NewEncoder(buffer).Encode(v)
	if err != nil {
		return nil, fmt.Errorf("encoding %T: %w", v, err)
	}
	return buffer.Bytes(), nil
}

// MustMarshal returns the SCALE encoding of v and panics on error.
// It is meant for values whose encoding cannot fail.
func MustMarshal(v interface{}) (b []byte) {
	b, err := Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

// Unmarshal decodes data into dst, which must be a pointer.
// All of data must be consumed.
func Unmarshal(data []byte, dst interface{}) (err error) {
	reader := NewReader(data)
	err = reader.Decode(dst)
	if err != nil {
		return fmt.Errorf("decoding %T: %w", dst, err)
	}

	if reader.Remaining() > 0 {
		return fmt.Errorf("%w: %d bytes left decoding %T",
			ErrTrailingBytes, reader.Remaining(), dst)
	}
	return nil
}
