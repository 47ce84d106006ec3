// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package scale

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	gsrpcscale "github.com/centrifuge/go-substrate-rpc-client/v4/scale"
)

// ErrCompactOverflow is returned when a compact integer does not fit in 64 bits.
var ErrCompactOverflow = errors.New("compact integer overflows uint64")

// Reader decodes SCALE values from a byte slice and keeps
// track of the current byte offset.
type Reader struct {
	data    []byte
	reader  *bytes.Reader
	decoder *gsrpcscale.Decoder
}

// NewReader returns a reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	reader := bytes.NewReader(data)
	return &Reader{
		data:    data,
		reader:  reader,
		decoder: gsrpcscale.NewDecoder(reader),
	}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return len(r.data) - r.reader.Len()
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return r.reader.Len()
}

// Decode decodes the next value into dst.
func (r *Reader) Decode(dst interface{}) error {
	return r.decoder.Decode(dst)
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	return r.decoder.ReadOneByte()
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("reading %d bytes at offset %d: %w",
			n, r.Offset(), io.ErrUnexpectedEOF)
	}
	b := make([]byte, n)
	if n == 0 {
		return b, nil
	}
	err := r.decoder.Read(b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Skip advances the reader by n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.ReadBytes(n)
	return err
}

// ReadCompactUint reads a compact encoded unsigned integer.
func (r *Reader) ReadCompactUint() (uint64, error) {
	return DecodeCompactUint(*r.decoder)
}

// ReadCompactLength reads a compact length prefix and checks it
// against the number of remaining bytes, given each element takes
// at least minElementSize bytes.
func (r *Reader) ReadCompactLength(minElementSize int) (int, error) {
	length, err := r.ReadCompactUint()
	if err != nil {
		return 0, err
	}

	if length > math.MaxInt32 {
		return 0, fmt.Errorf("%w: length %d", ErrCompactOverflow, length)
	}

	if minElementSize > 0 && int(length)*minElementSize > r.Remaining() {
		return 0, fmt.Errorf("length %d at offset %d: %w",
			length, r.Offset(), io.ErrUnexpectedEOF)
	}
	return int(length), nil
}

// ReadByteSlice reads a compact length prefixed byte slice.
func (r *Reader) ReadByteSlice() ([]byte, error) {
	length, err := r.ReadCompactLength(1)
	if err != nil {
		return nil, err
	}
	return r.ReadBytes(length)
}

// Decoder returns the underlying decoder. It shares the position of the reader.
func (r *Reader) Decoder() Decoder {
	return *r.decoder
}
