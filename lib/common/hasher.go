// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/OneOfOne/xxhash"
	"golang.org/x/crypto/blake2b"
)

// Blake2bHash returns the 256-bit blake2b hash of the input data
func Blake2bHash(in []byte) (Hash, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return Hash{}, err
	}

	_, err = h.Write(in)
	if err != nil {
		return Hash{}, err
	}

	return NewHash(h.Sum(nil)), nil
}

// MustBlake2bHash returns the 256-bit blake2b hash of the input data. It panics if it fails to hash.
func MustBlake2bHash(in []byte) Hash {
	hash, err := Blake2bHash(in)
	if err != nil {
		panic(err)
	}

	return hash
}

// Twox128Hash computes xxHash64 twice with seeds 0 and 1 applied on given byte array
func Twox128Hash(msg []byte) ([]byte, error) {
	hash := make([]byte, 0, 16)
	for seed := uint64(0); seed < 2; seed++ {
		h := xxhash.NewS64(seed)
		_, err := h.Write(msg)
		if err != nil {
			return nil, err
		}
		hash = binary.LittleEndian.AppendUint64(hash, h.Sum64())
	}
	return hash, nil
}

// Sha256 returns the SHA2-256 hash of the input data
func Sha256(in []byte) Hash {
	return Hash(sha256.Sum256(in))
}

// Sha256Concat returns the SHA2-256 hash of the concatenation of the inputs.
func Sha256Concat(parts ...[]byte) Hash {
	h := sha256.New()
	for _, part := range parts {
		_, _ = h.Write(part)
	}
	return NewHash(h.Sum(nil))
}
