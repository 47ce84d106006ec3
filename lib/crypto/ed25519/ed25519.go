// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package ed25519

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/lib/common"

	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"
)

const (
	// PublicKeyLength is the fixed Public Key Length
	PublicKeyLength int = 32
	// SeedLength is the length of a seed
	SeedLength int = 32
	// SignatureLength is the length of a signature
	SignatureLength int = 64
)

var (
	// ErrInvalidPublicKeyLength is returned when decoding a public key of the wrong size.
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
	// ErrInvalidSignatureLength is returned when decoding a signature of the wrong size.
	ErrInvalidSignatureLength = errors.New("invalid signature length")
	// ErrInvalidSeedLength is returned when a keypair seed is not 32 bytes.
	ErrInvalidSeedLength = errors.New("invalid seed length")
)

// verifyOptions applies the ZIP-215 validation rules, which
// are the rules of the ed25519-zebra verifier used by the chain.
var verifyOptions = &ed25519.Options{
	Verify: ed25519.VerifyOptionsZIP_215,
}

// PublicKeyBytes is an encoded ed25519 public key
type PublicKeyBytes [PublicKeyLength]byte

// SignatureBytes is an encoded ed25519 signature
type SignatureBytes [SignatureLength]byte

// DummySignature fills unsigned slots of fixed arity records.
// Its scalar half is not canonical so it never verifies.
var DummySignature = func() (sig SignatureBytes) {
	for i := range sig {
		sig[i] = 0xff
	}
	return sig
}()

// NewPublicKeyBytes copies b into a PublicKeyBytes.
func NewPublicKeyBytes(b []byte) (pub PublicKeyBytes, err error) {
	if len(b) != PublicKeyLength {
		return pub, fmt.Errorf("%w: %d", ErrInvalidPublicKeyLength, len(b))
	}
	copy(pub[:], b)
	return pub, nil
}

// NewSignatureBytes copies b into a SignatureBytes.
func NewSignatureBytes(b []byte) (sig SignatureBytes, err error) {
	if len(b) != SignatureLength {
		return sig, fmt.Errorf("%w: %d", ErrInvalidSignatureLength, len(b))
	}
	copy(sig[:], b)
	return sig, nil
}

// String returns the 0x prefixed hex encoding of the key.
func (p PublicKeyBytes) String() string {
	return common.BytesToHex(p[:])
}

// MarshalJSON encodes the key as a hex string.
func (p PublicKeyBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a hex string key.
func (p *PublicKeyBytes) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data)
	if err != nil {
		return err
	}
	*p, err = NewPublicKeyBytes(b)
	return err
}

// String returns the 0x prefixed hex encoding of the signature.
func (s SignatureBytes) String() string {
	return common.BytesToHex(s[:])
}

// MarshalJSON encodes the signature as a hex string.
func (s SignatureBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a hex string signature.
func (s *SignatureBytes) UnmarshalJSON(data []byte) error {
	b, err := unmarshalHex(data)
	if err != nil {
		return err
	}
	*s, err = NewSignatureBytes(b)
	return err
}

func unmarshalHex(data []byte) ([]byte, error) {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return nil, err
	}
	return common.HexToBytes(s)
}

// Verify checks sig is a valid signature of msg by pub.
// Undecodable points and non-canonical scalars are reported as invalid.
func Verify(pub PublicKeyBytes, msg []byte, sig SignatureBytes) bool {
	return ed25519.VerifyWithOptions(pub[:], msg, sig[:], verifyOptions)
}

// VerifySignature verifies a signature given raw public key and signature bytes.
func VerifySignature(publicKey, signature, message []byte) (bool, error) {
	pub, err := NewPublicKeyBytes(publicKey)
	if err != nil {
		return false, err
	}

	sig, err := NewSignatureBytes(signature)
	if err != nil {
		return false, err
	}

	return Verify(pub, message, sig), nil
}

// BatchEntry is one signature to check with VerifyBatch.
type BatchEntry struct {
	PublicKey PublicKeyBytes
	Message   []byte
	Signature SignatureBytes
}

// VerifyBatch checks all the entries together and returns the
// validity of each entry, in the order given.
func VerifyBatch(entries []BatchEntry) (valid []bool) {
	if len(entries) == 0 {
		return nil
	}

	verifier := ed25519.NewBatchVerifier()
	for i := range entries {
		verifier.AddWithOptions(entries[i].PublicKey[:], entries[i].Message,
			entries[i].Signature[:], verifyOptions)
	}

	_, valid = verifier.Verify(rand.Reader)
	return valid
}

// Keypair is an ed25519 public and private key pair.
type Keypair struct {
	public  PublicKeyBytes
	private ed25519.PrivateKey
}

// GenerateKeypair returns a new random keypair.
func GenerateKeypair() (*Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	kp := &Keypair{private: priv}
	copy(kp.public[:], pub)
	return kp, nil
}

// NewKeypairFromSeed returns the keypair derived from a 32 bytes seed.
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSeedLength, len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)
	kp := &Keypair{private: priv}
	copy(kp.public[:], priv[SeedLength:])
	return kp, nil
}

// Public returns the public key of the keypair.
func (kp *Keypair) Public() PublicKeyBytes {
	return kp.public
}

// Sign signs msg with the private key.
func (kp *Keypair) Sign(msg []byte) (sig SignatureBytes) {
	copy(sig[:], ed25519.Sign(kp.private, msg))
	return sig
}
