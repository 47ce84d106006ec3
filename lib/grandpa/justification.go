// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package grandpa

import (
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto"
	"github.com/ChainSafe/grandpa-bridge/lib/crypto/ed25519"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "grandpa"))

// SignatureVerifier verifies a batch of signatures and returns the
// validity of each one in the order given.
type SignatureVerifier interface {
	VerifyAll(signatures []crypto.SignatureInfo) (valid []bool)
}

// Verifier checks GRANDPA justifications against authority sets.
type Verifier struct {
	signatureVerifier SignatureVerifier
	strictTargets     bool
}

// VerifierOption configures a Verifier.
type VerifierOption func(v *Verifier)

// WithStrictTargets sets whether every precommit must target the commit
// target. It is enabled by default.
func WithStrictTargets(strict bool) VerifierOption {
	return func(v *Verifier) {
		v.strictTargets = strict
	}
}

// WithSignatureVerifier sets the signature verifier used.
func WithSignatureVerifier(signatureVerifier SignatureVerifier) VerifierOption {
	return func(v *Verifier) {
		v.signatureVerifier = signatureVerifier
	}
}

// NewVerifier creates a justification verifier.
func NewVerifier(options ...VerifierOption) *Verifier {
	v := &Verifier{
		strictTargets: true,
	}
	for _, option := range options {
		option(v)
	}

	if v.signatureVerifier == nil {
		v.signatureVerifier = crypto.NewSignatureVerifier(logger, 0)
	}
	return v
}

// Verify checks the justification was signed by at least two thirds of the
// authority set, and returns the fixed arity record of who signed.
// Invalid signatures are discarded, and only the last valid signature of a
// signer is kept.
func (v *Verifier) Verify(justification *types.Justification, setID uint64,
	set *types.AuthoritySet) (*types.VerifiedJustificationRecord, error) {
	if justification == nil || len(justification.Commit.Precommits) == 0 {
		return nil, fmt.Errorf("%w: no precommits", ErrMalformedEvidence)
	}

	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("%w: empty authority set", ErrMalformedEvidence)
	}

	if set.ID != setID {
		return nil, fmt.Errorf("%w: authority set id %d instead of %d",
			ErrMalformedEvidence, set.ID, setID)
	}

	commit := justification.Commit
	first := commit.Precommits[0].Precommit
	if v.strictTargets {
		err := checkTargets(commit)
		if err != nil {
			return nil, err
		}
	}

	message := types.NewPrecommitMessage(first, justification.Round, setID)

	signatures := make([]crypto.SignatureInfo, len(commit.Precommits))
	for i, precommit := range commit.Precommits {
		signatures[i] = crypto.SignatureInfo{
			PubKey: precommit.Signer,
			Sign:   precommit.Signature,
			Msg:    message,
		}
	}
	valid := v.signatureVerifier.VerifyAll(signatures)
	if len(valid) != len(signatures) {
		return nil, fmt.Errorf("signature verifier returned %d results for %d signatures",
			len(valid), len(signatures))
	}

	signerToSignature := make(map[ed25519.PublicKeyBytes]ed25519.SignatureBytes, len(signatures))
	for i, signature := range signatures {
		if !valid[i] {
			logger.Debugf("discarding invalid signature of %s for block %d",
				signature.PubKey, first.TargetNumber)
			continue
		}
		signerToSignature[signature.PubKey] = signature.Sign
	}

	numAuthorities := set.Len()
	record := &types.VerifiedJustificationRecord{
		BlockNumber:     first.TargetNumber,
		SignedMessage:   message,
		Pubkeys:         make([]ed25519.PublicKeyBytes, numAuthorities),
		Signatures:      make([]ed25519.SignatureBytes, numAuthorities),
		NumAuthorities:  uint64(numAuthorities),
		ValidatorSigned: make([]bool, numAuthorities),
	}

	counted := make(map[ed25519.PublicKeyBytes]struct{}, numAuthorities)
	for i, authority := range set.Authorities {
		record.Pubkeys[i] = authority.Key
		signature, signed := signerToSignature[authority.Key]
		if !signed {
			record.Signatures[i] = ed25519.DummySignature
			continue
		}
		record.Signatures[i] = signature
		record.ValidatorSigned[i] = true
		counted[authority.Key] = struct{}{}
	}

	if !QuorumReached(len(counted), numAuthorities) {
		return nil, fmt.Errorf("%w: %d signers out of %d authorities for block %d",
			ErrQuorumNotMet, len(counted), numAuthorities, first.TargetNumber)
	}

	return record, nil
}

// QuorumReached returns true if signers is at least two thirds of authorities.
func QuorumReached(signers, authorities int) bool {
	return 3*uint64(signers) >= 2*uint64(authorities)
}

func checkTargets(commit types.Commit) error {
	first := commit.Precommits[0].Precommit
	if first.TargetHash != commit.TargetHash || first.TargetNumber != commit.TargetNumber {
		return fmt.Errorf("%w: first precommit targets %s instead of commit target hash=%s number=%d",
			ErrMalformedEvidence, first, commit.TargetHash, commit.TargetNumber)
	}

	for i, precommit := range commit.Precommits[1:] {
		if precommit.Precommit != first {
			return fmt.Errorf("%w: precommit %d targets %s instead of %s",
				ErrMalformedEvidence, i+1, precommit.Precommit, first)
		}
	}
	return nil
}
