// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package witness

//go:generate mockgen -destination=mocks_test.go -package $GOPACKAGE . Provider,SignatureVerifier,JustificationStore,AuthoritySetStore,ChainReader
