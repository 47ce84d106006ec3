// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package indexer

//go:generate mockgen -destination=mocks_test.go -package $GOPACKAGE . AuthoritySetStore,ChainReader,JustificationSource,JustificationStore,Verifier
