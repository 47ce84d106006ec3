// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import "fmt"

// StorageValueKey returns the storage key of a plain storage value,
// which is twox128(pallet) ++ twox128(item).
func StorageValueKey(pallet, item string) ([]byte, error) {
	palletHash, err := Twox128Hash([]byte(pallet))
	if err != nil {
		return nil, fmt.Errorf("hashing pallet %s: %w", pallet, err)
	}

	itemHash, err := Twox128Hash([]byte(item))
	if err != nil {
		return nil, fmt.Errorf("hashing storage item %s: %w", item, err)
	}

	return append(palletHash, itemHash...), nil
}

// GrandpaCurrentSetIDKey returns the storage key of Grandpa.CurrentSetId.
func GrandpaCurrentSetIDKey() []byte {
	key, err := StorageValueKey("Grandpa", "CurrentSetId")
	if err != nil {
		panic(err)
	}
	return key
}
