// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ChainSafe/grandpa-bridge/dot/types"
	"github.com/ChainSafe/grandpa-bridge/lib/common"
	"github.com/ChainSafe/grandpa-bridge/pkg/scale"
)

// ErrNotFound is returned when the node has no data for the block requested.
var ErrNotFound = errors.New("not found")

// BlockHash returns the hash of the canonical block with the given number.
func (c *Client) BlockHash(ctx context.Context, number uint32) (hash common.Hash, err error) {
	var result *string
	err = c.Call(ctx, "chain_getBlockHash", &result, number)
	if err != nil {
		return hash, err
	} else if result == nil {
		return hash, fmt.Errorf("%w: block hash of block %d", ErrNotFound, number)
	}

	return common.HexToHash(*result)
}

// Header returns the header of the block with the given hash.
func (c *Client) Header(ctx context.Context, hash common.Hash) (*types.Header, error) {
	var result *rpcHeader
	err := c.Call(ctx, "chain_getHeader", &result, hash.String())
	if err != nil {
		return nil, err
	} else if result == nil {
		return nil, fmt.Errorf("%w: header of block %s", ErrNotFound, hash)
	}

	return result.toHeader()
}

func (h *rpcHeader) toHeader() (*types.Header, error) {
	number, err := strconv.ParseUint(strings.TrimPrefix(h.Number, "0x"), 16, 32)
	if err != nil {
		return nil, fmt.Errorf("parsing block number %q: %w", h.Number, err)
	}

	digest := types.NewDigest()
	for i, logHex := range h.Digest.Logs {
		item, err := types.DecodeDigestItemHex(logHex)
		if err != nil {
			return nil, fmt.Errorf("decoding digest item %d: %w", i, err)
		}
		digest = append(digest, item)
	}

	return types.NewHeader(h.ParentHash, h.StateRoot, h.ExtrinsicsRoot, uint32(number), digest), nil
}

// AuthoritySetID returns the GRANDPA authority set id in the state of
// the block with the given hash.
func (c *Client) AuthoritySetID(ctx context.Context, atHash common.Hash) (setID uint64, err error) {
	key := common.BytesToHex(common.GrandpaCurrentSetIDKey())

	var result *string
	err = c.Call(ctx, "state_getStorage", &result, key, atHash.String())
	if err != nil {
		return 0, err
	} else if result == nil {
		// the storage value is not set before the first rotation
		return 0, nil
	}

	encoded, err := common.HexToBytes(*result)
	if err != nil {
		return 0, fmt.Errorf("decoding set id hex: %w", err)
	}

	err = scale.Unmarshal(encoded, &setID)
	if err != nil {
		return 0, fmt.Errorf("decoding set id: %w", err)
	}
	return setID, nil
}

// Authorities returns the GRANDPA authorities in the state
// of the block with the given number.
func (c *Client) Authorities(ctx context.Context, atNumber uint32) (types.AuthorityList, error) {
	hash, err := c.BlockHash(ctx, atNumber)
	if err != nil {
		return nil, fmt.Errorf("getting block hash: %w", err)
	}

	var result string
	err = c.Call(ctx, "state_call", &result, "GrandpaApi_grandpa_authorities", "0x", hash.String())
	if err != nil {
		return nil, err
	}

	encoded, err := common.HexToBytes(result)
	if err != nil {
		return nil, fmt.Errorf("decoding authorities hex: %w", err)
	}

	var authorities types.AuthorityList
	err = scale.Unmarshal(encoded, &authorities)
	if err != nil {
		return nil, fmt.Errorf("decoding authorities: %w", err)
	}
	return authorities, nil
}

// Justification returns the GRANDPA justification of the block with the
// given hash, or nil if the block has none.
func (c *Client) Justification(ctx context.Context, hash common.Hash) (*types.Justification, error) {
	var result *rpcSignedBlock
	err := c.Call(ctx, "chain_getBlock", &result, hash.String())
	if err != nil {
		return nil, err
	} else if result == nil {
		return nil, fmt.Errorf("%w: block %s", ErrNotFound, hash)
	}

	for _, justification := range result.Justifications {
		if types.NewConsensusEngineID(justification.EngineID) != types.GrandpaEngineID {
			continue
		}

		decoded, err := types.DecodeJustification(justification.Justification)
		if err != nil {
			return nil, fmt.Errorf("decoding justification: %w", err)
		}
		return decoded, nil
	}

	return nil, nil
}
