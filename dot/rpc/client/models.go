// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"encoding/json"
	"fmt"

	"github.com/ChainSafe/grandpa-bridge/lib/common"
)

const jsonRPCVersion = "2.0"

type clientRequest struct {
	Version string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// serverResponse is either a response to a request, or a subscription
// notification when ID is nil.
type serverResponse struct {
	Version string              `json:"jsonrpc"`
	ID      *uint64             `json:"id"`
	Method  string              `json:"method"`
	Result  json.RawMessage     `json:"result"`
	Params  *notificationParams `json:"params"`
	Error   *responseError      `json:"error"`
}

type notificationParams struct {
	Subscription json.RawMessage `json:"subscription"`
	Result       json.RawMessage `json:"result"`
}

type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcDigest struct {
	Logs []string `json:"logs"`
}

type rpcHeader struct {
	ParentHash     common.Hash `json:"parentHash"`
	Number         string      `json:"number"`
	StateRoot      common.Hash `json:"stateRoot"`
	ExtrinsicsRoot common.Hash `json:"extrinsicsRoot"`
	Digest         rpcDigest   `json:"digest"`
}

type rpcSignedBlock struct {
	Block struct {
		Header rpcHeader `json:"header"`
	} `json:"block"`
	Justifications []rpcJustification `json:"justifications"`
}

// rpcJustification is a (consensus engine id, encoded justification) tuple.
// Nodes serialise both as byte arrays, but hex strings are accepted too.
type rpcJustification struct {
	EngineID      []byte
	Justification []byte
}

func (j *rpcJustification) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	err := json.Unmarshal(data, &tuple)
	if err != nil {
		return err
	}

	if len(tuple) != 2 {
		return fmt.Errorf("justification tuple has %d elements instead of 2", len(tuple))
	}

	j.EngineID, err = decodeJSONBytes(tuple[0])
	if err != nil {
		return fmt.Errorf("decoding engine id: %w", err)
	}

	j.Justification, err = decodeJSONBytes(tuple[1])
	if err != nil {
		return fmt.Errorf("decoding justification: %w", err)
	}
	return nil
}

// decodeJSONBytes decodes either a 0x prefixed hex string
// or an array of numbers into bytes.
func decodeJSONBytes(data json.RawMessage) ([]byte, error) {
	var s string
	err := json.Unmarshal(data, &s)
	if err == nil {
		return common.HexToBytes(s)
	}

	var numbers []int
	err = json.Unmarshal(data, &numbers)
	if err != nil {
		return nil, err
	}

	b := make([]byte, len(numbers))
	for i, n := range numbers {
		if n < 0 || n > 0xff {
			return nil, fmt.Errorf("value %d at index %d is not a byte", n, i)
		}
		b[i] = byte(n)
	}
	return b, nil
}
