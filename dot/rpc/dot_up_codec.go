// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

// DotUpCodec is a JSON-RPC 2.0 codec translating substrate style method
// names such as witness_getJustification into the service.Method names
// of gorilla rpc, such as witness.GetJustification.
type DotUpCodec struct {
	codec *json2.Codec
}

// NewDotUpCodec creates a new DotUpCodec.
func NewDotUpCodec() *DotUpCodec {
	return &DotUpCodec{
		codec: json2.NewCodec(),
	}
}

// NewRequest is called by the rpc server to create a new codec request.
func (c *DotUpCodec) NewRequest(r *http.Request) rpc.CodecRequest {
	return &DotUpCodecRequest{
		CodecRequest: c.codec.NewRequest(r),
	}
}

// DotUpCodecRequest decodes and encodes a single request.
type DotUpCodecRequest struct {
	rpc.CodecRequest
}

// Method returns the decoded method as service.Method, with the
// first letter of the method upper cased.
func (c *DotUpCodecRequest) Method() (string, error) {
	method, err := c.CodecRequest.Method()
	if err != nil {
		return "", err
	}

	service, name, ok := strings.Cut(method, "_")
	if !ok || service == "" || name == "" {
		return "", fmt.Errorf("rpc method %s not found", method)
	}

	first, size := utf8.DecodeRuneInString(name)
	if !unicode.IsLower(first) {
		return method, nil
	}
	return service + "." + string(unicode.ToUpper(first)) + name[size:], nil
}
