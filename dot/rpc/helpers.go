// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"errors"
	"fmt"
	"net"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/rpc/v2"
	"github.com/jpillora/ipfilter"
)

var (
	errParseRemoteIP   = errors.New("unable to parse IP")
	errExternalRefused = errors.New("external HTTP request refused")
)

// LocalhostFilter creates a ipfilter object for localhost
func LocalhostFilter() *ipfilter.IPFilter {
	return ipfilter.New(ipfilter.Options{
		BlockByDefault: true,
		AllowedIPs:     []string{"127.0.0.1", "::1"},
	})
}

// LocalRequestOnly refuses requests which do not come from localhost
func LocalRequestOnly(r *rpc.RequestInfo, _ interface{}) error {
	ip, _, err := net.SplitHostPort(r.Request.RemoteAddr)
	if err != nil {
		return fmt.Errorf("%w: %s", errParseRemoteIP, r.Request.RemoteAddr)
	}

	if LocalhostFilter().Allowed(ip) {
		return nil
	}
	return fmt.Errorf("%w: from %s", errExternalRefused, ip)
}

func rpcValidator(external bool, validate *validator.Validate) func(r *rpc.RequestInfo, i interface{}) error {
	return func(r *rpc.RequestInfo, v interface{}) error {
		err := validate.Struct(v)
		if err != nil {
			return err
		}

		if !external {
			return LocalRequestOnly(r, v)
		}
		return nil
	}
}
