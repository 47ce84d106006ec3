// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package avail

import (
	"github.com/ChainSafe/grandpa-bridge/dot/config"
	ctoml "github.com/ChainSafe/grandpa-bridge/dot/config/toml"
)

var (
	// defaultBasePath is the default data directory of the avail bridge
	defaultBasePath = "~/.grandpa-bridge/avail"
	// defaultEndpoint is the default avail node websocket endpoint
	defaultEndpoint = "wss://kate.avail.tools:443/ws"
)

// DefaultConfig returns an avail bridge configuration
func DefaultConfig() *ctoml.Config {
	cfg := config.Default()
	cfg.Global.Name = "avail"
	cfg.Global.BasePath = defaultBasePath
	cfg.Chain.Endpoint = defaultEndpoint
	return cfg
}
