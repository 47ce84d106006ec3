// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"os"
	"path/filepath"
	"testing"

	ctoml "github.com/ChainSafe/grandpa-bridge/dot/config/toml"
	"github.com/ChainSafe/grandpa-bridge/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, content string) (path string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
	return path
}

func Test_Load(t *testing.T) {
	t.Parallel()

	const content = `
[global]
log = "debug"

[chain]
endpoint = "wss://node.example.com:443/ws"

[indexer]
save-interval = 30
strict-targets = false

[rpc]
enabled = true
`
	path := writeTestFile(t, content)

	cfg, err := Load(path, Default())
	require.NoError(t, err)

	expected := Default()
	expected.Global.LogLvl = "debug"
	expected.Chain.Endpoint = "wss://node.example.com:443/ws"
	expected.Indexer.SaveInterval = 30
	expected.Indexer.StrictTargets = false
	expected.RPC.Enabled = true
	assert.Equal(t, expected, cfg)
}

func Test_Load_errors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), Default())
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeTestFile(t, "[chain\nendpoint = 1")
	_, err = Load(path, Default())
	assert.ErrorContains(t, err, "decoding toml configuration")
}

func Test_Validate(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		modify     func(cfg *ctoml.Config)
		failingTag string
	}{
		"default": {
			modify: func(*ctoml.Config) {},
		},
		"missing base path": {
			modify:     func(cfg *ctoml.Config) { cfg.Global.BasePath = "" },
			failingTag: "required",
		},
		"unknown log level": {
			modify:     func(cfg *ctoml.Config) { cfg.Log.IndexerLvl = "verbose" },
			failingTag: "oneof",
		},
		"unknown log format": {
			modify:     func(cfg *ctoml.Config) { cfg.Global.LogFormat = "json" },
			failingTag: "oneof",
		},
		"bad metrics address": {
			modify:     func(cfg *ctoml.Config) { cfg.Global.MetricsAddress = "localhost" },
			failingTag: "hostname_port",
		},
		"missing chain endpoint": {
			modify:     func(cfg *ctoml.Config) { cfg.Chain.Endpoint = "" },
			failingTag: "required",
		},
		"zero save interval": {
			modify:     func(cfg *ctoml.Config) { cfg.Indexer.SaveInterval = 0 },
			failingTag: "gt",
		},
		"negative max authorities": {
			modify:     func(cfg *ctoml.Config) { cfg.Witness.MaxAuthorities = -1 },
			failingTag: "gte",
		},
		"rpc port out of range": {
			modify:     func(cfg *ctoml.Config) { cfg.RPC.Port = 70000 },
			failingTag: "lte",
		},
		"unknown rpc module": {
			modify:     func(cfg *ctoml.Config) { cfg.RPC.Modules = []string{"witness", "author"} },
			failingTag: "oneof",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			testCase.modify(cfg)

			err := Validate(cfg)
			if testCase.failingTag == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			require.Len(t, validationErrors, 1)
			assert.Equal(t, testCase.failingTag, validationErrors[0].Tag())
		})
	}
}

func Test_Export(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Witness.Endpoint = "http://localhost:8545"
	cfg.Witness.MaxAuthorities = 300
	cfg.Log.RPCLvl = "trace"

	path := filepath.Join(t.TempDir(), "exported.toml")
	err := Export(cfg, path)
	require.NoError(t, err)

	loaded, err := Load(path, &ctoml.Config{})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func Test_ExpandDir(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path, err := ExpandDir("~/.grandpa-bridge/dev")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".grandpa-bridge", "dev"), path)

	path, err = ExpandDir("/tmp/bridge/../bridge")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bridge", path)
}

func Test_LogLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		global string
		pkg    string
		level  log.Level
		errMsg string
	}{
		"package level": {
			global: "info",
			pkg:    "trace",
			level:  log.Trace,
		},
		"global fallback": {
			global: "warn",
			level:  log.Warn,
		},
		"default": {
			level: log.Info,
		},
		"short name": {
			pkg:   "eror",
			level: log.Error,
		},
		"unknown": {
			pkg:    "verbose",
			errMsg: "level is not recognised: verbose",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := LogLevel(testCase.global, testCase.pkg)
			if testCase.errMsg != "" {
				assert.EqualError(t, err, testCase.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.level, level)
		})
	}
}
