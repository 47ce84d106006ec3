// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option modifies the settings of a logger.
// Settings not set are inherited from the parent logger,
// and otherwise take their default value.
type Option func(s *settings)

// SetLevel sets the minimum level logged, Info by default.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetCallerFile enables or disables logging the caller file name.
func SetCallerFile(enabled bool) Option {
	return func(s *settings) { s.caller.setField(callerFile, enabled) }
}

// SetCallerLine enables or disables logging the caller line number.
func SetCallerLine(enabled bool) Option {
	return func(s *settings) { s.caller.setField(callerLine, enabled) }
}

// SetCallerFunc enables or disables logging the caller function name.
func SetCallerFunc(enabled bool) Option {
	return func(s *settings) { s.caller.setField(callerFunc, enabled) }
}

// SetFormat sets the output format, FormatConsole by default.
func SetFormat(format Format) Option {
	return func(s *settings) {
		s.format = &format
	}
}

// SetWriter sets the output writer. It defaults to os.Stderr so
// that os.Stdout is left to command outputs.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext appends a value to the context key given, adding
// the key after the existing keys if it is new.
func AddContext(key, value string) Option {
	return func(s *settings) {
		s.addContext(key, value)
	}
}
