// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format is the format of the log output.
type Format uint8

const (
	// FormatConsole outputs human readable lines with coloured levels.
	FormatConsole Format = iota
	// FormatPlain outputs lines without any colour escape sequences.
	FormatPlain
)

// ErrFormatNotRecognised is returned by ParseFormat for an unknown format.
var ErrFormatNotRecognised = errors.New("format is not recognised")

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	writer  io.Writer
	level   *Level
	format  *Format
	caller  callerSettings
	context []contextKeyValues
}

// ParseFormat parses a format name, either console or plain.
func ParseFormat(s string) (format Format, err error) {
	switch strings.ToLower(s) {
	case "console":
		return FormatConsole, nil
	case "plain":
		return FormatPlain, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrFormatNotRecognised, s)
}

func (s *settings) addContext(key, value string) {
	for i := range s.context {
		if s.context[i].key == key {
			s.context[i].values = append(s.context[i].values, value)
			return
		}
	}
	s.context = append(s.context, contextKeyValues{key: key, values: []string{value}})
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values of the receiver settings
// from the other settings, where they are not set
// in the receiver settings.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.format == nil && other.format != nil {
		value := *other.format
		s.format = &value
	}

	s.caller.mergeWith(other.caller)

	newContext := make([]contextKeyValues, 0, len(other.context)+len(s.context))
	for _, kv := range other.context {
		newContext = append(newContext, contextKeyValues{
			key:    kv.key,
			values: append([]string(nil), kv.values...),
		})
	}
	for _, kv := range s.context {
		merged := false
		for i := range newContext {
			if newContext[i].key == kv.key {
				newContext[i].values = append(newContext[i].values, kv.values...)
				merged = true
				break
			}
		}
		if !merged {
			newContext = append(newContext, kv)
		}
	}
	s.context = newContext
}

// patch overrides values of the receiver settings with
// any value set in the other settings.
func (s *settings) patch(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.format != nil {
		value := *other.format
		s.format = &value
	}

	s.caller.patch(other.caller)

	for _, kv := range other.context {
		s.addContext(kv.key, "")
		for i := range s.context {
			if s.context[i].key == kv.key {
				s.context[i].values = append([]string(nil), kv.values...)
			}
		}
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stderr
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}

	if s.format == nil {
		format := FormatConsole
		s.format = &format
	}

	s.caller.setDefaults()
}
