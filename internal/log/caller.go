// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// callerField is a bit flag for a caller detail shown in log lines.
type callerField uint8

const (
	callerFile callerField = 1 << iota
	callerLine
	callerFunc

	callerAll = callerFile | callerLine | callerFunc
)

// callerSettings holds which caller fields are enabled, and which
// fields were explicitly set so that unset fields can be inherited.
type callerSettings struct {
	enabled callerField
	set     callerField
}

func (c *callerSettings) setField(field callerField, enabled bool) {
	c.set |= field
	if enabled {
		c.enabled |= field
	} else {
		c.enabled &^= field
	}
}

// mergeWith takes the fields of other not set in the receiver.
func (c *callerSettings) mergeWith(other callerSettings) {
	inherited := other.set &^ c.set
	c.enabled |= other.enabled & inherited
	c.set |= inherited
}

// patch takes the fields set in other.
func (c *callerSettings) patch(other callerSettings) {
	c.enabled = (c.enabled &^ other.set) | (other.enabled & other.set)
	c.set |= other.set
}

// setDefaults disables all the fields not set.
func (c *callerSettings) setDefaults() {
	c.enabled &= c.set
	c.set = callerAll
}

func getCallerString(settings callerSettings) string {
	if settings.enabled == 0 {
		return ""
	}

	// log -> Debugf -> caller
	const depth = 3
	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return "error"
	}

	fields := make([]string, 0, 3)
	if settings.enabled&callerFile != 0 {
		fields = append(fields, filepath.Base(file))
	}

	if settings.enabled&callerLine != 0 {
		fields = append(fields, "L"+strconv.Itoa(line))
	}

	if settings.enabled&callerFunc != 0 {
		if details := runtime.FuncForPC(pc); details != nil {
			fields = append(fields, strings.TrimLeft(filepath.Ext(details.Name()), "."))
		}
	}

	return strings.Join(fields, ":")
}
