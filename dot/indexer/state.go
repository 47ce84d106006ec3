// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package indexer

import "fmt"

// State is the state of the indexer service.
type State uint32

const (
	// Idle is the state between two events, and before start.
	Idle State = iota
	// AwaitingEvent is the state while waiting on the justification source.
	AwaitingEvent
	// Processing is the state while an event is processed.
	Processing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingEvent:
		return "awaiting event"
	case Processing:
		return "processing"
	default:
		return fmt.Sprintf("unknown state %d", uint32(s))
	}
}
