// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package indexer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event outcomes, used as the outcome label of the events counter.
const (
	outcomeStored         = "stored"
	outcomeNotDue         = "not_due"
	outcomeDuplicate      = "duplicate"
	outcomeHeaderMismatch = "header_mismatch"
	outcomeQuorumNotMet   = "quorum_not_met"
	outcomeMalformed      = "malformed"
	outcomeUpstreamError  = "upstream_error"
	outcomeSourceError    = "source_error"
	outcomeFailed         = "failed"
)

var eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "bridge_indexer",
	Name:      "events_total",
	Help:      "number of justification events by processing outcome",
}, []string{"outcome"})
