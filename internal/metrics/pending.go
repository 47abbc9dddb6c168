// Copyright © 2022 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var PendingGauge prometheus.Gauge
var CallbackHistogram *prometheus.HistogramVec
var CallbackOutcomeCounter *prometheus.CounterVec

// PendingGaugeName is the prometheus metric for tracking the number of transactions awaiting a callback
var PendingGaugeName = "ts_pending_transactions"

// CallbackHistogramName is the prometheus metric for tracking how long callbacks take to arrive
var CallbackHistogramName = "ts_callback_latency_seconds"

// CallbackOutcomeCounterName is the prometheus metric counting pending transactions by how they completed
var CallbackOutcomeCounterName = "ts_callback_outcome_total"

const (
	OutcomeResolved  = "resolved"
	OutcomeTimeout   = "timeout"
	OutcomeCancelled = "cancelled"
)

func pendingCollectors() []prometheus.Collector {
	PendingGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: PendingGaugeName,
		Help: "Number of transactions awaiting a protocol callback",
	})
	CallbackHistogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: CallbackHistogramName,
		Help: "Histogram of protocol callback latency, bucketed by time to resolution",
	}, []string{"action"})
	CallbackOutcomeCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: CallbackOutcomeCounterName,
		Help: "Number of pending transactions completed, by action and outcome",
	}, []string{"action", "outcome"})
	return []prometheus.Collector{PendingGauge, CallbackHistogram, CallbackOutcomeCounter}
}
