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

var SweepCounter prometheus.Counter
var SweepHistogram prometheus.Histogram
var SettledCounter prometheus.Counter
var SweepErrorCounter prometheus.Counter
var NotifyCounter *prometheus.CounterVec

// SweepCounterName is the prometheus metric for tracking the total number of reconciliation sweeps
var SweepCounterName = "ts_settlement_sweeps_total"

// SweepHistogramName is the prometheus metric for tracking sweep duration
var SweepHistogramName = "ts_settlement_sweep_seconds"

// SettledCounterName is the prometheus metric for tracking settlements that reached SETTLED
var SettledCounterName = "ts_settlement_settled_total"

// SweepErrorCounterName is the prometheus metric for tracking records that failed to reconcile
var SweepErrorCounterName = "ts_settlement_sweep_errors_total"

// NotifyCounterName is the prometheus metric for tracking on_settle deliveries, by result
var NotifyCounterName = "ts_settlement_notify_total"

func settlementCollectors() []prometheus.Collector {
	SweepCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: SweepCounterName,
		Help: "Number of settlement reconciliation sweeps",
	})
	SweepHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name: SweepHistogramName,
		Help: "Histogram of settlement sweeps, bucketed by duration",
	})
	SettledCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: SettledCounterName,
		Help: "Number of settlements that transitioned to SETTLED",
	})
	SweepErrorCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: SweepErrorCounterName,
		Help: "Number of settlement records that failed to reconcile during a sweep",
	})
	NotifyCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: NotifyCounterName,
		Help: "Number of on_settle notification attempts, by result",
	}, []string{"result"})
	return []prometheus.Collector{SweepCounter, SweepHistogram, SettledCounter, SweepErrorCounter, NotifyCounter}
}
