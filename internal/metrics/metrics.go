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
	"context"
	"time"

	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

type Manager interface {
	PendingCreated(action tstypes.ProtocolAction)
	PendingCompleted(action tstypes.ProtocolAction, outcome string, started time.Time)
	SweepCompleted(result *tstypes.PollResult, started time.Time)
	NotificationAttempted(delivered bool)
	IsMetricsEnabled() bool
}

type metricsManager struct {
	ctx            context.Context
	metricsEnabled bool
}

func NewMetricsManager(ctx context.Context) Manager {
	mm := &metricsManager{
		ctx:            ctx,
		metricsEnabled: config.GetBool(config.MetricsEnabled),
	}
	if mm.metricsEnabled {
		Registry()
	}
	return mm
}

func (mm *metricsManager) PendingCreated(action tstypes.ProtocolAction) {
	if !mm.metricsEnabled {
		return
	}
	PendingGauge.Inc()
}

func (mm *metricsManager) PendingCompleted(action tstypes.ProtocolAction, outcome string, started time.Time) {
	if !mm.metricsEnabled {
		return
	}
	PendingGauge.Dec()
	CallbackOutcomeCounter.WithLabelValues(string(action), outcome).Inc()
	if outcome == OutcomeResolved {
		CallbackHistogram.WithLabelValues(string(action)).Observe(time.Since(started).Seconds())
	}
}

func (mm *metricsManager) SweepCompleted(result *tstypes.PollResult, started time.Time) {
	if !mm.metricsEnabled || result == nil {
		return
	}
	SweepCounter.Inc()
	SweepHistogram.Observe(time.Since(started).Seconds())
	SettledCounter.Add(float64(len(result.NewlySettled)))
	SweepErrorCounter.Add(float64(len(result.Errors)))
}

func (mm *metricsManager) NotificationAttempted(delivered bool) {
	if !mm.metricsEnabled {
		return
	}
	if delivered {
		NotifyCounter.WithLabelValues("delivered").Inc()
	} else {
		NotifyCounter.WithLabelValues("failed").Inc()
	}
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}
