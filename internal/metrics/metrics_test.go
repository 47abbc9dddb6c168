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
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestMetricsManager(t *testing.T) *metricsManager {
	config.Reset()
	Clear()
	mm := NewMetricsManager(context.Background()).(*metricsManager)
	assert.True(t, mm.IsMetricsEnabled())
	return mm
}

func TestPendingLifecycle(t *testing.T) {
	mm := newTestMetricsManager(t)
	mm.PendingCreated(tstypes.ActionConfirm)
	mm.PendingCreated(tstypes.ActionSelect)
	assert.Equal(t, float64(2), testutil.ToFloat64(PendingGauge))

	mm.PendingCompleted(tstypes.ActionConfirm, OutcomeResolved, time.Now())
	mm.PendingCompleted(tstypes.ActionSelect, OutcomeTimeout, time.Now())
	assert.Equal(t, float64(0), testutil.ToFloat64(PendingGauge))
	assert.Equal(t, float64(1), testutil.ToFloat64(CallbackOutcomeCounter.WithLabelValues("confirm", OutcomeResolved)))
	assert.Equal(t, float64(1), testutil.ToFloat64(CallbackOutcomeCounter.WithLabelValues("select", OutcomeTimeout)))
	assert.Equal(t, 1, testutil.CollectAndCount(CallbackHistogram))
}

func TestSweepCompleted(t *testing.T) {
	mm := newTestMetricsManager(t)
	mm.SweepCompleted(&tstypes.PollResult{
		NewlySettled: []string{"txn-A"},
		Errors:       []string{"txn-B: pop", "txn-C: pop"},
	}, time.Now())
	mm.SweepCompleted(nil, time.Now())
	assert.Equal(t, float64(1), testutil.ToFloat64(SweepCounter))
	assert.Equal(t, float64(1), testutil.ToFloat64(SettledCounter))
	assert.Equal(t, float64(2), testutil.ToFloat64(SweepErrorCounter))
}

func TestNotificationAttempted(t *testing.T) {
	mm := newTestMetricsManager(t)
	mm.NotificationAttempted(true)
	mm.NotificationAttempted(false)
	mm.NotificationAttempted(false)
	assert.Equal(t, float64(1), testutil.ToFloat64(NotifyCounter.WithLabelValues("delivered")))
	assert.Equal(t, float64(2), testutil.ToFloat64(NotifyCounter.WithLabelValues("failed")))
}

func TestMetricsDisabled(t *testing.T) {
	config.Reset()
	config.Set(config.MetricsEnabled, false)
	Clear()
	mm := NewMetricsManager(context.Background())
	assert.False(t, mm.IsMetricsEnabled())
	mm.PendingCreated(tstypes.ActionConfirm)
	mm.PendingCompleted(tstypes.ActionConfirm, OutcomeResolved, time.Now())
	mm.SweepCompleted(&tstypes.PollResult{}, time.Now())
	mm.NotificationAttempted(true)
}

func TestRestInstrumentation(t *testing.T) {
	config.Reset()
	Clear()
	i := GetRestServerInstrumentation()
	assert.Equal(t, i, GetRestServerInstrumentation())

	r := mux.NewRouter()
	r.Use(i.Middleware)
	r.HandleFunc("/api/v1/settlements/{txid}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	})
	r.HandleFunc("/api/v1/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	res := httptest.NewRecorder()
	r.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v1/settlements/txn-A", nil))
	assert.Equal(t, 204, res.Code)
	res = httptest.NewRecorder()
	r.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))
	assert.Equal(t, 200, res.Code)

	assert.Equal(t, float64(1), testutil.ToFloat64(i.reqTotal.WithLabelValues("204", "GET", "/api/v1/settlements/{txid}")))
	assert.Equal(t, float64(1), testutil.ToFloat64(i.reqTotal.WithLabelValues("200", "GET", "/api/v1/status")))
}

func TestRegistryRebuiltAfterClear(t *testing.T) {
	Clear()
	r1 := Registry()
	assert.Equal(t, r1, Registry())
	PendingGauge.Inc()
	gauge1 := PendingGauge

	Clear()
	r2 := Registry()
	assert.NotEqual(t, r1, r2)
	assert.False(t, gauge1 == PendingGauge)
	assert.Equal(t, float64(0), testutil.ToFloat64(PendingGauge))

	families, err := r2.Gather()
	assert.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["go_goroutines"])
	assert.True(t, names[PendingGaugeName])
	assert.True(t, names[SweepCounterName])
}
