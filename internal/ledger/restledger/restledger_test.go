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

package restledger

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/restclient"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
	"github.com/stretchr/testify/assert"
)

var utConfPrefix = config.NewPluginConfig("ledger.rest")

func newTestLedger(t *testing.T) (*RESTLedger, func()) {
	config.Reset()
	r := &RESTLedger{}
	r.InitPrefix(utConfPrefix)
	customClient := &http.Client{}
	utConfPrefix.Set(restclient.HTTPConfigURL, "http://ledger.example.com/api")
	utConfPrefix.Set(restclient.HTTPCustomClient, customClient)
	err := r.Init(context.Background(), utConfPrefix)
	assert.NoError(t, err)
	httpmock.ActivateNonDefault(customClient)
	return r, httpmock.DeactivateAndReset
}

func TestInitMissingURL(t *testing.T) {
	config.Reset()
	r := &RESTLedger{}
	r.InitPrefix(utConfPrefix)
	err := r.Init(context.Background(), utConfPrefix)
	assert.Regexp(t, "TS10115", err)
	assert.Equal(t, "rest", r.Name())
}

func TestQueryTradeFound(t *testing.T) {
	r, done := newTestLedger(t)
	defer done()

	httpmock.RegisterResponder("GET", "http://ledger.example.com/api/trades",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "txn-A", req.URL.Query().Get("transactionId"))
			assert.Equal(t, "DISCOM-LOCAL-01", req.URL.Query().Get("discomId"))
			return httpmock.NewJsonResponse(200, map[string]interface{}{
				"records": []map[string]interface{}{
					{
						"transactionId":      "txn-other",
						"statusBuyerDiscom":  "PENDING",
						"statusSellerDiscom": "PENDING",
					},
					{
						"transactionId":      "txn-A",
						"statusBuyerDiscom":  "COMPLETED",
						"statusSellerDiscom": "COMPLETED",
						"actualDelivered":    9.5,
						"settlementCycleId":  "cycle-7",
					},
				},
			})
		})

	rec, err := r.QueryTradeByTransaction(context.Background(), "txn-A", "DISCOM-LOCAL-01")
	assert.NoError(t, err)
	assert.Equal(t, tstypes.DiscomStatusCompleted, rec.StatusBuyerDiscom)
	assert.Equal(t, tstypes.DiscomStatusCompleted, rec.StatusSellerDiscom)
	assert.Equal(t, 9.5, *rec.ActualDelivered)
	assert.Equal(t, "cycle-7", rec.SettlementCycleID)
}

func TestQueryTradeEmpty(t *testing.T) {
	r, done := newTestLedger(t)
	defer done()

	httpmock.RegisterResponder("GET", "http://ledger.example.com/api/trades",
		httpmock.NewStringResponder(200, `{"records":[]}`))

	rec, err := r.QueryTradeByTransaction(context.Background(), "txn-B", "DISCOM-LOCAL-01")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestQueryTradeNotFound(t *testing.T) {
	r, done := newTestLedger(t)
	defer done()

	httpmock.RegisterResponder("GET", "http://ledger.example.com/api/trades",
		httpmock.NewStringResponder(404, `{"error":"not found"}`))

	rec, err := r.QueryTradeByTransaction(context.Background(), "txn-B", "DISCOM-LOCAL-01")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestQueryTradeServerError(t *testing.T) {
	r, done := newTestLedger(t)
	defer done()

	httpmock.RegisterResponder("GET", "http://ledger.example.com/api/trades",
		httpmock.NewStringResponder(500, `{"error":"ledger down"}`))

	_, err := r.QueryTradeByTransaction(context.Background(), "txn-B", "DISCOM-LOCAL-01")
	assert.Regexp(t, "TS10400.*ledger down", err)
}

func TestQueryTradeTransportError(t *testing.T) {
	r, done := newTestLedger(t)
	defer done()

	httpmock.RegisterResponder("GET", "http://ledger.example.com/api/trades",
		httpmock.NewErrorResponder(fmt.Errorf("pop")))

	_, err := r.QueryTradeByTransaction(context.Background(), "txn-B", "DISCOM-LOCAL-01")
	assert.Regexp(t, "TS10400.*pop", err)
}
