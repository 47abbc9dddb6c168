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

package tstypes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type UTTimeTest struct {
	T1 *Timestamp `json:"t1"`
	T2 *Timestamp `json:"t2,omitempty"`
	T3 *Timestamp `json:"t3,omitempty"`
}

func TestTimestampJSONSerialization(t *testing.T) {
	now := Now()
	zero := ZeroTime()
	utTimeTest := &UTTimeTest{
		T1: nil,
		T2: &zero,
		T3: now,
	}
	b, err := json.Marshal(&utTimeTest)
	assert.NoError(t, err)
	assert.Equal(t, `{"t1":null,"t2":null,"t3":"`+time.Time(*now).UTC().Format(time.RFC3339Nano)+`"}`, string(b))

	var utTimeTest2 UTTimeTest
	err = json.Unmarshal(b, &utTimeTest2)
	assert.NoError(t, err)
	assert.Nil(t, utTimeTest2.T1)
	assert.True(t, utTimeTest2.T2.IsZero())
	assert.Equal(t, *now, *utTimeTest2.T3)
}

func TestTimestampJSONBadString(t *testing.T) {
	var ts Timestamp
	err := ts.UnmarshalJSON([]byte(`"not a time"`))
	assert.Regexp(t, "TS10102", err)
}

func TestTimestampDatabaseSerialization(t *testing.T) {
	now := Now()
	v, err := now.Value()
	assert.NoError(t, err)
	assert.Equal(t, time.Time(*now).UnixNano(), v)

	var ts Timestamp
	assert.NoError(t, ts.Scan(v))
	assert.Equal(t, *now, ts)

	assert.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
	assert.NoError(t, ts.Scan(int64(0)))
	assert.True(t, ts.IsZero())

	assert.NoError(t, ts.Scan(time.Time(*now)))
	assert.Equal(t, *now, ts)

	err = ts.Scan(false)
	assert.Regexp(t, "TS10128", err)

	var nilTS *Timestamp
	v, err = nilTS.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
	assert.Nil(t, nilTS.Time())
	assert.Equal(t, "", ZeroTime().String())
}

func TestJSONObject(t *testing.T) {
	data := JSONObject{
		"some": "data",
		"flag": true,
		"num":  float64(12.5),
		"nested": map[string]interface{}{
			"domain": "energy-trade",
		},
		"bad": []string{"a"},
	}
	assert.Equal(t, "data", data.GetString("some"))
	assert.Equal(t, "true", data.GetString("flag"))
	assert.Equal(t, "12.5", data.GetString("num"))
	assert.Equal(t, "", data.GetString("missing"))
	assert.Equal(t, "", data.GetString("bad"))
	assert.Equal(t, "energy-trade", data.GetObject("nested").GetString("domain"))
	assert.NotNil(t, data.GetObject("missing"))
	assert.NotNil(t, data.GetObject("some"))

	v, err := JSONObject{"a": "b"}.Value()
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"a":"b"}`), v)

	var nilObj JSONObject
	v, err = nilObj.Value()
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestJSONObjectScan(t *testing.T) {
	var jo JSONObject
	assert.NoError(t, jo.Scan(`{"a":"b"}`))
	assert.Equal(t, "b", jo.GetString("a"))

	jo = nil
	assert.NoError(t, jo.Scan([]byte(`{"c":"d"}`)))
	assert.Equal(t, "d", jo.GetString("c"))

	jo = nil
	assert.NoError(t, jo.Scan(nil))
	assert.NoError(t, jo.Scan(""))
	assert.NoError(t, jo.Scan([]byte{}))
	assert.Nil(t, jo)

	err := jo.Scan(12345)
	assert.Regexp(t, "TS10128", err)
}

func TestToJSONObject(t *testing.T) {
	jo := ToJSONObject(&LedgerRecord{
		TransactionID:      "txn-1",
		StatusBuyerDiscom:  DiscomStatusCompleted,
		StatusSellerDiscom: DiscomStatusPending,
	})
	assert.Equal(t, "txn-1", jo.GetString("transactionId"))
	assert.Equal(t, "COMPLETED", jo.GetString("statusBuyerDiscom"))
	assert.Equal(t, `{"a":1}`, JSONObject{"a": 1}.String())
}

func TestUUID(t *testing.T) {
	u := NewUUID()
	assert.Len(t, u.String(), 36)
	var nilU *UUID
	assert.Equal(t, "", nilU.String())

	b, err := u.MarshalText()
	assert.NoError(t, err)
	var u2 UUID
	assert.NoError(t, u2.UnmarshalText(b))
	assert.Equal(t, *u, u2)

	assert.Len(t, ShortID(), 8)
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("buyer")
	assert.True(t, ok)
	assert.Equal(t, RoleBuyer, r)
	r, ok = ParseRole("SELLER")
	assert.True(t, ok)
	assert.Equal(t, RoleSeller, r)
	_, ok = ParseRole("broker")
	assert.False(t, ok)
}

func TestParseAction(t *testing.T) {
	a, ok := ParseAction("on_confirm")
	assert.True(t, ok)
	assert.Equal(t, ActionConfirm, a)
	a, ok = ParseAction("select")
	assert.True(t, ok)
	assert.Equal(t, ActionSelect, a)
	assert.Equal(t, "on_select", a.Callback())
	_, ok = ParseAction("on_settle")
	assert.False(t, ok)
}

func TestAck(t *testing.T) {
	assert.True(t, NewAck().IsACK())
	nack := NewNack("30001", "provider unavailable")
	assert.False(t, nack.IsACK())
	b, err := json.Marshal(nack)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"message":{"ack":{"status":"NACK"}},"error":{"code":"30001","message":"provider unavailable"}}`, string(b))
	var nilAck *Ack
	assert.False(t, nilAck.IsACK())
}

func TestNewSettlementRecord(t *testing.T) {
	rec := NewSettlementRecord("txn-A", RoleBuyer, 10)
	assert.Equal(t, SettlementStatusPending, rec.SettlementStatus)
	assert.Equal(t, DiscomStatusPending, rec.BuyerDiscomStatus)
	assert.Equal(t, DiscomStatusPending, rec.SellerDiscomStatus)
	assert.False(t, rec.OnSettleNotified)
	assert.Nil(t, rec.SettledAt)
}

func TestOrderDomain(t *testing.T) {
	var o *Order
	assert.Equal(t, "", o.Domain())
	o = &Order{Context: JSONObject{"domain": "energy-trade"}}
	assert.Equal(t, "energy-trade", o.Domain())
}
