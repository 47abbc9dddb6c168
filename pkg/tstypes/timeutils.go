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
	"context"
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/kaleido-io/tradesettle/internal/i18n"
)

// Timestamp is serialized to JSON on the API in RFC3339 nanosecond UTC time,
// and persisted as a nanosecond resolution timestamp in the database.
// A nil or zero Timestamp is serialized as JSON null.
type Timestamp time.Time

func Now() *Timestamp {
	t := Timestamp(time.Now().UTC())
	return &t
}

func ZeroTime() Timestamp {
	return Timestamp(time.Time{}.UTC())
}

func UnixTime(unixNano int64) *Timestamp {
	t := Timestamp(time.Unix(0, unixNano).UTC())
	return &t
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || time.Time(*t).IsZero() {
		return json.Marshal(nil)
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timeString string
	if err := json.Unmarshal(b, &timeString); err != nil || timeString == "" {
		*t = ZeroTime()
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, timeString)
	if err != nil {
		return i18n.WrapError(context.Background(), err, i18n.MsgJSONDecodeFailed)
	}
	*t = Timestamp(parsed.UTC())
	return nil
}

// Scan implements sql.Scanner
func (t *Timestamp) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*t = ZeroTime()
		return nil
	case int64:
		if src == 0 {
			*t = ZeroTime()
			return nil
		}
		*t = *UnixTime(src)
		return nil
	case time.Time:
		*t = Timestamp(src.UTC())
		return nil
	default:
		return i18n.NewError(context.Background(), i18n.MsgDBReadErr, "timestamp")
	}
}

// Value implements sql.Valuer. Unset times are stored as NULL.
func (t *Timestamp) Value() (driver.Value, error) {
	if t == nil || time.Time(*t).IsZero() {
		return nil, nil
	}
	return time.Time(*t).UnixNano(), nil
}

func (t *Timestamp) IsZero() bool {
	return t == nil || time.Time(*t).IsZero()
}

func (t *Timestamp) Time() *time.Time {
	if t == nil {
		return nil
	}
	tm := time.Time(*t)
	return &tm
}

func (t Timestamp) String() string {
	if time.Time(t).IsZero() {
		return ""
	}
	return time.Time(t).UTC().Format(time.RFC3339Nano)
}
