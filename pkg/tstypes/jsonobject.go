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
	"strconv"

	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
)

// JSONObject is an opaque JSON document, such as a protocol message body or a ledger snapshot
type JSONObject map[string]interface{}

// Scan implements sql.Scanner
func (jd *JSONObject) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		if src == "" {
			return nil
		}
		return json.Unmarshal([]byte(src), jd)
	case []byte:
		if len(src) == 0 {
			return nil
		}
		return json.Unmarshal(src, jd)
	default:
		return i18n.NewError(context.Background(), i18n.MsgDBReadErr, "json")
	}
}

// Value implements sql.Valuer
func (jd JSONObject) Value() (driver.Value, error) {
	if jd == nil {
		return nil, nil
	}
	return json.Marshal(&jd)
}

func (jd JSONObject) GetString(key string) string {
	vInterface := jd[key]
	switch vt := vInterface.(type) {
	case string:
		return vt
	case bool:
		return strconv.FormatBool(vt)
	case float64:
		return strconv.FormatFloat(vt, 'f', -1, 64)
	case nil:
		return ""
	default:
		log.L(context.Background()).Errorf("Invalid string value '%+v' for key '%s'", vInterface, key)
		return ""
	}
}

func (jd JSONObject) GetObject(key string) JSONObject {
	vInterface, ok := jd[key]
	if ok && vInterface != nil {
		switch vMap := vInterface.(type) {
		case map[string]interface{}:
			return JSONObject(vMap)
		case JSONObject:
			return vMap
		default:
			log.L(context.Background()).Errorf("Invalid object value '%+v' for key '%s'", vInterface, key)
		}
	}
	return JSONObject{} // Ensures a non-nil return
}

func (jd JSONObject) String() string {
	b, _ := json.Marshal(&jd)
	return string(b)
}

// ToJSONObject round-trips any serializable value into a JSONObject
func ToJSONObject(v interface{}) JSONObject {
	var jo JSONObject
	b, err := json.Marshal(v)
	if err == nil {
		_ = json.Unmarshal(b, &jo)
	}
	return jo
}
