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

package apiserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
	"github.com/xeipuuv/gojsonschema"
)

var callbackSchema = gojsonschema.NewStringLoader(`{
	"type": "object",
	"required": ["context"],
	"properties": {
		"context": {
			"type": "object",
			"required": ["transaction_id", "message_id"],
			"properties": {
				"domain": {"type": "string"},
				"action": {"type": "string"},
				"transaction_id": {"type": "string", "minLength": 1},
				"message_id": {"type": "string", "minLength": 1},
				"timestamp": {"type": "string"}
			}
		},
		"message": {"type": ["object", "null"]},
		"error": {
			"type": ["object", "null"],
			"properties": {
				"code": {"type": "string"},
				"message": {"type": "string"}
			}
		}
	}
}`)

var callbackValidator = func() *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(callbackSchema)
	if err != nil {
		panic(err)
	}
	return schema
}()

var postCallback = &Route{
	Name:            "postCallback",
	Path:            "callbacks/{action}",
	Method:          http.MethodPost,
	Description:     "Receives the asynchronous callback from the counterparty gateway, completing any waiting action",
	JSONInputValue:  func() interface{} { return &json.RawMessage{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *APIRequest) (output interface{}, err error) {
		action, ok := tstypes.ParseAction(r.PP["action"])
		if !ok {
			return nil, i18n.NewError(r.Ctx, i18n.MsgUnknownAction, r.PP["action"])
		}
		envelope, err := parseCallback(r.Ctx, action, *r.Input.(*json.RawMessage))
		if err != nil {
			return nil, err
		}
		log.L(r.Ctx).Infof("Received %s for transaction '%s' message '%s'", action.Callback(), envelope.Context.TransactionID, envelope.Context.MessageID)
		r.Or.Bridge().Resolve(r.Ctx, envelope.Context.TransactionID, envelope)
		return tstypes.NewAck(), nil
	},
}

func parseCallback(ctx context.Context, action tstypes.ProtocolAction, body json.RawMessage) (*tstypes.CallbackEnvelope, error) {
	res, err := callbackValidator.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgCallbackInvalid, err)
	}
	if !res.Valid() {
		errStrings := make([]string, len(res.Errors()))
		for i, e := range res.Errors() {
			errStrings[i] = e.String()
		}
		return nil, i18n.NewError(ctx, i18n.MsgCallbackInvalid, strings.Join(errStrings, ","))
	}

	var envelope tstypes.CallbackEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgCallbackInvalid, err)
	}
	if envelope.Context.Action != "" {
		if contextAction, ok := tstypes.ParseAction(envelope.Context.Action); !ok || contextAction != action {
			return nil, i18n.NewError(ctx, i18n.MsgCallbackInvalid, "context action '"+envelope.Context.Action+"' does not match "+action.Callback())
		}
	}
	envelope.Context.Action = action.Callback()
	return &envelope, nil
}
