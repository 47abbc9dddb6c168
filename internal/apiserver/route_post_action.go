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
	"net/http"

	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

var postAction = &Route{
	Name:            "postAction",
	Path:            "actions/{action}",
	Method:          http.MethodPost,
	Description:     "Sends an action to the counterparty gateway, and waits for its callback",
	JSONInputValue:  func() interface{} { return &tstypes.ActionRequest{} },
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *APIRequest) (output interface{}, err error) {
		input := r.Input.(*tstypes.ActionRequest)
		callback, err := r.Or.Gateway().SendAction(r.Ctx, tstypes.ProtocolAction(r.PP["action"]), input.TransactionID, input.Message)
		return callback, err
	},
}
