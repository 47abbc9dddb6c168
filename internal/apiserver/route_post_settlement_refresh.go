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
)

var postSettlementRefresh = &Route{
	Name:            "postSettlementRefresh",
	Path:            "settlements/{txid}/refresh",
	Method:          http.MethodPost,
	Description:     "Reconciles a transaction against the ledger immediately, rather than waiting for the next sweep",
	JSONOutputCodes: []int{http.StatusOK, http.StatusNoContent},
	JSONHandler: func(r *APIRequest) (output interface{}, err error) {
		record, err := r.Or.Settlement().RefreshSettlement(r.Ctx, r.PP["txid"])
		if err == nil && record == nil {
			// The ledger has nothing for this trade yet
			r.SuccessStatus = http.StatusNoContent
			return nil, nil
		}
		return record, err
	},
}
