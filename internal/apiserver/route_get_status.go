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

var getStatus = &Route{
	Name:            "getStatus",
	Path:            "status",
	Method:          http.MethodGet,
	Description:     "Gets the pending transaction count and the settlement polling status",
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *APIRequest) (output interface{}, err error) {
		return r.Or.GetStatus(r.Ctx), nil
	},
}
