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

	"github.com/kaleido-io/tradesettle/internal/i18n"
)

var postPollingStart = &Route{
	Name:            "postPollingStart",
	Path:            "polling/start",
	Method:          http.MethodPost,
	Description:     "Starts the settlement poller",
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *APIRequest) (output interface{}, err error) {
		if err := r.Or.Settlement().Start(); err != nil {
			return nil, err
		}
		return r.Or.Settlement().Status(), nil
	},
}

var postPollingStop = &Route{
	Name:            "postPollingStop",
	Path:            "polling/stop",
	Method:          http.MethodPost,
	Description:     "Stops the settlement poller. A sweep already in flight runs to completion",
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *APIRequest) (output interface{}, err error) {
		r.Or.Settlement().Stop()
		return r.Or.Settlement().Status(), nil
	},
}

var postPollingRun = &Route{
	Name:            "postPollingRun",
	Path:            "polling/run",
	Method:          http.MethodPost,
	Description:     "Runs a single settlement sweep and returns its result",
	JSONOutputCodes: []int{http.StatusOK},
	JSONHandler: func(r *APIRequest) (output interface{}, err error) {
		result := r.Or.Settlement().PollOnce(r.Ctx)
		if result == nil {
			return nil, i18n.NewError(r.Ctx, i18n.MsgSweepInProgress)
		}
		return result, nil
	},
}
