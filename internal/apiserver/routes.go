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
	"net/http"

	"github.com/kaleido-io/tradesettle/internal/orchestrator"
)

// Route defines each API route
type Route struct {
	// Name is the operation name
	Name string
	// Path is a Gorilla mux path spec, relative to /api/v1
	Path string
	// Method is the HTTP method
	Method string
	// Description is a short human readable summary
	Description string
	// JSONInputValue returns the pointer the body is decoded into. Nil for routes without a body
	JSONInputValue func() interface{}
	// JSONOutputCodes is the success status codes, the first of which is the default
	JSONOutputCodes []int
	// JSONHandler is the handler
	JSONHandler func(r *APIRequest) (output interface{}, err error)
}

// APIRequest is the input to a route handler
type APIRequest struct {
	Ctx           context.Context
	Or            orchestrator.Orchestrator
	Req           *http.Request
	PP            map[string]string
	Input         interface{}
	SuccessStatus int
}

var routes = []*Route{
	getStatus,
	postAction,
	postCallback,
	postSettlement,
	getSettlements,
	postSettlementRefresh,
	postPollingStart,
	postPollingStop,
	postPollingRun,
}
