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
	"sort"

	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/rs/cors"
)

// routeMethods is the set of methods the API actually serves, so preflight
// only advertises what a browser can call
func routeMethods() []string {
	seen := map[string]bool{}
	methods := []string{}
	for _, route := range routes {
		if !seen[route.Method] {
			seen[route.Method] = true
			methods = append(methods, route.Method)
		}
	}
	sort.Strings(methods)
	return methods
}

// wrapCorsIfEnabled lets browser based operator tooling call the API from another origin.
// The API carries no cookies or auth headers, so credentials are never allowed.
func wrapCorsIfEnabled(ctx context.Context, chain http.Handler) http.Handler {
	if !config.GetBool(config.CorsEnabled) {
		return chain
	}
	corsOptions := cors.Options{
		AllowedOrigins: config.GetStringSlice(config.CorsAllowedOrigins),
		AllowedMethods: routeMethods(),
		AllowedHeaders: config.GetStringSlice(config.CorsAllowedHeaders),
		MaxAge:         config.GetInt(config.CorsMaxAge),
	}
	log.L(ctx).Debugf("CORS origins=%v methods=%v headers=%v maxAge=%d",
		corsOptions.AllowedOrigins, corsOptions.AllowedMethods, corsOptions.AllowedHeaders, corsOptions.MaxAge)
	return cors.New(corsOptions).Handler(chain)
}
