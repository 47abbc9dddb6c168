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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	apiNamespace = "ts_apiserver"
	apiSubsystem = "rest"
)

var registry *prometheus.Registry
var restInstrumentation *Instrumentation

// Registry lazily builds the node's registry, creating a fresh set of
// pending-callback and settlement collectors each time it is rebuilt
func Registry() *prometheus.Registry {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		registry.MustRegister(pendingCollectors()...)
		registry.MustRegister(settlementCollectors()...)
	}
	return registry
}

// GetRestServerInstrumentation returns the API router middleware, registered once per registry
func GetRestServerInstrumentation() *Instrumentation {
	if restInstrumentation == nil {
		restInstrumentation = NewCustomInstrumentation(true, apiNamespace, apiSubsystem,
			prometheus.DefBuckets, map[string]string{}, Registry())
	}
	return restInstrumentation
}

// Clear will reset the Prometheus metrics registry and instrumentations, useful for testing
func Clear() {
	registry = nil
	restInstrumentation = nil
}
