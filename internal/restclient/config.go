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

package restclient

import "github.com/kaleido-io/tradesettle/internal/config"

const (
	defaultRequestTimeout   = "30s"
	defaultRetryEnabled     = false
	defaultRetryCount       = 5
	defaultRetryInitDelay   = "250ms"
	defaultRetryMaxDelay    = "30s"
	defaultExpectContinue   = false
	defaultIdleConnsPerHost = 10
)

const (
	// HTTPConfigURL is the base URL requests are sent to
	HTTPConfigURL = "url"
	// HTTPConfigProxyURL routes requests through an HTTP proxy
	HTTPConfigProxyURL = "proxy.url"
	// HTTPConfigHeaders are static headers added to every request
	HTTPConfigHeaders = "headers"
	// HTTPConfigAuthUsername basic auth username
	HTTPConfigAuthUsername = "auth.username"
	// HTTPConfigAuthPassword basic auth password
	HTTPConfigAuthPassword = "auth.password"
	// HTTPConfigRequestTimeout bounds each request, including all retries
	HTTPConfigRequestTimeout = "requestTimeout"
	// HTTPConfigRetryEnabled enables retry on non-2xx responses
	HTTPConfigRetryEnabled = "retry.enabled"
	// HTTPConfigRetryCount is the maximum number of retries
	HTTPConfigRetryCount = "retry.count"
	// HTTPConfigRetryInitDelay is the first backoff delay
	HTTPConfigRetryInitDelay = "retry.initWaitTime"
	// HTTPConfigRetryMaxDelay caps the backoff delay
	HTTPConfigRetryMaxDelay = "retry.maxWaitTime"
	// HTTPExpectContinue sends "Expect: 100-continue" on requests with a body
	HTTPExpectContinue = "expectContinue"
	// HTTPMaxIdleConnsPerHost sizes the keep-alive pool
	HTTPMaxIdleConnsPerHost = "maxIdleConnsPerHost"

	// HTTPCustomClient - unit test only - allows injection of a custom HTTPClient to resty
	HTTPCustomClient = "customClient"
)

// InitPrefix registers the REST client configuration under a plugin prefix
func InitPrefix(prefix config.Prefix) {
	prefix.AddKnownKey(HTTPConfigURL)
	prefix.AddKnownKey(HTTPConfigProxyURL)
	prefix.AddKnownKey(HTTPConfigHeaders)
	prefix.AddKnownKey(HTTPConfigAuthUsername)
	prefix.AddKnownKey(HTTPConfigAuthPassword)
	prefix.AddKnownKey(HTTPConfigRequestTimeout, defaultRequestTimeout)
	prefix.AddKnownKey(HTTPConfigRetryEnabled, defaultRetryEnabled)
	prefix.AddKnownKey(HTTPConfigRetryCount, defaultRetryCount)
	prefix.AddKnownKey(HTTPConfigRetryInitDelay, defaultRetryInitDelay)
	prefix.AddKnownKey(HTTPConfigRetryMaxDelay, defaultRetryMaxDelay)
	prefix.AddKnownKey(HTTPExpectContinue, defaultExpectContinue)
	prefix.AddKnownKey(HTTPMaxIdleConnsPerHost, defaultIdleConnsPerHost)

	prefix.AddKnownKey(HTTPCustomClient)
}
