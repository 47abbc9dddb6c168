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

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

const maxErrorBodyLength = 256

type requestCtxKey struct{}

type requestCtx struct {
	id       string
	start    time.Time
	attempts uint
}

func onAfterResponse(resp *resty.Response) {
	if resp == nil || resp.Request == nil {
		return
	}
	rctx := resp.Request.Context()
	elapsed := float64(0)
	if rc, ok := rctx.Value(requestCtxKey{}).(*requestCtx); ok {
		elapsed = float64(time.Since(rc.start)) / float64(time.Millisecond)
	}
	log.L(rctx).Infof("<== %s %s [%d] (%.2fms)", resp.Request.Method, resp.Request.URL, resp.StatusCode(), elapsed)
}

func newHTTPClient(prefix config.Prefix) *http.Client {
	if iHTTPClient := prefix.Get(HTTPCustomClient); iHTTPClient != nil {
		if httpClient, ok := iHTTPClient.(*http.Client); ok {
			return httpClient
		}
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = prefix.GetInt(HTTPMaxIdleConnsPerHost)
	if prefix.GetBool(HTTPExpectContinue) {
		transport.ExpectContinueTimeout = 1 * time.Second
	} else {
		transport.ExpectContinueTimeout = 0
	}
	return &http.Client{Transport: transport}
}

// New creates a resty client from the REST client configuration under the supplied prefix.
// Every request is logged on the way out and back with a short "breq" correlation id,
// and is bounded by the configured request timeout.
func New(ctx context.Context, prefix config.Prefix) *resty.Client {
	client := resty.NewWithClient(newHTTPClient(prefix))

	url := strings.TrimSuffix(prefix.GetString(HTTPConfigURL), "/")
	if url != "" {
		client.SetHostURL(url)
		log.L(ctx).Debugf("Created REST client to %s", url)
	}

	if proxy := prefix.GetString(HTTPConfigProxyURL); proxy != "" {
		client.SetProxy(proxy)
	}

	client.SetTimeout(prefix.GetDuration(HTTPConfigRequestTimeout))

	client.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		rctx := req.Context()
		if rctx.Value(requestCtxKey{}) == nil {
			rc := &requestCtx{
				id:    tstypes.ShortID(),
				start: time.Now(),
			}
			rctx = context.WithValue(rctx, requestCtxKey{}, rc)
			rctx = log.WithLogger(rctx, log.L(ctx).WithField("breq", rc.id))
			req.SetContext(rctx)
		}
		log.L(rctx).Infof("==> %s %s%s", req.Method, url, req.URL)
		return nil
	})

	client.OnAfterResponse(func(c *resty.Client, r *resty.Response) error {
		onAfterResponse(r)
		return nil
	})

	for k, v := range prefix.GetObject(HTTPConfigHeaders) {
		if vs, ok := v.(string); ok {
			client.SetHeader(k, vs)
		}
	}
	authUsername := prefix.GetString(HTTPConfigAuthUsername)
	authPassword := prefix.GetString(HTTPConfigAuthPassword)
	if authUsername != "" && authPassword != "" {
		client.SetHeader("Authorization", fmt.Sprintf("Basic %s", base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%s", authUsername, authPassword)))))
	}

	if prefix.GetBool(HTTPConfigRetryEnabled) {
		retryCount := prefix.GetInt(HTTPConfigRetryCount)
		minTimeout := prefix.GetDuration(HTTPConfigRetryInitDelay)
		maxTimeout := prefix.GetDuration(HTTPConfigRetryMaxDelay)
		client.
			SetRetryCount(retryCount).
			SetRetryWaitTime(minTimeout).
			SetRetryMaxWaitTime(maxTimeout).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if r == nil || r.IsSuccess() {
					return false
				}
				rctx := r.Request.Context()
				if rc, ok := rctx.Value(requestCtxKey{}).(*requestCtx); ok {
					rc.attempts++
					log.L(rctx).Infof("retry %d/%d (min=%dms/max=%dms) status=%d", rc.attempts, retryCount, minTimeout.Milliseconds(), maxTimeout.Milliseconds(), r.StatusCode())
				}
				return true
			})
	}

	return client
}

// WrapRestErr builds a coded error from a failed call, including a truncated copy of any response body
func WrapRestErr(ctx context.Context, res *resty.Response, err error, key i18n.MessageKey) error {
	var respData string
	if res != nil {
		respData = res.String()
		if respData == "" {
			respData = res.Status()
		}
		if len(respData) > maxErrorBodyLength {
			respData = respData[0:maxErrorBodyLength] + "..."
		}
	}
	if err != nil {
		return i18n.WrapError(ctx, err, key, err.Error())
	}
	return i18n.NewError(ctx, key, respData)
}

// CheckResponse treats a transport error or a non-2xx status as a failure with the given message key
func CheckResponse(ctx context.Context, res *resty.Response, err error, key i18n.MessageKey) error {
	if err != nil || res == nil || !res.IsSuccess() {
		return WrapRestErr(ctx, res, err, key)
	}
	return nil
}
