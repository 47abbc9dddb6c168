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
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/internal/metrics"
	"github.com/kaleido-io/tradesettle/internal/orchestrator"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var tscodeExtractor = regexp.MustCompile(`^(TS\d+):`)

var (
	apiConfigPrefix     = config.NewPluginConfig("http")
	metricsConfigPrefix = config.NewPluginConfig("metrics")
)

// Server is the external interface for the API Server
type Server interface {
	Serve(ctx context.Context, o orchestrator.Orchestrator) error
}

type apiServer struct {
	// Defaults set with config
	apiTimeout     time.Duration
	apiMaxTimeout  time.Duration
	metricsEnabled bool
}

func InitConfig() {
	initHTTPConfPrefix(apiConfigPrefix, 5000)
	initHTTPConfPrefix(metricsConfigPrefix, 6000)
}

func NewAPIServer() Server {
	return &apiServer{
		apiTimeout:     config.GetDuration(config.APIRequestTimeout),
		apiMaxTimeout:  config.GetDuration(config.APIRequestMaxTimeout),
		metricsEnabled: config.GetBool(config.MetricsEnabled),
	}
}

// Serve is the main entry point for the API Server
func (as *apiServer) Serve(ctx context.Context, o orchestrator.Orchestrator) (err error) {
	httpErrChan := make(chan error, 1)
	metricsErrChan := make(chan error, 1)

	apiHTTPServer, err := newHTTPServer(ctx, "api", as.createMuxRouter(ctx, o), httpErrChan, apiConfigPrefix)
	if err != nil {
		return err
	}
	go apiHTTPServer.serveHTTP(ctx)

	if as.metricsEnabled {
		metricsHTTPServer, err := newHTTPServer(ctx, "metrics", as.createMetricsMuxRouter(), metricsErrChan, metricsConfigPrefix)
		if err != nil {
			return err
		}
		go metricsHTTPServer.serveHTTP(ctx)
	}

	return as.waitForServerStop(httpErrChan, metricsErrChan)
}

func (as *apiServer) waitForServerStop(httpErrChan, metricsErrChan chan error) error {
	select {
	case err := <-httpErrChan:
		return err
	case err := <-metricsErrChan:
		return err
	}
}

func (as *apiServer) routeHandler(o orchestrator.Orchestrator, route *Route) http.HandlerFunc {
	return as.apiWrapper(func(res http.ResponseWriter, req *http.Request) (int, error) {

		var jsonInput interface{}
		if route.JSONInputValue != nil {
			contentType := req.Header.Get("Content-Type")
			if !strings.HasPrefix(strings.ToLower(contentType), "application/json") {
				return 415, i18n.NewError(req.Context(), i18n.MsgInvalidContentType)
			}
			jsonInput = route.JSONInputValue()
			if err := json.NewDecoder(req.Body).Decode(jsonInput); err != nil {
				return 400, i18n.WrapError(req.Context(), err, i18n.MsgJSONDecodeFailed)
			}
		}

		r := &APIRequest{
			Ctx:           req.Context(),
			Or:            o,
			Req:           req,
			PP:            mux.Vars(req),
			Input:         jsonInput,
			SuccessStatus: http.StatusOK,
		}
		if len(route.JSONOutputCodes) > 0 {
			r.SuccessStatus = route.JSONOutputCodes[0]
		}
		output, err := route.JSONHandler(r)
		if err != nil {
			return 500, err
		}
		return as.handleOutput(req.Context(), res, r.SuccessStatus, output)
	})
}

func (as *apiServer) handleOutput(ctx context.Context, res http.ResponseWriter, status int, output interface{}) (int, error) {
	vOutput := reflect.ValueOf(output)
	isNil := output == nil || vOutput.Kind() == reflect.Invalid
	switch vOutput.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map:
		isNil = isNil || vOutput.IsNil()
	}
	if isNil {
		if status != http.StatusNoContent {
			return 404, i18n.NewError(ctx, i18n.Msg404NoResult)
		}
		res.WriteHeader(http.StatusNoContent)
		return status, nil
	}
	res.Header().Add("Content-Type", "application/json")
	res.WriteHeader(status)
	if err := json.NewEncoder(res).Encode(output); err != nil {
		err = i18n.WrapError(ctx, err, i18n.MsgResponseMarshalError)
		log.L(ctx).Errorf(err.Error())
		return 500, err
	}
	return status, nil
}

// parseTimeoutHeader accepts a Go duration, or a bare number of seconds
func parseTimeoutHeader(value string) (time.Duration, error) {
	if seconds, err := strconv.ParseFloat(value, 64); err == nil {
		return time.Duration(seconds * float64(time.Second)), nil
	}
	return time.ParseDuration(value)
}

func (as *apiServer) getTimeout(req *http.Request) time.Duration {
	// Configure a server-side timeout on each request, so that a caller that gives up waiting on an
	// action does not leave the node holding the pending transaction open indefinitely.
	reqTimeout := as.apiTimeout
	reqTimeoutHeader := req.Header.Get("Request-Timeout")
	if reqTimeoutHeader != "" {
		customTimeout, err := parseTimeoutHeader(reqTimeoutHeader)
		if err != nil || customTimeout <= 0 {
			log.L(req.Context()).Warnf("Invalid Request-Timeout header '%s'", reqTimeoutHeader)
		} else {
			reqTimeout = customTimeout
			if reqTimeout > as.apiMaxTimeout {
				reqTimeout = as.apiMaxTimeout
			}
		}
	}
	return reqTimeout
}

func (as *apiServer) apiWrapper(handler func(res http.ResponseWriter, req *http.Request) (status int, err error)) http.HandlerFunc {
	return func(res http.ResponseWriter, req *http.Request) {

		reqTimeout := as.getTimeout(req)
		ctx, cancel := context.WithTimeout(req.Context(), reqTimeout)
		httpReqID := tstypes.ShortID()
		ctx = log.WithLogField(ctx, "httpreq", httpReqID)
		req = req.WithContext(ctx)
		defer cancel()

		// Wrap the request itself in a log wrapper, that gives minimal request/response and timing info
		l := log.L(ctx)
		l.Infof("--> %s %s", req.Method, req.URL.Path)
		startTime := time.Now()
		status, err := handler(res, req)
		durationMS := float64(time.Since(startTime)) / float64(time.Millisecond)
		if err != nil {

			// Routes don't need to set the status code when returning errors.
			// .. either the TS12345 error they raise is mapped to a status hint
			tscodeExtract := tscodeExtractor.FindStringSubmatch(err.Error())
			if len(tscodeExtract) >= 2 {
				if statusHint, ok := i18n.GetStatusHint(tscodeExtract[1]); ok {
					status = statusHint
				}
			}

			// If the context is done, we wrap in 408
			if status != http.StatusRequestTimeout {
				select {
				case <-ctx.Done():
					l.Errorf("Request failed and context is closed. Returning %d (overriding %d): %s", http.StatusRequestTimeout, status, err)
					status = http.StatusRequestTimeout
					err = i18n.WrapError(ctx, err, i18n.MsgRequestTimeout, httpReqID, durationMS)
				default:
				}
			}

			// ... or we default to 500
			if status < 300 {
				status = 500
			}
			l.Infof("<-- %s %s [%d] (%.2fms): %s", req.Method, req.URL.Path, status, durationMS, err)
			res.Header().Add("Content-Type", "application/json")
			res.WriteHeader(status)
			_ = json.NewEncoder(res).Encode(&tstypes.RESTError{
				Error: err.Error(),
			})
		} else {
			l.Infof("<-- %s %s [%d] (%.2fms)", req.Method, req.URL.Path, status, durationMS)
		}
	}
}

func (as *apiServer) notFoundHandler(res http.ResponseWriter, req *http.Request) (status int, err error) {
	return 404, i18n.NewError(req.Context(), i18n.Msg404NotFound)
}

func (as *apiServer) createMuxRouter(ctx context.Context, o orchestrator.Orchestrator) *mux.Router {
	r := mux.NewRouter()
	if as.metricsEnabled {
		r.Use(metrics.GetRestServerInstrumentation().Middleware)
	}

	for _, route := range routes {
		r.HandleFunc(fmt.Sprintf("/api/v1/%s", route.Path), as.routeHandler(o, route)).
			Methods(route.Method)
	}
	log.L(ctx).Debugf("Registered %d API routes", len(routes))

	r.NotFoundHandler = as.apiWrapper(as.notFoundHandler)
	return r
}

func (as *apiServer) createMetricsMuxRouter() *mux.Router {
	r := mux.NewRouter()

	r.Path(config.GetString(config.MetricsPath)).Handler(promhttp.InstrumentMetricHandler(metrics.Registry(),
		promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	return r
}
