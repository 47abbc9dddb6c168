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

package restledger

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/internal/restclient"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

// RESTLedger queries trade settlement records from a ledger service over HTTP
type RESTLedger struct {
	ctx        context.Context
	client     *resty.Client
	tradesPath string
}

type tradeQueryResponse struct {
	Records []*tstypes.LedgerRecord `json:"records"`
}

func (r *RESTLedger) Name() string {
	return "rest"
}

func (r *RESTLedger) Init(ctx context.Context, prefix config.Prefix) error {
	r.ctx = log.WithLogField(ctx, "ledger", "rest")
	if prefix.GetString(restclient.HTTPConfigURL) == "" {
		return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, "url", "ledger.rest")
	}
	r.client = restclient.New(r.ctx, prefix)
	r.tradesPath = prefix.GetString(LedgerConfigTradesPath)
	return nil
}

func (r *RESTLedger) QueryTradeByTransaction(ctx context.Context, transactionID, discomID string) (*tstypes.LedgerRecord, error) {
	var body tradeQueryResponse
	res, err := r.client.R().
		SetContext(ctx).
		SetQueryParam("transactionId", transactionID).
		SetQueryParam("discomId", discomID).
		SetResult(&body).
		Get(r.tradesPath)
	if err == nil && res.StatusCode() == http.StatusNotFound {
		log.L(ctx).Debugf("Ledger has no record of transaction '%s'", transactionID)
		return nil, nil
	}
	if err != nil || !res.IsSuccess() {
		return nil, restclient.WrapRestErr(ctx, res, err, i18n.MsgLedgerRESTErr)
	}
	for _, rec := range body.Records {
		if rec != nil && rec.TransactionID == transactionID {
			return rec, nil
		}
	}
	return nil, nil
}
