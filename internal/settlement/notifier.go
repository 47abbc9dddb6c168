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

package settlement

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/internal/restclient"
	"github.com/kaleido-io/tradesettle/pkg/database"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
	"github.com/karlseguin/ccache"
)

// notifier delivers the on_settle envelope downstream. It never retries within a call,
// as redelivery is gated by the notified flag on the record.
type notifier struct {
	client        *resty.Client
	url           string
	database      database.Plugin
	defaultDomain string
	version       string
	bapID         string
	bapURI        string
	domainCache   *ccache.Cache
	domainTTL     time.Duration
}

func newNotifier(ctx context.Context, di database.Plugin) *notifier {
	n := &notifier{
		database:      di,
		defaultDomain: notifyConfigPrefix.GetString(NotifyConfigDefaultDomain),
		version:       config.GetString(config.ProtocolVersion),
		bapID:         config.GetString(config.ProtocolBapID),
		bapURI:        config.GetString(config.ProtocolBapURI),
		domainCache:   ccache.New(ccache.Configure().MaxSize(config.GetInt64(config.SettlementOrderCacheSize))),
		domainTTL:     config.GetDuration(config.SettlementOrderCacheTTL),
	}
	n.url = notifyConfigPrefix.GetString(restclient.HTTPConfigURL)
	if n.url != "" {
		n.client = restclient.New(ctx, notifyConfigPrefix)
	} else {
		log.L(ctx).Infof("No %s configured. Settlement notifications are disabled", notifyConfigPrefix.Resolve(restclient.HTTPConfigURL))
	}
	return n
}

func (n *notifier) enabled() bool {
	return n.client != nil
}

// domainFor uses the domain of the order persisted when the trade was confirmed
func (n *notifier) domainFor(ctx context.Context, transactionID string) string {
	if cached := n.domainCache.Get(transactionID); cached != nil && !cached.Expired() {
		return cached.Value().(string)
	}
	order, err := n.database.GetOrderByTransactionID(ctx, transactionID)
	if err != nil {
		log.L(ctx).Warnf("Failed to read order for transaction '%s'. Using default domain: %s", transactionID, err)
		return n.defaultDomain
	}
	domain := order.Domain()
	if domain == "" {
		return n.defaultDomain
	}
	n.domainCache.Set(transactionID, domain, n.domainTTL)
	return domain
}

func (n *notifier) buildEnvelope(ctx context.Context, record *tstypes.SettlementRecord) *tstypes.OnSettleEnvelope {
	return &tstypes.OnSettleEnvelope{
		Context: &tstypes.ProtocolContext{
			Domain:        n.domainFor(ctx, record.TransactionID),
			Action:        string(tstypes.ActionOnSettle),
			Version:       n.version,
			BapID:         n.bapID,
			BapURI:        n.bapURI,
			TransactionID: record.TransactionID,
			MessageID:     tstypes.NewUUID().String(),
			Timestamp:     tstypes.Now(),
		},
		Message: tstypes.OnSettleMessage{
			Settlement: &tstypes.SettlementNotice{
				TransactionID:      record.TransactionID,
				OrderItemID:        record.OrderItemID,
				ContractedQuantity: record.ContractedQuantity,
				ActualDelivered:    record.ActualDelivered,
				DeviationKWh:       record.DeviationKWh,
				SettlementStatus:   record.SettlementStatus,
			},
		},
	}
}

// send returns false for every failure, having logged it
func (n *notifier) send(ctx context.Context, record *tstypes.SettlementRecord) bool {
	if !n.enabled() || record.OnSettleNotified {
		return false
	}
	envelope := n.buildEnvelope(ctx, record)
	res, err := n.client.R().
		SetContext(ctx).
		SetBody(envelope).
		Post(n.url)
	if err := restclient.CheckResponse(ctx, res, err, i18n.MsgNotifyRESTErr); err != nil {
		log.L(ctx).Errorf("Settlement notification for transaction '%s' failed: %s", record.TransactionID, err)
		return false
	}
	log.L(ctx).Infof("Delivered on_settle for transaction '%s' role=%s messageId=%s", record.TransactionID, record.Role, envelope.Context.MessageID)
	return true
}
