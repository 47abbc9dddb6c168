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

package gateway

import (
	"context"
	"encoding/json"

	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

// confirmedOrder is the subset of the on_confirm order that seeds the settlement record.
// The rest of the message is stored opaquely as order metadata.
type confirmedOrder struct {
	Provider struct {
		ID       string `json:"id"`
		DiscomID string `json:"discomId"`
	} `json:"provider"`
	Items []struct {
		ID       string  `json:"id"`
		Quantity float64 `json:"quantity"`
	} `json:"items"`
}

func parseConfirmedOrder(message tstypes.JSONObject) *confirmedOrder {
	var order confirmedOrder
	b, _ := json.Marshal(message.GetObject("order"))
	_ = json.Unmarshal(b, &order)
	return &order
}

// persistConfirmed stores the buyer order and starts tracking its settlement, in one DB transaction
func (gm *gatewayManager) persistConfirmed(ctx context.Context, requestCtx *tstypes.ProtocolContext, callback *tstypes.CallbackEnvelope) error {
	transactionID := requestCtx.TransactionID
	order := parseConfirmedOrder(callback.Message)

	input := &tstypes.SettlementInput{
		TransactionID:          transactionID,
		Role:                   string(tstypes.RoleBuyer),
		CounterpartyPlatformID: order.Provider.ID,
		CounterpartyDiscomID:   order.Provider.DiscomID,
	}
	for _, item := range order.Items {
		if input.OrderItemID == "" {
			input.OrderItemID = item.ID
		}
		input.ContractedQuantity += item.Quantity
	}
	if input.CounterpartyPlatformID == "" {
		input.CounterpartyPlatformID = requestCtx.BppID
	}

	orderContext := tstypes.ToJSONObject(requestCtx)
	if callback.Context != nil && callback.Context.Domain != "" {
		orderContext["domain"] = callback.Context.Domain
	}

	return gm.database.RunAsGroup(ctx, func(ctx context.Context) error {
		err := gm.database.UpsertOrder(ctx, &tstypes.Order{
			TransactionID: transactionID,
			Role:          tstypes.RoleBuyer,
			Status:        tstypes.OrderStatusConfirmed,
			Context:       orderContext,
			Metadata:      callback.Message,
		})
		if err != nil {
			return err
		}
		if input.ContractedQuantity <= 0 {
			log.L(ctx).Warnf("Confirmed order for transaction '%s' has no quantity. Settlement is not tracked", transactionID)
			return nil
		}
		_, err = gm.settlement.CreateSettlement(ctx, input)
		if i18n.IsCode(err, i18n.MsgSettlementExists) {
			log.L(ctx).Infof("Settlement for transaction '%s' is already tracked", transactionID)
			return nil
		}
		return err
	})
}
