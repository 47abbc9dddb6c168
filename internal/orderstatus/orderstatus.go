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

package orderstatus

import (
	"context"

	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/pkg/database"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

// Manager propagates terminal statuses onto the orders held for each side of a trade.
// It is not authoritative for settlement.
type Manager interface {
	UpdateBuyerOrderStatus(ctx context.Context, transactionID string, status tstypes.OrderStatus, metadata tstypes.JSONObject) error
	UpdateSellerOrderStatus(ctx context.Context, transactionID string, status tstypes.OrderStatus) error
}

type orderStatusManager struct {
	database database.Plugin
}

func NewOrderStatusManager(ctx context.Context, di database.Plugin) (Manager, error) {
	if di == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitializationNilDepError)
	}
	return &orderStatusManager{
		database: di,
	}, nil
}

func (om *orderStatusManager) update(ctx context.Context, transactionID string, role tstypes.Role, status tstypes.OrderStatus, metadata tstypes.JSONObject) error {
	updated, err := om.database.UpdateOrderStatus(ctx, transactionID, role, status, metadata)
	if err != nil {
		return err
	}
	if !updated {
		return i18n.NewError(ctx, i18n.MsgOrderNotFound, role, transactionID)
	}
	log.L(ctx).Infof("Order for transaction '%s' role=%s moved to %s", transactionID, role, status)
	return nil
}

func (om *orderStatusManager) UpdateBuyerOrderStatus(ctx context.Context, transactionID string, status tstypes.OrderStatus, metadata tstypes.JSONObject) error {
	return om.update(ctx, transactionID, tstypes.RoleBuyer, status, metadata)
}

func (om *orderStatusManager) UpdateSellerOrderStatus(ctx context.Context, transactionID string, status tstypes.OrderStatus) error {
	return om.update(ctx, transactionID, tstypes.RoleSeller, status, nil)
}
