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

package sqlcommon

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

var (
	orderColumns = []string{
		"transaction_id",
		"role",
		"status",
		"context",
		"metadata",
		"created",
		"updated",
	}
)

func (s *SQLCommon) UpsertOrder(ctx context.Context, order *tstypes.Order) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	existing, err := s.getOrderTx(ctx, tx, sq.Eq{
		"transaction_id": order.TransactionID,
		"role":           string(order.Role),
	})
	if err != nil {
		return err
	}

	order.Updated = tstypes.Now()
	if existing != nil {
		order.Created = existing.Created
		if _, err = s.updateTx(ctx, tx,
			sq.Update("orders").
				Set("status", string(order.Status)).
				Set("context", order.Context).
				Set("metadata", order.Metadata).
				Set("updated", order.Updated).
				Where(sq.Eq{
					"transaction_id": order.TransactionID,
					"role":           string(order.Role),
				}),
		); err != nil {
			return err
		}
	} else {
		order.Created = order.Updated
		if _, err = s.insertTx(ctx, tx,
			sq.Insert("orders").
				Columns(orderColumns...).
				Values(
					order.TransactionID,
					string(order.Role),
					string(order.Status),
					order.Context,
					order.Metadata,
					order.Created,
					order.Updated,
				),
		); err != nil {
			return err
		}
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) orderResult(ctx context.Context, row *sql.Rows) (*tstypes.Order, error) {
	var order tstypes.Order
	err := row.Scan(
		&order.TransactionID,
		&order.Role,
		&order.Status,
		&order.Context,
		&order.Metadata,
		&order.Created,
		&order.Updated,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "orders")
	}
	return &order, nil
}

func (s *SQLCommon) getOrderTx(ctx context.Context, tx *txWrapper, where sq.Sqlizer) (*tstypes.Order, error) {
	rows, err := s.queryTx(ctx, tx,
		sq.Select(orderColumns...).
			From("orders").
			Where(where).
			OrderBy(sequenceColumn).
			Limit(1),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, nil
	}
	return s.orderResult(ctx, rows)
}

func (s *SQLCommon) GetOrderByTransactionID(ctx context.Context, transactionID string) (*tstypes.Order, error) {
	order, err := s.getOrderTx(ctx, nil, sq.Eq{"transaction_id": transactionID})
	if err == nil && order == nil {
		log.L(ctx).Debugf("Order for transaction '%s' not found", transactionID)
	}
	return order, err
}

func (s *SQLCommon) UpdateOrderStatus(ctx context.Context, transactionID string, role tstypes.Role, status tstypes.OrderStatus, metadata tstypes.JSONObject) (updated bool, err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return false, err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	where := sq.Eq{
		"transaction_id": transactionID,
		"role":           string(role),
	}
	existing, err := s.getOrderTx(ctx, tx, where)
	if err != nil || existing == nil {
		return false, err
	}

	update := sq.Update("orders").
		Set("status", string(status)).
		Set("updated", tstypes.Now())
	if len(metadata) > 0 {
		merged := tstypes.JSONObject{}
		for k, v := range existing.Metadata {
			merged[k] = v
		}
		for k, v := range metadata {
			merged[k] = v
		}
		update = update.Set("metadata", merged)
	}
	if _, err = s.updateTx(ctx, tx, update.Where(where)); err != nil {
		return false, err
	}

	return true, s.commitTx(ctx, tx, autoCommit)
}
