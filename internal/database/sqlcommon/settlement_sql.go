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
	settlementColumns = []string{
		"transaction_id",
		"role",
		"counterparty_platform_id",
		"counterparty_discom_id",
		"order_item_id",
		"ledger_synced_at",
		"ledger_data",
		"buyer_discom_status",
		"seller_discom_status",
		"settlement_status",
		"contracted_quantity",
		"actual_delivered",
		"deviation_kwh",
		"settlement_cycle_id",
		"settled_at",
		"on_settle_notified",
		"created",
		"updated",
	}
)

func (s *SQLCommon) InsertSettlement(ctx context.Context, settlement *tstypes.SettlementRecord) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	rows, err := s.queryTx(ctx, tx,
		sq.Select(sequenceColumn).
			From("settlements").
			Where(sq.Eq{
				"transaction_id": settlement.TransactionID,
				"role":           string(settlement.Role),
			}),
	)
	if err != nil {
		return err
	}
	existing := rows.Next()
	rows.Close()
	if existing {
		return i18n.NewError(ctx, i18n.MsgSettlementExists, settlement.TransactionID, settlement.Role)
	}

	if settlement.Created == nil {
		settlement.Created = tstypes.Now()
	}
	settlement.Updated = settlement.Created
	if _, err = s.insertTx(ctx, tx,
		sq.Insert("settlements").
			Columns(settlementColumns...).
			Values(
				settlement.TransactionID,
				string(settlement.Role),
				settlement.CounterpartyPlatformID,
				settlement.CounterpartyDiscomID,
				settlement.OrderItemID,
				settlement.LedgerSyncedAt,
				settlement.LedgerData,
				string(settlement.BuyerDiscomStatus),
				string(settlement.SellerDiscomStatus),
				string(settlement.SettlementStatus),
				settlement.ContractedQuantity,
				settlement.ActualDelivered,
				settlement.DeviationKWh,
				settlement.SettlementCycleID,
				settlement.SettledAt,
				settlement.OnSettleNotified,
				settlement.Created,
				settlement.Updated,
			),
	); err != nil {
		if i18n.IsCode(err, i18n.MsgDBDuplicateKey) {
			// Another node inserted the same record between our check and our insert
			return i18n.NewError(ctx, i18n.MsgSettlementExists, settlement.TransactionID, settlement.Role)
		}
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) settlementResult(ctx context.Context, row *sql.Rows) (*tstypes.SettlementRecord, error) {
	var rec tstypes.SettlementRecord
	err := row.Scan(
		&rec.TransactionID,
		&rec.Role,
		&rec.CounterpartyPlatformID,
		&rec.CounterpartyDiscomID,
		&rec.OrderItemID,
		&rec.LedgerSyncedAt,
		&rec.LedgerData,
		&rec.BuyerDiscomStatus,
		&rec.SellerDiscomStatus,
		&rec.SettlementStatus,
		&rec.ContractedQuantity,
		&rec.ActualDelivered,
		&rec.DeviationKWh,
		&rec.SettlementCycleID,
		&rec.SettledAt,
		&rec.OnSettleNotified,
		&rec.Created,
		&rec.Updated,
	)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, i18n.MsgDBReadErr, "settlements")
	}
	return &rec, nil
}

func (s *SQLCommon) getSettlements(ctx context.Context, where sq.Sqlizer) ([]*tstypes.SettlementRecord, error) {
	rows, err := s.query(ctx,
		sq.Select(settlementColumns...).
			From("settlements").
			Where(where).
			OrderBy(sequenceColumn),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settlements := []*tstypes.SettlementRecord{}
	for rows.Next() {
		rec, err := s.settlementResult(ctx, rows)
		if err != nil {
			return nil, err
		}
		settlements = append(settlements, rec)
	}
	return settlements, nil
}

func (s *SQLCommon) GetSettlement(ctx context.Context, transactionID string, role tstypes.Role) (*tstypes.SettlementRecord, error) {
	settlements, err := s.getSettlements(ctx, sq.Eq{
		"transaction_id": transactionID,
		"role":           string(role),
	})
	if err != nil {
		return nil, err
	}
	if len(settlements) == 0 {
		log.L(ctx).Debugf("Settlement '%s' role=%s not found", transactionID, role)
		return nil, nil
	}
	return settlements[0], nil
}

func (s *SQLCommon) GetSettlementsByTransaction(ctx context.Context, transactionID string) ([]*tstypes.SettlementRecord, error) {
	return s.getSettlements(ctx, sq.Eq{"transaction_id": transactionID})
}

func (s *SQLCommon) GetUnsettledSettlements(ctx context.Context) ([]*tstypes.SettlementRecord, error) {
	return s.getSettlements(ctx, sq.NotEq{"settlement_status": string(tstypes.SettlementStatusSettled)})
}

func (s *SQLCommon) UpdateSettlement(ctx context.Context, settlement *tstypes.SettlementRecord) (err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	settlement.Updated = tstypes.Now()
	if _, err = s.updateTx(ctx, tx,
		sq.Update("settlements").
			Set("ledger_synced_at", settlement.LedgerSyncedAt).
			Set("ledger_data", settlement.LedgerData).
			Set("buyer_discom_status", string(settlement.BuyerDiscomStatus)).
			Set("seller_discom_status", string(settlement.SellerDiscomStatus)).
			Set("settlement_status", string(settlement.SettlementStatus)).
			Set("actual_delivered", settlement.ActualDelivered).
			Set("deviation_kwh", settlement.DeviationKWh).
			Set("settlement_cycle_id", settlement.SettlementCycleID).
			Set("settled_at", settlement.SettledAt).
			Set("updated", settlement.Updated).
			Where(sq.Eq{
				"transaction_id": settlement.TransactionID,
				"role":           string(settlement.Role),
			}),
	); err != nil {
		return err
	}

	return s.commitTx(ctx, tx, autoCommit)
}

func (s *SQLCommon) MarkSettlementNotified(ctx context.Context, transactionID string, role tstypes.Role) (marked bool, err error) {
	ctx, tx, autoCommit, err := s.beginOrUseTx(ctx)
	if err != nil {
		return false, err
	}
	defer s.rollbackTx(ctx, tx, autoCommit)

	affected, err := s.updateTx(ctx, tx,
		sq.Update("settlements").
			Set("on_settle_notified", true).
			Set("updated", tstypes.Now()).
			Where(sq.Eq{
				"transaction_id":     transactionID,
				"role":               string(role),
				"on_settle_notified": false,
			}),
	)
	if err != nil {
		return false, err
	}

	return affected > 0, s.commitTx(ctx, tx, autoCommit)
}
