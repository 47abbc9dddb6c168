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
	"fmt"
	"time"

	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

func (sm *settlementManager) PollOnce(ctx context.Context) (result *tstypes.PollResult) {
	if !sm.sweeping.CompareAndSwap(false, true) {
		log.L(ctx).Debugf("Settlement sweep already in progress")
		return nil
	}

	started := time.Now()
	result = &tstypes.PollResult{
		NewlySettled: []string{},
		Errors:       []string{},
		PolledAt:     tstypes.Now(),
	}
	defer func() {
		if r := recover(); r != nil {
			log.L(ctx).Errorf("Settlement sweep aborted: %v", r)
			result.Errors = append(result.Errors, fmt.Sprintf("sweep aborted: %v", r))
		}
		sm.recordPoll(result)
		sm.metrics.SweepCompleted(result, started)
		sm.sweeping.Store(false)
	}()

	records, err := sm.database.GetUnsettledSettlements(ctx)
	if err != nil {
		log.L(ctx).Errorf("Failed to load unsettled records: %s", err)
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	for _, record := range records {
		result.SettlementsChecked++
		reconciled, newlySettled, err := sm.reconcile(ctx, record.TransactionID, record.Role)
		if err != nil {
			log.L(ctx).Errorf("Failed to reconcile transaction '%s' role=%s: %s", record.TransactionID, record.Role, err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", record.TransactionID, err))
			continue
		}
		switch {
		case reconciled == nil:
		case newlySettled:
			result.SettlementsUpdated++
			result.NewlySettled = append(result.NewlySettled, record.TransactionID)
		case reconciled.SettlementStatus == tstypes.SettlementStatusSettled:
			// settled by a concurrent refresh
		default:
			result.SettlementsUpdated++
		}
	}

	log.L(ctx).Infof("Settlement sweep complete: checked=%d updated=%d settled=%d errors=%d",
		result.SettlementsChecked, result.SettlementsUpdated, len(result.NewlySettled), len(result.Errors))
	return result
}

func (sm *settlementManager) RefreshSettlement(ctx context.Context, transactionID string) (*tstypes.SettlementRecord, error) {
	records, err := sm.database.GetSettlementsByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, i18n.NewError(ctx, i18n.MsgSettlementNotFound, transactionID)
	}

	var refreshed *tstypes.SettlementRecord
	for _, record := range records {
		reconciled, _, err := sm.reconcile(ctx, record.TransactionID, record.Role)
		if err != nil {
			return nil, err
		}
		if refreshed == nil {
			refreshed = reconciled
		}
	}
	return refreshed, nil
}

// reconcile re-reads the record under the reconcile lock, so a sweep and a refresh racing on the
// same record act on the latest persisted state. Returns a nil record if the ledger knows nothing yet.
func (sm *settlementManager) reconcile(ctx context.Context, transactionID string, role tstypes.Role) (record *tstypes.SettlementRecord, newlySettled bool, err error) {
	sm.reconcileMux.Lock()
	defer sm.reconcileMux.Unlock()

	record, err = sm.database.GetSettlement(ctx, transactionID, role)
	if err != nil {
		return nil, false, err
	}
	if record == nil {
		return nil, false, i18n.NewError(ctx, i18n.MsgSettlementNotFound, transactionID)
	}

	if record.SettlementStatus == tstypes.SettlementStatusSettled {
		// Terminal. Only the side effects that may have failed previously are retried.
		sm.afterSettled(ctx, record)
		return record, false, nil
	}

	ledgerRecord, err := sm.ledger.QueryTradeByTransaction(ctx, transactionID, sm.localDiscomID)
	if err != nil {
		return nil, false, err
	}
	if ledgerRecord == nil {
		log.L(ctx).Debugf("Ledger has no record for transaction '%s'", transactionID)
		return nil, false, nil
	}

	previous := record.SettlementStatus
	record.BuyerDiscomStatus = normalizeDiscomStatus(ledgerRecord.StatusBuyerDiscom)
	record.SellerDiscomStatus = normalizeDiscomStatus(ledgerRecord.StatusSellerDiscom)
	record.SettlementStatus = DeriveSettlementStatus(record.BuyerDiscomStatus, record.SellerDiscomStatus)
	record.LedgerSyncedAt = tstypes.Now()
	record.LedgerData = tstypes.ToJSONObject(ledgerRecord)
	if ledgerRecord.ActualDelivered != nil {
		actual := *ledgerRecord.ActualDelivered
		deviation := actual - record.ContractedQuantity
		record.ActualDelivered = &actual
		record.DeviationKWh = &deviation
	}
	if ledgerRecord.SettlementCycleID != "" {
		record.SettlementCycleID = ledgerRecord.SettlementCycleID
	}
	if statusRank(record.SettlementStatus) < statusRank(previous) {
		log.L(ctx).Warnf("Ledger regressed transaction '%s' role=%s from %s to %s", transactionID, role, previous, record.SettlementStatus)
	}

	newlySettled = record.SettlementStatus == tstypes.SettlementStatusSettled
	if newlySettled && record.SettledAt == nil {
		record.SettledAt = tstypes.Now()
	}
	if err = sm.database.UpdateSettlement(ctx, record); err != nil {
		return nil, false, err
	}
	if previous != record.SettlementStatus {
		log.L(ctx).Infof("Transaction '%s' role=%s moved from %s to %s", transactionID, role, previous, record.SettlementStatus)
	}

	if newlySettled {
		sm.afterSettled(ctx, record)
	}
	return record, newlySettled, nil
}

// afterSettled runs the best-effort side effects of a settled record. Neither can fail the reconciliation.
func (sm *settlementManager) afterSettled(ctx context.Context, record *tstypes.SettlementRecord) {
	if !record.OnSettleNotified && sm.TriggerOnSettle(ctx, record) {
		marked, err := sm.database.MarkSettlementNotified(ctx, record.TransactionID, record.Role)
		switch {
		case err != nil:
			log.L(ctx).Errorf("Notified transaction '%s' role=%s but failed to record it: %s", record.TransactionID, record.Role, err)
		case !marked:
			log.L(ctx).Warnf("Transaction '%s' role=%s was already marked notified", record.TransactionID, record.Role)
			record.OnSettleNotified = true
		default:
			record.OnSettleNotified = true
		}
	}

	var err error
	switch record.Role {
	case tstypes.RoleBuyer:
		err = sm.orderStatus.UpdateBuyerOrderStatus(ctx, record.TransactionID, tstypes.OrderStatusDelivered, tstypes.JSONObject{
			"settlementStatus":  record.SettlementStatus,
			"settlementCycleId": record.SettlementCycleID,
			"actualDelivered":   record.ActualDelivered,
			"deviationKwh":      record.DeviationKWh,
		})
	case tstypes.RoleSeller:
		err = sm.orderStatus.UpdateSellerOrderStatus(ctx, record.TransactionID, tstypes.OrderStatusDelivered)
	}
	if err != nil {
		log.L(ctx).Warnf("Failed to mark order delivered for transaction '%s' role=%s: %s", record.TransactionID, record.Role, err)
	}
}
