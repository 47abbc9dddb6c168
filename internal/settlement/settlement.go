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
	"sync"
	"sync/atomic"
	"time"

	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/internal/metrics"
	"github.com/kaleido-io/tradesettle/internal/orderstatus"
	"github.com/kaleido-io/tradesettle/pkg/database"
	"github.com/kaleido-io/tradesettle/pkg/ledger"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

// Manager converges the local settlement records with the external ledger, and delivers
// the on_settle notification once per settled record.
type Manager interface {
	// Start begins polling the ledger, if polling is enabled. Calling it while running is a no-op.
	Start() error
	// Stop ends polling. Safe to call if never started.
	Stop()
	// WaitStop waits for an in-progress poll loop to exit
	WaitStop()

	// PollOnce runs a single sweep over every unsettled record. Returns nil if a sweep is already running.
	PollOnce(ctx context.Context) *tstypes.PollResult
	// RefreshSettlement reconciles the records for one transaction outside of the polling cadence.
	// Returns nil if the ledger has nothing for the transaction yet.
	RefreshSettlement(ctx context.Context, transactionID string) (*tstypes.SettlementRecord, error)
	// TriggerOnSettle sends the on_settle notification for a record. Returns false, having logged, on any failure.
	TriggerOnSettle(ctx context.Context, record *tstypes.SettlementRecord) bool

	CreateSettlement(ctx context.Context, input *tstypes.SettlementInput) (*tstypes.SettlementRecord, error)
	GetSettlements(ctx context.Context, transactionID string) ([]*tstypes.SettlementRecord, error)
	Status() *tstypes.PollingStatus
}

type settlementManager struct {
	ctx           context.Context
	database      database.Plugin
	ledger        ledger.Plugin
	orderStatus   orderstatus.Manager
	metrics       metrics.Manager
	notifier      *notifier
	localDiscomID string
	enabled       bool
	interval      time.Duration

	// sweeping is the single-flight guard for PollOnce
	sweeping atomic.Bool
	// reconcileMux serializes the read-reconcile-write of records between sweeps and refreshes
	reconcileMux sync.Mutex

	stateMux   sync.Mutex
	running    bool
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
	lastPoll   *tstypes.PollResult
}

func NewSettlementManager(ctx context.Context, di database.Plugin, li ledger.Plugin, osm orderstatus.Manager, mm metrics.Manager) (Manager, error) {
	if di == nil || li == nil || osm == nil || mm == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitializationNilDepError)
	}
	ctx = log.WithLogField(ctx, "role", "settlement")
	sm := &settlementManager{
		ctx:           ctx,
		database:      di,
		ledger:        li,
		orderStatus:   osm,
		metrics:       mm,
		notifier:      newNotifier(ctx, di),
		localDiscomID: config.GetString(config.SettlementLocalDiscomID),
		enabled:       config.GetBool(config.SettlementPollingEnabled),
		interval:      config.GetDuration(config.SettlementPollingInterval),
	}
	if sm.interval <= 0 {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidDurationConfig, config.GetString(config.SettlementPollingInterval), config.SettlementPollingInterval)
	}
	return sm, nil
}

func (sm *settlementManager) Start() error {
	if !sm.enabled {
		log.L(sm.ctx).Infof("Settlement polling is disabled")
		return nil
	}

	sm.stateMux.Lock()
	defer sm.stateMux.Unlock()
	if sm.running {
		log.L(sm.ctx).Debugf("Settlement polling already running")
		return nil
	}
	loopCtx, cancel := context.WithCancel(sm.ctx)
	sm.running = true
	sm.cancelLoop = cancel
	sm.loopDone = make(chan struct{})
	go sm.pollLoop(loopCtx, sm.loopDone)
	log.L(sm.ctx).Infof("Settlement polling started (interval=%s discom=%s)", sm.interval, sm.localDiscomID)
	return nil
}

func (sm *settlementManager) Stop() {
	sm.stateMux.Lock()
	defer sm.stateMux.Unlock()
	if !sm.running {
		return
	}
	sm.cancelLoop()
	sm.running = false
	log.L(sm.ctx).Infof("Settlement polling stopped")
}

func (sm *settlementManager) WaitStop() {
	sm.stateMux.Lock()
	loopDone := sm.loopDone
	sm.stateMux.Unlock()
	if loopDone != nil {
		<-loopDone
	}
}

func (sm *settlementManager) pollLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(sm.interval)
	defer ticker.Stop()

	sm.PollOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			log.L(ctx).Debugf("Settlement poll loop exiting")
			return
		case <-ticker.C:
			sm.PollOnce(ctx)
		}
	}
}

func (sm *settlementManager) Status() *tstypes.PollingStatus {
	sm.stateMux.Lock()
	defer sm.stateMux.Unlock()
	return &tstypes.PollingStatus{
		Enabled:        sm.enabled,
		Running:        sm.running,
		IsPolling:      sm.sweeping.Load(),
		IntervalMS:     sm.interval.Milliseconds(),
		LastPollResult: sm.lastPoll,
	}
}

func (sm *settlementManager) recordPoll(result *tstypes.PollResult) {
	sm.stateMux.Lock()
	defer sm.stateMux.Unlock()
	sm.lastPoll = result
}

func (sm *settlementManager) CreateSettlement(ctx context.Context, input *tstypes.SettlementInput) (*tstypes.SettlementRecord, error) {
	if input.TransactionID == "" {
		return nil, i18n.NewError(ctx, i18n.MsgTransactionIDNeeded)
	}
	role, ok := tstypes.ParseRole(input.Role)
	if !ok {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidRole, input.Role)
	}
	if input.ContractedQuantity <= 0 {
		return nil, i18n.NewError(ctx, i18n.MsgInvalidQuantity)
	}
	record := tstypes.NewSettlementRecord(input.TransactionID, role, input.ContractedQuantity)
	record.CounterpartyPlatformID = input.CounterpartyPlatformID
	record.CounterpartyDiscomID = input.CounterpartyDiscomID
	record.OrderItemID = input.OrderItemID
	if err := sm.database.InsertSettlement(ctx, record); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Tracking settlement for transaction '%s' role=%s quantity=%g", record.TransactionID, role, record.ContractedQuantity)
	return record, nil
}

func (sm *settlementManager) GetSettlements(ctx context.Context, transactionID string) ([]*tstypes.SettlementRecord, error) {
	records, err := sm.database.GetSettlementsByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, i18n.NewError(ctx, i18n.MsgSettlementNotFound, transactionID)
	}
	return records, nil
}

func (sm *settlementManager) TriggerOnSettle(ctx context.Context, record *tstypes.SettlementRecord) bool {
	if !sm.notifier.enabled() || record.OnSettleNotified {
		return false
	}
	delivered := sm.notifier.send(ctx, record)
	sm.metrics.NotificationAttempted(delivered)
	return delivered
}
