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

package syncasync

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/internal/metrics"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

// Bridge translates between the asynchronous protocol, where a request is only acknowledged
// and the result arrives later on a separate callback, and a synchronous caller that
// wants to wait for that result.
type Bridge interface {
	// Create registers a pending transaction, starting its deadline timer
	Create(ctx context.Context, transactionID string, action tstypes.ProtocolAction) (*Pending, error)
	// Resolve completes the pending transaction with a callback payload, if one is pending
	Resolve(ctx context.Context, transactionID string, payload *tstypes.CallbackEnvelope)
	// Cancel rejects the pending transaction, if one is pending
	Cancel(ctx context.Context, transactionID string)
	// Count is the number of transactions currently awaiting a callback
	Count() int
	// WaitForCallback is a convenience that creates a pending transaction, sends the request, and waits
	WaitForCallback(ctx context.Context, transactionID string, action tstypes.ProtocolAction, send RequestSender) (*tstypes.CallbackEnvelope, error)
	// Close cancels every pending transaction
	Close()
}

// RequestSender sends the request that should result in a callback
type RequestSender func(ctx context.Context) error

type syncAsyncBridge struct {
	ctx            context.Context
	metrics        metrics.Manager
	defaultTimeout time.Duration
	actionTimeouts map[tstypes.ProtocolAction]time.Duration
	inflightMux    sync.Mutex
	inflight       map[string]*Pending
}

// Pending is a transaction awaiting its callback. It reaches exactly one terminal state:
// resolved with a payload, or rejected with a timeout or cancellation error.
type Pending struct {
	TransactionID string
	Action        tstypes.ProtocolAction
	Created       time.Time
	Deadline      time.Time

	bridge  *syncAsyncBridge
	timer   *time.Timer
	done    chan struct{}
	payload *tstypes.CallbackEnvelope
	err     error
}

func NewSyncAsyncBridge(ctx context.Context, mm metrics.Manager) Bridge {
	sa := &syncAsyncBridge{
		ctx:            log.WithLogField(ctx, "role", "sync-async-bridge"),
		metrics:        mm,
		defaultTimeout: config.GetDuration(config.SyncAsyncTimeout),
		actionTimeouts: make(map[tstypes.ProtocolAction]time.Duration),
		inflight:       make(map[string]*Pending),
	}
	if sa.defaultTimeout <= 0 {
		log.L(sa.ctx).Warnf("Invalid %s '%s'. Using 30s", config.SyncAsyncTimeout, config.GetString(config.SyncAsyncTimeout))
		sa.defaultTimeout = 30 * time.Second
	}
	for name, v := range config.GetObject(config.SyncAsyncActionTimeouts) {
		action, ok := tstypes.ParseAction(name)
		timeout := config.ParseDuration(fmt.Sprintf("%v", v))
		if !ok || timeout <= 0 {
			log.L(sa.ctx).Warnf("Ignoring invalid callback timeout '%v' for action '%s'", v, name)
			continue
		}
		sa.actionTimeouts[action] = timeout
	}
	return sa
}

func (sa *syncAsyncBridge) timeoutFor(action tstypes.ProtocolAction) time.Duration {
	if timeout, ok := sa.actionTimeouts[action]; ok {
		return timeout
	}
	return sa.defaultTimeout
}

func (sa *syncAsyncBridge) Create(ctx context.Context, transactionID string, action tstypes.ProtocolAction) (*Pending, error) {
	if transactionID == "" {
		return nil, i18n.NewError(ctx, i18n.MsgTransactionIDNeeded)
	}

	sa.inflightMux.Lock()
	defer sa.inflightMux.Unlock()

	if existing, ok := sa.inflight[transactionID]; ok {
		return nil, i18n.NewError(ctx, i18n.MsgPendingDuplicate, existing.Action.Callback(), transactionID)
	}

	timeout := sa.timeoutFor(action)
	now := time.Now()
	p := &Pending{
		TransactionID: transactionID,
		Action:        action,
		Created:       now,
		Deadline:      now.Add(timeout),
		bridge:        sa,
		done:          make(chan struct{}),
	}
	sa.inflight[transactionID] = p
	p.timer = time.AfterFunc(timeout, func() { sa.expire(p) })
	sa.metrics.PendingCreated(action)
	log.L(ctx).Debugf("Awaiting '%s' callback for transaction '%s' (timeout=%s)", action.Callback(), transactionID, timeout)
	return p, nil
}

// remove takes the entry out of the table, only if it is still the supplied pending.
// The caller that removes the entry is the only one allowed to complete it.
func (sa *syncAsyncBridge) remove(p *Pending) bool {
	sa.inflightMux.Lock()
	defer sa.inflightMux.Unlock()
	if sa.inflight[p.TransactionID] != p {
		return false
	}
	delete(sa.inflight, p.TransactionID)
	return true
}

func (sa *syncAsyncBridge) removeByID(transactionID string) *Pending {
	sa.inflightMux.Lock()
	defer sa.inflightMux.Unlock()
	p := sa.inflight[transactionID]
	if p != nil {
		delete(sa.inflight, transactionID)
	}
	return p
}

func (sa *syncAsyncBridge) complete(p *Pending, payload *tstypes.CallbackEnvelope, err error, outcome string) {
	p.timer.Stop()
	p.payload = payload
	p.err = err
	close(p.done)
	sa.metrics.PendingCompleted(p.Action, outcome, p.Created)
}

func (sa *syncAsyncBridge) expire(p *Pending) {
	if !sa.remove(p) {
		return
	}
	elapsed := float64(time.Since(p.Created)) / float64(time.Millisecond)
	err := i18n.NewError(sa.ctx, i18n.MsgPendingTimeout, elapsed, p.Action.Callback(), p.TransactionID)
	log.L(sa.ctx).Warnf("%s", err)
	sa.complete(p, nil, err, metrics.OutcomeTimeout)
}

func (sa *syncAsyncBridge) Resolve(ctx context.Context, transactionID string, payload *tstypes.CallbackEnvelope) {
	p := sa.removeByID(transactionID)
	if p == nil {
		log.L(ctx).Warnf("Ignoring callback for transaction '%s' with nothing pending", transactionID)
		return
	}
	if payload != nil && payload.Context != nil && payload.Context.Action != p.Action.Callback() {
		log.L(ctx).Warnf("Transaction '%s' was awaiting '%s' and received '%s'", transactionID, p.Action.Callback(), payload.Context.Action)
	}
	log.L(ctx).Debugf("Resolved '%s' callback for transaction '%s' after %s", p.Action.Callback(), transactionID, time.Since(p.Created))
	sa.complete(p, payload, nil, metrics.OutcomeResolved)
}

func (sa *syncAsyncBridge) Cancel(ctx context.Context, transactionID string) {
	p := sa.removeByID(transactionID)
	if p == nil {
		return
	}
	sa.cancelled(ctx, p)
}

func (sa *syncAsyncBridge) cancelled(ctx context.Context, p *Pending) {
	log.L(ctx).Infof("Cancelled '%s' action on transaction '%s'", p.Action, p.TransactionID)
	sa.complete(p, nil, i18n.NewError(ctx, i18n.MsgPendingCancelled, p.Action, p.TransactionID), metrics.OutcomeCancelled)
}

func (sa *syncAsyncBridge) Count() int {
	sa.inflightMux.Lock()
	defer sa.inflightMux.Unlock()
	return len(sa.inflight)
}

func (sa *syncAsyncBridge) WaitForCallback(ctx context.Context, transactionID string, action tstypes.ProtocolAction, send RequestSender) (*tstypes.CallbackEnvelope, error) {
	p, err := sa.Create(ctx, transactionID, action)
	if err != nil {
		return nil, err
	}
	if err := send(ctx); err != nil {
		if sa.remove(p) {
			sa.cancelled(ctx, p)
		}
		return nil, err
	}
	return p.Wait(ctx)
}

func (sa *syncAsyncBridge) Close() {
	sa.inflightMux.Lock()
	drained := make([]*Pending, 0, len(sa.inflight))
	for id, p := range sa.inflight {
		drained = append(drained, p)
		delete(sa.inflight, id)
	}
	sa.inflightMux.Unlock()

	for _, p := range drained {
		sa.cancelled(sa.ctx, p)
	}
}

// Done is closed once the pending transaction reaches its terminal state
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the callback arrives, the deadline passes, or the pending transaction
// is cancelled. If the supplied context ends first, the pending transaction is cancelled.
func (p *Pending) Wait(ctx context.Context) (*tstypes.CallbackEnvelope, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		if p.bridge.remove(p) {
			p.bridge.cancelled(ctx, p)
		}
		<-p.done
	}
	return p.payload, p.err
}

// IsTimeout reports whether the error is the result of a callback not arriving in time
func IsTimeout(err error) bool {
	return i18n.IsCode(err, i18n.MsgPendingTimeout)
}

// IsCancelled reports whether the error is the result of a pending transaction being cancelled
func IsCancelled(err error) bool {
	return i18n.IsCode(err, i18n.MsgPendingCancelled)
}

// IsDuplicate reports whether the error is the result of a transaction already being pending
func IsDuplicate(err error) bool {
	return i18n.IsCode(err, i18n.MsgPendingDuplicate)
}
