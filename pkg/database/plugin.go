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

package database

import (
	"context"

	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

// Plugin is the interface implemented by each database plugin
type Plugin interface {
	PersistenceInterface

	// Name is the name used to select the plugin in configuration
	Name() string

	// InitPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init opens the database, waits for it to be reachable, and applies any migrations
	Init(ctx context.Context, prefix config.Prefix) error

	// Close releases the connection pool
	Close()
}

// PersistenceInterface holds the settlement records driven by the reconciliation engine,
// and the orders the protocol gateway persists when a trade is confirmed.
//
// Settlement records are keyed by transaction id and role, and are never deleted.
type PersistenceInterface interface {

	// RunAsGroup instructs the database plugin that all database operations performed within the context
	// function can be grouped into a single transaction (if supported).
	// Note, the caller is responsible for passing the context back to all database operations performed within the supplied function.
	RunAsGroup(ctx context.Context, fn func(ctx context.Context) error) error

	// InsertSettlement creates a new settlement record.
	// Fails with a conflict if a record already exists for the transaction id and role.
	InsertSettlement(ctx context.Context, settlement *tstypes.SettlementRecord) error

	// GetSettlement returns nil if no record exists
	GetSettlement(ctx context.Context, transactionID string, role tstypes.Role) (*tstypes.SettlementRecord, error)

	// GetSettlementsByTransaction returns every role's record for a transaction, in creation order
	GetSettlementsByTransaction(ctx context.Context, transactionID string) ([]*tstypes.SettlementRecord, error)

	// GetUnsettledSettlements returns every record that has not reached SETTLED, in creation order
	GetUnsettledSettlements(ctx context.Context) ([]*tstypes.SettlementRecord, error)

	// UpdateSettlement persists the reconciliation state of a record: discom statuses, settlement status,
	// ledger snapshot, delivered quantities and the settled timestamp.
	// It never modifies the notification flag.
	UpdateSettlement(ctx context.Context, settlement *tstypes.SettlementRecord) error

	// MarkSettlementNotified conditionally sets the notification flag, returning false if it was already set
	MarkSettlementNotified(ctx context.Context, transactionID string, role tstypes.Role) (bool, error)

	// UpsertOrder inserts or replaces the order for a transaction id and role
	UpsertOrder(ctx context.Context, order *tstypes.Order) error

	// GetOrderByTransactionID returns the earliest order stored for the transaction, or nil
	GetOrderByTransactionID(ctx context.Context, transactionID string) (*tstypes.Order, error)

	// UpdateOrderStatus returns false if no order exists for the transaction id and role.
	// Metadata is merged into the existing order metadata when supplied.
	UpdateOrderStatus(ctx context.Context, transactionID string, role tstypes.Role, status tstypes.OrderStatus, metadata tstypes.JSONObject) (bool, error)
}
