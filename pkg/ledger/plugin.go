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

package ledger

import (
	"context"

	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

// Plugin is the interface implemented by each ledger plugin.
//
// The ledger is the authority on whether each side of a trade has completed. It is only ever
// queried, and implementations are responsible for bounding the time a query can take.
type Plugin interface {
	Name() string

	// InitPrefix initializes the set of configuration options that are valid, with defaults. Called on all plugins.
	InitPrefix(prefix config.Prefix)

	// Init initializes the plugin, with configuration
	Init(ctx context.Context, prefix config.Prefix) error

	// QueryTradeByTransaction returns the latest settlement facts for a trade, as seen by the given local discom.
	// Returns nil with no error if the ledger has no record for the trade yet.
	QueryTradeByTransaction(ctx context.Context, transactionID, discomID string) (*tstypes.LedgerRecord, error)
}
