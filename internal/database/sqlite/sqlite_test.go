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

package sqlite

import (
	"context"
	"fmt"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/database/sqlcommon"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
	"github.com/stretchr/testify/assert"
)

func TestSQLiteProvider(t *testing.T) {
	config.Reset()
	sqlite := &SQLite{}
	prefix := config.NewPluginConfig("unittest")
	sqlite.InitPrefix(prefix)
	prefix.Set(sqlcommon.SQLConfDatasourceURL, "file::memory:")
	prefix.Set(sqlcommon.SQLConfMigrationsAuto, true)
	prefix.Set(sqlcommon.SQLConfMigrationsDirectory, "../../../db/migrations/sqlite")
	err := sqlite.Init(context.Background(), prefix)
	assert.NoError(t, err)
	defer sqlite.Close()

	assert.Equal(t, "sqlite", sqlite.Name())
	assert.Equal(t, sq.Dollar, sqlite.PlaceholderFormat())
	assert.Equal(t, 1, sqlite.DB().Stats().MaxOpenConnections)

	insert := sq.Insert("test").Columns("col1").Values("val1")
	insert, query := sqlite.UpdateInsertForSequenceReturn(insert)
	sql, _, err := insert.ToSql()
	assert.NoError(t, err)
	assert.Equal(t, "INSERT INTO test (col1) VALUES (?)", sql)
	assert.False(t, query)

	// The migrated schema is usable
	ctx := context.Background()
	err = sqlite.InsertSettlement(ctx, tstypes.NewSettlementRecord("txn-1", tstypes.RoleBuyer, 5))
	assert.NoError(t, err)
	rec, err := sqlite.GetSettlement(ctx, "txn-1", tstypes.RoleBuyer)
	assert.NoError(t, err)
	assert.Equal(t, float64(5), rec.ContractedQuantity)

	// A second row for the same transaction and role is rejected by the unique index
	_, err = sqlite.DB().ExecContext(ctx, `INSERT INTO settlements
		(transaction_id, role, buyer_discom_status, seller_discom_status, settlement_status, contracted_quantity, created, updated)
		VALUES ('txn-1', 'BUYER', 'PENDING', 'PENDING', 'PENDING', 5, 0, 0)`)
	assert.Error(t, err)
	assert.True(t, sqlite.IsUniqueViolation(err))
	assert.False(t, sqlite.IsUniqueViolation(fmt.Errorf("pop")))
}
