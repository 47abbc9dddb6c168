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
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/database/sqlcommon"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLite is an embedded, single file, database. Useful for development and single node deployments.
type SQLite struct {
	sqlcommon.SQLCommon
}

func (sqlite *SQLite) InitPrefix(prefix config.Prefix) {
	sqlite.SQLCommon.InitPrefix(sqlite, prefix)
	// SQLite serializes writes, and an in-memory database only exists on a single connection
	prefix.AddKnownKey(sqlcommon.SQLConfMaxConnections, 1)
}

func (sqlite *SQLite) Init(ctx context.Context, prefix config.Prefix) error {
	return sqlite.SQLCommon.Init(ctx, sqlite, prefix)
}

func (sqlite *SQLite) Name() string {
	return "sqlite"
}

func (sqlite *SQLite) PlaceholderFormat() sq.PlaceholderFormat {
	return sq.Dollar
}

func (sqlite *SQLite) UpdateInsertForSequenceReturn(insert sq.InsertBuilder) (sq.InsertBuilder, bool) {
	return insert, false
}

// IsUniqueViolation relies on the driver enabling extended result codes
func (sqlite *SQLite) IsUniqueViolation(err error) bool {
	var sqliteErr *moderncsqlite.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}

func (sqlite *SQLite) Open(url string) (*sql.DB, error) {
	return sql.Open("sqlite", url)
}

func (sqlite *SQLite) GetMigrationDriver(db *sql.DB) (migratedb.Driver, error) {
	return migratesqlite.WithInstance(db, &migratesqlite.Config{})
}
