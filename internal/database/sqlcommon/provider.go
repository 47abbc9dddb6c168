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
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	migratedb "github.com/golang-migrate/migrate/v4/database"
)

const (
	sequenceColumn = "seq"
)

// Provider is what a database plugin supplies to SQLCommon: how to connect, how to
// migrate, and how to read the dialect differences that the settlement and order
// tables depend on
type Provider interface {

	// Name is the database type, which is also the subdirectory of db/migrations holding its DDL
	Name() string

	Open(url string) (*sql.DB, error)

	GetMigrationDriver(*sql.DB) (migratedb.Driver, error)

	PlaceholderFormat() sq.PlaceholderFormat

	// UpdateInsertForSequenceReturn returns true if the insert must run as a query to scan back the seq column
	UpdateInsertForSequenceReturn(insert sq.InsertBuilder) (updatedInsert sq.InsertBuilder, runAsQuery bool)

	// IsUniqueViolation reports whether a driver error was a unique key conflict, which is how a
	// concurrent insert of the same (transaction_id, role) from another node surfaces
	IsUniqueViolation(err error) bool
}
