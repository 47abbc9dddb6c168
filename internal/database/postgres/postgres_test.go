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

package postgres

import (
	"context"
	"fmt"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/database/sqlcommon"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestPostgresProvider(t *testing.T) {
	config.Reset()
	psql := &Postgres{}
	prefix := config.NewPluginConfig("unittest")
	psql.InitPrefix(prefix)
	prefix.Set(sqlcommon.SQLConfDatasourceURL, "!bad connection")
	prefix.Set(sqlcommon.SQLConfConnectRetryMaxAttempts, 1)
	err := psql.Init(context.Background(), prefix)
	assert.Regexp(t, "TS10129", err)
	_, err = psql.GetMigrationDriver(psql.DB())
	assert.Error(t, err)

	assert.Equal(t, "postgres", psql.Name())
	assert.Equal(t, sq.Dollar, psql.PlaceholderFormat())

	insert := sq.Insert("test").Columns("col1").Values("val1")
	insert, query := psql.UpdateInsertForSequenceReturn(insert)
	sql, _, err := insert.ToSql()
	assert.NoError(t, err)
	assert.Equal(t, "INSERT INTO test (col1) VALUES (?) RETURNING seq", sql)
	assert.True(t, query)
}

func TestIsUniqueViolation(t *testing.T) {
	psql := &Postgres{}
	assert.True(t, psql.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, psql.IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, psql.IsUniqueViolation(&pq.Error{Code: "23502"}))
	assert.False(t, psql.IsUniqueViolation(fmt.Errorf("pop")))
}
