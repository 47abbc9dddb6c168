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
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
	"github.com/stretchr/testify/assert"
)

func TestInitSQLCommon(t *testing.T) {
	s, cleanup := newSQLiteTestProvider(t)
	defer cleanup()
	assert.NotNil(t, s.DB())
}

func TestInitSQLCommonMissingOptions(t *testing.T) {
	s := &SQLCommon{}
	mp := newMockProvider()
	err := s.Init(context.Background(), nil, mp.prefix)
	assert.Regexp(t, "TS10120", err)
}

func TestInitSQLCommonOpenFailed(t *testing.T) {
	mp := newMockProvider()
	mp.openError = fmt.Errorf("pop")
	err := mp.Init(context.Background(), mp, mp.prefix)
	assert.Regexp(t, "TS10120.*pop", err)
}

func TestInitSQLCommonPingFailed(t *testing.T) {
	mp := newMockProvider()
	mp.mockDB, mp.mdb, _ = sqlmock.New(sqlmock.MonitorPingsOption(true))
	mp.mdb.ExpectPing().WillReturnError(fmt.Errorf("pop"))
	mp.mdb.ExpectPing().WillReturnError(fmt.Errorf("pop"))
	err := mp.Init(context.Background(), mp, mp.prefix)
	assert.Regexp(t, "TS10129.*pop", err)
	assert.NoError(t, mp.mdb.ExpectationsWereMet())
}

func TestInitSQLCommonPingRecovers(t *testing.T) {
	mp := newMockProvider()
	mp.mockDB, mp.mdb, _ = sqlmock.New(sqlmock.MonitorPingsOption(true))
	mp.mdb.ExpectPing().WillReturnError(fmt.Errorf("pop"))
	mp.mdb.ExpectPing()
	err := mp.Init(context.Background(), mp, mp.prefix)
	assert.NoError(t, err)
	assert.NoError(t, mp.mdb.ExpectationsWereMet())
}

func TestInitSQLCommonMigrationOpenFailed(t *testing.T) {
	mp := newMockProvider()
	mp.prefix.Set(SQLConfMigrationsAuto, true)
	mp.getMigrationDriverError = fmt.Errorf("pop")
	err := mp.Init(context.Background(), mp, mp.prefix)
	assert.Regexp(t, "TS10127.*pop", err)
}

func TestInitSQLCommonMaxConns(t *testing.T) {
	mp := newMockProvider()
	mp.prefix.Set(SQLConfMaxConnections, 5)
	err := mp.Init(context.Background(), mp, mp.prefix)
	assert.NoError(t, err)
	assert.Equal(t, 5, mp.DB().Stats().MaxOpenConnections)
}

func TestRunAsGroup(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE settlements").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.RunAsGroup(context.Background(), func(ctx context.Context) error {
		if err := s.UpdateSettlement(ctx, tstypes.NewSettlementRecord("txn-1", tstypes.RoleBuyer, 10)); err != nil {
			return err
		}
		_, tx, autoCommit, err := s.beginOrUseTx(ctx)
		assert.NoError(t, err)
		assert.True(t, autoCommit)
		_, err = s.updateTx(ctx, tx, sq.Update("orders").Set("status", "DELIVERED").Where(sq.Eq{"transaction_id": "txn-1"}))
		return err
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunAsGroupFunctionFails(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectRollback()
	err := s.RunAsGroup(context.Background(), func(ctx context.Context) error {
		return fmt.Errorf("pop")
	})
	assert.Regexp(t, "pop", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunAsGroupBeginFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin().WillReturnError(fmt.Errorf("pop"))
	err := s.RunAsGroup(context.Background(), func(ctx context.Context) error {
		return nil
	})
	assert.Regexp(t, "TS10122", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunAsGroupCommitFail(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(fmt.Errorf("pop"))
	err := s.RunAsGroup(context.Background(), func(ctx context.Context) error {
		return nil
	})
	assert.Regexp(t, "TS10126", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertTxPostgreSQLReturnedSeq(t *testing.T) {
	mp := newMockProvider()
	mp.fakePSQLInsert = true
	s, mock := mp.init()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"seq"}))
	mock.ExpectQuery("INSERT INTO settlements .* RETURNING seq").WillReturnRows(sqlmock.NewRows([]string{"seq"}).AddRow(12345))
	mock.ExpectCommit()
	err := s.InsertSettlement(context.Background(), tstypes.NewSettlementRecord("txn-1", tstypes.RoleBuyer, 10))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertTxPostgreSQLReturnedSeqFail(t *testing.T) {
	mp := newMockProvider()
	mp.fakePSQLInsert = true
	s, mock := mp.init()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"seq"}))
	mock.ExpectQuery("INSERT INTO settlements .*").WillReturnError(fmt.Errorf("pop"))
	mock.ExpectRollback()
	err := s.InsertSettlement(context.Background(), tstypes.NewSettlementRecord("txn-1", tstypes.RoleBuyer, 10))
	assert.Regexp(t, "TS10124", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertTxPostgreSQLDuplicateKey(t *testing.T) {
	mp := newMockProvider()
	mp.fakePSQLInsert = true
	s, mock := mp.init()
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .*").WillReturnRows(sqlmock.NewRows([]string{"seq"}))
	mock.ExpectQuery("INSERT INTO orders .*").WillReturnError(errMockDuplicateKey)
	mock.ExpectRollback()
	err := s.UpsertOrder(context.Background(), &tstypes.Order{TransactionID: "txn-1", Role: tstypes.RoleBuyer})
	assert.Regexp(t, "TS10130", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRollbackTxAlreadyDone(t *testing.T) {
	s, mock := newMockProvider().init()
	mock.ExpectBegin()
	mock.ExpectCommit()
	ctx, tx, _, err := s.beginOrUseTx(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, s.commitTx(ctx, tx, false))
	s.rollbackTx(ctx, tx, false)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseNoDB(t *testing.T) {
	s := &SQLCommon{}
	s.Close()
}
