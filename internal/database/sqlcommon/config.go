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
	"fmt"

	"github.com/kaleido-io/tradesettle/internal/config"
)

const (
	// SQLConfMigrationsAuto enables automatic migrations
	SQLConfMigrationsAuto = "migrations.auto"
	// SQLConfMigrationsDirectory is the directory containing the numerically ordered migration DDL files to apply to the database
	SQLConfMigrationsDirectory = "migrations.directory"
	// SQLConfDatasourceURL is the datasource connection URL string
	SQLConfDatasourceURL = "url"
	// SQLConfMaxConnections maximum connections to the database
	SQLConfMaxConnections = "maxConns"
	// SQLConfMaxConnIdleTime maximum time a connection can sit idle in the pool
	SQLConfMaxConnIdleTime = "maxConnIdleTime"
	// SQLConfConnectRetryInitialDelay is the first delay when waiting for the database on startup
	SQLConfConnectRetryInitialDelay = "connect.retry.initialDelay"
	// SQLConfConnectRetryMaxDelay caps the delay when waiting for the database on startup
	SQLConfConnectRetryMaxDelay = "connect.retry.maxDelay"
	// SQLConfConnectRetryMaxAttempts is the number of connection checks before startup fails
	SQLConfConnectRetryMaxAttempts = "connect.retry.maxAttempts"
)

const (
	defaultMigrationsDirectoryTemplate = "./db/migrations/%s"
)

// InitPrefix registers the configuration common to every SQL provider
func (s *SQLCommon) InitPrefix(provider Provider, prefix config.Prefix) {
	prefix.AddKnownKey(SQLConfMigrationsAuto, false)
	prefix.AddKnownKey(SQLConfDatasourceURL)
	prefix.AddKnownKey(SQLConfMigrationsDirectory, fmt.Sprintf(defaultMigrationsDirectoryTemplate, provider.Name()))
	prefix.AddKnownKey(SQLConfMaxConnections) // some providers set a default
	prefix.AddKnownKey(SQLConfMaxConnIdleTime, "1m")
	prefix.AddKnownKey(SQLConfConnectRetryInitialDelay, "250ms")
	prefix.AddKnownKey(SQLConfConnectRetryMaxDelay, "5s")
	prefix.AddKnownKey(SQLConfConnectRetryMaxAttempts, 10)
}
