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

package difactory

import (
	"context"
	"testing"

	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGetPluginUnknown(t *testing.T) {
	ctx := context.Background()
	_, err := GetPlugin(ctx, "foo")
	assert.Error(t, err)
	assert.Regexp(t, "TS10112", err)
}

func TestGetPluginPostgres(t *testing.T) {
	ctx := context.Background()
	plugin, err := GetPlugin(ctx, "postgres")
	assert.NoError(t, err)
	assert.Equal(t, "postgres", plugin.Name())
}

func TestGetPluginSQLite(t *testing.T) {
	ctx := context.Background()
	plugin, err := GetPlugin(ctx, "sqlite")
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", plugin.Name())
}

func TestInitPrefix(t *testing.T) {
	config.Reset()
	prefix := config.NewPluginConfig("database")
	InitPrefix(prefix)
	assert.Equal(t, 1, prefix.SubPrefix("sqlite").GetInt("maxConns"))
	assert.Equal(t, "./db/migrations/postgres", prefix.SubPrefix("postgres").GetString("migrations.directory"))
}

func TestPluginNames(t *testing.T) {
	assert.Equal(t, []string{"postgres", "sqlite"}, PluginNames())
}
