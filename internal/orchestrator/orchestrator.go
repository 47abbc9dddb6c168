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

package orchestrator

import (
	"context"

	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/database/difactory"
	"github.com/kaleido-io/tradesettle/internal/gateway"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/ledger/lfactory"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/internal/metrics"
	"github.com/kaleido-io/tradesettle/internal/orderstatus"
	"github.com/kaleido-io/tradesettle/internal/settlement"
	"github.com/kaleido-io/tradesettle/internal/syncasync"
	"github.com/kaleido-io/tradesettle/pkg/database"
	"github.com/kaleido-io/tradesettle/pkg/ledger"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

var (
	databaseConfig = config.NewPluginConfig("database")
	ledgerConfig   = config.NewPluginConfig("ledger")
)

// Orchestrator is the main interface behind the API, implementing the actions triggered by each route
type Orchestrator interface {
	Init(ctx context.Context, cancelCtx context.CancelFunc) error
	Start() error
	WaitStop() // The close itself is performed by canceling the context

	Bridge() syncasync.Bridge
	Settlement() settlement.Manager
	Gateway() gateway.Manager
	Metrics() metrics.Manager

	GetStatus(ctx context.Context) *tstypes.Status
}

type orchestrator struct {
	ctx         context.Context
	cancelCtx   context.CancelFunc
	started     bool
	database    database.Plugin
	ledger      ledger.Plugin
	metrics     metrics.Manager
	bridge      syncasync.Bridge
	orderStatus orderstatus.Manager
	settlement  settlement.Manager
	gateway     gateway.Manager
}

func NewOrchestrator() Orchestrator {
	or := &orchestrator{}

	// Initialize the config on all the factories
	difactory.InitPrefix(databaseConfig)
	lfactory.InitPrefix(ledgerConfig)
	settlement.InitConfig()
	gateway.InitConfig()

	return or
}

func (or *orchestrator) Init(ctx context.Context, cancelCtx context.CancelFunc) (err error) {
	or.ctx = ctx
	or.cancelCtx = cancelCtx
	err = or.initPlugins(ctx)
	if err == nil {
		err = or.initComponents(ctx)
	}
	return err
}

func (or *orchestrator) Start() error {
	err := or.settlement.Start()
	if err == nil {
		or.started = true
	}
	return err
}

func (or *orchestrator) WaitStop() {
	if !or.started {
		return
	}
	<-or.ctx.Done()
	or.settlement.Stop()
	or.settlement.WaitStop()
	or.bridge.Close()
	or.database.Close()
	or.started = false
	log.L(or.ctx).Infof("Orchestrator stopped")
}

func (or *orchestrator) Bridge() syncasync.Bridge {
	return or.bridge
}

func (or *orchestrator) Settlement() settlement.Manager {
	return or.settlement
}

func (or *orchestrator) Gateway() gateway.Manager {
	return or.gateway
}

func (or *orchestrator) Metrics() metrics.Manager {
	return or.metrics
}

func (or *orchestrator) initPlugins(ctx context.Context) (err error) {

	if or.database == nil {
		if or.database, err = or.initDatabasePlugin(ctx); err != nil {
			return err
		}
	}

	if or.ledger == nil {
		if or.ledger, err = or.initLedgerPlugin(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (or *orchestrator) initComponents(ctx context.Context) (err error) {

	if or.metrics == nil {
		or.metrics = metrics.NewMetricsManager(ctx)
	}

	if or.bridge == nil {
		or.bridge = syncasync.NewSyncAsyncBridge(ctx, or.metrics)
	}

	if or.orderStatus == nil {
		if or.orderStatus, err = orderstatus.NewOrderStatusManager(ctx, or.database); err != nil {
			return err
		}
	}

	if or.settlement == nil {
		if config.GetString(config.SettlementLocalDiscomID) == "" {
			return i18n.NewError(ctx, i18n.MsgMissingPluginConfig, config.SettlementLocalDiscomID, "settlement")
		}
		if or.settlement, err = settlement.NewSettlementManager(ctx, or.database, or.ledger, or.orderStatus, or.metrics); err != nil {
			return err
		}
	}

	if or.gateway == nil {
		if or.gateway, err = gateway.NewGatewayManager(ctx, or.database, or.settlement, or.bridge); err != nil {
			return err
		}
	}

	return nil
}

func (or *orchestrator) initDatabasePlugin(ctx context.Context) (database.Plugin, error) {
	pluginType := config.GetString(config.DatabaseType)
	plugin, err := difactory.GetPlugin(ctx, pluginType)
	if err != nil {
		return nil, err
	}
	err = plugin.Init(ctx, databaseConfig.SubPrefix(pluginType))
	return plugin, err
}

func (or *orchestrator) initLedgerPlugin(ctx context.Context) (ledger.Plugin, error) {
	pluginType := config.GetString(config.LedgerType)
	plugin, err := lfactory.GetPlugin(ctx, pluginType)
	if err != nil {
		return nil, err
	}
	err = plugin.Init(ctx, ledgerConfig.SubPrefix(pluginType))
	return plugin, err
}
