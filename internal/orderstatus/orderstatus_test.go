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

package orderstatus

import (
	"context"
	"fmt"
	"testing"

	"github.com/kaleido-io/tradesettle/mocks/databasemocks"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestOrderStatus(t *testing.T) (*orderStatusManager, *databasemocks.Plugin) {
	mdi := &databasemocks.Plugin{}
	om, err := NewOrderStatusManager(context.Background(), mdi)
	assert.NoError(t, err)
	return om.(*orderStatusManager), mdi
}

func TestNewOrderStatusManagerMissingDeps(t *testing.T) {
	_, err := NewOrderStatusManager(context.Background(), nil)
	assert.Regexp(t, "TS10117", err)
}

func TestUpdateBuyerOrderStatus(t *testing.T) {
	om, mdi := newTestOrderStatus(t)
	meta := tstypes.JSONObject{"deviationKwh": -0.5}
	mdi.On("UpdateOrderStatus", mock.Anything, "txn-A", tstypes.RoleBuyer, tstypes.OrderStatusDelivered, meta).Return(true, nil)
	err := om.UpdateBuyerOrderStatus(context.Background(), "txn-A", tstypes.OrderStatusDelivered, meta)
	assert.NoError(t, err)
	mdi.AssertExpectations(t)
}

func TestUpdateSellerOrderStatusNotFound(t *testing.T) {
	om, mdi := newTestOrderStatus(t)
	mdi.On("UpdateOrderStatus", mock.Anything, "txn-B", tstypes.RoleSeller, tstypes.OrderStatusDelivered, tstypes.JSONObject(nil)).Return(false, nil)
	err := om.UpdateSellerOrderStatus(context.Background(), "txn-B", tstypes.OrderStatusDelivered)
	assert.Regexp(t, "TS10407", err)
	mdi.AssertExpectations(t)
}

func TestUpdateSellerOrderStatusFail(t *testing.T) {
	om, mdi := newTestOrderStatus(t)
	mdi.On("UpdateOrderStatus", mock.Anything, "txn-B", tstypes.RoleSeller, tstypes.OrderStatusDelivered, tstypes.JSONObject(nil)).Return(false, fmt.Errorf("pop"))
	err := om.UpdateSellerOrderStatus(context.Background(), "txn-B", tstypes.OrderStatusDelivered)
	assert.Regexp(t, "pop", err)
	mdi.AssertExpectations(t)
}
