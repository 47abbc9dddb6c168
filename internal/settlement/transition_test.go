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

package settlement

import (
	"testing"

	"github.com/kaleido-io/tradesettle/pkg/tstypes"
	"github.com/stretchr/testify/assert"
)

func TestDeriveSettlementStatus(t *testing.T) {
	tests := []struct {
		buyer, seller tstypes.DiscomStatus
		expected      tstypes.SettlementStatus
	}{
		{"PENDING", "PENDING", tstypes.SettlementStatusPending},
		{"COMPLETED", "PENDING", tstypes.SettlementStatusBuyerCompleted},
		{"PENDING", "COMPLETED", tstypes.SettlementStatusSellerCompleted},
		{"COMPLETED", "COMPLETED", tstypes.SettlementStatusSettled},
		{"completed", " Completed ", tstypes.SettlementStatusSettled},
		{"", "", tstypes.SettlementStatusPending},
		{"FAILED", "COMPLETED", tstypes.SettlementStatusSellerCompleted},
		{"COMPLETED", "IN_PROGRESS", tstypes.SettlementStatusBuyerCompleted},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, DeriveSettlementStatus(test.buyer, test.seller), "%s/%s", test.buyer, test.seller)
		// Deterministic
		assert.Equal(t, test.expected, DeriveSettlementStatus(test.buyer, test.seller))
	}
}

func TestStatusRank(t *testing.T) {
	assert.Less(t, statusRank(tstypes.SettlementStatusPending), statusRank(tstypes.SettlementStatusBuyerCompleted))
	assert.Equal(t, statusRank(tstypes.SettlementStatusBuyerCompleted), statusRank(tstypes.SettlementStatusSellerCompleted))
	assert.Less(t, statusRank(tstypes.SettlementStatusSellerCompleted), statusRank(tstypes.SettlementStatusSettled))
}
