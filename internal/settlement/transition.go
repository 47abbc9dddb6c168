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
	"strings"

	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

// normalizeDiscomStatus maps anything the ledger reports, other than COMPLETED, to PENDING
func normalizeDiscomStatus(s tstypes.DiscomStatus) tstypes.DiscomStatus {
	if strings.EqualFold(strings.TrimSpace(string(s)), string(tstypes.DiscomStatusCompleted)) {
		return tstypes.DiscomStatusCompleted
	}
	return tstypes.DiscomStatusPending
}

// DeriveSettlementStatus is recomputed from scratch on every reconciliation. It does not consider
// the previous status, so a ledger correction is reflected on the next sweep.
func DeriveSettlementStatus(buyer, seller tstypes.DiscomStatus) tstypes.SettlementStatus {
	buyerDone := normalizeDiscomStatus(buyer) == tstypes.DiscomStatusCompleted
	sellerDone := normalizeDiscomStatus(seller) == tstypes.DiscomStatusCompleted
	switch {
	case buyerDone && sellerDone:
		return tstypes.SettlementStatusSettled
	case buyerDone:
		return tstypes.SettlementStatusBuyerCompleted
	case sellerDone:
		return tstypes.SettlementStatusSellerCompleted
	default:
		return tstypes.SettlementStatusPending
	}
}

// statusRank orders the statuses by progress, so a regression can be detected
func statusRank(s tstypes.SettlementStatus) int {
	switch s {
	case tstypes.SettlementStatusSettled:
		return 2
	case tstypes.SettlementStatusBuyerCompleted, tstypes.SettlementStatusSellerCompleted:
		return 1
	default:
		return 0
	}
}
