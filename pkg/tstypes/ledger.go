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

package tstypes

// LedgerRecord is the latest set of settlement facts the external ledger holds for a trade
type LedgerRecord struct {
	TransactionID      string       `json:"transactionId"`
	BuyerDiscomID      string       `json:"buyerDiscomId,omitempty"`
	SellerDiscomID     string       `json:"sellerDiscomId,omitempty"`
	StatusBuyerDiscom  DiscomStatus `json:"statusBuyerDiscom"`
	StatusSellerDiscom DiscomStatus `json:"statusSellerDiscom"`
	ActualDelivered    *float64     `json:"actualDelivered,omitempty"`
	SettlementCycleID  string       `json:"settlementCycleId,omitempty"`
	UpdatedAt          *Timestamp   `json:"updatedAt,omitempty"`
}
