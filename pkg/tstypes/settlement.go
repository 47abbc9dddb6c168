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

import "strings"

// Role is the local party's perspective on a trade. One trade produces one settlement record per role.
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

// ParseRole is case insensitive, and returns false for anything other than BUYER or SELLER
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(s)) {
	case RoleBuyer:
		return RoleBuyer, true
	case RoleSeller:
		return RoleSeller, true
	default:
		return "", false
	}
}

// DiscomStatus is the completion status a ledger reports for one side of a trade
type DiscomStatus string

const (
	DiscomStatusPending   DiscomStatus = "PENDING"
	DiscomStatusCompleted DiscomStatus = "COMPLETED"
)

// SettlementStatus is derived from the pair of discom statuses. SETTLED is terminal.
type SettlementStatus string

const (
	SettlementStatusPending         SettlementStatus = "PENDING"
	SettlementStatusBuyerCompleted  SettlementStatus = "BUYER_COMPLETED"
	SettlementStatusSellerCompleted SettlementStatus = "SELLER_COMPLETED"
	SettlementStatusSettled         SettlementStatus = "SETTLED"
)

// SettlementRecord tracks reconciliation of one trade, from one local party's perspective.
// Records are never deleted.
type SettlementRecord struct {
	TransactionID          string           `json:"transactionId"`
	Role                   Role             `json:"role"`
	CounterpartyPlatformID string           `json:"counterpartyPlatformId,omitempty"`
	CounterpartyDiscomID   string           `json:"counterpartyDiscomId,omitempty"`
	OrderItemID            string           `json:"orderItemId,omitempty"`
	LedgerSyncedAt         *Timestamp       `json:"ledgerSyncedAt,omitempty"`
	LedgerData             JSONObject       `json:"ledgerData,omitempty"`
	BuyerDiscomStatus      DiscomStatus     `json:"buyerDiscomStatus"`
	SellerDiscomStatus     DiscomStatus     `json:"sellerDiscomStatus"`
	SettlementStatus       SettlementStatus `json:"settlementStatus"`
	ContractedQuantity     float64          `json:"contractedQuantity"`
	ActualDelivered        *float64         `json:"actualDelivered,omitempty"`
	DeviationKWh           *float64         `json:"deviationKwh,omitempty"`
	SettlementCycleID      string           `json:"settlementCycleId,omitempty"`
	SettledAt              *Timestamp       `json:"settledAt,omitempty"`
	OnSettleNotified       bool             `json:"onSettleNotified"`
	Created                *Timestamp       `json:"created,omitempty"`
	Updated                *Timestamp       `json:"updated,omitempty"`
}

// SettlementInput is the API payload to register a new settlement record
type SettlementInput struct {
	TransactionID          string  `json:"transactionId"`
	Role                   string  `json:"role"`
	CounterpartyPlatformID string  `json:"counterpartyPlatformId,omitempty"`
	CounterpartyDiscomID   string  `json:"counterpartyDiscomId,omitempty"`
	OrderItemID            string  `json:"orderItemId,omitempty"`
	ContractedQuantity     float64 `json:"contractedQuantity"`
}

// NewSettlementRecord returns a PENDING record with both discom statuses PENDING
func NewSettlementRecord(txID string, role Role, contractedQuantity float64) *SettlementRecord {
	return &SettlementRecord{
		TransactionID:      txID,
		Role:               role,
		BuyerDiscomStatus:  DiscomStatusPending,
		SellerDiscomStatus: DiscomStatusPending,
		SettlementStatus:   SettlementStatusPending,
		ContractedQuantity: contractedQuantity,
		Created:            Now(),
	}
}
