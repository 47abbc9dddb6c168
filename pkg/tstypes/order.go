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

// OrderStatus is the lifecycle status of an order document
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is the persisted order for one side of a trade.
// Context holds the protocol context captured when the order was created.
type Order struct {
	TransactionID string      `json:"transactionId"`
	Role          Role        `json:"role"`
	Status        OrderStatus `json:"status"`
	Context       JSONObject  `json:"context,omitempty"`
	Metadata      JSONObject  `json:"metadata,omitempty"`
	Created       *Timestamp  `json:"created,omitempty"`
	Updated       *Timestamp  `json:"updated,omitempty"`
}

// Domain returns the protocol domain the order was placed under, or empty
func (o *Order) Domain() string {
	if o == nil {
		return ""
	}
	return o.Context.GetString("domain")
}
