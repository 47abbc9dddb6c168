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

// ProtocolAction is an outbound action sent to a counter-party gateway
type ProtocolAction string

const (
	ActionSelect  ProtocolAction = "select"
	ActionInit    ProtocolAction = "init"
	ActionConfirm ProtocolAction = "confirm"
	ActionStatus  ProtocolAction = "status"

	// ActionOnSettle tags the downstream settlement notification. It has no outbound counterpart.
	ActionOnSettle ProtocolAction = "on_settle"
)

// ProtocolActions are the actions that are awaited through a callback
var ProtocolActions = []ProtocolAction{ActionSelect, ActionInit, ActionConfirm, ActionStatus}

// ParseAction accepts either an action, or the name of its callback (on_<action>)
func ParseAction(s string) (ProtocolAction, bool) {
	s = strings.TrimPrefix(strings.ToLower(s), "on_")
	for _, a := range ProtocolActions {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

// Callback is the name of the inbound callback that carries the result of this action
func (a ProtocolAction) Callback() string {
	return "on_" + string(a)
}

// ProtocolContext is the routing header carried on every protocol message
type ProtocolContext struct {
	Domain        string     `json:"domain"`
	Action        string     `json:"action"`
	Version       string     `json:"version,omitempty"`
	BapID         string     `json:"bap_id,omitempty"`
	BapURI        string     `json:"bap_uri,omitempty"`
	BppID         string     `json:"bpp_id,omitempty"`
	BppURI        string     `json:"bpp_uri,omitempty"`
	TransactionID string     `json:"transaction_id"`
	MessageID     string     `json:"message_id"`
	Timestamp     *Timestamp `json:"timestamp,omitempty"`
}

// ProtocolError is the error block a counter-party can attach to a callback or acknowledgement
type ProtocolError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// CallbackEnvelope is an inbound callback, or an outbound request, on the protocol.
// The business message is opaque.
type CallbackEnvelope struct {
	Context *ProtocolContext `json:"context"`
	Message JSONObject       `json:"message"`
	Error   *ProtocolError   `json:"error,omitempty"`
}

type AckStatus string

const (
	AckStatusACK  AckStatus = "ACK"
	AckStatusNACK AckStatus = "NACK"
)

type AckBody struct {
	Status AckStatus `json:"status"`
}

type AckMessage struct {
	Ack AckBody `json:"ack"`
}

// Ack is the synchronous acknowledgement to any protocol request
type Ack struct {
	Message AckMessage     `json:"message"`
	Error   *ProtocolError `json:"error,omitempty"`
}

func NewAck() *Ack {
	return &Ack{Message: AckMessage{Ack: AckBody{Status: AckStatusACK}}}
}

func NewNack(code, message string) *Ack {
	return &Ack{
		Message: AckMessage{Ack: AckBody{Status: AckStatusNACK}},
		Error:   &ProtocolError{Code: code, Message: message},
	}
}

func (a *Ack) IsACK() bool {
	return a != nil && a.Message.Ack.Status == AckStatusACK
}

// SettlementNotice is the settlement body of an on_settle notification
type SettlementNotice struct {
	TransactionID      string           `json:"transactionId"`
	OrderItemID        string           `json:"orderItemId,omitempty"`
	ContractedQuantity float64          `json:"contractedQuantity"`
	ActualDelivered    *float64         `json:"actualDelivered"`
	DeviationKWh       *float64         `json:"deviationKwh"`
	SettlementStatus   SettlementStatus `json:"settlementStatus"`
}

type OnSettleMessage struct {
	Settlement *SettlementNotice `json:"settlement"`
}

// OnSettleEnvelope is the downstream notification sent once a settlement reaches SETTLED
type OnSettleEnvelope struct {
	Context *ProtocolContext `json:"context"`
	Message OnSettleMessage  `json:"message"`
}

// ActionRequest is the API payload to send an action to the counterparty gateway
type ActionRequest struct {
	TransactionID string     `json:"transactionId,omitempty"`
	Message       JSONObject `json:"message"`
}
