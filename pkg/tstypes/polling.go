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

// PollResult is the outcome of one sweep over the unsettled records. It is not persisted.
type PollResult struct {
	SettlementsChecked int        `json:"settlementsChecked"`
	SettlementsUpdated int        `json:"settlementsUpdated"`
	NewlySettled       []string   `json:"newlySettled"`
	Errors             []string   `json:"errors"`
	PolledAt           *Timestamp `json:"polledAt"`
}

// PollingStatus is the operator view of the reconciliation poller
type PollingStatus struct {
	Enabled        bool        `json:"enabled"`
	Running        bool        `json:"running"`
	IsPolling      bool        `json:"isPolling"`
	IntervalMS     int64       `json:"intervalMs"`
	LastPollResult *PollResult `json:"lastPollResult"`
}

// Status is the response to the node status API
type Status struct {
	PendingTransactions int            `json:"pendingTransactions"`
	Polling             *PollingStatus `json:"polling"`
}
