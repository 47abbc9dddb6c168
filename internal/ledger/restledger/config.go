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

package restledger

import (
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/restclient"
)

const (
	// LedgerConfigTradesPath is the path, relative to the ledger URL, of the trade query API
	LedgerConfigTradesPath = "tradesPath"
)

func (r *RESTLedger) InitPrefix(prefix config.Prefix) {
	restclient.InitPrefix(prefix)
	prefix.AddKnownKey(LedgerConfigTradesPath, "/trades")
}
