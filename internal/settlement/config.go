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
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/restclient"
)

const (
	// NotifyConfigDefaultDomain is the protocol domain used when no order is stored for a trade
	NotifyConfigDefaultDomain = "defaultDomain"
)

var notifyConfigPrefix = config.NewPluginConfig("settlement.notify")

// InitConfig registers the on_settle notification endpoint, which is a REST client
func InitConfig() {
	restclient.InitPrefix(notifyConfigPrefix)
	notifyConfigPrefix.AddKnownKey(NotifyConfigDefaultDomain, "energy-trade")
}
