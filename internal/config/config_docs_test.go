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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateConfigMarkdown(t *testing.T) {
	Reset()
	p := NewPluginConfig("docs.plugin")
	p.AddKnownKey("url")
	p.AddKnownKey("retries", 3)

	md := string(GenerateConfigMarkdown())
	assert.Contains(t, md, "## docs.plugin\n")
	assert.Contains(t, md, "|retries|`3`|\n")
	assert.Contains(t, md, "|url|``|\n")
	assert.Contains(t, md, "## settlement.polling\n")
	assert.Contains(t, md, "|interval|`5m`|\n")
	assert.Contains(t, md, "## (root)\n")
	assert.Contains(t, md, "|lang|`en`|\n")
}
