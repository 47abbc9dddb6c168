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
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// GenerateConfigMarkdown renders a reference of every known key, grouped by section, with its current default.
// Plugin prefixes must be initialized first for their keys to be included.
func GenerateConfigMarkdown() []byte {
	sections := map[string][]string{}
	var sectionNames []string
	for _, k := range GetKnownKeys() {
		section := "(root)"
		if i := strings.LastIndex(k, "."); i > 0 {
			section = k[0:i]
		}
		if _, ok := sections[section]; !ok {
			sectionNames = append(sectionNames, section)
		}
		sections[section] = append(sections[section], k)
	}

	buf := new(bytes.Buffer)
	buf.WriteString("# Configuration Reference\n")
	for _, section := range sectionNames {
		fmt.Fprintf(buf, "\n## %s\n\n|Key|Default|\n|---|---|\n", section)
		for _, k := range sections[section] {
			def := viper.Get(k)
			if def == nil {
				def = ""
			}
			fmt.Fprintf(buf, "|%s|`%v`|\n", strings.TrimPrefix(k, section+"."), def)
		}
	}
	return buf.Bytes()
}
