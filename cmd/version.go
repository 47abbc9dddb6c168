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

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/ghodss/yaml"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/database/difactory"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/ledger/lfactory"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
	"github.com/spf13/cobra"
)

var shortened, output = false, "json"

// Set at build time with -ldflags
var (
	BuildDate            string
	BuildCommit          string
	BuildVersionOverride string
)

// ProtocolInfo is the exchange protocol this binary speaks
type ProtocolInfo struct {
	Version   string   `json:"Version" yaml:"Version"`
	Actions   []string `json:"Actions" yaml:"Actions"`
	Callbacks []string `json:"Callbacks" yaml:"Callbacks"`
}

// PluginInfo is the set of plugin types that can be selected in config
type PluginInfo struct {
	Database []string `json:"Database" yaml:"Database"`
	Ledger   []string `json:"Ledger" yaml:"Ledger"`
}

type Info struct {
	Version  string        `json:"Version,omitempty" yaml:"Version,omitempty"`
	Commit   string        `json:"Commit,omitempty" yaml:"Commit,omitempty"`
	Date     string        `json:"Date,omitempty" yaml:"Date,omitempty"`
	License  string        `json:"License,omitempty" yaml:"License,omitempty"`
	Protocol *ProtocolInfo `json:"Protocol" yaml:"Protocol"`
	Plugins  *PluginInfo   `json:"Plugins" yaml:"Plugins"`
}

func setBuildInfo(info *Info, buildInfo *debug.BuildInfo, ok bool) {
	if ok {
		info.Version = buildInfo.Main.Version
	}
}

func newVersionInfo() *Info {
	info := &Info{
		Date:    BuildDate,
		Commit:  BuildCommit,
		Version: BuildVersionOverride,
		License: "Apache-2.0",
		Protocol: &ProtocolInfo{
			Version: config.DefaultProtocolVersion,
		},
		Plugins: &PluginInfo{
			Database: difactory.PluginNames(),
			Ledger:   lfactory.PluginNames(),
		},
	}
	for _, a := range tstypes.ProtocolActions {
		info.Protocol.Actions = append(info.Protocol.Actions, string(a))
		info.Protocol.Callbacks = append(info.Protocol.Callbacks, a.Callback())
	}
	info.Protocol.Callbacks = append(info.Protocol.Callbacks, string(tstypes.ActionOnSettle))

	// go install gives us the module version, a release build passes it in explicitly
	if info.Version == "" {
		buildInfo, ok := debug.ReadBuildInfo()
		setBuildInfo(info, buildInfo, ok)
	}
	return info
}

func formatVersionInfo(info *Info, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(info, "", "  ")
	case "yaml":
		return yaml.Marshal(info)
	default:
		return nil, i18n.NewError(context.Background(), i18n.MsgInvalidOutputOption, format)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version info",
	Long:  "Prints the build version, the protocol version and actions, and the available plugins",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := newVersionInfo()
		if shortened {
			fmt.Println(info.Version)
			return nil
		}
		b, err := formatVersionInfo(info, output)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&shortened, "short", "s", false, "Prints only the version number")
	versionCmd.Flags().StringVarP(&output, "output", "o", "json", "output format (\"yaml\"|\"json\")")
	rootCmd.AddCommand(versionCmd)
}
