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
	"fmt"
	"net/http"
	_ "net/http/pprof" // registers the debug handlers on the default mux
	"os"
	"os/signal"
	"syscall"

	"github.com/ghodss/yaml"
	"github.com/kaleido-io/tradesettle/internal/apiserver"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/internal/orchestrator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var sigs = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:   "tradesettle",
	Short: "Energy trade settlement node",
	Long: `Runs the trade settlement node. It relays protocol actions to the counterparty
gateway, tracks confirmed trades, and reconciles them against the ledger until settled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var showConfigCommand = &cobra.Command{
	Use:     "showconfig",
	Aliases: []string{"showconf"},
	Short:   "List out the configuration options",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Initialize the plugin prefixes, so their keys are known
		_ = orchestrator.NewOrchestrator()
		apiserver.InitConfig()

		keys := config.GetKnownKeys()
		conf := make(map[string]interface{}, len(keys))
		for _, k := range keys {
			conf[k] = viper.Get(k)
		}
		b, err := yaml.Marshal(conf)
		if err != nil {
			return err
		}
		fmt.Print(string(b))
		return nil
	},
}

var cfgFile string

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "f", "", "config file")
	rootCmd.AddCommand(showConfigCommand)
}

// _utOrchestrator is set by unit tests
var _utOrchestrator orchestrator.Orchestrator

func getOrchestrator() orchestrator.Orchestrator {
	if _utOrchestrator != nil {
		return _utOrchestrator
	}
	return orchestrator.NewOrchestrator()
}

// Execute is called by the main method of the package
func Execute() error {
	return rootCmd.Execute()
}

func setupLogging() {
	log.SetLevel(config.GetString(config.LogLevel))
	log.SetFormatting(log.Formatting{
		DisableColor:    !config.GetBool(config.LogColor),
		TimestampFormat: config.GetString(config.LogTimeFormat),
		UTC:             config.GetBool(config.LogUTC),
	})
}

func run() error {

	// Read the configuration first of all
	err := config.ReadConfig(cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	ctx, cancelCtx := context.WithCancel(context.Background())
	ctx = log.WithLogger(ctx, logrus.WithField("pid", fmt.Sprintf("%d", os.Getpid())))
	setupLogging()
	log.L(ctx).Infof("Trade settlement node")
	log.L(ctx).Infof("© Copyright 2022 Kaleido, Inc.")

	// Deferred error return from reading config
	if err != nil {
		cancelCtx()
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, err)
	}

	debugPort := config.GetInt(config.DebugPort)
	if debugPort > 0 {
		go func() {
			log.L(ctx).Debugf("Debug HTTP endpoint listening on localhost:%d: %s", debugPort, http.ListenAndServe(fmt.Sprintf("localhost:%d", debugPort), nil))
		}()
	}

	// Setup signal handling to cancel the context, which shuts down the API Server
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	// The orchestrator registers the plugin config prefixes, which must happen after the config is read
	o := getOrchestrator()
	apiserver.InitConfig()
	as := apiserver.NewAPIServer()

	errChan := make(chan error, 1)
	go startNode(ctx, cancelCtx, o, as, errChan)

	select {
	case sig := <-sigs:
		log.L(ctx).Infof("Shutting down due to %s", sig.String())
		cancelCtx()
		o.WaitStop()
		return nil
	case err := <-errChan:
		cancelCtx()
		return err
	}
}

func startNode(ctx context.Context, cancelCtx context.CancelFunc, o orchestrator.Orchestrator, as apiserver.Server, errChan chan error) {
	if err := o.Init(ctx, cancelCtx); err != nil {
		errChan <- err
		return
	}
	if err := o.Start(); err != nil {
		errChan <- err
		return
	}

	// Run the API Server
	errChan <- as.Serve(ctx, o)
}
