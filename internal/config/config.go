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
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/spf13/viper"
)

// DefaultProtocolVersion is the protocol core version this node speaks, unless configured otherwise
const DefaultProtocolVersion = "1.1.0"

// The following keys can be access from the root configuration.
// Plugins are responsible for defining their own keys using the Prefix interface
var (
	// Lang is the language to use for translation
	Lang = rootKey("lang")
	// LogLevel is the logging level
	LogLevel = rootKey("log.level")
	// LogColor forces color to be enabled, even if we do not detect a TTY
	LogColor = rootKey("log.color")
	// LogTimeFormat is a string format for timestamps
	LogTimeFormat = rootKey("log.timeFormat")
	// LogUTC sets log timestamps to the UTC timezone
	LogUTC = rootKey("log.utc")
	// DebugPort a HTTP port on which to enable the go debugger
	DebugPort = rootKey("debug.port")
	// CorsEnabled determines whether CORS headers are added to API responses
	CorsEnabled = rootKey("cors.enabled")
	// CorsAllowedOrigins CORS allowed origins
	CorsAllowedOrigins = rootKey("cors.origins")
	// CorsAllowedHeaders CORS allowed headers
	CorsAllowedHeaders = rootKey("cors.headers")
	// CorsMaxAge is the maximum age a browser should rely on CORS checks
	CorsMaxAge = rootKey("cors.maxAge")
	// APIRequestTimeout the server side timeout for API calls (unless otherwise overridden)
	APIRequestTimeout = rootKey("api.requestTimeout")
	// APIRequestMaxTimeout the maximum timeout a caller can request with a Request-Timeout header
	APIRequestMaxTimeout = rootKey("api.requestMaxTimeout")
	// MetricsEnabled determines whether metrics will be instrumented and if the metrics server will be enabled or not
	MetricsEnabled = rootKey("metrics.enabled")
	// MetricsPath determines what path to serve the Prometheus metrics from
	MetricsPath = rootKey("metrics.path")
	// DatabaseType the type of the database interface plugin to use
	DatabaseType = rootKey("database.type")
	// LedgerType the type of the ledger client plugin to use
	LedgerType = rootKey("ledger.type")
	// SyncAsyncTimeout the default time to wait for a protocol callback
	SyncAsyncTimeout = rootKey("syncasync.timeout")
	// SyncAsyncActionTimeouts per-action overrides of the callback timeout, keyed by action name
	SyncAsyncActionTimeouts = rootKey("syncasync.actionTimeouts")
	// SettlementLocalDiscomID the discom identifier of the local party, used to query the ledger
	SettlementLocalDiscomID = rootKey("settlement.localDiscomId")
	// SettlementPollingEnabled whether the reconciliation engine polls the ledger
	SettlementPollingEnabled = rootKey("settlement.polling.enabled")
	// SettlementPollingInterval how often the reconciliation engine sweeps unsettled records
	SettlementPollingInterval = rootKey("settlement.polling.interval")
	// SettlementOrderCacheSize the number of order contexts cached for settlement notifications
	SettlementOrderCacheSize = rootKey("settlement.orderCache.size")
	// SettlementOrderCacheTTL how long an order context is cached for settlement notifications
	SettlementOrderCacheTTL = rootKey("settlement.orderCache.ttl")
	// ProtocolDomain the protocol domain used on outbound actions
	ProtocolDomain = rootKey("protocol.domain")
	// ProtocolVersion the protocol core version sent in every context
	ProtocolVersion = rootKey("protocol.version")
	// ProtocolBapID the identity of this platform when acting as a buyer application platform
	ProtocolBapID = rootKey("protocol.bapId")
	// ProtocolBapURI the callback base URI of this platform
	ProtocolBapURI = rootKey("protocol.bapUri")
	// ProtocolBppID the identity of the counterparty provider platform
	ProtocolBppID = rootKey("protocol.bppId")
	// ProtocolBppURI the base URI of the counterparty provider platform
	ProtocolBppURI = rootKey("protocol.bppUri")
)

// Prefix represents the global configuration, at a nested point in
// the config hierarchy. This allows plugins to define their
// Note that all values are GLOBAL so this cannot be used for per-instance
// customization. Rather for global initialization of plugins.
type Prefix interface {
	AddKnownKey(key string, defValue ...interface{})
	SubPrefix(suffix string) Prefix
	Set(key string, value interface{})
	Resolve(key string) string

	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int
	GetInt64(key string) int64
	GetUint(key string) uint
	GetDuration(key string) time.Duration
	GetStringSlice(key string) []string
	GetObject(key string) map[string]interface{}
	Get(key string) interface{}
}

// RootKey key are the known configuration keys
type RootKey string

func Reset() {
	keysMutex.Lock()
	defer keysMutex.Unlock()

	viper.Reset()

	// Set defaults
	viper.SetDefault(string(Lang), "en")
	viper.SetDefault(string(LogLevel), "info")
	viper.SetDefault(string(LogColor), true)
	viper.SetDefault(string(LogTimeFormat), "2006-01-02T15:04:05.000Z07:00")
	viper.SetDefault(string(LogUTC), false)
	viper.SetDefault(string(DebugPort), -1)
	viper.SetDefault(string(CorsEnabled), true)
	viper.SetDefault(string(CorsAllowedOrigins), []string{"*"})
	viper.SetDefault(string(CorsAllowedHeaders), []string{"*"})
	viper.SetDefault(string(CorsMaxAge), 600)
	viper.SetDefault(string(APIRequestTimeout), "45s")
	viper.SetDefault(string(APIRequestMaxTimeout), "10m")
	viper.SetDefault(string(MetricsEnabled), true)
	viper.SetDefault(string(MetricsPath), "/metrics")
	viper.SetDefault(string(DatabaseType), "postgres")
	viper.SetDefault(string(LedgerType), "rest")
	viper.SetDefault(string(SyncAsyncTimeout), "30s")
	viper.SetDefault(string(SyncAsyncActionTimeouts), map[string]interface{}{})
	viper.SetDefault(string(SettlementPollingEnabled), true)
	viper.SetDefault(string(SettlementPollingInterval), "5m")
	viper.SetDefault(string(SettlementOrderCacheSize), 1000)
	viper.SetDefault(string(SettlementOrderCacheTTL), "1h")
	viper.SetDefault(string(ProtocolDomain), "energy-trade")
	viper.SetDefault(string(ProtocolVersion), DefaultProtocolVersion)

	i18n.SetLang(viper.GetString(string(Lang)))
}

// ReadConfig initializes the config
func ReadConfig(cfgFile string) error {
	Reset()

	// Set precedence order for reading config location
	viper.SetEnvPrefix("tradesettle")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.SetConfigType("yaml")
	if cfgFile != "" {
		f, err := os.Open(cfgFile)
		if err == nil {
			defer f.Close()
			err = viper.ReadConfig(f)
		}
		return err
	}
	viper.SetConfigName("tradesettle.core")
	viper.AddConfigPath("/etc/tradesettle/")
	viper.AddConfigPath("$HOME/.tradesettle")
	viper.AddConfigPath(".")
	return viper.ReadInConfig()
}

var root = &configPrefix{
	keys: map[string]bool{}, // All keys go here, including those defined in sub prefixies
}

var keysMutex sync.Mutex

// rootKey adds a root key, used to define the keys that are used within the core
func rootKey(k string) RootKey {
	root.AddKnownKey(k)
	return RootKey(k)
}

// GetKnownKeys gets the known keys
func GetKnownKeys() []string {
	var keys []string
	keysMutex.Lock()
	defer keysMutex.Unlock()
	for k := range root.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// configPrefix is the main config structure passed to plugins, and used for root to wrap viper
type configPrefix struct {
	prefix string
	keys   map[string]bool
}

// NewPluginConfig creates a new plugin configuration object, at the specified prefix
func NewPluginConfig(prefix string) Prefix {
	if !strings.HasSuffix(prefix, ".") {
		prefix += "."
	}
	return &configPrefix{
		prefix: prefix,
		keys:   root.keys,
	}
}

func (c *configPrefix) prefixKey(k string) string {
	keysMutex.Lock()
	defer keysMutex.Unlock()
	key := c.prefix + k
	if !c.keys[key] {
		panic(fmt.Sprintf("Undefined configuration key '%s'", key))
	}
	return key
}

func (c *configPrefix) SubPrefix(suffix string) Prefix {
	return &configPrefix{
		prefix: c.prefix + suffix + ".",
		keys:   root.keys,
	}
}

func (c *configPrefix) AddKnownKey(k string, defValue ...interface{}) {
	key := c.prefix + k
	if len(defValue) == 1 {
		viper.SetDefault(key, defValue[0])
	} else if len(defValue) > 0 {
		viper.SetDefault(key, defValue)
	}
	keysMutex.Lock()
	defer keysMutex.Unlock()
	c.keys[key] = true
}

func (c *configPrefix) Resolve(key string) string {
	return c.prefixKey(key)
}

// GetString gets a configuration string
func GetString(key RootKey) string {
	return root.GetString(string(key))
}
func (c *configPrefix) GetString(key string) string {
	return viper.GetString(c.prefixKey(key))
}

// GetStringSlice gets a configuration string array
func GetStringSlice(key RootKey) []string {
	return root.GetStringSlice(string(key))
}
func (c *configPrefix) GetStringSlice(key string) []string {
	return viper.GetStringSlice(c.prefixKey(key))
}

// GetBool gets a configuration bool
func GetBool(key RootKey) bool {
	return root.GetBool(string(key))
}
func (c *configPrefix) GetBool(key string) bool {
	return viper.GetBool(c.prefixKey(key))
}

// GetDuration gets a configuration time duration with consistent semantics
func GetDuration(key RootKey) time.Duration {
	return root.GetDuration(string(key))
}
func (c *configPrefix) GetDuration(key string) time.Duration {
	return ParseDuration(viper.GetString(c.prefixKey(key)))
}

// GetUint gets a configuration uint
func GetUint(key RootKey) uint {
	return root.GetUint(string(key))
}
func (c *configPrefix) GetUint(key string) uint {
	return viper.GetUint(c.prefixKey(key))
}

// GetInt gets a configuration int
func GetInt(key RootKey) int {
	return root.GetInt(string(key))
}
func (c *configPrefix) GetInt(key string) int {
	return viper.GetInt(c.prefixKey(key))
}

// GetInt64 gets a configuration int64
func GetInt64(key RootKey) int64 {
	return root.GetInt64(string(key))
}
func (c *configPrefix) GetInt64(key string) int64 {
	return viper.GetInt64(c.prefixKey(key))
}

// GetObject gets a configuration map
func GetObject(key RootKey) map[string]interface{} {
	return root.GetObject(string(key))
}
func (c *configPrefix) GetObject(key string) map[string]interface{} {
	return viper.GetStringMap(c.prefixKey(key))
}

// Get gets a configuration in raw form
func Get(key RootKey) interface{} {
	return root.Get(string(key))
}
func (c *configPrefix) Get(key string) interface{} {
	return viper.Get(c.prefixKey(key))
}

// Set allows runtime setting of config (used in unit tests)
func Set(key RootKey, value interface{}) {
	root.Set(string(key), value)
}
func (c *configPrefix) Set(key string, value interface{}) {
	viper.Set(c.prefixKey(key), value)
}

// ParseDuration parses a duration string, treating a bare number as milliseconds.
// Unparseable values return zero.
func ParseDuration(durationString string) time.Duration {
	if durationString == "" {
		return 0
	}
	if ms, err := strconv.ParseInt(durationString, 10, 64); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(durationString)
	if err != nil {
		return 0
	}
	return d
}

// UnmarshalKey gets a configuration section into a struct
func UnmarshalKey(ctx context.Context, key RootKey, rawVal interface{}) error {
	// Viper's unmarshal does not work with our json annotated config
	// structures, so we have to go from map to JSON, then to unmarshal
	var intermediate map[string]interface{}
	err := viper.UnmarshalKey(root.prefixKey(string(key)), &intermediate)
	if err == nil {
		b, _ := json.Marshal(intermediate)
		err = json.Unmarshal(b, rawVal)
	}
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, key)
	}
	return nil
}
