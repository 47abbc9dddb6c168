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
package i18n

import "net/http"

//revive:disable
var (
	MsgConfigFailed              = ffe("TS10101", "Failed to read config: %s")
	MsgJSONDecodeFailed          = ffe("TS10102", "Failed to decode input JSON", http.StatusBadRequest)
	MsgAPIServerStartFailed      = ffe("TS10103", "Unable to start listener on %s: %s")
	MsgTLSConfigFailed           = ffe("TS10104", "Failed to initialize TLS configuration")
	MsgInvalidCAFile             = ffe("TS10105", "Invalid CA certificates file")
	MsgResponseMarshalError      = ffe("TS10106", "Failed to serialize response data", http.StatusBadRequest)
	Msg404NotFound               = ffe("TS10107", "Not found", http.StatusNotFound)
	Msg404NoResult               = ffe("TS10108", "No result found", http.StatusNotFound)
	MsgRequestTimeout            = ffe("TS10109", "The request with id '%s' timed out after %.2fms", http.StatusRequestTimeout)
	MsgInvalidContentType        = ffe("TS10110", "Invalid content type", http.StatusUnsupportedMediaType)
	MsgContextCanceled           = ffe("TS10111", "Context cancelled")
	MsgUnknownDatabasePlugin     = ffe("TS10112", "Unknown database plugin '%s'")
	MsgUnknownLedgerPlugin       = ffe("TS10113", "Unknown ledger plugin '%s'")
	MsgInvalidOutputOption       = ffe("TS10114", "Invalid output option '%s'")
	MsgMissingPluginConfig       = ffe("TS10115", "Missing configuration '%s' for %s")
	MsgInvalidDurationConfig     = ffe("TS10116", "Invalid duration '%s' configured for '%s'")
	MsgInitializationNilDepError = ffe("TS10117", "Initialization error due to unmet dependency")

	MsgDBInitFailed       = ffe("TS10120", "Database initialization failed")
	MsgDBQueryBuildFailed = ffe("TS10121", "Database query builder failed")
	MsgDBBeginFailed      = ffe("TS10122", "Database begin transaction failed")
	MsgDBQueryFailed      = ffe("TS10123", "Database query failed")
	MsgDBInsertFailed     = ffe("TS10124", "Database insert failed")
	MsgDBUpdateFailed     = ffe("TS10125", "Database update failed")
	MsgDBCommitFailed     = ffe("TS10126", "Database commit failed")
	MsgDBMigrationFailed  = ffe("TS10127", "Database migration failed")
	MsgDBReadErr          = ffe("TS10128", "Database resultset read error from table '%s'")
	MsgDBConnectFailed    = ffe("TS10129", "Database connection check failed after %d attempts")
	MsgDBDuplicateKey     = ffe("TS10130", "Database insert rejected a duplicate key", http.StatusConflict)

	MsgPendingDuplicate    = ffe("TS10300", "A '%s' callback is already pending for transaction '%s'", http.StatusConflict)
	MsgPendingTimeout      = ffe("TS10301", "Timed out after %.2fms waiting for '%s' callback on transaction '%s'", http.StatusRequestTimeout)
	MsgPendingCancelled    = ffe("TS10302", "Pending '%s' action on transaction '%s' was cancelled", http.StatusConflict)
	MsgTransactionIDNeeded = ffe("TS10303", "A transaction id is required", http.StatusBadRequest)
	MsgActionRejected      = ffe("TS10310", "Gateway rejected '%s' for transaction '%s': %s", http.StatusBadGateway)
	MsgGatewayRESTErr      = ffe("TS10311", "Error from protocol gateway: %s", http.StatusBadGateway)
	MsgCallbackError       = ffe("TS10312", "Counterparty returned an error in '%s' callback for transaction '%s': %s", http.StatusUnprocessableEntity)
	MsgUnknownAction       = ffe("TS10313", "Unknown protocol action '%s'", http.StatusBadRequest)
	MsgCallbackInvalid     = ffe("TS10314", "Invalid callback envelope: %s", http.StatusBadRequest)

	MsgLedgerRESTErr      = ffe("TS10400", "Error from ledger: %s")
	MsgSettlementNotFound = ffe("TS10402", "No settlement found for transaction '%s'", http.StatusNotFound)
	MsgNotifyRESTErr      = ffe("TS10403", "Error delivering settlement notification: %s")
	MsgSettlementExists   = ffe("TS10404", "Settlement for transaction '%s' role '%s' already exists", http.StatusConflict)
	MsgInvalidRole        = ffe("TS10405", "Invalid role '%s'", http.StatusBadRequest)
	MsgInvalidQuantity    = ffe("TS10406", "Contracted quantity must be positive", http.StatusBadRequest)
	MsgOrderNotFound      = ffe("TS10407", "No %s order found for transaction '%s'", http.StatusNotFound)
	MsgSweepInProgress    = ffe("TS10408", "A settlement sweep is already in progress", http.StatusConflict)
)
