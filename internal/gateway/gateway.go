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

package gateway

import (
	"context"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/kaleido-io/tradesettle/internal/config"
	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
	"github.com/kaleido-io/tradesettle/internal/restclient"
	"github.com/kaleido-io/tradesettle/internal/settlement"
	"github.com/kaleido-io/tradesettle/internal/syncasync"
	"github.com/kaleido-io/tradesettle/pkg/database"
	"github.com/kaleido-io/tradesettle/pkg/tstypes"
)

// Manager is the outbound half of the protocol exchange
type Manager interface {
	// SendAction submits an action to the counterparty gateway, and blocks until the matching
	// callback arrives, the deadline passes, or the gateway refuses the request.
	// A transaction id is generated when none is supplied.
	SendAction(ctx context.Context, action tstypes.ProtocolAction, transactionID string, message tstypes.JSONObject) (*tstypes.CallbackEnvelope, error)
}

type gatewayManager struct {
	ctx        context.Context
	client     *resty.Client
	database   database.Plugin
	settlement settlement.Manager
	bridge     syncasync.Bridge
	domain     string
	version    string
	bapID      string
	bapURI     string
	bppID      string
	bppURI     string
}

func NewGatewayManager(ctx context.Context, di database.Plugin, sm settlement.Manager, bridge syncasync.Bridge) (Manager, error) {
	if di == nil || sm == nil || bridge == nil {
		return nil, i18n.NewError(ctx, i18n.MsgInitializationNilDepError)
	}
	ctx = log.WithLogField(ctx, "role", "gateway")
	gm := &gatewayManager{
		ctx:        ctx,
		database:   di,
		settlement: sm,
		bridge:     bridge,
		domain:     config.GetString(config.ProtocolDomain),
		version:    config.GetString(config.ProtocolVersion),
		bapID:      config.GetString(config.ProtocolBapID),
		bapURI:     config.GetString(config.ProtocolBapURI),
		bppID:      config.GetString(config.ProtocolBppID),
		bppURI:     config.GetString(config.ProtocolBppURI),
	}
	switch {
	case gatewayConfigPrefix.GetString(restclient.HTTPConfigURL) != "":
		gm.client = restclient.New(ctx, gatewayConfigPrefix)
	case gm.bppURI != "":
		gm.client = restclient.New(ctx, gatewayConfigPrefix)
		gm.client.SetHostURL(strings.TrimSuffix(gm.bppURI, "/"))
	default:
		log.L(ctx).Warnf("No %s or %s configured. Outbound actions are disabled", gatewayConfigPrefix.Resolve(restclient.HTTPConfigURL), config.ProtocolBppURI)
	}
	return gm, nil
}

func (gm *gatewayManager) newContext(action tstypes.ProtocolAction, transactionID string) *tstypes.ProtocolContext {
	return &tstypes.ProtocolContext{
		Domain:        gm.domain,
		Action:        string(action),
		Version:       gm.version,
		BapID:         gm.bapID,
		BapURI:        gm.bapURI,
		BppID:         gm.bppID,
		BppURI:        gm.bppURI,
		TransactionID: transactionID,
		MessageID:     tstypes.NewUUID().String(),
		Timestamp:     tstypes.Now(),
	}
}

func isOutbound(action tstypes.ProtocolAction) bool {
	for _, a := range tstypes.ProtocolActions {
		if a == action {
			return true
		}
	}
	return false
}

func (gm *gatewayManager) SendAction(ctx context.Context, action tstypes.ProtocolAction, transactionID string, message tstypes.JSONObject) (*tstypes.CallbackEnvelope, error) {
	if gm.client == nil {
		return nil, i18n.NewError(ctx, i18n.MsgMissingPluginConfig, "url", "gateway")
	}
	if !isOutbound(action) {
		return nil, i18n.NewError(ctx, i18n.MsgUnknownAction, action)
	}
	if transactionID == "" {
		transactionID = tstypes.NewUUID().String()
	}
	if message == nil {
		message = tstypes.JSONObject{}
	}
	ctx = log.WithLogField(ctx, "txid", transactionID)

	request := &tstypes.CallbackEnvelope{
		Context: gm.newContext(action, transactionID),
		Message: message,
	}
	callback, err := gm.bridge.WaitForCallback(ctx, transactionID, action, func(ctx context.Context) error {
		return gm.post(ctx, action, request)
	})
	if err != nil {
		return nil, err
	}
	if callback.Error != nil && (callback.Error.Code != "" || callback.Error.Message != "") {
		return callback, i18n.NewError(ctx, i18n.MsgCallbackError, action.Callback(), transactionID, callback.Error.Message)
	}

	if action == tstypes.ActionConfirm {
		if err := gm.persistConfirmed(ctx, request.Context, callback); err != nil {
			return callback, err
		}
	}
	return callback, nil
}

// post delivers the request, and fails unless the gateway positively acknowledges it
func (gm *gatewayManager) post(ctx context.Context, action tstypes.ProtocolAction, request *tstypes.CallbackEnvelope) error {
	var ack tstypes.Ack
	res, err := gm.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&ack).
		SetError(&ack).
		Post("/" + string(action))
	if err != nil {
		return restclient.WrapRestErr(ctx, res, err, i18n.MsgGatewayRESTErr)
	}
	if ack.Message.Ack.Status == tstypes.AckStatusNACK {
		reason := res.Status()
		if ack.Error != nil && ack.Error.Message != "" {
			reason = ack.Error.Message
		}
		return i18n.NewError(ctx, i18n.MsgActionRejected, action, request.Context.TransactionID, reason)
	}
	if !res.IsSuccess() {
		return restclient.WrapRestErr(ctx, res, nil, i18n.MsgGatewayRESTErr)
	}
	if !ack.IsACK() {
		return i18n.NewError(ctx, i18n.MsgActionRejected, action, request.Context.TransactionID, "no acknowledgement")
	}
	log.L(ctx).Infof("Gateway acknowledged '%s' messageId=%s", action, request.Context.MessageID)
	return nil
}
