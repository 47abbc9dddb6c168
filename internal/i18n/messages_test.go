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

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestExpand(t *testing.T) {
	lang := language.Make("en")
	ctx := WithLang(context.Background(), lang)
	str := Expand(ctx, MsgSettlementNotFound, "txn-1")
	assert.Equal(t, "No settlement found for transaction 'txn-1'", str)
}

func TestExpandWithCode(t *testing.T) {
	lang := language.Make("en")
	ctx := WithLang(context.Background(), lang)
	str := ExpandWithCode(ctx, MsgSettlementNotFound, "txn-1")
	assert.Equal(t, "TS10402: No settlement found for transaction 'txn-1'", str)
}

func TestGetStatusHint(t *testing.T) {
	code, ok := GetStatusHint(string(MsgPendingTimeout))
	assert.True(t, ok)
	assert.Equal(t, 408, code)
	_, ok = GetStatusHint(string(MsgConfigFailed))
	assert.False(t, ok)
}

func TestDuplicateKey(t *testing.T) {
	ffm("ABCD1234", "test1")
	assert.Panics(t, func() {
		ffm("ABCD1234", "test2")
	})
}

func TestNewErrorIsCode(t *testing.T) {
	err := NewError(context.Background(), MsgPendingCancelled, "select", "txn-1")
	assert.Regexp(t, "TS10302.*select.*txn-1", err)
	assert.True(t, IsCode(err, MsgPendingCancelled))
	assert.False(t, IsCode(err, MsgPendingTimeout))
	assert.False(t, IsCode(nil, MsgPendingTimeout))
}

func TestWrapErrorIsCodeThroughChain(t *testing.T) {
	inner := NewError(context.Background(), MsgPendingTimeout, 1.0, "init", "txn-2")
	err := WrapError(context.Background(), inner, MsgGatewayRESTErr, "pop")
	assert.Regexp(t, "TS10311.*pop.*TS10301", err)
	assert.True(t, IsCode(err, MsgGatewayRESTErr))
	assert.True(t, IsCode(err, MsgPendingTimeout))
	assert.False(t, IsCode(fmt.Errorf("plain"), MsgPendingTimeout))
}
