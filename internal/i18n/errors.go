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

	"github.com/pkg/errors"
)

type codedError struct {
	error
	key MessageKey
}

func (ce *codedError) Unwrap() error {
	return ce.error
}

// MessageKey returns the code the error was raised with
func (ce *codedError) MessageKey() MessageKey {
	return ce.key
}

// NewError creates a new error
func NewError(ctx context.Context, msg MessageKey, inserts ...interface{}) error {
	return &codedError{
		error: errors.New(ExpandWithCode(ctx, msg, inserts...)),
		key:   msg,
	}
}

// WrapError wraps an error
func WrapError(ctx context.Context, err error, msg MessageKey, inserts ...interface{}) error {
	return &codedError{
		error: errors.Wrap(err, ExpandWithCode(ctx, msg, inserts...)),
		key:   msg,
	}
}

// IsCode checks whether the error, or anything it wraps, was raised with the supplied code
func IsCode(err error, msg MessageKey) bool {
	for err != nil {
		if ce, ok := err.(*codedError); ok && ce.key == msg {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
