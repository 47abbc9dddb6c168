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

package retry

import (
	"context"
	"time"

	"github.com/kaleido-io/tradesettle/internal/i18n"
	"github.com/kaleido-io/tradesettle/internal/log"
)

const (
	defaultFactor = 2.0
)

// Retry is a simple exponential backoff, safe for concurrent use
type Retry struct {
	InitialDelay time.Duration
	MaximumDelay time.Duration
	Factor       float64
	// MaxAttempts stops retrying after this many attempts. Zero is unlimited.
	MaxAttempts int
}

// Do invokes f until it returns retry=false, the attempts are exhausted, or the context ends.
// The error from the final attempt is returned.
func (r *Retry) Do(ctx context.Context, logDescription string, f func(attempt int) (retry bool, err error)) error {
	attempt := 0
	delay := r.InitialDelay
	factor := r.Factor
	if factor < 1 {
		factor = defaultFactor
	}
	for {
		attempt++
		retry, err := f(attempt)
		if !retry || (r.MaxAttempts > 0 && attempt >= r.MaxAttempts) {
			return err
		}
		if delay > r.MaximumDelay {
			delay = r.MaximumDelay
		}
		log.L(ctx).Warnf("%s attempt %d failed (retrying in %s): %v", logDescription, attempt, delay, err)

		select {
		case <-ctx.Done():
			return i18n.NewError(ctx, i18n.MsgContextCanceled)
		case <-time.After(delay):
		}
		delay = time.Duration(float64(delay) * factor)
	}
}
