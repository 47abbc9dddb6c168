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
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryEventuallyOk(t *testing.T) {
	r := Retry{
		MaximumDelay: 3 * time.Microsecond,
		InitialDelay: 1 * time.Microsecond,
	}
	calls := 0
	err := r.Do(context.Background(), "unit test", func(i int) (retry bool, err error) {
		calls++
		return i < 10, nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 10, calls)
}

func TestRetryMaxAttempts(t *testing.T) {
	r := Retry{
		MaximumDelay: 1 * time.Microsecond,
		InitialDelay: 1 * time.Microsecond,
		Factor:       1.5,
		MaxAttempts:  3,
	}
	calls := 0
	err := r.Do(context.Background(), "unit test", func(i int) (retry bool, err error) {
		calls++
		return true, fmt.Errorf("pop %d", i)
	})
	assert.Regexp(t, "pop 3", err)
	assert.Equal(t, 3, calls)
}

func TestRetryDeadlineTimeout(t *testing.T) {
	r := Retry{
		MaximumDelay: 1 * time.Second,
		InitialDelay: 1 * time.Second,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Millisecond)
	defer cancel()
	err := r.Do(ctx, "unit test", func(i int) (retry bool, err error) {
		return true, nil
	})
	assert.Regexp(t, "TS10111", err)
}

func TestRetryContextCancelled(t *testing.T) {
	r := Retry{
		MaximumDelay: 1 * time.Second,
		InitialDelay: 1 * time.Second,
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.Do(ctx, "unit test", func(i int) (retry bool, err error) {
		return true, nil
	})
	assert.Regexp(t, "TS10111", err)
}
