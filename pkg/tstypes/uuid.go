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

package tstypes

import (
	"crypto/rand"
	"encoding/base32"
	"strings"

	"github.com/google/uuid"
)

// UUID is a wrapper on a UUID implementation, ensuring String handles nil
type UUID uuid.UUID

func NewUUID() *UUID {
	u := UUID(uuid.New())
	return &u
}

func (u *UUID) String() string {
	if u == nil {
		return ""
	}
	return (*uuid.UUID)(u).String()
}

func (u UUID) MarshalText() ([]byte, error) {
	return (uuid.UUID)(u).MarshalText()
}

func (u *UUID) UnmarshalText(b []byte) error {
	return (*uuid.UUID)(u).UnmarshalText(b)
}

// ShortID generates a short unique identifier, used for log correlation on requests
func ShortID() string {
	b := make([]byte, 5)
	_, _ = rand.Read(b)
	return strings.ToLower(base32.StdEncoding.EncodeToString(b))
}
