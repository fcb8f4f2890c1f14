// Copyright 2026 The Rentbase Authors
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

package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPurpose: per-IP buckets are independent, exhausting one IP's burst
// yields denials without affecting another IP, and Stop is idempotent so
// tests can construct limiters freely.
func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	defer rl.Stop()

	a := rl.GetLimiter("10.0.0.1")
	b := rl.GetLimiter("10.0.0.2")

	assert.True(t, a.Allow())
	assert.True(t, a.Allow())
	assert.False(t, a.Allow(), "burst exhausted")
	assert.True(t, b.Allow(), "separate bucket per IP")

	rl.Stop()
	rl.Stop()
}

// TestPurpose: the first hop of a multi-proxy X-Forwarded-For chain is the
// bucket key, not the whole comma-joined list.
func TestClientIPFromForwardedChain(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.9", getIPAddress(r))

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Real-IP", "198.51.100.4")
	assert.Equal(t, "198.51.100.4", getIPAddress(r))

	r = httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, r.RemoteAddr, getIPAddress(r))
}
