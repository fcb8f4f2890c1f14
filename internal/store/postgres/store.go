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

// Package postgres implements rental.Store over a PostgreSQL pool. Every
// operation is one parameterized statement (partial updates read, merge in
// Go, then write, so the merge semantics are byte-identical to the
// in-memory backend). Backend failures are wrapped and propagated; only
// pgx.ErrNoRows and unique violations are translated to domain errors.
package postgres

import (
	"time"

	"github.com/rentbase/rentbase/internal/rental"
)

// Store is the persistent implementation of rental.Store.
type Store struct {
	db *DB
}

// NewStore creates a store over an established connection pool.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

var _ rental.Store = (*Store)(nil)

func createdAtOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
