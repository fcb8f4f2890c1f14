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

// Package memory implements rental.Store with identity-keyed maps. Every
// traversal and aggregate is a linear scan; at the hundreds-to-low-thousands
// of rows this backend is meant for, scans stay cheaper than maintaining
// secondary indexes. The store enforces no referential integrity: a Tenant
// may reference a deleted User and only the defensive joins will notice.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/rentbase/rentbase/internal/rental"
)

// Store is an in-process, ephemeral implementation of rental.Store. All
// state is lost on restart. Safe for concurrent use; a single RWMutex
// serializes every operation.
type Store struct {
	mu sync.RWMutex

	users        map[int64]*rental.User
	properties   map[int64]*rental.Property
	tenants      map[int64]*rental.Tenant
	leases       map[int64]*rental.Lease
	maintenance  map[int64]*rental.MaintenanceRequest
	applications map[int64]*rental.LeaseApplication

	// Per-kind monotonic counters. IDs are never reused, even after a
	// delete.
	nextUserID        int64
	nextPropertyID    int64
	nextTenantID      int64
	nextLeaseID       int64
	nextMaintenanceID int64
	nextApplicationID int64
}

// New creates an empty store. Demo rows are loaded separately via Seed so
// that tests and the parity suite start from a blank state.
func New() *Store {
	return &Store{
		users:        make(map[int64]*rental.User),
		properties:   make(map[int64]*rental.Property),
		tenants:      make(map[int64]*rental.Tenant),
		leases:       make(map[int64]*rental.Lease),
		maintenance:  make(map[int64]*rental.MaintenanceRequest),
		applications: make(map[int64]*rental.LeaseApplication),
	}
}

var _ rental.Store = (*Store)(nil)

// createdAtOrNow honors a caller-supplied creation timestamp so replayed
// fixtures keep their history; everything else gets the current time.
func createdAtOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}

// sortedIDs returns the keys of an id-keyed map ascending. IDs are assigned
// monotonically, so ascending ID order is insertion order.
func sortedIDs[V any](m map[int64]*V) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// cloneStrings preserves nil-ness: an empty slice stays an empty slice so
// defaulted list fields keep serializing as [] rather than null.
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func cloneInt64(i *int64) *int64 {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
