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

package memory

import (
	"context"

	"github.com/rentbase/rentbase/internal/rental"
)

func cloneLease(l *rental.Lease) *rental.Lease {
	c := *l
	c.Documents = cloneStrings(l.Documents)
	return &c
}

func (s *Store) CreateLease(ctx context.Context, l *rental.Lease) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextLeaseID++
	l.ID = s.nextLeaseID
	l.CreatedAt = createdAtOrNow(l.CreatedAt)
	if l.Status == "" {
		l.Status = rental.LeaseStatusActive
	}
	if l.Documents == nil {
		l.Documents = []string{}
	}

	s.leases[l.ID] = cloneLease(l)
	return nil
}

func (s *Store) GetLease(ctx context.Context, id int64) (*rental.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.leases[id]
	if !ok {
		return nil, rental.ErrNotFound
	}
	return cloneLease(l), nil
}

func (s *Store) ListLeases(ctx context.Context) ([]*rental.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*rental.Lease, 0, len(s.leases))
	for _, id := range sortedIDs(s.leases) {
		out = append(out, cloneLease(s.leases[id]))
	}
	return out, nil
}

// LeasesForProperty returns every lease on a property in creation order.
func (s *Store) LeasesForProperty(ctx context.Context, propertyID int64) ([]*rental.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*rental.Lease{}
	for _, id := range sortedIDs(s.leases) {
		if s.leases[id].PropertyID == propertyID {
			out = append(out, cloneLease(s.leases[id]))
		}
	}
	return out, nil
}

// LeasesForTenant returns every lease held by a tenant in creation order.
func (s *Store) LeasesForTenant(ctx context.Context, tenantID int64) ([]*rental.Lease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*rental.Lease{}
	for _, id := range sortedIDs(s.leases) {
		if s.leases[id].TenantID == tenantID {
			out = append(out, cloneLease(s.leases[id]))
		}
	}
	return out, nil
}

func (s *Store) UpdateLease(ctx context.Context, id int64, upd rental.LeaseUpdate) (*rental.Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leases[id]
	if !ok {
		return nil, rental.ErrNotFound
	}

	merged := cloneLease(l)
	upd.Apply(merged)
	s.leases[id] = merged
	return cloneLease(merged), nil
}

func (s *Store) DeleteLease(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.leases[id]; !ok {
		return false, nil
	}
	delete(s.leases, id)
	return true, nil
}
