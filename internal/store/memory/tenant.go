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

func cloneTenant(t *rental.Tenant) *rental.Tenant {
	c := *t
	return &c
}

func (s *Store) CreateTenant(ctx context.Context, t *rental.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextTenantID++
	t.ID = s.nextTenantID
	t.CreatedAt = createdAtOrNow(t.CreatedAt)
	if t.Status == "" {
		t.Status = rental.TenantStatusActive
	}

	s.tenants[t.ID] = cloneTenant(t)
	return nil
}

func (s *Store) GetTenant(ctx context.Context, id int64) (*rental.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tenants[id]
	if !ok {
		return nil, rental.ErrNotFound
	}
	return cloneTenant(t), nil
}

// GetTenantByUserID returns the first tenant profile for a user, lowest ID
// first. Profiles are one-to-one with users in practice, but the store does
// not enforce that.
func (s *Store) GetTenantByUserID(ctx context.Context, userID int64) (*rental.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.tenants) {
		if s.tenants[id].UserID == userID {
			return cloneTenant(s.tenants[id]), nil
		}
	}
	return nil, rental.ErrNotFound
}

func (s *Store) ListTenants(ctx context.Context) ([]*rental.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*rental.Tenant, 0, len(s.tenants))
	for _, id := range sortedIDs(s.tenants) {
		out = append(out, cloneTenant(s.tenants[id]))
	}
	return out, nil
}

func (s *Store) UpdateTenant(ctx context.Context, id int64, upd rental.TenantUpdate) (*rental.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[id]
	if !ok {
		return nil, rental.ErrNotFound
	}

	merged := cloneTenant(t)
	upd.Apply(merged)
	s.tenants[id] = merged
	return cloneTenant(merged), nil
}

func (s *Store) DeleteTenant(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tenants[id]; !ok {
		return false, nil
	}
	delete(s.tenants, id)
	return true, nil
}

// TenantsForOwner is the two-hop traversal: the owner's properties, the
// leases on those properties, the tenants holding those leases. A tenant
// with several leases across the owner's portfolio appears once. Ordered by
// tenant ID to match the postgres backend.
func (s *Store) TenantsForOwner(ctx context.Context, ownerID int64) ([]*rental.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owned := make(map[int64]bool)
	for id, p := range s.properties {
		if p.OwnerID == ownerID {
			owned[id] = true
		}
	}

	seen := make(map[int64]bool)
	for _, l := range s.leases {
		if owned[l.PropertyID] {
			seen[l.TenantID] = true
		}
	}

	out := []*rental.Tenant{}
	for _, id := range sortedIDs(s.tenants) {
		if seen[id] {
			out = append(out, cloneTenant(s.tenants[id]))
		}
	}
	return out, nil
}

// TenantsWithUsers joins each profile to its account. Profiles whose user
// has been deleted are dropped rather than surfaced with a hole.
func (s *Store) TenantsWithUsers(ctx context.Context) ([]*rental.TenantWithUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*rental.TenantWithUser{}
	for _, id := range sortedIDs(s.tenants) {
		t := s.tenants[id]
		u, ok := s.users[t.UserID]
		if !ok {
			continue
		}
		out = append(out, &rental.TenantWithUser{
			Tenant: *cloneTenant(t),
			User:   *cloneUser(u),
		})
	}
	return out, nil
}
