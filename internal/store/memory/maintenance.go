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

func cloneMaintenance(m *rental.MaintenanceRequest) *rental.MaintenanceRequest {
	c := *m
	c.TenantID = cloneInt64(m.TenantID)
	c.ResolvedAt = cloneTime(m.ResolvedAt)
	return &c
}

func (s *Store) CreateMaintenanceRequest(ctx context.Context, m *rental.MaintenanceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextMaintenanceID++
	m.ID = s.nextMaintenanceID
	m.CreatedAt = createdAtOrNow(m.CreatedAt)
	if m.Priority == "" {
		m.Priority = rental.PriorityMedium
	}
	if m.Status == "" {
		m.Status = rental.MaintenanceStatusPending
	}

	s.maintenance[m.ID] = cloneMaintenance(m)
	return nil
}

func (s *Store) GetMaintenanceRequest(ctx context.Context, id int64) (*rental.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.maintenance[id]
	if !ok {
		return nil, rental.ErrNotFound
	}
	return cloneMaintenance(m), nil
}

func (s *Store) ListMaintenanceRequests(ctx context.Context) ([]*rental.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*rental.MaintenanceRequest, 0, len(s.maintenance))
	for _, id := range sortedIDs(s.maintenance) {
		out = append(out, cloneMaintenance(s.maintenance[id]))
	}
	return out, nil
}

func (s *Store) MaintenanceForProperty(ctx context.Context, propertyID int64) ([]*rental.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*rental.MaintenanceRequest{}
	for _, id := range sortedIDs(s.maintenance) {
		if s.maintenance[id].PropertyID == propertyID {
			out = append(out, cloneMaintenance(s.maintenance[id]))
		}
	}
	return out, nil
}

func (s *Store) MaintenanceForTenant(ctx context.Context, tenantID int64) ([]*rental.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*rental.MaintenanceRequest{}
	for _, id := range sortedIDs(s.maintenance) {
		m := s.maintenance[id]
		if m.TenantID != nil && *m.TenantID == tenantID {
			out = append(out, cloneMaintenance(m))
		}
	}
	return out, nil
}

func (s *Store) UpdateMaintenanceRequest(ctx context.Context, id int64, upd rental.MaintenanceRequestUpdate) (*rental.MaintenanceRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.maintenance[id]
	if !ok {
		return nil, rental.ErrNotFound
	}

	merged := cloneMaintenance(m)
	upd.Apply(merged)
	s.maintenance[id] = merged
	return cloneMaintenance(merged), nil
}

func (s *Store) DeleteMaintenanceRequest(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.maintenance[id]; !ok {
		return false, nil
	}
	delete(s.maintenance, id)
	return true, nil
}
