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
	"time"

	"github.com/rentbase/rentbase/internal/rental"
)

func cloneApplication(a *rental.LeaseApplication) *rental.LeaseApplication {
	c := *a
	c.ReviewedAt = cloneTime(a.ReviewedAt)
	c.ReviewedBy = cloneInt64(a.ReviewedBy)
	return &c
}

func (s *Store) CreateApplication(ctx context.Context, a *rental.LeaseApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextApplicationID++
	a.ID = s.nextApplicationID
	a.CreatedAt = createdAtOrNow(a.CreatedAt)
	a.UpdatedAt = a.CreatedAt
	if a.Status == "" {
		a.Status = rental.ApplicationStatusPending
	}

	s.applications[a.ID] = cloneApplication(a)
	return nil
}

func (s *Store) GetApplication(ctx context.Context, id int64) (*rental.LeaseApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, rental.ErrNotFound
	}
	return cloneApplication(a), nil
}

func (s *Store) ListApplications(ctx context.Context) ([]*rental.LeaseApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*rental.LeaseApplication, 0, len(s.applications))
	for _, id := range sortedIDs(s.applications) {
		out = append(out, cloneApplication(s.applications[id]))
	}
	return out, nil
}

func (s *Store) ApplicationsForProperty(ctx context.Context, propertyID int64) ([]*rental.LeaseApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*rental.LeaseApplication{}
	for _, id := range sortedIDs(s.applications) {
		if s.applications[id].PropertyID == propertyID {
			out = append(out, cloneApplication(s.applications[id]))
		}
	}
	return out, nil
}

func (s *Store) ApplicationsForUser(ctx context.Context, applicantID int64) ([]*rental.LeaseApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*rental.LeaseApplication{}
	for _, id := range sortedIDs(s.applications) {
		if s.applications[id].ApplicantID == applicantID {
			out = append(out, cloneApplication(s.applications[id]))
		}
	}
	return out, nil
}

func (s *Store) UpdateApplication(ctx context.Context, id int64, upd rental.LeaseApplicationUpdate) (*rental.LeaseApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, rental.ErrNotFound
	}

	merged := cloneApplication(a)
	upd.Apply(merged)
	merged.UpdatedAt = time.Now()
	s.applications[id] = merged
	return cloneApplication(merged), nil
}

func (s *Store) DeleteApplication(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.applications[id]; !ok {
		return false, nil
	}
	delete(s.applications, id)
	return true, nil
}
