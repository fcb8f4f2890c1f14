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

func cloneProperty(p *rental.Property) *rental.Property {
	c := *p
	c.Features = cloneStrings(p.Features)
	c.Images = cloneStrings(p.Images)
	return &c
}

func (s *Store) CreateProperty(ctx context.Context, p *rental.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPropertyID++
	p.ID = s.nextPropertyID
	p.CreatedAt = createdAtOrNow(p.CreatedAt)
	if p.Status == "" {
		p.Status = rental.PropertyStatusAvailable
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}

	s.properties[p.ID] = cloneProperty(p)
	return nil
}

func (s *Store) GetProperty(ctx context.Context, id int64) (*rental.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return nil, rental.ErrNotFound
	}
	return cloneProperty(p), nil
}

func (s *Store) ListProperties(ctx context.Context) ([]*rental.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*rental.Property, 0, len(s.properties))
	for _, id := range sortedIDs(s.properties) {
		out = append(out, cloneProperty(s.properties[id]))
	}
	return out, nil
}

func (s *Store) ListPropertiesByOwner(ctx context.Context, ownerID int64) ([]*rental.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*rental.Property{}
	for _, id := range sortedIDs(s.properties) {
		if s.properties[id].OwnerID == ownerID {
			out = append(out, cloneProperty(s.properties[id]))
		}
	}
	return out, nil
}

func (s *Store) UpdateProperty(ctx context.Context, id int64, upd rental.PropertyUpdate) (*rental.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.properties[id]
	if !ok {
		return nil, rental.ErrNotFound
	}

	merged := cloneProperty(p)
	upd.Apply(merged)
	s.properties[id] = merged
	return cloneProperty(merged), nil
}

func (s *Store) DeleteProperty(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[id]; !ok {
		return false, nil
	}
	delete(s.properties, id)
	return true, nil
}
