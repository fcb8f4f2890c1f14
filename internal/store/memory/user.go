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
	"sort"
	"strings"

	"github.com/rentbase/rentbase/internal/rental"
)

func cloneUser(u *rental.User) *rental.User {
	c := *u
	c.LastLogin = cloneTime(u.LastLogin)
	return &c
}

// CreateUser assigns the next user ID and rejects case-insensitive
// username/email collisions.
func (s *Store) CreateUser(ctx context.Context, u *rental.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return rental.ErrDuplicateUser
		}
	}

	s.nextUserID++
	u.ID = s.nextUserID
	u.CreatedAt = createdAtOrNow(u.CreatedAt)
	if u.Status == "" {
		u.Status = rental.UserStatusActive
	}
	if u.Role == "" {
		u.Role = rental.RoleTenant
	}

	s.users[u.ID] = cloneUser(u)
	return nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*rental.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, rental.ErrNotFound
	}
	return cloneUser(u), nil
}

// GetUserByUsername is a case-insensitive exact match. If duplicates somehow
// exist the lowest ID wins, so the result is deterministic.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*rental.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if strings.EqualFold(s.users[id].Username, username) {
			return cloneUser(s.users[id]), nil
		}
	}
	return nil, rental.ErrNotFound
}

// GetUserByEmail is a case-insensitive exact match, lowest ID wins.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*rental.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.users) {
		if strings.EqualFold(s.users[id].Email, email) {
			return cloneUser(s.users[id]), nil
		}
	}
	return nil, rental.ErrNotFound
}

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers(ctx context.Context) ([]*rental.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*rental.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		out = append(out, cloneUser(s.users[id]))
	}
	return out, nil
}

// UpdateUser merges upd over the stored row. Renaming into another user's
// username or email is rejected the same way CreateUser rejects it.
func (s *Store) UpdateUser(ctx context.Context, id int64, upd rental.UserUpdate) (*rental.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, rental.ErrNotFound
	}

	if upd.Username != nil || upd.Email != nil {
		for otherID, other := range s.users {
			if otherID == id {
				continue
			}
			if upd.Username != nil && strings.EqualFold(other.Username, *upd.Username) {
				return nil, rental.ErrDuplicateUser
			}
			if upd.Email != nil && strings.EqualFold(other.Email, *upd.Email) {
				return nil, rental.ErrDuplicateUser
			}
		}
	}

	merged := cloneUser(u)
	upd.Apply(merged)
	s.users[id] = merged
	return cloneUser(merged), nil
}

func (s *Store) DeleteUser(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

// RecentUsers returns at most n users, newest first. The stable sort over
// insertion order gives a deterministic tie-break for equal timestamps.
func (s *Store) RecentUsers(ctx context.Context, n int) ([]*rental.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*rental.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		users = append(users, s.users[id])
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})

	if n < 0 {
		n = 0
	}
	if n < len(users) {
		users = users[:n]
	}
	out := make([]*rental.User, 0, len(users))
	for _, u := range users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}
