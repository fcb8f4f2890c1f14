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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentbase/rentbase/internal/rental"
	"github.com/rentbase/rentbase/internal/store/storetest"
)

// TestPurpose: Validates the in-memory backend against the shared store
// conformance suite; the postgres backend runs the identical suite, which is
// what makes the two swappable.
// Scope: Unit Test
// Expected: Every conformance case passes against a fresh empty store.
func TestMemoryStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) rental.Store {
		return New()
	})
}

func TestMemoryStore_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	s := New()

	a := &rental.User{Username: "a", Email: "a@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, a))

	ok, err := s.DeleteUser(ctx, a.ID)
	require.NoError(t, err)
	require.True(t, ok)

	b := &rental.User{Username: "b", Email: "b@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, b))
	assert.Greater(t, b.ID, a.ID, "counter never rewinds")
}

// TestPurpose: List-valued fields created empty by default must read back
// as empty slices (JSON []), never nil (JSON null), and an explicit empty
// update must replace the stored list rather than vanish.
// Scope: Unit Test
// Expected: Features/Images/Documents stay non-nil through write, read and
// empty-replace.
func TestMemoryStore_EmptyListFieldsStayEmpty(t *testing.T) {
	ctx := context.Background()
	s := New()

	p := &rental.Property{OwnerID: 1, Name: "Bare Loft", Address: "1 Elm St", Price: 900}
	require.NoError(t, s.CreateProperty(ctx, p))

	got, err := s.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, got.Features)
	assert.Empty(t, got.Features)
	assert.NotNil(t, got.Images)

	listed, err := s.ListProperties(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.NotNil(t, listed[0].Features)

	// Replacing a populated list with an explicit empty one must stick.
	features := []string{"parking"}
	_, err = s.UpdateProperty(ctx, p.ID, rental.PropertyUpdate{Features: &features})
	require.NoError(t, err)

	empty := []string{}
	updated, err := s.UpdateProperty(ctx, p.ID, rental.PropertyUpdate{Features: &empty})
	require.NoError(t, err)
	assert.NotNil(t, updated.Features)
	assert.Empty(t, updated.Features)

	l := &rental.Lease{PropertyID: p.ID, TenantID: 1, MonthlyRent: 900}
	require.NoError(t, s.CreateLease(ctx, l))
	gotL, err := s.GetLease(ctx, l.ID)
	require.NoError(t, err)
	assert.NotNil(t, gotL.Documents)
	assert.Empty(t, gotL.Documents)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New()

	owner := &rental.User{Username: "owner", Email: "o@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, owner))

	p := &rental.Property{OwnerID: owner.ID, Name: "Unit 1", Price: 1000, Features: []string{"parking"}}
	require.NoError(t, s.CreateProperty(ctx, p))

	got, err := s.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	got.Features[0] = "mutated"
	got.Name = "mutated"

	again, err := s.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unit 1", again.Name, "callers cannot reach stored state through returned values")
	assert.Equal(t, []string{"parking"}, again.Features)
}

func TestMemoryStore_UpdateRejectsStolenUsername(t *testing.T) {
	ctx := context.Background()
	s := New()

	require.NoError(t, s.CreateUser(ctx, &rental.User{Username: "alice", Email: "a@example.com", PasswordHash: "x"}))
	bob := &rental.User{Username: "bob", Email: "b@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, bob))

	taken := "ALICE"
	_, err := s.UpdateUser(ctx, bob.ID, rental.UserUpdate{Username: &taken})
	assert.ErrorIs(t, err, rental.ErrDuplicateUser)

	got, err := s.GetUser(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
}

func TestMemoryStore_SeedDemo(t *testing.T) {
	ctx := context.Background()
	s := New()

	hash := func(pw string) (string, error) { return "hashed:" + pw, nil }
	require.NoError(t, rental.SeedDemo(ctx, s, hash))

	admin, err := s.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, rental.RoleAdmin, admin.Role)

	properties, err := s.ListProperties(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, properties)

	count, err := s.ActiveLeaseCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	reqs, err := s.ListMaintenanceRequests(ctx)
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
}
