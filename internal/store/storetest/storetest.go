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

// Package storetest is the conformance suite both rental.Store backends must
// pass. Behavioral parity between the in-memory and postgres stores is
// guaranteed by running this one suite against each, not by sharing code.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentbase/rentbase/internal/rental"
)

// Factory returns a store with no rows in it. It is called once per subtest
// so cases never observe each other's writes.
type Factory func(t *testing.T) rental.Store

// Run exercises every Store operation and invariant against the factory's
// backend.
func Run(t *testing.T, newStore Factory) {
	t.Run("CreateAssignsIDAndTimestamp", func(t *testing.T) { testCreateAssignsIDAndTimestamp(t, newStore(t)) })
	t.Run("GetMissingReturnsNotFound", func(t *testing.T) { testGetMissing(t, newStore(t)) })
	t.Run("DuplicateUserRejected", func(t *testing.T) { testDuplicateUser(t, newStore(t)) })
	t.Run("LookupByUsernameAndEmailIsCaseInsensitive", func(t *testing.T) { testCaseInsensitiveLookup(t, newStore(t)) })
	t.Run("UpdateMergesSingleField", func(t *testing.T) { testUpdateMerges(t, newStore(t)) })
	t.Run("UpdateMissingHasNoSideEffect", func(t *testing.T) { testUpdateMissing(t, newStore(t)) })
	t.Run("DeleteIsIdempotent", func(t *testing.T) { testDeleteIdempotent(t, newStore(t)) })
	t.Run("ListReturnsInsertionOrder", func(t *testing.T) { testListOrder(t, newStore(t)) })
	t.Run("TraversalQueriesFilterByForeignKey", func(t *testing.T) { testTraversals(t, newStore(t)) })
	t.Run("TenantsForOwnerDeduplicates", func(t *testing.T) { testTenantsForOwnerDedup(t, newStore(t)) })
	t.Run("TenantsWithUsersDropsOrphans", func(t *testing.T) { testTenantsWithUsersOrphans(t, newStore(t)) })
	t.Run("AggregatesMatchDirectCounts", func(t *testing.T) { testAggregates(t, newStore(t)) })
	t.Run("RecentUsersOrderAndTruncation", func(t *testing.T) { testRecentUsers(t, newStore(t)) })
	t.Run("OwnerLeaseScenario", func(t *testing.T) { testOwnerLeaseScenario(t, newStore(t)) })
	t.Run("MaintenanceResolutionRoundTrip", func(t *testing.T) { testMaintenanceResolution(t, newStore(t)) })
	t.Run("ApplicationReviewRoundTrip", func(t *testing.T) { testApplicationReview(t, newStore(t)) })
}

func newUser(username, email string) *rental.User {
	return &rental.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		Role:         rental.RoleTenant,
	}
}

func mustUser(t *testing.T, s rental.Store, username, email string) *rental.User {
	t.Helper()
	u := newUser(username, email)
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func mustProperty(t *testing.T, s rental.Store, ownerID int64, name string, price float64) *rental.Property {
	t.Helper()
	p := &rental.Property{OwnerID: ownerID, Name: name, Price: price}
	require.NoError(t, s.CreateProperty(context.Background(), p))
	return p
}

func mustTenant(t *testing.T, s rental.Store, userID int64) *rental.Tenant {
	t.Helper()
	tn := &rental.Tenant{UserID: userID, Phone: "555-0100"}
	require.NoError(t, s.CreateTenant(context.Background(), tn))
	return tn
}

func mustLease(t *testing.T, s rental.Store, propertyID, tenantID int64, status string) *rental.Lease {
	t.Helper()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := &rental.Lease{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		StartDate:   start,
		EndDate:     start.AddDate(1, 0, 0),
		MonthlyRent: 1500,
		Status:      status,
	}
	require.NoError(t, s.CreateLease(context.Background(), l))
	return l
}

func testCreateAssignsIDAndTimestamp(t *testing.T, s rental.Store) {
	ctx := context.Background()

	u := mustUser(t, s, "alice", "alice@example.com")
	require.Positive(t, u.ID)
	require.False(t, u.CreatedAt.IsZero())

	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, rental.UserStatusActive, got.Status)
	assert.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Second)

	p := mustProperty(t, s, u.ID, "Unit 4", 1200)
	require.Positive(t, p.ID)
	gotP, err := s.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, rental.PropertyStatusAvailable, gotP.Status)
	assert.NotNil(t, gotP.Features)
	assert.NotNil(t, gotP.Images)

	m := &rental.MaintenanceRequest{PropertyID: p.ID, Title: "leak"}
	require.NoError(t, s.CreateMaintenanceRequest(ctx, m))
	gotM, err := s.GetMaintenanceRequest(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, rental.MaintenanceStatusPending, gotM.Status)
	assert.Equal(t, rental.PriorityMedium, gotM.Priority)
	assert.Nil(t, gotM.ResolvedAt)

	a := &rental.LeaseApplication{PropertyID: p.ID, ApplicantID: u.ID, FullName: "Alice A"}
	require.NoError(t, s.CreateApplication(ctx, a))
	gotA, err := s.GetApplication(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, rental.ApplicationStatusPending, gotA.Status)
	assert.WithinDuration(t, gotA.CreatedAt, gotA.UpdatedAt, time.Second)
}

func testGetMissing(t *testing.T, s rental.Store) {
	ctx := context.Background()

	_, err := s.GetUser(ctx, 9999)
	assert.ErrorIs(t, err, rental.ErrNotFound)
	_, err = s.GetProperty(ctx, 9999)
	assert.ErrorIs(t, err, rental.ErrNotFound)
	_, err = s.GetTenant(ctx, 9999)
	assert.ErrorIs(t, err, rental.ErrNotFound)
	_, err = s.GetLease(ctx, 9999)
	assert.ErrorIs(t, err, rental.ErrNotFound)
	_, err = s.GetMaintenanceRequest(ctx, 9999)
	assert.ErrorIs(t, err, rental.ErrNotFound)
	_, err = s.GetApplication(ctx, 9999)
	assert.ErrorIs(t, err, rental.ErrNotFound)
	_, err = s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, rental.ErrNotFound)
	_, err = s.GetTenantByUserID(ctx, 9999)
	assert.ErrorIs(t, err, rental.ErrNotFound)
}

func testDuplicateUser(t *testing.T, s rental.Store) {
	ctx := context.Background()

	first := mustUser(t, s, "Alice", "alice@example.com")

	err := s.CreateUser(ctx, newUser("alice", "other@example.com"))
	assert.ErrorIs(t, err, rental.ErrDuplicateUser, "username collision, any case")

	err = s.CreateUser(ctx, newUser("someone", "ALICE@example.com"))
	assert.ErrorIs(t, err, rental.ErrDuplicateUser, "email collision, any case")

	// The surviving row is untouched.
	got, err := s.GetUser(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func testCaseInsensitiveLookup(t *testing.T, s rental.Store) {
	ctx := context.Background()

	u := mustUser(t, s, "Alice", "Alice@Example.com")

	got, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got, err = s.GetUserByEmail(ctx, "alice@example.COM")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func testUpdateMerges(t *testing.T, s rental.Store) {
	ctx := context.Background()

	owner := mustUser(t, s, "owner", "owner@example.com")
	p := &rental.Property{
		OwnerID:      owner.ID,
		Name:         "Unit 4",
		Address:      "12 Maple St",
		City:         "Portland",
		State:        "OR",
		Zip:          "97201",
		PropertyType: "apartment",
		Price:        1200,
		Bedrooms:     2,
		Bathrooms:    1,
		Area:         800,
		Features:     []string{"parking"},
		Images:       []string{"https://img.example.com/1.jpg"},
	}
	require.NoError(t, s.CreateProperty(ctx, p))

	newPrice := 1350.0
	updated, err := s.UpdateProperty(ctx, p.ID, rental.PropertyUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 1350.0, updated.Price)

	got, err := s.GetProperty(ctx, p.ID)
	require.NoError(t, err)
	want := *p
	want.Price = newPrice
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Address, got.Address)
	assert.Equal(t, want.City, got.City)
	assert.Equal(t, want.State, got.State)
	assert.Equal(t, want.Zip, got.Zip)
	assert.Equal(t, want.PropertyType, got.PropertyType)
	assert.Equal(t, want.Price, got.Price)
	assert.Equal(t, want.Bedrooms, got.Bedrooms)
	assert.Equal(t, want.Bathrooms, got.Bathrooms)
	assert.Equal(t, want.Area, got.Area)
	assert.Equal(t, want.Features, got.Features)
	assert.Equal(t, want.Images, got.Images)
	assert.Equal(t, want.Status, got.Status)
	assert.Equal(t, want.IsApproved, got.IsApproved)
}

func testUpdateMissing(t *testing.T, s rental.Store) {
	ctx := context.Background()

	mustUser(t, s, "solo", "solo@example.com")
	before, err := s.ListUsers(ctx)
	require.NoError(t, err)

	name := "ghost"
	_, err = s.UpdateUser(ctx, 9999, rental.UserUpdate{Username: &name})
	assert.ErrorIs(t, err, rental.ErrNotFound)

	after, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "failed update must leave no trace")
}

func testDeleteIdempotent(t *testing.T, s rental.Store) {
	ctx := context.Background()

	u := mustUser(t, s, "gone", "gone@example.com")

	ok, err := s.DeleteUser(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.GetUser(ctx, u.ID)
	assert.ErrorIs(t, err, rental.ErrNotFound)

	ok, err = s.DeleteUser(ctx, u.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second delete reports nothing removed")

	ok, err = s.DeleteProperty(ctx, 424242)
	require.NoError(t, err)
	assert.False(t, ok)
}

func testListOrder(t *testing.T, s rental.Store) {
	ctx := context.Background()

	a := mustUser(t, s, "first", "first@example.com")
	b := mustUser(t, s, "second", "second@example.com")
	c := mustUser(t, s, "third", "third@example.com")

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, []int64{a.ID, b.ID, c.ID}, []int64{users[0].ID, users[1].ID, users[2].ID})
	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID)
}

func testTraversals(t *testing.T, s rental.Store) {
	ctx := context.Background()

	owner := mustUser(t, s, "owner", "owner@example.com")
	renterA := mustUser(t, s, "renter_a", "a@example.com")
	renterB := mustUser(t, s, "renter_b", "b@example.com")

	p1 := mustProperty(t, s, owner.ID, "Unit 1", 1000)
	p2 := mustProperty(t, s, owner.ID, "Unit 2", 1100)

	ta := mustTenant(t, s, renterA.ID)
	tb := mustTenant(t, s, renterB.ID)

	l1 := mustLease(t, s, p1.ID, ta.ID, rental.LeaseStatusActive)
	l2 := mustLease(t, s, p1.ID, tb.ID, rental.LeaseStatusEnded)
	l3 := mustLease(t, s, p2.ID, ta.ID, rental.LeaseStatusActive)

	leases, err := s.LeasesForProperty(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, leases, 2)
	assert.Equal(t, []int64{l1.ID, l2.ID}, []int64{leases[0].ID, leases[1].ID}, "creation order")

	leases, err = s.LeasesForTenant(ctx, ta.ID)
	require.NoError(t, err)
	require.Len(t, leases, 2)
	assert.Equal(t, []int64{l1.ID, l3.ID}, []int64{leases[0].ID, leases[1].ID})

	got, err := s.GetTenantByUserID(ctx, renterB.ID)
	require.NoError(t, err)
	assert.Equal(t, tb.ID, got.ID)

	m1 := &rental.MaintenanceRequest{PropertyID: p1.ID, TenantID: &ta.ID, Title: "heat out"}
	require.NoError(t, s.CreateMaintenanceRequest(ctx, m1))
	m2 := &rental.MaintenanceRequest{PropertyID: p2.ID, Title: "gutter"}
	require.NoError(t, s.CreateMaintenanceRequest(ctx, m2))

	reqs, err := s.MaintenanceForProperty(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, m1.ID, reqs[0].ID)

	reqs, err = s.MaintenanceForTenant(ctx, ta.ID)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, m1.ID, reqs[0].ID)

	app1 := &rental.LeaseApplication{PropertyID: p1.ID, ApplicantID: renterA.ID, FullName: "A"}
	require.NoError(t, s.CreateApplication(ctx, app1))
	app2 := &rental.LeaseApplication{PropertyID: p2.ID, ApplicantID: renterA.ID, FullName: "A"}
	require.NoError(t, s.CreateApplication(ctx, app2))

	apps, err := s.ApplicationsForUser(ctx, renterA.ID)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, []int64{app1.ID, app2.ID}, []int64{apps[0].ID, apps[1].ID})

	apps, err = s.ApplicationsForProperty(ctx, p2.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, app2.ID, apps[0].ID)
}

func testTenantsForOwnerDedup(t *testing.T, s rental.Store) {
	ctx := context.Background()

	owner := mustUser(t, s, "owner", "owner@example.com")
	other := mustUser(t, s, "other_owner", "other@example.com")
	renter := mustUser(t, s, "renter", "renter@example.com")

	p1 := mustProperty(t, s, owner.ID, "Unit 1", 1000)
	p2 := mustProperty(t, s, owner.ID, "Unit 2", 1100)
	p3 := mustProperty(t, s, other.ID, "Elsewhere", 900)

	tn := mustTenant(t, s, renter.ID)

	// Two leases on two different properties of the same owner, plus one on
	// somebody else's property.
	mustLease(t, s, p1.ID, tn.ID, rental.LeaseStatusActive)
	mustLease(t, s, p2.ID, tn.ID, rental.LeaseStatusEnded)
	mustLease(t, s, p3.ID, tn.ID, rental.LeaseStatusActive)

	tenants, err := s.TenantsForOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, tenants, 1, "tenant appears once despite two leases")
	assert.Equal(t, tn.ID, tenants[0].ID)

	tenants, err = s.TenantsForOwner(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, tenants, 1)

	tenants, err = s.TenantsForOwner(ctx, renter.ID)
	require.NoError(t, err)
	assert.Empty(t, tenants)
}

func testTenantsWithUsersOrphans(t *testing.T, s rental.Store) {
	ctx := context.Background()

	kept := mustUser(t, s, "kept", "kept@example.com")
	doomed := mustUser(t, s, "doomed", "doomed@example.com")

	keptTenant := mustTenant(t, s, kept.ID)
	mustTenant(t, s, doomed.ID)

	ok, err := s.DeleteUser(ctx, doomed.ID)
	require.NoError(t, err)
	require.True(t, ok)

	joined, err := s.TenantsWithUsers(ctx)
	require.NoError(t, err)
	require.Len(t, joined, 1, "orphaned profile silently dropped")
	assert.Equal(t, keptTenant.ID, joined[0].Tenant.ID)
	assert.Equal(t, kept.ID, joined[0].User.ID)
	assert.Equal(t, "kept", joined[0].User.Username)

	// The orphan is still reachable by ID; only the join hides it.
	tenants, err := s.ListTenants(ctx)
	require.NoError(t, err)
	assert.Len(t, tenants, 2)
}

func testAggregates(t *testing.T, s rental.Store) {
	ctx := context.Background()

	owner := mustUser(t, s, "owner", "owner@example.com")
	renter := mustUser(t, s, "renter", "renter@example.com")

	p1 := mustProperty(t, s, owner.ID, "Unit 1", 1000)
	p2 := mustProperty(t, s, owner.ID, "Unit 2", 1100)
	tn := mustTenant(t, s, renter.ID)

	mustLease(t, s, p1.ID, tn.ID, rental.LeaseStatusActive)
	mustLease(t, s, p2.ID, tn.ID, rental.LeaseStatusEnded)
	mustLease(t, s, p2.ID, tn.ID, rental.LeaseStatusActive)

	m := &rental.MaintenanceRequest{PropertyID: p1.ID, Title: "door"}
	require.NoError(t, s.CreateMaintenanceRequest(ctx, m))

	properties, err := s.ListProperties(ctx)
	require.NoError(t, err)
	count, err := s.PropertyCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(properties), count)

	tenants, err := s.ListTenants(ctx)
	require.NoError(t, err)
	count, err = s.TenantCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(tenants), count)

	leases, err := s.ListLeases(ctx)
	require.NoError(t, err)
	active := 0
	for _, l := range leases {
		if l.Status == rental.LeaseStatusActive {
			active++
		}
	}
	count, err = s.ActiveLeaseCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, active, count)
	assert.Equal(t, 2, count)

	count, err = s.MaintenanceRequestCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func testRecentUsers(t *testing.T, s rental.Store) {
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	old := newUser("old", "old@example.com")
	old.CreatedAt = base.Add(-48 * time.Hour)
	require.NoError(t, s.CreateUser(ctx, old))

	tiedA := newUser("tied_a", "tied_a@example.com")
	tiedA.CreatedAt = base
	require.NoError(t, s.CreateUser(ctx, tiedA))

	tiedB := newUser("tied_b", "tied_b@example.com")
	tiedB.CreatedAt = base
	require.NoError(t, s.CreateUser(ctx, tiedB))

	newest := newUser("newest", "newest@example.com")
	newest.CreatedAt = base.Add(24 * time.Hour)
	require.NoError(t, s.CreateUser(ctx, newest))

	recent, err := s.RecentUsers(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "newest", recent[0].Username)
	assert.Equal(t, "tied_a", recent[1].Username, "equal timestamps keep insertion order")
	assert.Equal(t, "tied_b", recent[2].Username)

	all, err := s.RecentUsers(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 4, "n larger than the table returns everything")

	none, err := s.RecentUsers(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// testOwnerLeaseScenario replays the end-to-end flow: owner, listed
// property, tenant on somebody's account, active lease, then the property
// disappears out from under the lease.
func testOwnerLeaseScenario(t *testing.T, s rental.Store) {
	ctx := context.Background()

	owner := mustUser(t, s, "owner1", "owner1@example.com")
	renter := mustUser(t, s, "renter1", "renter1@example.com")

	p := mustProperty(t, s, owner.ID, "Unit 9", 1500)
	tn := mustTenant(t, s, renter.ID)
	mustLease(t, s, p.ID, tn.ID, rental.LeaseStatusActive)

	count, err := s.ActiveLeaseCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	tenants, err := s.TenantsForOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, tenants, 1)
	assert.Equal(t, tn.ID, tenants[0].ID)

	ok, err := s.DeleteProperty(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)

	tenants, err = s.TenantsForOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, tenants, "traversal through a deleted property finds nobody")
}

func testMaintenanceResolution(t *testing.T, s rental.Store) {
	ctx := context.Background()

	owner := mustUser(t, s, "owner", "owner@example.com")
	p := mustProperty(t, s, owner.ID, "Unit 1", 1000)

	m := &rental.MaintenanceRequest{PropertyID: p.ID, Title: "furnace", Priority: rental.PriorityHigh}
	require.NoError(t, s.CreateMaintenanceRequest(ctx, m))

	resolved := rental.MaintenanceStatusResolved
	at := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	got, err := s.UpdateMaintenanceRequest(ctx, m.ID, rental.MaintenanceRequestUpdate{
		Status:     &resolved,
		ResolvedAt: &at,
	})
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedAt)
	assert.True(t, got.ResolvedAt.Equal(at))
	assert.Equal(t, rental.MaintenanceStatusResolved, got.Status)

	// Reopen: status back to in_progress, timestamp cleared.
	inProgress := rental.MaintenanceStatusInProgress
	got, err = s.UpdateMaintenanceRequest(ctx, m.ID, rental.MaintenanceRequestUpdate{
		Status:          &inProgress,
		ClearResolvedAt: true,
	})
	require.NoError(t, err)
	assert.Nil(t, got.ResolvedAt)
	assert.Equal(t, rental.MaintenanceStatusInProgress, got.Status)
	assert.Equal(t, rental.PriorityHigh, got.Priority, "untouched fields survive")
}

func testApplicationReview(t *testing.T, s rental.Store) {
	ctx := context.Background()

	owner := mustUser(t, s, "owner", "owner@example.com")
	applicant := mustUser(t, s, "applicant", "applicant@example.com")
	p := mustProperty(t, s, owner.ID, "Unit 1", 1000)

	a := &rental.LeaseApplication{
		PropertyID:    p.ID,
		ApplicantID:   applicant.ID,
		FullName:      "App Licant",
		MonthlyIncome: 3900,
		Employer:      "Riverside Coffee",
	}
	require.NoError(t, s.CreateApplication(ctx, a))

	approved := rental.ApplicationStatusApproved
	at := time.Date(2026, 5, 10, 8, 0, 0, 0, time.UTC)
	got, err := s.UpdateApplication(ctx, a.ID, rental.LeaseApplicationUpdate{
		Status:     &approved,
		ReviewedAt: &at,
		ReviewedBy: &owner.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, rental.ApplicationStatusApproved, got.Status)
	require.NotNil(t, got.ReviewedAt)
	assert.True(t, got.ReviewedAt.Equal(at))
	require.NotNil(t, got.ReviewedBy)
	assert.Equal(t, owner.ID, *got.ReviewedBy)
	assert.Equal(t, "App Licant", got.FullName, "snapshot fields untouched by review")
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))
}
