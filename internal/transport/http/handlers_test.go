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

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentbase/rentbase/internal/audit"
	"github.com/rentbase/rentbase/internal/auth"
	"github.com/rentbase/rentbase/internal/rental"
	"github.com/rentbase/rentbase/internal/store/memory"
)

type testEnv struct {
	server *httptest.Server
	store  rental.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.New()
	hasher := auth.NewPasswordHasher(1024, 1, 1, 16, 32)
	tokens := auth.NewTokenIssuer("test-secret-do-not-use", time.Hour)
	authSvc := auth.NewService(store, hasher, tokens, audit.NewSlogLogger())

	h := NewHandler(store, authSvc, audit.NewSlogLogger(), nil)
	limiter := NewRateLimiter(1000, 1000)
	t.Cleanup(limiter.Stop)
	server := httptest.NewServer(NewRouter(h, limiter))
	t.Cleanup(server.Close)

	return &testEnv{server: server, store: store}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

// register + login, returning the token
func (e *testEnv) signup(t *testing.T, username, role string) string {
	t.Helper()

	resp := e.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "long enough secret",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": "long enough secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()

	// Admin accounts cannot self-register over the API; promote directly.
	resp := e.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "root",
		"email":    "root@example.com",
		"password": "long enough secret",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created rental.User
	decodeBody(t, resp, &created)

	admin := rental.RoleAdmin
	_, err := e.store.UpdateUser(context.Background(), created.ID, rental.UserUpdate{Role: &admin})
	require.NoError(t, err)

	resp = e.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "root",
		"password": "long enough secret",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &out)
	return out.Token
}

func TestHealthCheck(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "healthy", body["status"])
}

func TestAuthFlow(t *testing.T) {
	// TestPurpose: register/login round-trip, duplicate registration is a
	// 409 conflict, admin self-registration is forbidden, and /auth/me
	// requires a valid token.
	env := newTestEnv(t)

	token := env.signup(t, "alice", "")

	resp := env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "ALICE",
		"email":    "other@example.com",
		"password": "long enough secret",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"username": "eve",
		"email":    "eve@example.com",
		"password": "long enough secret",
		"role":     rental.RoleAdmin,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var me rental.User
	decodeBody(t, resp, &me)
	assert.Equal(t, "alice", me.Username)

	resp = env.do(t, http.MethodGet, "/api/v1/auth/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestPropertyCRUD(t *testing.T) {
	// TestPurpose: owners create/update/delete their own listings; invalid
	// prices are rejected, tenants cannot create listings, and a foreign
	// owner cannot edit someone else's property.
	env := newTestEnv(t)
	owner := env.signup(t, "owner", rental.RolePropertyOwner)
	tenant := env.signup(t, "renter", "")

	resp := env.do(t, http.MethodPost, "/api/v1/properties", owner, map[string]any{
		"name":    "Maple Street Loft",
		"address": "12 Maple St",
		"price":   1850.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created rental.Property
	decodeBody(t, resp, &created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, rental.PropertyStatusAvailable, created.Status)

	resp = env.do(t, http.MethodPost, "/api/v1/properties", owner, map[string]any{
		"name":    "Free Loft",
		"address": "13 Maple St",
		"price":   0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/properties", tenant, map[string]any{
		"name":    "Sneaky Listing",
		"address": "nowhere",
		"price":   100.0,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	path := fmt.Sprintf("/api/v1/properties/%d", created.ID)

	resp = env.do(t, http.MethodPut, path, owner, map[string]any{"price": 1900.0})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated rental.Property
	decodeBody(t, resp, &updated)
	assert.Equal(t, 1900.0, updated.Price)
	assert.Equal(t, "Maple Street Loft", updated.Name)

	other := env.signup(t, "other_owner", rental.RolePropertyOwner)
	resp = env.do(t, http.MethodPut, path, other, map[string]any{"price": 1.0})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodDelete, path, owner, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, path, owner, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestLeaseLifecycle(t *testing.T) {
	// TestPurpose: creating a lease flips the property to leased, ending it
	// flips the property back and a second end attempt conflicts.
	env := newTestEnv(t)
	owner := env.signup(t, "landlord", rental.RolePropertyOwner)
	renter := env.signup(t, "renter", "")

	resp := env.do(t, http.MethodPost, "/api/v1/properties", owner, map[string]any{
		"name":    "Cedar Bungalow",
		"address": "4 Cedar Way",
		"price":   2100.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var property rental.Property
	decodeBody(t, resp, &property)

	resp = env.do(t, http.MethodPost, "/api/v1/tenants", renter, map[string]any{
		"phone": "555-0100",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var profile rental.Tenant
	decodeBody(t, resp, &profile)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	resp = env.do(t, http.MethodPost, "/api/v1/leases", owner, map[string]any{
		"property_id":  property.ID,
		"tenant_id":    profile.ID,
		"start_date":   start,
		"end_date":     start.AddDate(1, 0, 0),
		"monthly_rent": 2100.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var lease rental.Lease
	decodeBody(t, resp, &lease)
	assert.Equal(t, rental.LeaseStatusActive, lease.Status)

	got, err := env.store.GetProperty(context.Background(), property.ID)
	require.NoError(t, err)
	assert.Equal(t, rental.PropertyStatusLeased, got.Status)

	endPath := fmt.Sprintf("/api/v1/leases/%d/end", lease.ID)
	resp = env.do(t, http.MethodPost, endPath, owner, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ended rental.Lease
	decodeBody(t, resp, &ended)
	assert.Equal(t, rental.LeaseStatusEnded, ended.Status)

	got, err = env.store.GetProperty(context.Background(), property.ID)
	require.NoError(t, err)
	assert.Equal(t, rental.PropertyStatusAvailable, got.Status)

	resp = env.do(t, http.MethodPost, endPath, owner, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestMaintenanceStatusTransitions(t *testing.T) {
	// TestPurpose: resolving a request stamps resolved_at; moving it back
	// to in_progress clears the stamp.
	env := newTestEnv(t)
	owner := env.signup(t, "landlord", rental.RolePropertyOwner)

	resp := env.do(t, http.MethodPost, "/api/v1/properties", owner, map[string]any{
		"name":    "Cedar Bungalow",
		"address": "4 Cedar Way",
		"price":   2100.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var property rental.Property
	decodeBody(t, resp, &property)

	resp = env.do(t, http.MethodPost, "/api/v1/maintenance-requests", owner, map[string]any{
		"property_id": property.ID,
		"title":       "Leaking faucet",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var request rental.MaintenanceRequest
	decodeBody(t, resp, &request)
	assert.Equal(t, rental.MaintenanceStatusPending, request.Status)

	statusPath := fmt.Sprintf("/api/v1/maintenance-requests/%d/status", request.ID)

	resp = env.do(t, http.MethodPut, statusPath, owner, map[string]string{"status": "resolved"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &request)
	require.NotNil(t, request.ResolvedAt)

	resp = env.do(t, http.MethodPut, statusPath, owner, map[string]string{"status": "in_progress"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	// resolved_at is omitempty; decode into a zeroed struct so the stale
	// stamp from the previous response can't survive the round trip.
	request = rental.MaintenanceRequest{}
	decodeBody(t, resp, &request)
	assert.Nil(t, request.ResolvedAt)

	resp = env.do(t, http.MethodPut, statusPath, owner, map[string]string{"status": "bogus"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestApplicationReviewFlow(t *testing.T) {
	// TestPurpose: one non-withdrawn application per applicant and
	// property, review stamps reviewer and decision, and a decided
	// application cannot be reviewed again.
	env := newTestEnv(t)
	owner := env.signup(t, "landlord", rental.RolePropertyOwner)
	applicant := env.signup(t, "applicant", "")

	resp := env.do(t, http.MethodPost, "/api/v1/properties", owner, map[string]any{
		"name":    "Cedar Bungalow",
		"address": "4 Cedar Way",
		"price":   2100.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var property rental.Property
	decodeBody(t, resp, &property)

	apply := map[string]any{
		"property_id": property.ID,
		"full_name":   "Pat Applicant",
	}
	resp = env.do(t, http.MethodPost, "/api/v1/applications", applicant, apply)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var application rental.LeaseApplication
	decodeBody(t, resp, &application)
	assert.Equal(t, rental.ApplicationStatusPending, application.Status)

	resp = env.do(t, http.MethodPost, "/api/v1/applications", applicant, apply)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	reviewPath := fmt.Sprintf("/api/v1/applications/%d/review", application.ID)

	resp = env.do(t, http.MethodPut, reviewPath, applicant, map[string]string{"decision": "approved"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPut, reviewPath, owner, map[string]string{"decision": "approved"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &application)
	assert.Equal(t, rental.ApplicationStatusApproved, application.Status)
	require.NotNil(t, application.ReviewedAt)
	require.NotNil(t, application.ReviewedBy)

	resp = env.do(t, http.MethodPut, reviewPath, owner, map[string]string{"decision": "rejected"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// An approved application still occupies the per-property slot.
	resp = env.do(t, http.MethodPost, "/api/v1/applications", applicant, map[string]any{
		"property_id": property.ID,
		"full_name":   "Pat Applicant",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestDashboards(t *testing.T) {
	// TestPurpose: the admin dashboard aggregates counts and recent users,
	// the owner dashboard is scoped to the caller's properties, and the
	// tenant dashboard tolerates a missing profile.
	env := newTestEnv(t)
	admin := env.adminToken(t)
	owner := env.signup(t, "landlord", rental.RolePropertyOwner)
	renter := env.signup(t, "renter", "")

	resp := env.do(t, http.MethodPost, "/api/v1/properties", owner, map[string]any{
		"name":    "Cedar Bungalow",
		"address": "4 Cedar Way",
		"price":   2100.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/v1/dashboard/admin", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var adminDash struct {
		PropertyCount int           `json:"property_count"`
		RecentUsers   []rental.User `json:"recent_users"`
	}
	decodeBody(t, resp, &adminDash)
	assert.Equal(t, 1, adminDash.PropertyCount)
	assert.Len(t, adminDash.RecentUsers, 3)

	resp = env.do(t, http.MethodGet, "/api/v1/dashboard/admin", owner, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodGet, "/api/v1/dashboard/owner", owner, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var ownerDash struct {
		Properties []rental.Property `json:"properties"`
		Tenants    []rental.Tenant   `json:"tenants"`
	}
	decodeBody(t, resp, &ownerDash)
	assert.Len(t, ownerDash.Properties, 1)
	assert.Empty(t, ownerDash.Tenants)

	resp = env.do(t, http.MethodGet, "/api/v1/dashboard/tenant", renter, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var tenantDash struct {
		Profile      *rental.Tenant            `json:"profile"`
		Leases       []rental.Lease            `json:"leases"`
		Applications []rental.LeaseApplication `json:"applications"`
	}
	decodeBody(t, resp, &tenantDash)
	assert.Nil(t, tenantDash.Profile)
	assert.Empty(t, tenantDash.Leases)
	assert.Empty(t, tenantDash.Applications)
}

func TestUserAdminEndpoints(t *testing.T) {
	// TestPurpose: user management is admin-only and deleting an account
	// leaves dependent rows to the defensive joins.
	env := newTestEnv(t)
	admin := env.adminToken(t)
	_ = env.signup(t, "victim", "")

	resp := env.do(t, http.MethodGet, "/api/v1/users", admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var users []rental.User
	decodeBody(t, resp, &users)
	require.Len(t, users, 2)

	var victimID int64
	for _, u := range users {
		if u.Username == "victim" {
			victimID = u.ID
		}
	}
	require.NotZero(t, victimID)

	tenantToken := env.signup(t, "bystander", "")
	resp = env.do(t, http.MethodGet, "/api/v1/users", tenantToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	path := fmt.Sprintf("/api/v1/users/%d", victimID)
	resp = env.do(t, http.MethodDelete, path, admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodDelete, path, admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
