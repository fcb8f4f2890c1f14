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
	"errors"
	"net/http"

	"github.com/rentbase/rentbase/internal/rental"
)

const recentUserLimit = 5

// AdminDashboard returns the system-wide counters and most recent signups.
func (h *Handler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	properties, err := h.store.PropertyCount(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	tenants, err := h.store.TenantCount(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	activeLeases, err := h.store.ActiveLeaseCount(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	maintenance, err := h.store.MaintenanceRequestCount(ctx)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	recent, err := h.store.RecentUsers(ctx, recentUserLimit)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"property_count":            properties,
		"tenant_count":              tenants,
		"active_lease_count":        activeLeases,
		"maintenance_request_count": maintenance,
		"recent_users":              recent,
	})
}

// OwnerDashboard returns the caller's properties, the tenants leasing them
// and the open maintenance load across them.
func (h *Handler) OwnerDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ownerID := UserIDFromContext(ctx)

	properties, err := h.store.ListPropertiesByOwner(ctx, ownerID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	tenants, err := h.store.TenantsForOwner(ctx, ownerID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	requests := make([]*rental.MaintenanceRequest, 0)
	for _, p := range properties {
		forProperty, err := h.store.MaintenanceForProperty(ctx, p.ID)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		requests = append(requests, forProperty...)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"properties":           properties,
		"tenants":              tenants,
		"maintenance_requests": requests,
	})
}

// TenantDashboard returns the caller's profile, leases, maintenance
// requests and applications. A missing profile yields empty lists, not 404.
func (h *Handler) TenantDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := UserIDFromContext(ctx)

	leases := make([]*rental.Lease, 0)
	requests := make([]*rental.MaintenanceRequest, 0)

	profile, err := h.store.GetTenantByUserID(ctx, userID)
	switch {
	case err == nil:
		if leases, err = h.store.LeasesForTenant(ctx, profile.ID); err != nil {
			respondStoreError(w, err)
			return
		}
		if requests, err = h.store.MaintenanceForTenant(ctx, profile.ID); err != nil {
			respondStoreError(w, err)
			return
		}
	case errors.Is(err, rental.ErrNotFound):
		profile = nil
	default:
		respondStoreError(w, err)
		return
	}

	applications, err := h.store.ApplicationsForUser(ctx, userID)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"profile":              profile,
		"leases":               leases,
		"maintenance_requests": requests,
		"applications":         applications,
	})
}
