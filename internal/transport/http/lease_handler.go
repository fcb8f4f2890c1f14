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
	"fmt"
	"net/http"

	"github.com/rentbase/rentbase/internal/audit"
	"github.com/rentbase/rentbase/internal/rental"
)

// CreateLease creates a lease and marks the property leased.
func (h *Handler) CreateLease(w http.ResponseWriter, r *http.Request) {
	var l rental.Lease
	if err := decodeJSON(r, &l); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if l.PropertyID == 0 || l.TenantID == 0 {
		respondError(w, http.StatusBadRequest, "property_id and tenant_id are required")
		return
	}
	if !l.EndDate.After(l.StartDate) {
		respondError(w, http.StatusBadRequest, "end_date must be after start_date")
		return
	}
	if l.MonthlyRent <= 0 {
		respondError(w, http.StatusBadRequest, "monthly_rent must be positive")
		return
	}

	// Referenced rows must exist even though the store does not enforce it.
	if _, err := h.store.GetProperty(r.Context(), l.PropertyID); err != nil {
		respondStoreError(w, err)
		return
	}
	if _, err := h.store.GetTenant(r.Context(), l.TenantID); err != nil {
		respondStoreError(w, err)
		return
	}

	if err := h.store.CreateLease(r.Context(), &l); err != nil {
		respondStoreError(w, err)
		return
	}

	leased := rental.PropertyStatusLeased
	if _, err := h.store.UpdateProperty(r.Context(), l.PropertyID, rental.PropertyUpdate{Status: &leased}); err != nil {
		respondStoreError(w, err)
		return
	}

	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypeLeaseCreated,
		ActorID:   UserIDFromContext(r.Context()),
		Resource:  fmt.Sprintf("lease/%d", l.ID),
		IPAddress: getIPAddress(r),
	})

	respondJSON(w, http.StatusCreated, &l)
}

// ListLeases returns all leases.
func (h *Handler) ListLeases(w http.ResponseWriter, r *http.Request) {
	leases, err := h.store.ListLeases(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leases)
}

// GetLease returns one lease by ID.
func (h *Handler) GetLease(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	lease, err := h.store.GetLease(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lease)
}

// LeasesForProperty returns all leases recorded against a property.
func (h *Handler) LeasesForProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	leases, err := h.store.LeasesForProperty(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leases)
}

// LeasesForTenant returns all leases held by a tenant.
func (h *Handler) LeasesForTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	leases, err := h.store.LeasesForTenant(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, leases)
}

// LeaseUpdateRequest carries a partial lease update.
type LeaseUpdateRequest struct {
	MonthlyRent     *float64  `json:"monthly_rent"`
	SecurityDeposit *float64  `json:"security_deposit"`
	Status          *string   `json:"status"`
	Documents       *[]string `json:"documents"`
}

// UpdateLease applies a partial update.
func (h *Handler) UpdateLease(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req LeaseUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.MonthlyRent != nil && *req.MonthlyRent <= 0 {
		respondError(w, http.StatusBadRequest, "monthly_rent must be positive")
		return
	}

	lease, err := h.store.UpdateLease(r.Context(), id, rental.LeaseUpdate{
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		Status:          req.Status,
		Documents:       req.Documents,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, lease)
}

// EndLease marks a lease ended and releases the property back to available.
func (h *Handler) EndLease(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	lease, err := h.store.GetLease(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if lease.Status != rental.LeaseStatusActive {
		respondError(w, http.StatusConflict, "lease is not active")
		return
	}

	ended := rental.LeaseStatusEnded
	lease, err = h.store.UpdateLease(r.Context(), id, rental.LeaseUpdate{Status: &ended})
	if err != nil {
		respondStoreError(w, err)
		return
	}

	// The property may have been deleted in the meantime; that is fine.
	available := rental.PropertyStatusAvailable
	_, _ = h.store.UpdateProperty(r.Context(), lease.PropertyID, rental.PropertyUpdate{Status: &available})

	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypeLeaseEnded,
		ActorID:   UserIDFromContext(r.Context()),
		Resource:  fmt.Sprintf("lease/%d", id),
		IPAddress: getIPAddress(r),
	})

	respondJSON(w, http.StatusOK, lease)
}

// DeleteLease removes a lease record.
func (h *Handler) DeleteLease(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.store.DeleteLease(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "lease deleted"})
}
