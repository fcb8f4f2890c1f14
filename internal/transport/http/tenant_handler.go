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
	"net/http"

	"github.com/rentbase/rentbase/internal/rental"
)

// CreateTenant creates a rental profile. Tenants create their own profile;
// admins may create one for any user.
func (h *Handler) CreateTenant(w http.ResponseWriter, r *http.Request) {
	var t rental.Tenant
	if err := decodeJSON(r, &t); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := ClaimsFromContext(r.Context())
	if claims.Role != rental.RoleAdmin || t.UserID == 0 {
		t.UserID = claims.UserID
	}

	// One profile per account
	if _, err := h.store.GetTenantByUserID(r.Context(), t.UserID); err == nil {
		respondError(w, http.StatusConflict, "tenant profile already exists")
		return
	}

	if err := h.store.CreateTenant(r.Context(), &t); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, &t)
}

// ListTenants returns all tenant profiles.
func (h *Handler) ListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.store.ListTenants(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tenants)
}

// TenantsWithUsers returns tenant profiles joined with their accounts.
// Profiles whose account was deleted are omitted.
func (h *Handler) TenantsWithUsers(w http.ResponseWriter, r *http.Request) {
	joined, err := h.store.TenantsWithUsers(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, joined)
}

// TenantsForOwner returns the distinct tenants holding leases on any of an
// owner's properties.
func (h *Handler) TenantsForOwner(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	tenants, err := h.store.TenantsForOwner(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tenants)
}

// GetTenant returns one tenant profile by ID.
func (h *Handler) GetTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	tenant, err := h.store.GetTenant(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tenant)
}

// TenantUpdateRequest carries a partial profile update.
type TenantUpdateRequest struct {
	Phone            *string  `json:"phone"`
	EmergencyContact *string  `json:"emergency_contact"`
	Employer         *string  `json:"employer"`
	EmploymentStatus *string  `json:"employment_status"`
	MonthlyIncome    *float64 `json:"monthly_income"`
	Status           *string  `json:"status"`
}

// UpdateTenant applies a partial update. Tenants may only edit their own
// profile.
func (h *Handler) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	claims := ClaimsFromContext(r.Context())
	if claims.Role == rental.RoleTenant {
		existing, err := h.store.GetTenant(r.Context(), id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if existing.UserID != claims.UserID {
			respondError(w, http.StatusForbidden, "not your profile")
			return
		}
	}

	var req TenantUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tenant, err := h.store.UpdateTenant(r.Context(), id, rental.TenantUpdate{
		Phone:            req.Phone,
		EmergencyContact: req.EmergencyContact,
		Employer:         req.Employer,
		EmploymentStatus: req.EmploymentStatus,
		MonthlyIncome:    req.MonthlyIncome,
		Status:           req.Status,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tenant)
}

// DeleteTenant removes a tenant profile.
func (h *Handler) DeleteTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.store.DeleteTenant(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "tenant deleted"})
}
