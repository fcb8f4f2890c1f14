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
	"time"

	"github.com/rentbase/rentbase/internal/audit"
	"github.com/rentbase/rentbase/internal/rental"
)

// CreateMaintenanceRequest files a request against a property. When the
// caller is a tenant with a profile, the request is attributed to it.
func (h *Handler) CreateMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	var m rental.MaintenanceRequest
	if err := decodeJSON(r, &m); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if m.PropertyID == 0 || m.Title == "" {
		respondError(w, http.StatusBadRequest, "property_id and title are required")
		return
	}
	if _, err := h.store.GetProperty(r.Context(), m.PropertyID); err != nil {
		respondStoreError(w, err)
		return
	}

	claims := ClaimsFromContext(r.Context())
	if claims.Role == rental.RoleTenant {
		if profile, err := h.store.GetTenantByUserID(r.Context(), claims.UserID); err == nil {
			m.TenantID = &profile.ID
		}
	}

	if err := h.store.CreateMaintenanceRequest(r.Context(), &m); err != nil {
		respondStoreError(w, err)
		return
	}

	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypeMaintenanceFiled,
		ActorID:   claims.UserID,
		Resource:  fmt.Sprintf("maintenance_request/%d", m.ID),
		IPAddress: getIPAddress(r),
	})

	respondJSON(w, http.StatusCreated, &m)
}

// ListMaintenanceRequests returns all requests.
func (h *Handler) ListMaintenanceRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.store.ListMaintenanceRequests(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// GetMaintenanceRequest returns one request by ID.
func (h *Handler) GetMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	request, err := h.store.GetMaintenanceRequest(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, request)
}

// MaintenanceForProperty returns the requests filed against a property.
func (h *Handler) MaintenanceForProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	requests, err := h.store.MaintenanceForProperty(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// MaintenanceForTenant returns the requests filed by a tenant.
func (h *Handler) MaintenanceForTenant(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	requests, err := h.store.MaintenanceForTenant(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// MaintenanceUpdateRequest carries a partial update.
type MaintenanceUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
}

// UpdateMaintenanceRequest applies a partial update to the descriptive
// fields. Status moves through SetMaintenanceStatus.
func (h *Handler) UpdateMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req MaintenanceUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Priority != nil {
		switch *req.Priority {
		case rental.PriorityLow, rental.PriorityMedium, rental.PriorityHigh:
		default:
			respondError(w, http.StatusBadRequest, "invalid priority")
			return
		}
	}

	request, err := h.store.UpdateMaintenanceRequest(r.Context(), id, rental.MaintenanceRequestUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, request)
}

// MaintenanceStatusRequest names the target status.
type MaintenanceStatusRequest struct {
	Status string `json:"status"`
}

// SetMaintenanceStatus moves a request through its lifecycle. Entering
// resolved stamps ResolvedAt; leaving it clears the stamp.
func (h *Handler) SetMaintenanceStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req MaintenanceStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	upd := rental.MaintenanceRequestUpdate{Status: &req.Status}
	switch req.Status {
	case rental.MaintenanceStatusResolved:
		now := time.Now()
		upd.ResolvedAt = &now
	case rental.MaintenanceStatusPending, rental.MaintenanceStatusInProgress:
		upd.ClearResolvedAt = true
	default:
		respondError(w, http.StatusBadRequest, "invalid status")
		return
	}

	request, err := h.store.UpdateMaintenanceRequest(r.Context(), id, upd)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	if req.Status == rental.MaintenanceStatusResolved {
		h.auditLogger.Log(r.Context(), audit.Event{
			Type:      audit.TypeMaintenanceResolved,
			ActorID:   UserIDFromContext(r.Context()),
			Resource:  fmt.Sprintf("maintenance_request/%d", id),
			IPAddress: getIPAddress(r),
		})
	}

	respondJSON(w, http.StatusOK, request)
}

// DeleteMaintenanceRequest removes a request.
func (h *Handler) DeleteMaintenanceRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.store.DeleteMaintenanceRequest(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "maintenance request deleted"})
}
