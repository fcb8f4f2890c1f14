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
	"strconv"

	"github.com/rentbase/rentbase/internal/audit"
	"github.com/rentbase/rentbase/internal/rental"
)

// CreateProperty creates a listing. Owners always create for themselves;
// admins may set any owner_id.
func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var p rental.Property
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := ClaimsFromContext(r.Context())
	if claims.Role != rental.RoleAdmin || p.OwnerID == 0 {
		p.OwnerID = claims.UserID
	}

	if p.Name == "" || p.Address == "" {
		respondError(w, http.StatusBadRequest, "name and address are required")
		return
	}
	if p.Price <= 0 {
		respondError(w, http.StatusBadRequest, "price must be positive")
		return
	}

	if err := h.store.CreateProperty(r.Context(), &p); err != nil {
		respondStoreError(w, err)
		return
	}

	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypePropertyCreated,
		ActorID:   claims.UserID,
		Resource:  fmt.Sprintf("property/%d", p.ID),
		IPAddress: getIPAddress(r),
	})

	respondJSON(w, http.StatusCreated, &p)
}

// ListProperties returns listings, optionally filtered by ?owner_id=.
func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("owner_id"); raw != "" {
		ownerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid owner_id")
			return
		}
		properties, err := h.store.ListPropertiesByOwner(r.Context(), ownerID)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, properties)
		return
	}

	properties, err := h.store.ListProperties(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, properties)
}

// GetProperty returns one listing by ID.
func (h *Handler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	property, err := h.store.GetProperty(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

// PropertyUpdateRequest carries a partial listing update.
type PropertyUpdateRequest struct {
	Name         *string   `json:"name"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	State        *string   `json:"state"`
	Zip          *string   `json:"zip"`
	PropertyType *string   `json:"property_type"`
	Price        *float64  `json:"price"`
	Bedrooms     *int      `json:"bedrooms"`
	Bathrooms    *int      `json:"bathrooms"`
	Area         *float64  `json:"area"`
	Features     *[]string `json:"features"`
	Images       *[]string `json:"images"`
	Status       *string   `json:"status"`
	IsApproved   *bool     `json:"is_approved"`
}

// UpdateProperty applies a partial update. Owners may only touch their own
// listings; approval is admin-only.
func (h *Handler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req PropertyUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := ClaimsFromContext(r.Context())
	if claims.Role != rental.RoleAdmin {
		existing, err := h.store.GetProperty(r.Context(), id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if existing.OwnerID != claims.UserID {
			respondError(w, http.StatusForbidden, "not your property")
			return
		}
		req.IsApproved = nil
	}

	if req.Price != nil && *req.Price <= 0 {
		respondError(w, http.StatusBadRequest, "price must be positive")
		return
	}

	property, err := h.store.UpdateProperty(r.Context(), id, rental.PropertyUpdate{
		Name:         req.Name,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		PropertyType: req.PropertyType,
		Price:        req.Price,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		Area:         req.Area,
		Features:     req.Features,
		Images:       req.Images,
		Status:       req.Status,
		IsApproved:   req.IsApproved,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, property)
}

// DeleteProperty removes a listing. Leases and requests pointing at it stay
// behind; owner-scoped traversals simply stop seeing them.
func (h *Handler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	claims := ClaimsFromContext(r.Context())
	if claims.Role != rental.RoleAdmin {
		existing, err := h.store.GetProperty(r.Context(), id)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if existing.OwnerID != claims.UserID {
			respondError(w, http.StatusForbidden, "not your property")
			return
		}
	}

	deleted, err := h.store.DeleteProperty(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "not found")
		return
	}

	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypePropertyDeleted,
		ActorID:   claims.UserID,
		Resource:  fmt.Sprintf("property/%d", id),
		IPAddress: getIPAddress(r),
	})

	respondJSON(w, http.StatusOK, map[string]string{"message": "property deleted"})
}
