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

// CreateApplication submits a lease application. An applicant may hold at
// most one non-withdrawn application per property.
func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var a rental.LeaseApplication
	if err := decodeJSON(r, &a); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := ClaimsFromContext(r.Context())
	a.ApplicantID = claims.UserID

	if a.PropertyID == 0 || a.FullName == "" {
		respondError(w, http.StatusBadRequest, "property_id and full_name are required")
		return
	}
	if _, err := h.store.GetProperty(r.Context(), a.PropertyID); err != nil {
		respondStoreError(w, err)
		return
	}

	existing, err := h.store.ApplicationsForUser(r.Context(), claims.UserID)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	for _, prev := range existing {
		if prev.PropertyID == a.PropertyID && prev.Status != rental.ApplicationStatusWithdrawn {
			respondError(w, http.StatusConflict, "an application for this property already exists")
			return
		}
	}

	if err := h.store.CreateApplication(r.Context(), &a); err != nil {
		respondStoreError(w, err)
		return
	}

	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypeApplicationFiled,
		ActorID:   claims.UserID,
		Resource:  fmt.Sprintf("application/%d", a.ID),
		IPAddress: getIPAddress(r),
	})

	respondJSON(w, http.StatusCreated, &a)
}

// ListApplications returns all applications.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.store.ListApplications(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, applications)
}

// MyApplications returns the caller's own applications.
func (h *Handler) MyApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.store.ApplicationsForUser(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, applications)
}

// ApplicationsForUser returns every application a given account has filed.
func (h *Handler) ApplicationsForUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	applications, err := h.store.ApplicationsForUser(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, applications)
}

// ApplicationsForProperty returns the applications filed for a property.
func (h *Handler) ApplicationsForProperty(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	applications, err := h.store.ApplicationsForProperty(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, applications)
}

// GetApplication returns one application. Tenants only see their own.
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	application, err := h.store.GetApplication(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	claims := ClaimsFromContext(r.Context())
	if claims.Role == rental.RoleTenant && application.ApplicantID != claims.UserID {
		respondError(w, http.StatusForbidden, "not your application")
		return
	}

	respondJSON(w, http.StatusOK, application)
}

// WithdrawApplication moves the caller's pending application to withdrawn.
func (h *Handler) WithdrawApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	application, err := h.store.GetApplication(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	claims := ClaimsFromContext(r.Context())
	if application.ApplicantID != claims.UserID && claims.Role != rental.RoleAdmin {
		respondError(w, http.StatusForbidden, "not your application")
		return
	}
	if application.Status != rental.ApplicationStatusPending {
		respondError(w, http.StatusConflict, "only pending applications can be withdrawn")
		return
	}

	withdrawn := rental.ApplicationStatusWithdrawn
	application, err = h.store.UpdateApplication(r.Context(), id, rental.LeaseApplicationUpdate{Status: &withdrawn})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, application)
}

// ReviewRequest carries the reviewer's decision.
type ReviewRequest struct {
	Decision string `json:"decision"`
}

// ReviewApplication approves or rejects a pending application, stamping the
// reviewer and review time.
func (h *Handler) ReviewApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Decision != rental.ApplicationStatusApproved && req.Decision != rental.ApplicationStatusRejected {
		respondError(w, http.StatusBadRequest, "decision must be approved or rejected")
		return
	}

	application, err := h.store.GetApplication(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if application.Status != rental.ApplicationStatusPending {
		respondError(w, http.StatusConflict, "application has already been decided")
		return
	}

	reviewerID := UserIDFromContext(r.Context())
	now := time.Now()
	application, err = h.store.UpdateApplication(r.Context(), id, rental.LeaseApplicationUpdate{
		Status:     &req.Decision,
		ReviewedAt: &now,
		ReviewedBy: &reviewerID,
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}

	h.auditLogger.Log(r.Context(), audit.Event{
		Type:      audit.TypeApplicationReviewed,
		ActorID:   reviewerID,
		Resource:  fmt.Sprintf("application/%d", id),
		IPAddress: getIPAddress(r),
		Metadata:  map[string]any{audit.AttrStatus: req.Decision},
	})

	respondJSON(w, http.StatusOK, application)
}

// DeleteApplication removes an application record.
func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.store.DeleteApplication(r.Context(), id)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "application deleted"})
}
