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

package rental

import "time"

// Maintenance request priority
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Maintenance request status. A resolved request may be reopened by moving
// it back to in_progress; ResolvedAt is whatever the caller last supplied.
const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusResolved   = "resolved"
)

// MaintenanceRequest belongs to one Property and optionally to the Tenant
// who filed it.
type MaintenanceRequest struct {
	ID          int64      `json:"id"`
	PropertyID  int64      `json:"property_id"`
	TenantID    *int64     `json:"tenant_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// MaintenanceRequestUpdate is a partial update; nil fields are left
// unchanged. ClearResolvedAt resets ResolvedAt to null, which a pointer
// field alone cannot express.
type MaintenanceRequestUpdate struct {
	PropertyID      *int64
	TenantID        *int64
	Title           *string
	Description     *string
	Priority        *string
	Status          *string
	ResolvedAt      *time.Time
	ClearResolvedAt bool
}

// Apply merges the update over m in place.
func (upd MaintenanceRequestUpdate) Apply(m *MaintenanceRequest) {
	if upd.PropertyID != nil {
		m.PropertyID = *upd.PropertyID
	}
	if upd.TenantID != nil {
		m.TenantID = upd.TenantID
	}
	if upd.Title != nil {
		m.Title = *upd.Title
	}
	if upd.Description != nil {
		m.Description = *upd.Description
	}
	if upd.Priority != nil {
		m.Priority = *upd.Priority
	}
	if upd.Status != nil {
		m.Status = *upd.Status
	}
	if upd.ClearResolvedAt {
		m.ResolvedAt = nil
	} else if upd.ResolvedAt != nil {
		m.ResolvedAt = upd.ResolvedAt
	}
}
