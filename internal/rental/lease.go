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

// Lease status
const (
	LeaseStatusActive     = "active"
	LeaseStatusEnded      = "ended"
	LeaseStatusTerminated = "terminated"
)

// Lease ties a Tenant to a Property for a date range. A property accumulates
// many leases over time, as does a tenant. EndDate > StartDate is the
// caller's responsibility.
type Lease struct {
	ID              int64     `json:"id"`
	PropertyID      int64     `json:"property_id"`
	TenantID        int64     `json:"tenant_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	MonthlyRent     float64   `json:"monthly_rent"`
	SecurityDeposit float64   `json:"security_deposit"`
	Status          string    `json:"status"`
	Documents       []string  `json:"documents"`
	CreatedAt       time.Time `json:"created_at"`
}

// LeaseUpdate is a partial update; nil fields are left unchanged.
type LeaseUpdate struct {
	PropertyID      *int64
	TenantID        *int64
	StartDate       *time.Time
	EndDate         *time.Time
	MonthlyRent     *float64
	SecurityDeposit *float64
	Status          *string
	Documents       *[]string
}

// Apply merges the update over l in place.
func (upd LeaseUpdate) Apply(l *Lease) {
	if upd.PropertyID != nil {
		l.PropertyID = *upd.PropertyID
	}
	if upd.TenantID != nil {
		l.TenantID = *upd.TenantID
	}
	if upd.StartDate != nil {
		l.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		l.EndDate = *upd.EndDate
	}
	if upd.MonthlyRent != nil {
		l.MonthlyRent = *upd.MonthlyRent
	}
	if upd.SecurityDeposit != nil {
		l.SecurityDeposit = *upd.SecurityDeposit
	}
	if upd.Status != nil {
		l.Status = *upd.Status
	}
	if upd.Documents != nil {
		l.Documents = copyStrings(*upd.Documents)
	}
}
