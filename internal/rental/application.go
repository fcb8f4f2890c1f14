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

// Lease application status. approved, rejected and withdrawn are terminal;
// the transition itself is decided by the caller, not the store.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusApproved  = "approved"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusWithdrawn = "withdrawn"
)

// LeaseApplication is a request by a User to lease a Property. Applicant
// details are snapshotted at submission time rather than joined from the
// User row, so a later profile edit does not rewrite history.
type LeaseApplication struct {
	ID               int64      `json:"id"`
	PropertyID       int64      `json:"property_id"`
	ApplicantID      int64      `json:"applicant_id"`
	FullName         string     `json:"full_name"`
	MonthlyIncome    float64    `json:"monthly_income"`
	Employer         string     `json:"employer"`
	EmploymentStatus string     `json:"employment_status"`
	References       string     `json:"references"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy       *int64     `json:"reviewed_by,omitempty"`
}

// LeaseApplicationUpdate is a partial update; nil fields are left unchanged.
// Any applied update refreshes UpdatedAt.
type LeaseApplicationUpdate struct {
	FullName         *string
	MonthlyIncome    *float64
	Employer         *string
	EmploymentStatus *string
	References       *string
	Status           *string
	ReviewedAt       *time.Time
	ReviewedBy       *int64
}

// Apply merges the update over a in place.
func (upd LeaseApplicationUpdate) Apply(a *LeaseApplication) {
	if upd.FullName != nil {
		a.FullName = *upd.FullName
	}
	if upd.MonthlyIncome != nil {
		a.MonthlyIncome = *upd.MonthlyIncome
	}
	if upd.Employer != nil {
		a.Employer = *upd.Employer
	}
	if upd.EmploymentStatus != nil {
		a.EmploymentStatus = *upd.EmploymentStatus
	}
	if upd.References != nil {
		a.References = *upd.References
	}
	if upd.Status != nil {
		a.Status = *upd.Status
	}
	if upd.ReviewedAt != nil {
		a.ReviewedAt = upd.ReviewedAt
	}
	if upd.ReviewedBy != nil {
		a.ReviewedBy = upd.ReviewedBy
	}
}
