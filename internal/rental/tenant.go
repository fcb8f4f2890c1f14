package rental

import "time"

// Tenant profile status
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
)

// Tenant is the rental profile attached one-to-one to a User account. The
// store does not verify that UserID references a live User; joins that need
// the User drop orphaned profiles instead (see Store.TenantsWithUsers).
type Tenant struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	Phone            string    `json:"phone"`
	EmergencyContact string    `json:"emergency_contact"`
	Employer         string    `json:"employer"`
	EmploymentStatus string    `json:"employment_status"`
	MonthlyIncome    float64   `json:"monthly_income"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// TenantWithUser pairs a tenant profile with its owning account for display.
type TenantWithUser struct {
	Tenant Tenant `json:"tenant"`
	User   User   `json:"user"`
}

// TenantUpdate is a partial update; nil fields are left unchanged.
type TenantUpdate struct {
	UserID           *int64
	Phone            *string
	EmergencyContact *string
	Employer         *string
	EmploymentStatus *string
	MonthlyIncome    *float64
	Status           *string
}

// Apply merges the update over t in place.
func (upd TenantUpdate) Apply(t *Tenant) {
	if upd.UserID != nil {
		t.UserID = *upd.UserID
	}
	if upd.Phone != nil {
		t.Phone = *upd.Phone
	}
	if upd.EmergencyContact != nil {
		t.EmergencyContact = *upd.EmergencyContact
	}
	if upd.Employer != nil {
		t.Employer = *upd.Employer
	}
	if upd.EmploymentStatus != nil {
		t.EmploymentStatus = *upd.EmploymentStatus
	}
	if upd.MonthlyIncome != nil {
		t.MonthlyIncome = *upd.MonthlyIncome
	}
	if upd.Status != nil {
		t.Status = *upd.Status
	}
}
