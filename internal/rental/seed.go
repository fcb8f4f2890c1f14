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

import (
	"context"
	"fmt"
)

// SeedDemo loads a small demo data set: an admin, a property owner with two
// listings, a tenant with a profile and an active lease, and one open
// maintenance request. hash turns a plaintext demo password into the stored
// hash. Callers must not rely on the exact rows; they exist for demos and
// manual poking only.
func SeedDemo(ctx context.Context, s Store, hash func(string) (string, error)) error {
	demoHash, err := hash("rentbase-demo")
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	admin := &User{Username: "admin", Email: "admin@rentbase.local", PasswordHash: demoHash, Role: RoleAdmin}
	owner := &User{Username: "demo_owner", Email: "owner@rentbase.local", PasswordHash: demoHash, Role: RolePropertyOwner}
	renter := &User{Username: "demo_tenant", Email: "tenant@rentbase.local", PasswordHash: demoHash, Role: RoleTenant}
	for _, u := range []*User{admin, owner, renter} {
		if err := s.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("failed to seed user %q: %w", u.Username, err)
		}
	}

	loft := &Property{
		OwnerID:      owner.ID,
		Name:         "Maple Street Loft",
		Address:      "12 Maple St",
		City:         "Portland",
		State:        "OR",
		Zip:          "97201",
		PropertyType: "apartment",
		Price:        1850,
		Bedrooms:     2,
		Bathrooms:    1,
		Area:         880,
		Features:     []string{"parking", "laundry"},
		IsApproved:   true,
	}
	bungalow := &Property{
		OwnerID:      owner.ID,
		Name:         "Cedar Bungalow",
		Address:      "48 Cedar Ave",
		City:         "Portland",
		State:        "OR",
		Zip:          "97211",
		PropertyType: "house",
		Price:        2400,
		Bedrooms:     3,
		Bathrooms:    2,
		Area:         1400,
		Features:     []string{"yard", "garage"},
		IsApproved:   true,
	}
	for _, p := range []*Property{loft, bungalow} {
		if err := s.CreateProperty(ctx, p); err != nil {
			return fmt.Errorf("failed to seed property %q: %w", p.Name, err)
		}
	}

	profile := &Tenant{
		UserID:           renter.ID,
		Phone:            "555-0142",
		EmergencyContact: "555-0187",
		Employer:         "Riverside Coffee",
		EmploymentStatus: "employed",
		MonthlyIncome:    4200,
	}
	if err := s.CreateTenant(ctx, profile); err != nil {
		return fmt.Errorf("failed to seed tenant profile: %w", err)
	}

	lease := &Lease{
		PropertyID:      loft.ID,
		TenantID:        profile.ID,
		StartDate:       loft.CreatedAt,
		EndDate:         loft.CreatedAt.AddDate(1, 0, 0),
		MonthlyRent:     loft.Price,
		SecurityDeposit: loft.Price,
	}
	if err := s.CreateLease(ctx, lease); err != nil {
		return fmt.Errorf("failed to seed lease: %w", err)
	}

	if _, err := s.UpdateProperty(ctx, loft.ID, PropertyUpdate{Status: ptr(PropertyStatusLeased)}); err != nil {
		return fmt.Errorf("failed to mark seeded property leased: %w", err)
	}

	request := &MaintenanceRequest{
		PropertyID:  loft.ID,
		TenantID:    &profile.ID,
		Title:       "Kitchen faucet drips",
		Description: "Steady drip from the cold tap, worse overnight.",
		Priority:    PriorityLow,
	}
	if err := s.CreateMaintenanceRequest(ctx, request); err != nil {
		return fmt.Errorf("failed to seed maintenance request: %w", err)
	}

	return nil
}

func ptr[T any](v T) *T { return &v }
