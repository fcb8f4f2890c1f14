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
	"errors"
)

// Domain errors
var (
	// ErrNotFound signals absence of a row. It is a normal return value for
	// get/update/delete, never a backend failure.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUser signals a case-insensitive username or email
	// collision on user creation. Callers map it to a specific message.
	ErrDuplicateUser = errors.New("username or email already exists")
)

// UserStore persists accounts. Create assigns ID and CreatedAt and must
// reject case-insensitive username/email collisions with ErrDuplicateUser.
type UserStore interface {
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, id int64, upd UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)

	// RecentUsers returns at most n users sorted by CreatedAt descending,
	// ties broken by insertion order.
	RecentUsers(ctx context.Context, n int) ([]*User, error)
}

// PropertyStore persists listings.
type PropertyStore interface {
	CreateProperty(ctx context.Context, p *Property) error
	GetProperty(ctx context.Context, id int64) (*Property, error)
	ListProperties(ctx context.Context) ([]*Property, error)
	ListPropertiesByOwner(ctx context.Context, ownerID int64) ([]*Property, error)
	UpdateProperty(ctx context.Context, id int64, upd PropertyUpdate) (*Property, error)
	DeleteProperty(ctx context.Context, id int64) (bool, error)
}

// TenantStore persists tenant profiles and answers the owner-scoped views.
type TenantStore interface {
	CreateTenant(ctx context.Context, t *Tenant) error
	GetTenant(ctx context.Context, id int64) (*Tenant, error)
	GetTenantByUserID(ctx context.Context, userID int64) (*Tenant, error)
	ListTenants(ctx context.Context) ([]*Tenant, error)
	UpdateTenant(ctx context.Context, id int64, upd TenantUpdate) (*Tenant, error)
	DeleteTenant(ctx context.Context, id int64) (bool, error)

	// TenantsForOwner walks owner -> properties -> leases -> tenants and
	// returns each tenant once, ordered by tenant ID.
	TenantsForOwner(ctx context.Context, ownerID int64) ([]*Tenant, error)

	// TenantsWithUsers joins every tenant profile to its User row, silently
	// dropping profiles whose user no longer exists.
	TenantsWithUsers(ctx context.Context) ([]*TenantWithUser, error)
}

// LeaseStore persists leases.
type LeaseStore interface {
	CreateLease(ctx context.Context, l *Lease) error
	GetLease(ctx context.Context, id int64) (*Lease, error)
	ListLeases(ctx context.Context) ([]*Lease, error)
	LeasesForProperty(ctx context.Context, propertyID int64) ([]*Lease, error)
	LeasesForTenant(ctx context.Context, tenantID int64) ([]*Lease, error)
	UpdateLease(ctx context.Context, id int64, upd LeaseUpdate) (*Lease, error)
	DeleteLease(ctx context.Context, id int64) (bool, error)
}

// MaintenanceStore persists maintenance requests.
type MaintenanceStore interface {
	CreateMaintenanceRequest(ctx context.Context, m *MaintenanceRequest) error
	GetMaintenanceRequest(ctx context.Context, id int64) (*MaintenanceRequest, error)
	ListMaintenanceRequests(ctx context.Context) ([]*MaintenanceRequest, error)
	MaintenanceForProperty(ctx context.Context, propertyID int64) ([]*MaintenanceRequest, error)
	MaintenanceForTenant(ctx context.Context, tenantID int64) ([]*MaintenanceRequest, error)
	UpdateMaintenanceRequest(ctx context.Context, id int64, upd MaintenanceRequestUpdate) (*MaintenanceRequest, error)
	DeleteMaintenanceRequest(ctx context.Context, id int64) (bool, error)
}

// ApplicationStore persists lease applications.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, a *LeaseApplication) error
	GetApplication(ctx context.Context, id int64) (*LeaseApplication, error)
	ListApplications(ctx context.Context) ([]*LeaseApplication, error)
	ApplicationsForProperty(ctx context.Context, propertyID int64) ([]*LeaseApplication, error)
	ApplicationsForUser(ctx context.Context, applicantID int64) ([]*LeaseApplication, error)
	UpdateApplication(ctx context.Context, id int64, upd LeaseApplicationUpdate) (*LeaseApplication, error)
	DeleteApplication(ctx context.Context, id int64) (bool, error)
}

// AggregateStore answers the dashboard counters.
type AggregateStore interface {
	PropertyCount(ctx context.Context) (int, error)
	TenantCount(ctx context.Context) (int, error)
	ActiveLeaseCount(ctx context.Context) (int, error)
	MaintenanceRequestCount(ctx context.Context) (int, error)
}

// Store is the full persistence contract. Both the in-memory and the
// postgres implementations satisfy it with identical observable semantics;
// the conformance suite under store/storetest is what enforces that, not
// shared code.
type Store interface {
	UserStore
	PropertyStore
	TenantStore
	LeaseStore
	MaintenanceStore
	ApplicationStore
	AggregateStore
}
