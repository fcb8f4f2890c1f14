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

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rentbase/rentbase/internal/rental"
)

const tenantColumns = `id, user_id, phone, emergency_contact, employer, employment_status,
	monthly_income, status, created_at`

func scanTenant(row pgx.Row) (*rental.Tenant, error) {
	var t rental.Tenant
	err := row.Scan(&t.ID, &t.UserID, &t.Phone, &t.EmergencyContact, &t.Employer,
		&t.EmploymentStatus, &t.MonthlyIncome, &t.Status, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) CreateTenant(ctx context.Context, t *rental.Tenant) error {
	t.CreatedAt = createdAtOrNow(t.CreatedAt)
	if t.Status == "" {
		t.Status = rental.TenantStatusActive
	}

	err := s.db.pool.QueryRow(ctx, `
		INSERT INTO tenants (user_id, phone, emergency_contact, employer, employment_status,
			monthly_income, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, t.UserID, t.Phone, t.EmergencyContact, t.Employer, t.EmploymentStatus,
		t.MonthlyIncome, t.Status, t.CreatedAt).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to insert tenant: %w", err)
	}
	return nil
}

func (s *Store) GetTenant(ctx context.Context, id int64) (*rental.Tenant, error) {
	t, err := scanTenant(s.db.pool.QueryRow(ctx, `
		SELECT `+tenantColumns+` FROM tenants WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rental.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return t, nil
}

func (s *Store) GetTenantByUserID(ctx context.Context, userID int64) (*rental.Tenant, error) {
	t, err := scanTenant(s.db.pool.QueryRow(ctx, `
		SELECT `+tenantColumns+` FROM tenants WHERE user_id = $1 ORDER BY id LIMIT 1
	`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rental.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by user: %w", err)
	}
	return t, nil
}

func (s *Store) ListTenants(ctx context.Context) ([]*rental.Tenant, error) {
	return s.queryTenants(ctx, `SELECT `+tenantColumns+` FROM tenants ORDER BY id`)
}

func (s *Store) queryTenants(ctx context.Context, query string, args ...any) ([]*rental.Tenant, error) {
	rows, err := s.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	tenants := []*rental.Tenant{}
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}

func (s *Store) UpdateTenant(ctx context.Context, id int64, upd rental.TenantUpdate) (*rental.Tenant, error) {
	t, err := s.GetTenant(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(t)

	result, err := s.db.pool.Exec(ctx, `
		UPDATE tenants
		SET user_id = $2, phone = $3, emergency_contact = $4, employer = $5,
			employment_status = $6, monthly_income = $7, status = $8
		WHERE id = $1
	`, id, t.UserID, t.Phone, t.EmergencyContact, t.Employer, t.EmploymentStatus,
		t.MonthlyIncome, t.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	// The row can vanish between the read and the write-back.
	if result.RowsAffected() == 0 {
		return nil, rental.ErrNotFound
	}
	return t, nil
}

func (s *Store) DeleteTenant(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.pool.Exec(ctx, `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete tenant: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// TenantsForOwner resolves the owner -> properties -> leases -> tenants
// traversal in one deduplicated query. The subselect's DISTINCT matches the
// in-memory backend's seen-set, and ORDER BY id matches its ordering.
func (s *Store) TenantsForOwner(ctx context.Context, ownerID int64) ([]*rental.Tenant, error) {
	return s.queryTenants(ctx, `
		SELECT `+tenantColumns+` FROM tenants
		WHERE id IN (
			SELECT DISTINCT l.tenant_id
			FROM leases l
			JOIN properties p ON p.id = l.property_id
			WHERE p.owner_id = $1
		)
		ORDER BY id
	`, ownerID)
}

// TenantsWithUsers joins profiles to accounts; the inner join drops
// profiles whose user row is gone, the same way the in-memory backend skips
// them.
func (s *Store) TenantsWithUsers(ctx context.Context) ([]*rental.TenantWithUser, error) {
	rows, err := s.db.pool.Query(ctx, `
		SELECT t.id, t.user_id, t.phone, t.emergency_contact, t.employer, t.employment_status,
			t.monthly_income, t.status, t.created_at,
			u.id, u.username, u.email, u.password_hash, u.role, u.status, u.last_login, u.created_at
		FROM tenants t
		JOIN users u ON u.id = t.user_id
		ORDER BY t.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to join tenants with users: %w", err)
	}
	defer rows.Close()

	out := []*rental.TenantWithUser{}
	for rows.Next() {
		var tw rental.TenantWithUser
		var lastLogin sql.NullTime
		err := rows.Scan(
			&tw.Tenant.ID, &tw.Tenant.UserID, &tw.Tenant.Phone, &tw.Tenant.EmergencyContact,
			&tw.Tenant.Employer, &tw.Tenant.EmploymentStatus, &tw.Tenant.MonthlyIncome,
			&tw.Tenant.Status, &tw.Tenant.CreatedAt,
			&tw.User.ID, &tw.User.Username, &tw.User.Email, &tw.User.PasswordHash,
			&tw.User.Role, &tw.User.Status, &lastLogin, &tw.User.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tenant with user: %w", err)
		}
		if lastLogin.Valid {
			tw.User.LastLogin = &lastLogin.Time
		}
		out = append(out, &tw)
	}
	return out, rows.Err()
}
