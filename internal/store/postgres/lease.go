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
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rentbase/rentbase/internal/rental"
)

const leaseColumns = `id, property_id, tenant_id, start_date, end_date, monthly_rent,
	security_deposit, status, documents, created_at`

func scanLease(row pgx.Row) (*rental.Lease, error) {
	var l rental.Lease
	err := row.Scan(&l.ID, &l.PropertyID, &l.TenantID, &l.StartDate, &l.EndDate,
		&l.MonthlyRent, &l.SecurityDeposit, &l.Status, &l.Documents, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *Store) CreateLease(ctx context.Context, l *rental.Lease) error {
	l.CreatedAt = createdAtOrNow(l.CreatedAt)
	if l.Status == "" {
		l.Status = rental.LeaseStatusActive
	}
	if l.Documents == nil {
		l.Documents = []string{}
	}

	err := s.db.pool.QueryRow(ctx, `
		INSERT INTO leases (property_id, tenant_id, start_date, end_date, monthly_rent,
			security_deposit, status, documents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, l.PropertyID, l.TenantID, l.StartDate, l.EndDate, l.MonthlyRent,
		l.SecurityDeposit, l.Status, l.Documents, l.CreatedAt).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("failed to insert lease: %w", err)
	}
	return nil
}

func (s *Store) GetLease(ctx context.Context, id int64) (*rental.Lease, error) {
	l, err := scanLease(s.db.pool.QueryRow(ctx, `
		SELECT `+leaseColumns+` FROM leases WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rental.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lease: %w", err)
	}
	return l, nil
}

func (s *Store) ListLeases(ctx context.Context) ([]*rental.Lease, error) {
	return s.queryLeases(ctx, `SELECT `+leaseColumns+` FROM leases ORDER BY id`)
}

func (s *Store) LeasesForProperty(ctx context.Context, propertyID int64) ([]*rental.Lease, error) {
	return s.queryLeases(ctx, `
		SELECT `+leaseColumns+` FROM leases WHERE property_id = $1 ORDER BY id
	`, propertyID)
}

func (s *Store) LeasesForTenant(ctx context.Context, tenantID int64) ([]*rental.Lease, error) {
	return s.queryLeases(ctx, `
		SELECT `+leaseColumns+` FROM leases WHERE tenant_id = $1 ORDER BY id
	`, tenantID)
}

func (s *Store) queryLeases(ctx context.Context, query string, args ...any) ([]*rental.Lease, error) {
	rows, err := s.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leases: %w", err)
	}
	defer rows.Close()

	leases := []*rental.Lease{}
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lease: %w", err)
		}
		leases = append(leases, l)
	}
	return leases, rows.Err()
}

func (s *Store) UpdateLease(ctx context.Context, id int64, upd rental.LeaseUpdate) (*rental.Lease, error) {
	l, err := s.GetLease(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(l)

	result, err := s.db.pool.Exec(ctx, `
		UPDATE leases
		SET property_id = $2, tenant_id = $3, start_date = $4, end_date = $5,
			monthly_rent = $6, security_deposit = $7, status = $8, documents = $9
		WHERE id = $1
	`, id, l.PropertyID, l.TenantID, l.StartDate, l.EndDate, l.MonthlyRent,
		l.SecurityDeposit, l.Status, l.Documents)
	if err != nil {
		return nil, fmt.Errorf("failed to update lease: %w", err)
	}
	// The row can vanish between the read and the write-back.
	if result.RowsAffected() == 0 {
		return nil, rental.ErrNotFound
	}
	return l, nil
}

func (s *Store) DeleteLease(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.pool.Exec(ctx, `DELETE FROM leases WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete lease: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
