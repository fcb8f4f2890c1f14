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
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rentbase/rentbase/internal/rental"
)

const applicationColumns = `id, property_id, applicant_id, full_name, monthly_income,
	employer, employment_status, reference_notes, status, created_at, updated_at,
	reviewed_at, reviewed_by`

func scanApplication(row pgx.Row) (*rental.LeaseApplication, error) {
	var a rental.LeaseApplication
	var reviewedAt sql.NullTime
	var reviewedBy sql.NullInt64
	err := row.Scan(&a.ID, &a.PropertyID, &a.ApplicantID, &a.FullName, &a.MonthlyIncome,
		&a.Employer, &a.EmploymentStatus, &a.References, &a.Status, &a.CreatedAt,
		&a.UpdatedAt, &reviewedAt, &reviewedBy)
	if err != nil {
		return nil, err
	}
	if reviewedAt.Valid {
		a.ReviewedAt = &reviewedAt.Time
	}
	if reviewedBy.Valid {
		a.ReviewedBy = &reviewedBy.Int64
	}
	return &a, nil
}

func (s *Store) CreateApplication(ctx context.Context, a *rental.LeaseApplication) error {
	a.CreatedAt = createdAtOrNow(a.CreatedAt)
	a.UpdatedAt = a.CreatedAt
	if a.Status == "" {
		a.Status = rental.ApplicationStatusPending
	}

	err := s.db.pool.QueryRow(ctx, `
		INSERT INTO lease_applications (property_id, applicant_id, full_name, monthly_income,
			employer, employment_status, reference_notes, status, created_at, updated_at,
			reviewed_at, reviewed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`, a.PropertyID, a.ApplicantID, a.FullName, a.MonthlyIncome, a.Employer,
		a.EmploymentStatus, a.References, a.Status, a.CreatedAt, a.UpdatedAt,
		a.ReviewedAt, a.ReviewedBy).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to insert lease application: %w", err)
	}
	return nil
}

func (s *Store) GetApplication(ctx context.Context, id int64) (*rental.LeaseApplication, error) {
	a, err := scanApplication(s.db.pool.QueryRow(ctx, `
		SELECT `+applicationColumns+` FROM lease_applications WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rental.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lease application: %w", err)
	}
	return a, nil
}

func (s *Store) ListApplications(ctx context.Context) ([]*rental.LeaseApplication, error) {
	return s.queryApplications(ctx, `
		SELECT `+applicationColumns+` FROM lease_applications ORDER BY id
	`)
}

func (s *Store) ApplicationsForProperty(ctx context.Context, propertyID int64) ([]*rental.LeaseApplication, error) {
	return s.queryApplications(ctx, `
		SELECT `+applicationColumns+` FROM lease_applications WHERE property_id = $1 ORDER BY id
	`, propertyID)
}

func (s *Store) ApplicationsForUser(ctx context.Context, applicantID int64) ([]*rental.LeaseApplication, error) {
	return s.queryApplications(ctx, `
		SELECT `+applicationColumns+` FROM lease_applications WHERE applicant_id = $1 ORDER BY id
	`, applicantID)
}

func (s *Store) queryApplications(ctx context.Context, query string, args ...any) ([]*rental.LeaseApplication, error) {
	rows, err := s.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list lease applications: %w", err)
	}
	defer rows.Close()

	applications := []*rental.LeaseApplication{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lease application: %w", err)
		}
		applications = append(applications, a)
	}
	return applications, rows.Err()
}

func (s *Store) UpdateApplication(ctx context.Context, id int64, upd rental.LeaseApplicationUpdate) (*rental.LeaseApplication, error) {
	a, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(a)
	a.UpdatedAt = time.Now()

	result, err := s.db.pool.Exec(ctx, `
		UPDATE lease_applications
		SET full_name = $2, monthly_income = $3, employer = $4, employment_status = $5,
			reference_notes = $6, status = $7, updated_at = $8, reviewed_at = $9, reviewed_by = $10
		WHERE id = $1
	`, id, a.FullName, a.MonthlyIncome, a.Employer, a.EmploymentStatus, a.References,
		a.Status, a.UpdatedAt, a.ReviewedAt, a.ReviewedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to update lease application: %w", err)
	}
	// The row can vanish between the read and the write-back.
	if result.RowsAffected() == 0 {
		return nil, rental.ErrNotFound
	}
	return a, nil
}

func (s *Store) DeleteApplication(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.pool.Exec(ctx, `DELETE FROM lease_applications WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete lease application: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
