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

const maintenanceColumns = `id, property_id, tenant_id, title, description, priority,
	status, created_at, resolved_at`

func scanMaintenance(row pgx.Row) (*rental.MaintenanceRequest, error) {
	var m rental.MaintenanceRequest
	var tenantID sql.NullInt64
	var resolvedAt sql.NullTime
	err := row.Scan(&m.ID, &m.PropertyID, &tenantID, &m.Title, &m.Description,
		&m.Priority, &m.Status, &m.CreatedAt, &resolvedAt)
	if err != nil {
		return nil, err
	}
	if tenantID.Valid {
		m.TenantID = &tenantID.Int64
	}
	if resolvedAt.Valid {
		m.ResolvedAt = &resolvedAt.Time
	}
	return &m, nil
}

func (s *Store) CreateMaintenanceRequest(ctx context.Context, m *rental.MaintenanceRequest) error {
	m.CreatedAt = createdAtOrNow(m.CreatedAt)
	if m.Priority == "" {
		m.Priority = rental.PriorityMedium
	}
	if m.Status == "" {
		m.Status = rental.MaintenanceStatusPending
	}

	err := s.db.pool.QueryRow(ctx, `
		INSERT INTO maintenance_requests (property_id, tenant_id, title, description,
			priority, status, created_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, m.PropertyID, m.TenantID, m.Title, m.Description, m.Priority, m.Status,
		m.CreatedAt, m.ResolvedAt).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("failed to insert maintenance request: %w", err)
	}
	return nil
}

func (s *Store) GetMaintenanceRequest(ctx context.Context, id int64) (*rental.MaintenanceRequest, error) {
	m, err := scanMaintenance(s.db.pool.QueryRow(ctx, `
		SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rental.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get maintenance request: %w", err)
	}
	return m, nil
}

func (s *Store) ListMaintenanceRequests(ctx context.Context) ([]*rental.MaintenanceRequest, error) {
	return s.queryMaintenance(ctx, `
		SELECT `+maintenanceColumns+` FROM maintenance_requests ORDER BY id
	`)
}

func (s *Store) MaintenanceForProperty(ctx context.Context, propertyID int64) ([]*rental.MaintenanceRequest, error) {
	return s.queryMaintenance(ctx, `
		SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE property_id = $1 ORDER BY id
	`, propertyID)
}

func (s *Store) MaintenanceForTenant(ctx context.Context, tenantID int64) ([]*rental.MaintenanceRequest, error) {
	return s.queryMaintenance(ctx, `
		SELECT `+maintenanceColumns+` FROM maintenance_requests WHERE tenant_id = $1 ORDER BY id
	`, tenantID)
}

func (s *Store) queryMaintenance(ctx context.Context, query string, args ...any) ([]*rental.MaintenanceRequest, error) {
	rows, err := s.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list maintenance requests: %w", err)
	}
	defer rows.Close()

	requests := []*rental.MaintenanceRequest{}
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan maintenance request: %w", err)
		}
		requests = append(requests, m)
	}
	return requests, rows.Err()
}

func (s *Store) UpdateMaintenanceRequest(ctx context.Context, id int64, upd rental.MaintenanceRequestUpdate) (*rental.MaintenanceRequest, error) {
	m, err := s.GetMaintenanceRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(m)

	result, err := s.db.pool.Exec(ctx, `
		UPDATE maintenance_requests
		SET property_id = $2, tenant_id = $3, title = $4, description = $5,
			priority = $6, status = $7, resolved_at = $8
		WHERE id = $1
	`, id, m.PropertyID, m.TenantID, m.Title, m.Description, m.Priority, m.Status, m.ResolvedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to update maintenance request: %w", err)
	}
	// The row can vanish between the read and the write-back.
	if result.RowsAffected() == 0 {
		return nil, rental.ErrNotFound
	}
	return m, nil
}

func (s *Store) DeleteMaintenanceRequest(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.pool.Exec(ctx, `DELETE FROM maintenance_requests WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete maintenance request: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
