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

const propertyColumns = `id, owner_id, name, address, city, state, zip, property_type,
	price, bedrooms, bathrooms, area, features, images, status, is_approved, created_at`

func scanProperty(row pgx.Row) (*rental.Property, error) {
	var p rental.Property
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Address, &p.City, &p.State, &p.Zip, &p.PropertyType,
		&p.Price, &p.Bedrooms, &p.Bathrooms, &p.Area, &p.Features, &p.Images, &p.Status,
		&p.IsApproved, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) CreateProperty(ctx context.Context, p *rental.Property) error {
	p.CreatedAt = createdAtOrNow(p.CreatedAt)
	if p.Status == "" {
		p.Status = rental.PropertyStatusAvailable
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}

	err := s.db.pool.QueryRow(ctx, `
		INSERT INTO properties (owner_id, name, address, city, state, zip, property_type,
			price, bedrooms, bathrooms, area, features, images, status, is_approved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`, p.OwnerID, p.Name, p.Address, p.City, p.State, p.Zip, p.PropertyType,
		p.Price, p.Bedrooms, p.Bathrooms, p.Area, p.Features, p.Images, p.Status,
		p.IsApproved, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}

func (s *Store) GetProperty(ctx context.Context, id int64) (*rental.Property, error) {
	p, err := scanProperty(s.db.pool.QueryRow(ctx, `
		SELECT `+propertyColumns+` FROM properties WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rental.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return p, nil
}

func (s *Store) ListProperties(ctx context.Context) ([]*rental.Property, error) {
	return s.queryProperties(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY id`)
}

func (s *Store) ListPropertiesByOwner(ctx context.Context, ownerID int64) ([]*rental.Property, error) {
	return s.queryProperties(ctx, `
		SELECT `+propertyColumns+` FROM properties WHERE owner_id = $1 ORDER BY id
	`, ownerID)
}

func (s *Store) queryProperties(ctx context.Context, query string, args ...any) ([]*rental.Property, error) {
	rows, err := s.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := []*rental.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}

func (s *Store) UpdateProperty(ctx context.Context, id int64, upd rental.PropertyUpdate) (*rental.Property, error) {
	p, err := s.GetProperty(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(p)

	result, err := s.db.pool.Exec(ctx, `
		UPDATE properties
		SET owner_id = $2, name = $3, address = $4, city = $5, state = $6, zip = $7,
			property_type = $8, price = $9, bedrooms = $10, bathrooms = $11, area = $12,
			features = $13, images = $14, status = $15, is_approved = $16
		WHERE id = $1
	`, id, p.OwnerID, p.Name, p.Address, p.City, p.State, p.Zip, p.PropertyType,
		p.Price, p.Bedrooms, p.Bathrooms, p.Area, p.Features, p.Images, p.Status, p.IsApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	// The row can vanish between the read and the write-back.
	if result.RowsAffected() == 0 {
		return nil, rental.ErrNotFound
	}
	return p, nil
}

func (s *Store) DeleteProperty(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete property: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
