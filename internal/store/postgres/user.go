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

const userColumns = `id, username, email, password_hash, role, status, last_login, created_at`

func scanUser(row pgx.Row) (*rental.User, error) {
	var u rental.User
	var lastLogin sql.NullTime
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &lastLogin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}
	return &u, nil
}

// CreateUser inserts the user and fills in its assigned ID. A collision on
// the case-insensitive username/email indexes comes back as
// rental.ErrDuplicateUser.
func (s *Store) CreateUser(ctx context.Context, u *rental.User) error {
	u.CreatedAt = createdAtOrNow(u.CreatedAt)
	if u.Status == "" {
		u.Status = rental.UserStatusActive
	}
	if u.Role == "" {
		u.Role = rental.RoleTenant
	}

	err := s.db.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, role, status, last_login, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, u.Username, u.Email, u.PasswordHash, u.Role, u.Status, u.LastLogin, u.CreatedAt).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return rental.ErrDuplicateUser
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (*rental.User, error) {
	u, err := scanUser(s.db.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rental.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByUsername matches case-insensitively; the lowest ID wins should
// duplicates ever exist, matching the in-memory backend.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*rental.User, error) {
	u, err := scanUser(s.db.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE LOWER(username) = LOWER($1) ORDER BY id LIMIT 1
	`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rental.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*rental.User, error) {
	u, err := scanUser(s.db.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1) ORDER BY id LIMIT 1
	`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rental.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return u, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]*rental.User, error) {
	rows, err := s.db.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []*rental.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUser reads the row, merges the partial update in Go, and writes the
// whole row back, so unset fields are provably untouched.
func (s *Store) UpdateUser(ctx context.Context, id int64, upd rental.UserUpdate) (*rental.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	upd.Apply(u)

	result, err := s.db.pool.Exec(ctx, `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, role = $5, status = $6, last_login = $7
		WHERE id = $1
	`, id, u.Username, u.Email, u.PasswordHash, u.Role, u.Status, u.LastLogin)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, rental.ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	// The row can vanish between the read and the write-back.
	if result.RowsAffected() == 0 {
		return nil, rental.ErrNotFound
	}
	return u, nil
}

func (s *Store) DeleteUser(ctx context.Context, id int64) (bool, error) {
	result, err := s.db.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// RecentUsers returns at most n users newest first; the id tie-break mirrors
// the in-memory backend's insertion-order rule.
func (s *Store) RecentUsers(ctx context.Context, n int) ([]*rental.User, error) {
	if n < 0 {
		n = 0
	}
	rows, err := s.db.pool.Query(ctx, `
		SELECT `+userColumns+` FROM users ORDER BY created_at DESC, id ASC LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent users: %w", err)
	}
	defer rows.Close()

	users := []*rental.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
