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

//go:build integration
// +build integration

package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rentbase/rentbase/internal/rental"
	"github.com/rentbase/rentbase/internal/store/storetest"
)

func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Host:         envOr("DB_HOST", "localhost"),
		Port:         envOr("DB_PORT", "5432"),
		User:         envOr("DB_USER", "rentbase"),
		Password:     envOr("DB_PASSWORD", "rentbase_dev_password"),
		Database:     envOr("DB_NAME", "rentbase_test"),
		SSLMode:      envOr("DB_SSLMODE", "disable"),
		MaxOpenConns: 5,
		MaxIdleConns: 5,
	}

	ctx := context.Background()
	db, err := New(ctx, cfg)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to database: %v", err)
	}
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx, InitialSchema))
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func truncateAll(t *testing.T, db *DB) {
	t.Helper()
	_, err := db.pool.Exec(context.Background(), `
		TRUNCATE users, properties, tenants, leases, maintenance_requests, lease_applications
		RESTART IDENTITY
	`)
	require.NoError(t, err)
}

// TestPurpose: Runs the identical conformance suite the in-memory backend
// passes against a real PostgreSQL database, proving the two backends are
// behaviorally interchangeable for every query shape the contract names.
// Scope: Database Integration Test
// Expected: Every conformance case passes against truncated tables.
func TestPostgresStore_Conformance(t *testing.T) {
	db := testDB(t)

	storetest.Run(t, func(t *testing.T) rental.Store {
		truncateAll(t, db)
		return NewStore(db)
	})
}

func TestPostgresStore_UniqueViolationTranslated(t *testing.T) {
	db := testDB(t)
	truncateAll(t, db)
	s := NewStore(db)
	ctx := context.Background()

	u := &rental.User{Username: "Dup", Email: "dup@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, u))

	err := s.CreateUser(ctx, &rental.User{Username: "dup", Email: "dup2@example.com", PasswordHash: "x"})
	require.ErrorIs(t, err, rental.ErrDuplicateUser, "23505 surfaces as the domain duplicate error, not a raw pg error")
}

// TestPurpose: Covers the gap between an update's read and its write-back. A
// row trigger suppresses the UPDATE so the write-back hits zero rows, the same
// outcome as a concurrent delete, and the store must surface ErrNotFound
// rather than a success built from the stale read.
// Scope: Database Integration Test
// Expected: UpdateUser returns rental.ErrNotFound when the write-back affects no rows.
func TestPostgresStore_UpdateLostRowReturnsNotFound(t *testing.T) {
	db := testDB(t)
	truncateAll(t, db)
	s := NewStore(db)
	ctx := context.Background()

	u := &rental.User{Username: "ghost", Email: "ghost@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(ctx, u))

	_, err := db.pool.Exec(ctx, `
		CREATE OR REPLACE FUNCTION swallow_row_update() RETURNS trigger AS $$
		BEGIN
			RETURN NULL;
		END $$ LANGUAGE plpgsql;
	`)
	require.NoError(t, err)
	_, err = db.pool.Exec(ctx, `
		CREATE TRIGGER users_swallow_update BEFORE UPDATE ON users
		FOR EACH ROW EXECUTE FUNCTION swallow_row_update()
	`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = db.pool.Exec(context.Background(), `DROP TRIGGER IF EXISTS users_swallow_update ON users`)
	})

	email := "ghost2@example.com"
	_, err = s.UpdateUser(ctx, u.ID, rental.UserUpdate{Email: &email})
	require.ErrorIs(t, err, rental.ErrNotFound)
}

func TestPostgresStore_SeedDemo(t *testing.T) {
	db := testDB(t)
	truncateAll(t, db)
	s := NewStore(db)
	ctx := context.Background()

	hash := func(pw string) (string, error) { return "hashed:" + pw, nil }
	require.NoError(t, rental.SeedDemo(ctx, s, hash))

	count, err := s.ActiveLeaseCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
