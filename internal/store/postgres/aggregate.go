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
	"fmt"
)

func (s *Store) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := s.db.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}

func (s *Store) PropertyCount(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM properties`)
}

func (s *Store) TenantCount(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM tenants`)
}

func (s *Store) ActiveLeaseCount(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM leases WHERE status = 'active'`)
}

func (s *Store) MaintenanceRequestCount(ctx context.Context) (int, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM maintenance_requests`)
}
