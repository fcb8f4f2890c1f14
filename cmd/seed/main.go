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

// Command seed loads the demo fixture into the configured postgres
// database. The in-memory backend is seeded by the server itself.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rentbase/rentbase/internal/auth"
	"github.com/rentbase/rentbase/internal/config"
	"github.com/rentbase/rentbase/internal/rental"
	"github.com/rentbase/rentbase/internal/store/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Store.Backend != config.BackendPostgres {
		fmt.Println("STORE_BACKEND=postgres is required; the memory backend seeds itself")
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := postgres.New(ctx, postgres.Config{
		Host:         cfg.Database.Host,
		Port:         cfg.Database.Port,
		User:         cfg.Database.User,
		Password:     cfg.Database.Password,
		Database:     cfg.Database.Database,
		SSLMode:      cfg.Database.SSLMode,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
	if err != nil {
		fmt.Printf("Failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	hasher := auth.NewPasswordHasher(
		cfg.Security.Argon2Memory,
		cfg.Security.Argon2Iterations,
		cfg.Security.Argon2Parallelism,
		cfg.Security.Argon2SaltLength,
		cfg.Security.Argon2KeyLength,
	)

	store := postgres.NewStore(db)
	if _, err := store.GetUserByUsername(ctx, "admin"); err == nil {
		fmt.Println("Demo data already present, nothing to do.")
		return
	}

	if err := rental.SeedDemo(ctx, store, hasher.Hash); err != nil {
		fmt.Printf("Seeding failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Demo data seeded.")
}
