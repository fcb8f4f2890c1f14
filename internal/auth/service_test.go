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

package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentbase/rentbase/internal/audit"
	"github.com/rentbase/rentbase/internal/rental"
	"github.com/rentbase/rentbase/internal/store/memory"
)

// Low-cost argon2 parameters keep the tests fast.
func testService(t *testing.T) (*Service, rental.Store) {
	t.Helper()
	store := memory.New()
	hasher := NewPasswordHasher(1024, 1, 1, 16, 32)
	tokens := NewTokenIssuer("test-secret-do-not-use", time.Hour)
	return NewService(store, hasher, tokens, audit.NewSlogLogger()), store
}

func TestService_RegisterAndLogin(t *testing.T) {
	// TestPurpose: Register creates an active account with a hashed
	// password, and Login with the same credentials issues a verifiable
	// token and stamps LastLogin.
	svc, _ := testService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "alice@example.com", "correct horse", "")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, rental.RoleTenant, user.Role)
	assert.Equal(t, rental.UserStatusActive, user.Status)
	assert.NotEqual(t, "correct horse", user.PasswordHash)
	assert.Nil(t, user.LastLogin)

	loggedIn, token, err := svc.Login(ctx, "alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	require.NotNil(t, loggedIn.LastLogin)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, rental.RoleTenant, claims.Role)
}

func TestService_RegisterValidation(t *testing.T) {
	// TestPurpose: registration rejects short passwords, unknown roles and
	// duplicate usernames.
	svc, _ := testService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "bob", "bob@example.com", "short", "")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = svc.Register(ctx, "bob", "bob@example.com", "long enough", "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.Register(ctx, "bob", "bob@example.com", "long enough", rental.RolePropertyOwner)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "BOB", "other@example.com", "long enough", "")
	assert.ErrorIs(t, err, rental.ErrDuplicateUser)
}

func TestService_LoginFailures(t *testing.T) {
	// TestPurpose: wrong password and unknown username both produce the
	// same ErrInvalidCredentials, and inactive accounts cannot log in.
	svc, store := testService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "carol", "carol@example.com", "long enough", "")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "carol", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "long enough")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	inactive := rental.UserStatusInactive
	_, err = store.UpdateUser(ctx, user.ID, rental.UserUpdate{Status: &inactive})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "carol", "long enough")
	assert.ErrorIs(t, err, ErrAccountInactive)
}

func TestService_VerifyRejectsTamperedToken(t *testing.T) {
	// TestPurpose: tokens signed with a different secret fail verification.
	svc, _ := testService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "dave", "dave@example.com", "long enough", "")
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, "dave", "long enough")
	require.NoError(t, err)

	other := NewTokenIssuer("completely-different-secret", time.Hour)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	// TestPurpose: Hash produces a self-describing encoded string that
	// Verify accepts for the right password and rejects otherwise.
	h := NewPasswordHasher(1024, 1, 1, 16, 32)

	encoded, err := h.Hash("s3cret-value")
	require.NoError(t, err)
	assert.Contains(t, encoded, "$argon2id$")

	ok, err := h.Verify("s3cret-value", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Verify("anything", "not-a-hash")
	assert.Error(t, err)
}
