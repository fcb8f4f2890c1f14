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

// Package auth implements account registration, credential verification and
// access-token issuance on top of the rental store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rentbase/rentbase/internal/audit"
	"github.com/rentbase/rentbase/internal/rental"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAccountInactive    = errors.New("account is inactive")
)

// Service provides registration and login over a user store.
type Service struct {
	store  rental.UserStore
	hasher *PasswordHasher
	tokens *TokenIssuer
	audit  audit.Logger
}

// NewService creates an auth service.
func NewService(store rental.UserStore, hasher *PasswordHasher, tokens *TokenIssuer, auditLogger audit.Logger) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		audit:  auditLogger,
	}
}

// Register creates a new account. The role defaults to tenant when empty.
// Duplicate usernames or emails surface as rental.ErrDuplicateUser.
func (s *Service) Register(ctx context.Context, username, email, password, role string) (*rental.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" {
		return nil, fmt.Errorf("username and email are required")
	}
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}
	if role == "" {
		role = rental.RoleTenant
	}
	switch role {
	case rental.RoleAdmin, rental.RoleTenant, rental.RolePropertyOwner:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &rental.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       rental.UserStatusActive,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Log(ctx, audit.Event{
		Type:     audit.TypeUserRegistered,
		ActorID:  user.ID,
		Resource: fmt.Sprintf("user/%d", user.ID),
		Metadata: map[string]any{audit.AttrRole: user.Role},
	})

	return user, nil
}

// Login verifies credentials and issues an access token. The user's
// LastLogin timestamp is updated on success.
func (s *Service) Login(ctx context.Context, username, password string) (*rental.User, string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, rental.ErrNotFound) {
			s.auditLoginFailed(ctx, username, "unknown_user")
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return nil, "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.auditLoginFailed(ctx, username, "bad_password")
		return nil, "", ErrInvalidCredentials
	}

	if user.Status != rental.UserStatusActive {
		s.auditLoginFailed(ctx, username, "inactive")
		return nil, "", ErrAccountInactive
	}

	now := time.Now()
	updated, err := s.store.UpdateUser(ctx, user.ID, rental.UserUpdate{LastLogin: &now})
	if err == nil {
		user = updated
	}

	token, err := s.tokens.Issue(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", err
	}

	s.audit.Log(ctx, audit.Event{
		Type:     audit.TypeLoginSuccess,
		ActorID:  user.ID,
		Resource: fmt.Sprintf("user/%d", user.ID),
	})

	return user, token, nil
}

// Verify validates an access token and returns its claims.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	return s.tokens.Verify(tokenString)
}

func (s *Service) auditLoginFailed(ctx context.Context, username, reason string) {
	s.audit.Log(ctx, audit.Event{
		Type:     audit.TypeLoginFailed,
		Resource: "user/" + username,
		Metadata: map[string]any{audit.AttrReason: reason},
	})
}
