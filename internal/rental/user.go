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

package rental

import "time"

// Role constants
const (
	RoleAdmin         = "admin"
	RoleTenant        = "tenant"
	RolePropertyOwner = "property_owner"
)

// User account status
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents an account in the system. Username and email are unique
// case-insensitively; the store rejects collisions with ErrDuplicateUser.
type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Status       string     `json:"status"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// UserUpdate is a partial update; nil fields are left unchanged.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *string
	Status       *string
	LastLogin    *time.Time
}

// Apply merges the update over u in place.
func (upd UserUpdate) Apply(u *User) {
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	if upd.LastLogin != nil {
		u.LastLogin = upd.LastLogin
	}
}
