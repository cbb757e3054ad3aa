// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credential is the materialized view of a principal joined with its
// password/lockout side row.
//
// A principal without a side row is represented with an empty
// PasswordHash, zero FailedAttemptCount and nil LockoutUntil; both
// situations mean "no password set".
type Credential struct {
	// PrincipalID is the identifier of the owning principal.
	PrincipalID string `json:"principal_id"`

	// UserName is the principal's login name.
	UserName string `json:"user_name"`

	// PasswordHash is the bcrypt hash of the current password.
	// Empty means no password has been established yet.
	PasswordHash string `json:"-"`

	// FailedAttemptCount is the number of consecutive failed logins since
	// the last successful one or the last lockout.
	FailedAttemptCount int `json:"failed_attempt_count"`

	// LockoutUntil is the UTC moment until which logins are suppressed.
	// Nil means the account has never been locked.
	LockoutUntil *time.Time `json:"lockout_until,omitempty"`

	// LockoutEnabled is always true in this model.
	LockoutEnabled bool `json:"lockout_enabled"`
}

// HasPassword reports whether a password has been established.
func (c Credential) HasPassword() bool {
	return c.PasswordHash != ""
}

// IsLockedOut reports whether logins are suppressed at the given moment.
func (c Credential) IsLockedOut(now time.Time) bool {
	return c.LockoutEnabled && c.LockoutUntil != nil && now.Before(*c.LockoutUntil)
}

// TableName returns the name of the database table holding the side row.
func (c Credential) TableName() string {
	return "credentials"
}
