// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the authentication HTTP API.
//
// [NewHTTPAuthClient] returns an [AuthClient] with one method per command.
// The session token returned by Login and ResetPassword is kept by the
// client and sent as a bearer token on every following request.
//
// Non-2xx responses are mapped to [*ResponseError], which carries the
// user message of the response body and unwraps to a sentinel from
// errors.go so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
)

// AuthClient is the client side of the authentication commands.
type AuthClient interface {
	// SetToken stores the session token attached to authenticated requests.
	SetToken(token string)

	// Token returns the current session token, or "" when signed out.
	Token() string

	// Login returns false for wrong credentials or a locked account. On
	// success the session token is stored.
	Login(ctx context.Context, userName, password string, persistCookie bool) (bool, error)

	// Logout ends the session on the server and forgets the token.
	Logout(ctx context.Context) error

	SetPassword(ctx context.Context, userName, password string, ignorePasswordStrengthPolicy bool) error
	ChangeMyPassword(ctx context.Context, oldPassword, newPassword string) (bool, error)
	UnlockUser(ctx context.Context, userName string) error
	GeneratePasswordResetToken(ctx context.Context, userName string) (string, error)
	SendPasswordResetToken(ctx context.Context, userName string, additionalClientInfo map[string]string) error

	// ResetPassword redeems the token. When the automatic login succeeds
	// the new session token is stored.
	ResetPassword(ctx context.Context, userName, passwordResetToken, newPassword string) (bool, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
