// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// UserError is a failure caused by the caller: bad input, a password policy
// violation or a missing precondition. Message is safe to show verbatim.
type UserError struct {
	Message string
	Err     error
}

// NewUserError formats a [UserError] message.
func NewUserError(format string, args ...any) *UserError {
	return &UserError{Message: fmt.Sprintf(format, args...)}
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// AuthorizationError is returned when the caller lacks a required claim.
// The message names the resource, the right and the caller only.
type AuthorizationError struct {
	Resource string
	Right    string
	Caller   string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("You are not authorized for action '%s' on resource '%s', user '%s'. The required security claim is not set.",
		e.Right, e.Resource, e.Caller)
}

// ClientError is a malformed call, e.g. a command invoked without
// parameters. Like [UserError] its message is shown verbatim.
type ClientError struct {
	Message string
}

func (e *ClientError) Error() string {
	return e.Message
}

// FrameworkError is a deployment or infrastructure failure. It is logged in
// full on the server; callers only ever see a generic message.
type FrameworkError struct {
	Message string
	Err     error
}

func (e *FrameworkError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *FrameworkError) Unwrap() error {
	return e.Err
}

var (
	// ErrDeliveryNotEnabled is wrapped in a [FrameworkError] when no password
	// reset delivery plugin is registered.
	ErrDeliveryNotEnabled = errors.New("password reset delivery plugin is not registered")

	// ErrDeliveryAmbiguous is wrapped in a [FrameworkError] when more than
	// one delivery plugin is registered.
	ErrDeliveryAmbiguous = errors.New("more than one password reset delivery plugin is registered")

	// ErrDeliveryFailed is wrapped in the generic [FrameworkError] returned
	// when a delivery plugin fails with anything but a [UserError].
	ErrDeliveryFailed = errors.New("password reset token delivery failed")

	// ErrInvalidResetToken is returned when a reset token does not verify
	// or was issued for another principal or another password.
	ErrInvalidResetToken = errors.New("invalid password reset token")

	// ErrNoSessionWriter is returned by sign-in and sign-out when the context
	// carries no transport able to persist the session.
	ErrNoSessionWriter = errors.New("no session writer in context")

	// ErrSessionRevoked is returned for a session token whose id was revoked
	// by a logout.
	ErrSessionRevoked = errors.New("session is revoked")

	ErrInvalidSession = errors.New("session token is invalid or expired")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// User-facing messages.
const (
	msgDeliveryNotEnabled = "Sending the password reset token is not enabled on this server (the required plugin is not registered)."
	msgDeliveryAmbiguous  = "There is more than one plugin registered for sending the password reset token: %s."
	msgDeliveryFailed     = "Internal server error occurred. See server log for more information."
	msgUserNotRegistered  = "User '%s' is not registered."
	msgMissingAdmin       = "Missing '%s' user entry in Common.Principal entity. Please run the admin bootstrap first."
	msgAdminResetFailed   = "Cannot change password. ResetPassword failed with errors: %s."
)
