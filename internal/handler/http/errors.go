// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-forms-auth/internal/service"
)

// Sentinel errors used by the authentication middleware when reading the
// session token. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries neither a session cookie nor an "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrRateLimited is returned when a client exceeds the request rate of
	// the public endpoints.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Errors returned while decoding a command body. Both are client errors.
var (
	errNoParameters = &service.ClientError{
		Message: "It is not allowed to call this authentication service method with no parameters provided.",
	}
	errInvalidJSON = &service.ClientError{
		Message: "Invalid JSON was passed.",
	}
)
