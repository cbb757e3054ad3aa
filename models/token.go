package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a session token.
//
// Subject holds the principal ID, ID (jti) the session identifier used for
// revocation on logout.
type SessionClaims struct {
	jwt.RegisteredClaims

	// UserName is the principal's login name at sign-in time.
	UserName string `json:"name"`

	// Persistent marks sessions created with "remember me"; the cookie
	// scheme issues a persistent cookie for them.
	Persistent bool `json:"persistent,omitempty"`
}

// ResetTokenPurpose is the "purpose" claim value of password reset tokens.
// It keeps session tokens and reset tokens from being interchangeable.
const ResetTokenPurpose = "password-reset"

// ResetTokenClaims is the claim set of a password reset token.
type ResetTokenClaims struct {
	jwt.RegisteredClaims

	UserName string `json:"name"`
	Purpose  string `json:"purpose"`

	// Stamp binds the token to the password hash that was current at
	// issuance. Installing a new hash invalidates every outstanding token.
	Stamp string `json:"stamp"`
}

// Token wraps a signed session JWT with convenience accessors.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be put into a cookie or header.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims is the decoded session claim set.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// Caller returns the authenticated identity carried by the token.
func (t Token) Caller() Caller {
	return Caller{
		PrincipalID: t.Claims.Subject,
		UserName:    t.Claims.UserName,
		SessionID:   t.Claims.ID,
	}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
