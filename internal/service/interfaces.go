//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthenticationServiceWrapper

package service

import (
	"context"

	"github.com/MKhiriev/go-forms-auth/models"
)

// AuthenticationService is the command set of the credential state machine.
// Every command is expected to run inside one transaction scope opened by
// the caller.
type AuthenticationService interface {
	// Login verifies the password and signs the principal in. Wrong
	// credentials, a locked account and store failures all yield false.
	Login(ctx context.Context, userName, password string, rememberMe bool) (bool, error)
	Logout(ctx context.Context) error
	// SetPassword overrides the password of userName. Requires the
	// SetPassword claim, and IgnorePasswordStrengthPolicy when skipping the
	// policy.
	SetPassword(ctx context.Context, userName, password string, ignorePasswordStrengthPolicy bool) error
	ChangeMyPassword(ctx context.Context, userName, oldPassword, newPassword string) (bool, error)
	UnlockUser(ctx context.Context, userName string) error
	GeneratePasswordResetToken(ctx context.Context, userName string) (string, error)
	SendPasswordResetToken(ctx context.Context, userName string, additionalClientInfo map[string]string) error
	// ResetPassword redeems the token and installs newPassword. The result
	// reports the reset alone; the automatic login that follows is best
	// effort.
	ResetPassword(ctx context.Context, userName, newPassword, passwordResetToken string) (bool, error)
}

// AuthenticationServiceWrapper defines middleware composition for
// AuthenticationService, e.g. input validation.
type AuthenticationServiceWrapper interface {
	Wrap(AuthenticationService) AuthenticationService
}

// PasswordPolicy checks a candidate password against the strength rules.
type PasswordPolicy interface {
	// Check returns a *UserError carrying the description of the first
	// violated rule, or nil.
	Check(ctx context.Context, password string) error
}

// ClaimAuthorization answers whether a caller holds a claim.
type ClaimAuthorization interface {
	IsAuthorized(ctx context.Context, caller models.Caller, claim models.Claim) (bool, error)
	// Invalidate drops every cached permission set.
	Invalidate(ctx context.Context) error
}

// ClaimCache stores resolved permission sets per principal.
type ClaimCache interface {
	// Get returns ok == false on a miss.
	Get(ctx context.Context, principalID string) (permissions []models.Permission, ok bool, err error)
	Set(ctx context.Context, principalID string, permissions []models.Permission) error
	Invalidate(ctx context.Context) error
}

// ResetTokenService issues and verifies password reset tokens.
type ResetTokenService interface {
	Generate(ctx context.Context, credential models.Credential) (string, error)
	// Validate returns ErrInvalidResetToken unless token was issued for
	// credential and its current password hash.
	Validate(ctx context.Context, credential models.Credential, token string) error
}

// SessionManager establishes and ends authenticated sessions.
type SessionManager interface {
	// SignIn issues a session for caller through every registered scheme of
	// the SessionWriter carried by ctx.
	SignIn(ctx context.Context, caller models.Caller, persistent bool) error
	// SignOut revokes the session of the caller in ctx and clears every
	// scheme.
	SignOut(ctx context.Context) error
	// Authenticate resolves a session token to its caller.
	Authenticate(ctx context.Context, token string) (models.Caller, error)
}

// RevocationStore remembers session ids ended by a logout until the
// session would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, sessionID string) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// DeliveryPlugin delivers a password reset token to the principal.
type DeliveryPlugin interface {
	Name() string
	SendPasswordResetToken(ctx context.Context, userName string, additionalClientInfo map[string]string, token string) error
}

// AdminBootstrap seeds the administrator principal and its grants.
type AdminBootstrap interface {
	// Run is idempotent.
	Run(ctx context.Context) error
	SetAdminPassword(ctx context.Context, password string) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
