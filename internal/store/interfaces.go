//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-forms-auth/models"
)

// Transactor opens a transaction scope. Repositories called with the context
// passed to fn run inside that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PrincipalDirectory resolves login names to principals.
// Lookups of unknown principals return nil, nil.
type PrincipalDirectory interface {
	FindPrincipalByName(ctx context.Context, name string) (*models.Principal, error)
	FindPrincipalByID(ctx context.Context, id string) (*models.Principal, error)
}

// PasswordStore is the password half of the credential adapter.
type PasswordStore interface {
	FindByName(ctx context.Context, name string) (*models.Credential, error)
	FindByID(ctx context.Context, principalID string) (*models.Credential, error)
	// LockByName reads the credential like FindByName and locks the
	// principal row until the surrounding transaction ends.
	LockByName(ctx context.Context, name string) (*models.Credential, error)
	SetPasswordHash(ctx context.Context, principalID, hash string) error
}

// LockoutStore is the failed-attempt and lockout half of the credential
// adapter.
type LockoutStore interface {
	FindByName(ctx context.Context, name string) (*models.Credential, error)
	FindByID(ctx context.Context, principalID string) (*models.Credential, error)
	// RecordFailedAttempt increments the failed-attempt counter. When the
	// new count reaches threshold, the counter is reset to zero and the
	// lockout is set to lockoutUntil. The update is a single statement, so
	// concurrent failures are never lost.
	RecordFailedAttempt(ctx context.Context, principalID string, threshold int, lockoutUntil time.Time) (*models.Credential, error)
	ResetFailedAttempts(ctx context.Context, principalID string) error
	SetLockoutEnd(ctx context.Context, principalID string, end time.Time) error
}

// CredentialStore is the full credential adapter over the principal and
// its credential side row.
type CredentialStore interface {
	PasswordStore
	LockoutStore

	// Save writes every mutable credential field with a single upsert.
	Save(ctx context.Context, credential models.Credential) error

	// CreateCredential, DeleteCredential and SetUserName always fail with
	// [ErrUnsupported].
	CreateCredential(ctx context.Context, credential models.Credential) error
	DeleteCredential(ctx context.Context, principalID string) error
	SetUserName(ctx context.Context, principalID, name string) error
}

// PasswordRuleRepository lists the configured password strength rules.
type PasswordRuleRepository interface {
	// ListRules returns the rules ordered by ordinal.
	ListRules(ctx context.Context) ([]models.PasswordStrengthRule, error)
}

// AuthorizationRepository loads the effective grants of a principal.
type AuthorizationRepository interface {
	// LoadPermissions returns the direct principal grants followed by the
	// grants of every role the principal holds.
	LoadPermissions(ctx context.Context, principalID string) ([]models.Permission, error)
}

// BootstrapRepository performs the idempotent inserts of the admin
// bootstrap. Each Ensure method inserts the row when its natural key is
// absent and reads it back; created reports whether a row was inserted.
type BootstrapRepository interface {
	EnsurePrincipal(ctx context.Context, name string) (principal models.Principal, created bool, err error)
	EnsureRole(ctx context.Context, name string) (role models.Role, created bool, err error)
	EnsurePrincipalRole(ctx context.Context, principalID, roleID string) (created bool, err error)
	EnsureClaim(ctx context.Context, claim models.Claim) (stored models.Claim, created bool, err error)
	// GrantRolePermission upserts the (role, claim) grant.
	GrantRolePermission(ctx context.Context, roleID, claimID string, isAuthorized bool) (created bool, err error)
}
