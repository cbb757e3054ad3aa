package models

// Claim is a (resource, right) permission unit.
type Claim struct {
	ID       string `json:"id,omitempty"`
	Resource string `json:"resource"`
	Right    string `json:"right"`
}

// Key returns the canonical "resource/right" form used as a cache key.
func (c Claim) Key() string {
	return c.Resource + "/" + c.Right
}

// Permission is one grant of a claim, coming either from a role the
// principal holds or directly from the principal itself. IsAuthorized=false
// is an explicit deny.
type Permission struct {
	Claim        Claim `json:"claim"`
	IsAuthorized bool  `json:"is_authorized"`
}

// Caller is the authenticated identity on whose behalf a command runs.
// The zero value is the anonymous caller.
type Caller struct {
	PrincipalID string `json:"principal_id"`
	UserName    string `json:"user_name"`
	SessionID   string `json:"session_id,omitempty"`
}

// IsAnonymous reports whether no principal is authenticated.
func (c Caller) IsAnonymous() bool {
	return c.PrincipalID == ""
}

// AuthenticationServiceResource is the claim resource guarding the
// administrative authentication commands.
const AuthenticationServiceResource = "FormsAuth.AuthenticationService"

var (
	SetPasswordClaim = Claim{
		Resource: AuthenticationServiceResource,
		Right:    "SetPassword",
	}
	IgnorePasswordStrengthPolicyClaim = Claim{
		Resource: AuthenticationServiceResource,
		Right:    "IgnorePasswordStrengthPolicy",
	}
	UnlockUserClaim = Claim{
		Resource: AuthenticationServiceResource,
		Right:    "UnlockUser",
	}
	GeneratePasswordResetTokenClaim = Claim{
		Resource: AuthenticationServiceResource,
		Right:    "GeneratePasswordResetToken",
	}
)

// DefaultAdminClaims returns the claims granted to the administrator role
// by the admin bootstrap.
func DefaultAdminClaims() []Claim {
	return []Claim{
		SetPasswordClaim,
		IgnorePasswordStrengthPolicyClaim,
		UnlockUserClaim,
		GeneratePasswordResetTokenClaim,
	}
}
