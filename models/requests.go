package models

// Request bodies of the authentication HTTP API. Field names follow the
// public wire contract (PascalCase JSON keys).

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	UserName      string `json:"UserName"`
	Password      string `json:"Password"`
	PersistCookie bool   `json:"PersistCookie"`
}

// SetPasswordRequest is the body of POST /set-password.
type SetPasswordRequest struct {
	UserName                     string `json:"UserName"`
	Password                     string `json:"Password"`
	IgnorePasswordStrengthPolicy bool   `json:"IgnorePasswordStrengthPolicy"`
}

// ChangeMyPasswordRequest is the body of POST /change-my-password.
// The principal is always the authenticated caller.
type ChangeMyPasswordRequest struct {
	OldPassword string `json:"OldPassword"`
	NewPassword string `json:"NewPassword"`
}

// UnlockUserRequest is the body of POST /unlock-user.
type UnlockUserRequest struct {
	UserName string `json:"UserName"`
}

// GeneratePasswordResetTokenRequest is the body of
// POST /generate-password-reset-token.
type GeneratePasswordResetTokenRequest struct {
	UserName string `json:"UserName"`
}

// SendPasswordResetTokenRequest is the body of POST /send-password-reset-token.
// AdditionalClientInfo is passed as-is to the delivery plugin.
type SendPasswordResetTokenRequest struct {
	UserName             string            `json:"UserName"`
	AdditionalClientInfo map[string]string `json:"AdditionalClientInfo"`
}

// ResetPasswordRequest is the body of POST /reset-password.
type ResetPasswordRequest struct {
	UserName           string `json:"UserName"`
	PasswordResetToken string `json:"PasswordResetToken"`
	NewPassword        string `json:"NewPassword"`
}
