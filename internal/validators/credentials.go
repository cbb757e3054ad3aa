package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-forms-auth/models"
)

// Field names used in the "Empty {field} is not allowed." messages and to
// scope validation to a subset of fields.
const (
	FieldUserName           = "userName"
	FieldPassword           = "password"
	FieldOldPassword        = "oldPassword"
	FieldNewPassword        = "newPassword"
	FieldPasswordResetToken = "resetPasswordToken"
)

// CredentialValidator implements [Validator] for the authentication request
// models. Every field it knows is a required non-blank string.
//
// Supported types (value or pointer): LoginRequest, SetPasswordRequest,
// ChangeMyPasswordRequest, UnlockUserRequest,
// GeneratePasswordResetTokenRequest, SendPasswordResetTokenRequest,
// ResetPasswordRequest and Caller (user name only).
type CredentialValidator struct{}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate checks the fields of obj in declaration order and returns an
// [*EmptyFieldError] for the first blank one. When fields is empty, all
// fields of the type are checked.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	values, order, err := fieldValues(obj)
	if err != nil {
		return err
	}

	if len(fields) == 0 {
		fields = order
	}

	for _, f := range fields {
		value, ok := values[f]
		if !ok {
			return ErrUnknownField
		}
		if isBlank(value) {
			return &EmptyFieldError{Field: f}
		}
	}

	return nil
}

func fieldValues(obj any) (map[string]string, []string, error) {
	switch value := obj.(type) {
	case *models.LoginRequest:
		return fieldValues(*value)
	case models.LoginRequest:
		return map[string]string{
			FieldUserName: value.UserName,
			FieldPassword: value.Password,
		}, []string{FieldUserName, FieldPassword}, nil

	case *models.SetPasswordRequest:
		return fieldValues(*value)
	case models.SetPasswordRequest:
		return map[string]string{
			FieldUserName: value.UserName,
			FieldPassword: value.Password,
		}, []string{FieldUserName, FieldPassword}, nil

	case *models.ChangeMyPasswordRequest:
		return fieldValues(*value)
	case models.ChangeMyPasswordRequest:
		return map[string]string{
			FieldOldPassword: value.OldPassword,
			FieldNewPassword: value.NewPassword,
		}, []string{FieldOldPassword, FieldNewPassword}, nil

	case *models.UnlockUserRequest:
		return fieldValues(*value)
	case models.UnlockUserRequest:
		return userNameOnly(value.UserName)

	case *models.GeneratePasswordResetTokenRequest:
		return fieldValues(*value)
	case models.GeneratePasswordResetTokenRequest:
		return userNameOnly(value.UserName)

	case *models.SendPasswordResetTokenRequest:
		return fieldValues(*value)
	case models.SendPasswordResetTokenRequest:
		return userNameOnly(value.UserName)

	case *models.ResetPasswordRequest:
		return fieldValues(*value)
	case models.ResetPasswordRequest:
		return map[string]string{
			FieldUserName:           value.UserName,
			FieldNewPassword:        value.NewPassword,
			FieldPasswordResetToken: value.PasswordResetToken,
		}, []string{FieldUserName, FieldNewPassword, FieldPasswordResetToken}, nil

	case models.Caller:
		return userNameOnly(value.UserName)

	default:
		return nil, nil, ErrUnsupportedType
	}
}

func userNameOnly(userName string) (map[string]string, []string, error) {
	return map[string]string{FieldUserName: userName}, []string{FieldUserName}, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
