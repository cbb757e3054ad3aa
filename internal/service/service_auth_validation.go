package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/validators"
	"github.com/MKhiriev/go-forms-auth/models"
)

// authenticationServiceValidator rejects blank required strings before the
// wrapped service touches the store.
type authenticationServiceValidator struct {
	inner         AuthenticationService
	validator     validators.Validator
	authorization ClaimAuthorization

	logger *logger.Logger
}

type authenticationServiceValidatorWrapper struct {
	authorization ClaimAuthorization
	logger        *logger.Logger
}

// NewAuthenticationServiceValidator returns a wrapper adding input
// validation. SetPassword and GeneratePasswordResetToken check their claim
// before validating, so an unauthorized caller learns nothing from the
// validation messages.
func NewAuthenticationServiceValidator(authorization ClaimAuthorization, logger *logger.Logger) AuthenticationServiceWrapper {
	return &authenticationServiceValidatorWrapper{
		authorization: authorization,
		logger:        logger,
	}
}

func (w *authenticationServiceValidatorWrapper) Wrap(inner AuthenticationService) AuthenticationService {
	return &authenticationServiceValidator{
		inner:         inner,
		validator:     validators.NewCredentialValidator(),
		authorization: w.authorization,
		logger:        w.logger,
	}
}

func (v *authenticationServiceValidator) Login(ctx context.Context, userName, password string, rememberMe bool) (bool, error) {
	request := models.LoginRequest{UserName: userName, Password: password, PersistCookie: rememberMe}
	if err := v.validate(ctx, "Login", request); err != nil {
		return false, err
	}

	return v.inner.Login(ctx, userName, password, rememberMe)
}

func (v *authenticationServiceValidator) Logout(ctx context.Context) error {
	return v.inner.Logout(ctx)
}

func (v *authenticationServiceValidator) SetPassword(ctx context.Context, userName, password string, ignorePasswordStrengthPolicy bool) error {
	if err := authorize(ctx, v.authorization, models.SetPasswordClaim); err != nil {
		return err
	}

	request := models.SetPasswordRequest{UserName: userName, Password: password, IgnorePasswordStrengthPolicy: ignorePasswordStrengthPolicy}
	if err := v.validate(ctx, "SetPassword", request); err != nil {
		return err
	}

	return v.inner.SetPassword(ctx, userName, password, ignorePasswordStrengthPolicy)
}

func (v *authenticationServiceValidator) ChangeMyPassword(ctx context.Context, userName, oldPassword, newPassword string) (bool, error) {
	if err := v.validate(ctx, "ChangeMyPassword", models.Caller{UserName: userName}); err != nil {
		return false, err
	}

	request := models.ChangeMyPasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	if err := v.validate(ctx, "ChangeMyPassword", request); err != nil {
		return false, err
	}

	return v.inner.ChangeMyPassword(ctx, userName, oldPassword, newPassword)
}

func (v *authenticationServiceValidator) UnlockUser(ctx context.Context, userName string) error {
	if err := v.validate(ctx, "UnlockUser", models.UnlockUserRequest{UserName: userName}); err != nil {
		return err
	}

	return v.inner.UnlockUser(ctx, userName)
}

func (v *authenticationServiceValidator) GeneratePasswordResetToken(ctx context.Context, userName string) (string, error) {
	if err := authorize(ctx, v.authorization, models.GeneratePasswordResetTokenClaim); err != nil {
		return "", err
	}

	if err := v.validate(ctx, "GeneratePasswordResetToken", models.GeneratePasswordResetTokenRequest{UserName: userName}); err != nil {
		return "", err
	}

	return v.inner.GeneratePasswordResetToken(ctx, userName)
}

func (v *authenticationServiceValidator) SendPasswordResetToken(ctx context.Context, userName string, additionalClientInfo map[string]string) error {
	request := models.SendPasswordResetTokenRequest{UserName: userName, AdditionalClientInfo: additionalClientInfo}
	if err := v.validate(ctx, "SendPasswordResetToken", request); err != nil {
		return err
	}

	return v.inner.SendPasswordResetToken(ctx, userName, additionalClientInfo)
}

func (v *authenticationServiceValidator) ResetPassword(ctx context.Context, userName, newPassword, passwordResetToken string) (bool, error) {
	request := models.ResetPasswordRequest{UserName: userName, NewPassword: newPassword, PasswordResetToken: passwordResetToken}
	if err := v.validate(ctx, "ResetPassword", request); err != nil {
		return false, err
	}

	return v.inner.ResetPassword(ctx, userName, newPassword, passwordResetToken)
}

func (v *authenticationServiceValidator) validate(ctx context.Context, command string, obj any) error {
	err := v.validator.Validate(ctx, obj)
	if err == nil {
		return nil
	}

	var emptyField *validators.EmptyFieldError
	if errors.As(err, &emptyField) {
		logger.FromContext(ctx).Debug().Str("func", "*authenticationServiceValidator.validate").
			Str("command", command).
			Str("field", emptyField.Field).
			Msg("rejected blank input")
		return &UserError{Message: emptyField.Error(), Err: err}
	}

	logger.FromContext(ctx).Err(err).Str("func", "*authenticationServiceValidator.validate").
		Str("command", command).
		Msg("validation failed")
	return &FrameworkError{Message: "cannot validate " + command + " input", Err: err}
}
