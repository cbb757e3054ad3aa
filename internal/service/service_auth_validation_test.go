package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/mock"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

func newValidatorUnderTest(t *testing.T) (AuthenticationService, *mock.MockAuthenticationService, *mock.MockClaimAuthorization) {
	t.Helper()

	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthenticationService(ctrl)
	authorization := mock.NewMockClaimAuthorization(ctrl)
	return NewAuthenticationServiceValidator(authorization, logger.Nop()).Wrap(inner), inner, authorization
}

func TestValidator_BlankInputNeverReachesService(t *testing.T) {
	ctx := utils.WithCaller(context.Background(), testCaller)

	tests := []struct {
		name string
		call func(svc AuthenticationService) error
		want string
	}{
		{
			name: "login user name",
			call: func(svc AuthenticationService) error {
				_, err := svc.Login(ctx, "", "p", false)
				return err
			},
			want: "Empty userName is not allowed.",
		},
		{
			name: "unlock user name",
			call: func(svc AuthenticationService) error { return svc.UnlockUser(ctx, "\t") },
			want: "Empty userName is not allowed.",
		},
		{
			name: "send token user name",
			call: func(svc AuthenticationService) error { return svc.SendPasswordResetToken(ctx, "", nil) },
			want: "Empty userName is not allowed.",
		},
		{
			name: "reset new password",
			call: func(svc AuthenticationService) error {
				_, err := svc.ResetPassword(ctx, "u1", "", "token")
				return err
			},
			want: "Empty newPassword is not allowed.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newValidatorUnderTest(t)

			err := tt.call(svc)

			var userErr *UserError
			require.ErrorAs(t, err, &userErr)
			assert.Equal(t, tt.want, userErr.Message)
		})
	}
}

func TestValidator_SetPasswordChecksClaimFirst(t *testing.T) {
	svc, _, authorization := newValidatorUnderTest(t)
	ctx := utils.WithCaller(context.Background(), testCaller)
	authorization.EXPECT().IsAuthorized(gomock.Any(), testCaller, models.SetPasswordClaim).Return(false, nil)

	err := svc.SetPassword(ctx, "", "", false)

	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
}

func TestValidator_SetPasswordValidatesAfterClaim(t *testing.T) {
	svc, _, authorization := newValidatorUnderTest(t)
	ctx := utils.WithCaller(context.Background(), testCaller)
	authorization.EXPECT().IsAuthorized(gomock.Any(), testCaller, models.SetPasswordClaim).Return(true, nil)

	err := svc.SetPassword(ctx, "u1", "", false)

	assert.EqualError(t, err, "Empty password is not allowed.")
}

func TestValidator_GenerateTokenChecksClaimFirst(t *testing.T) {
	svc, _, authorization := newValidatorUnderTest(t)
	authorization.EXPECT().IsAuthorized(gomock.Any(), models.Caller{}, models.GeneratePasswordResetTokenClaim).Return(false, nil)

	token, err := svc.GeneratePasswordResetToken(context.Background(), "")

	assert.Empty(t, token)
	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "GeneratePasswordResetToken", authErr.Right)
}

func TestValidator_DelegatesValidInput(t *testing.T) {
	svc, inner, authorization := newValidatorUnderTest(t)
	ctx := utils.WithCaller(context.Background(), testCaller)
	info := map[string]string{"k": "v"}

	inner.EXPECT().Login(ctx, "u1", "p", true).Return(true, nil)
	inner.EXPECT().Logout(ctx).Return(nil)
	authorization.EXPECT().IsAuthorized(gomock.Any(), testCaller, models.SetPasswordClaim).Return(true, nil)
	inner.EXPECT().SetPassword(ctx, "u1", "p", true).Return(nil)
	inner.EXPECT().ChangeMyPassword(ctx, "u1", "old", "new").Return(true, nil)
	inner.EXPECT().UnlockUser(ctx, "u1").Return(nil)
	authorization.EXPECT().IsAuthorized(gomock.Any(), testCaller, models.GeneratePasswordResetTokenClaim).Return(true, nil)
	inner.EXPECT().GeneratePasswordResetToken(ctx, "u1").Return("token", nil)
	inner.EXPECT().SendPasswordResetToken(ctx, "u1", info).Return(nil)
	inner.EXPECT().ResetPassword(ctx, "u1", "new", "token").Return(true, nil)

	ok, err := svc.Login(ctx, "u1", "p", true)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, svc.Logout(ctx))
	require.NoError(t, svc.SetPassword(ctx, "u1", "p", true))
	changed, err := svc.ChangeMyPassword(ctx, "u1", "old", "new")
	require.NoError(t, err)
	assert.True(t, changed)
	require.NoError(t, svc.UnlockUser(ctx, "u1"))
	token, err := svc.GeneratePasswordResetToken(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "token", token)
	require.NoError(t, svc.SendPasswordResetToken(ctx, "u1", info))
	reset, err := svc.ResetPassword(ctx, "u1", "new", "token")
	require.NoError(t, err)
	assert.True(t, reset)
}
