package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/mock"
	"github.com/MKhiriev/go-forms-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPasswordPolicy_RegexRules(t *testing.T) {
	rules := []models.PasswordStrengthRule{
		{ID: "1", Ordinal: 1, RegularExpression: "^a..", RuleDescription: "Starts with a, three characters at least."},
		{ID: "2", Ordinal: 2, RegularExpression: "[0-9]", RuleDescription: "Contains a digit."},
	}

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "first rule fails", password: "test", wantErr: "Starts with a, three characters at least."},
		{name: "second rule fails", password: "abcdef", wantErr: "Contains a digit."},
		{name: "passes", password: "abc123"},
		{name: "unanchored match", password: "abc 9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockPasswordRuleRepository(ctrl)
			repo.EXPECT().ListRules(gomock.Any()).Return(rules, nil)
			policy := NewPasswordPolicy(repo, config.PasswordPolicy{}, logger.Nop())

			err := policy.Check(context.Background(), tt.password)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var userErr *UserError
			require.ErrorAs(t, err, &userErr)
			assert.Equal(t, tt.wantErr, userErr.Message)
		})
	}
}

func TestPasswordPolicy_NoRulesPasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPasswordRuleRepository(ctrl)
	repo.EXPECT().ListRules(gomock.Any()).Return(nil, nil)

	err := NewPasswordPolicy(repo, config.PasswordPolicy{}, logger.Nop()).Check(context.Background(), "x")

	assert.NoError(t, err)
}

func TestPasswordPolicy_InvalidPatternIsFrameworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPasswordRuleRepository(ctrl)
	repo.EXPECT().ListRules(gomock.Any()).Return([]models.PasswordStrengthRule{
		{ID: "broken", RegularExpression: "([a-z", RuleDescription: "never shown"},
	}, nil)

	err := NewPasswordPolicy(repo, config.PasswordPolicy{}, logger.Nop()).Check(context.Background(), "abc")

	var frameworkErr *FrameworkError
	require.ErrorAs(t, err, &frameworkErr)
	assert.Contains(t, frameworkErr.Message, "broken")
}

func TestPasswordPolicy_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPasswordRuleRepository(ctrl)
	storeErr := errors.New("db down")
	repo.EXPECT().ListRules(gomock.Any()).Return(nil, storeErr)

	err := NewPasswordPolicy(repo, config.PasswordPolicy{}, logger.Nop()).Check(context.Background(), "abc")

	var frameworkErr *FrameworkError
	require.ErrorAs(t, err, &frameworkErr)
	assert.ErrorIs(t, err, storeErr)
}

func TestPasswordPolicy_StaticPolicyRunsFirst(t *testing.T) {
	static := config.PasswordPolicy{
		Enabled:                true,
		RequiredLength:         6,
		RequireDigit:           true,
		RequireLowercase:       true,
		RequireUppercase:       true,
		RequireNonAlphanumeric: true,
	}

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "too short", password: "aB1!", wantErr: "Passwords must be at least 6 characters."},
		{name: "no symbol", password: "abcDE12", wantErr: "Passwords must have at least one non letter or digit character."},
		{name: "no digit", password: "abcDE!!", wantErr: "Passwords must have at least one digit ('0'-'9')."},
		{name: "no lowercase", password: "ABCDE1!", wantErr: "Passwords must have at least one lowercase ('a'-'z')."},
		{name: "no uppercase", password: "abcde1!", wantErr: "Passwords must have at least one uppercase ('A'-'Z')."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockPasswordRuleRepository(ctrl)
			repo.EXPECT().ListRules(gomock.Any()).Times(0)

			err := NewPasswordPolicy(repo, static, logger.Nop()).Check(context.Background(), tt.password)

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestPasswordPolicy_StaticPolicyPassesThenRules(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockPasswordRuleRepository(ctrl)
	repo.EXPECT().ListRules(gomock.Any()).Return([]models.PasswordStrengthRule{
		{RegularExpression: "^x", RuleDescription: "Starts with x."},
	}, nil)
	static := config.PasswordPolicy{Enabled: true, RequiredLength: 3}

	err := NewPasswordPolicy(repo, static, logger.Nop()).Check(context.Background(), "abcd")

	assert.EqualError(t, err, "Starts with x.")
}
