package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/metrics"
	"github.com/MKhiriev/go-forms-auth/internal/store"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

func testStructuredConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: testAppConfig,
		Auth: config.Auth{
			MaxFailedAttempts: 3,
			LockoutDuration:   time.Minute,
			ClaimCacheTTL:     time.Minute,
			AdminUserName:     "admin",
			AdminRoleName:     "SecurityAdministrator",
		},
		Delivery: config.Delivery{Plugins: []string{"log"}},
	}
}

func TestNewServices_WiresEverything(t *testing.T) {
	credentials := newMemoryCredentialStore()
	storages := &store.Storages{
		Transactor:              &passThroughTransactor{},
		PrincipalDirectory:      credentials,
		CredentialStore:         credentials,
		PasswordRuleRepository:  &fakePasswordRules{},
		AuthorizationRepository: &fakePermissions{},
		BootstrapRepository:     newMemoryBootstrap(credentials),
	}
	m := metrics.New()

	services, err := NewServices(storages, testStructuredConfig(), Infrastructure{Metrics: m, Clock: utils.NewFakeClock(testNow)}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, services.AuthenticationService)
	require.NotNil(t, services.ClaimAuthorization)
	require.NotNil(t, services.SessionManager)
	require.NotNil(t, services.AdminBootstrap)
	assert.Equal(t, "test", services.AppInfoService.GetAppVersion(context.Background()))

	// end to end: bootstrap, set the admin password, log in, send a token
	ctx := context.Background()
	require.NoError(t, services.AdminBootstrap.Run(ctx))
	require.NoError(t, services.AdminBootstrap.SetAdminPassword(ctx, "adminpass"))

	writer := &recordingSessionWriter{}
	ok, err := services.AuthenticationService.Login(WithSessionWriter(ctx, writer), "admin", "adminpass", false)
	require.NoError(t, err)
	require.True(t, ok)

	caller, err := services.SessionManager.Authenticate(ctx, writer.tokens[0].SignedString)
	require.NoError(t, err)
	assert.Equal(t, "admin", caller.UserName)

	assert.NoError(t, services.AuthenticationService.SendPasswordResetToken(ctx, "admin", nil))
}

func TestNewServices_MissingVersion(t *testing.T) {
	cfg := testStructuredConfig()
	cfg.App.Version = ""

	_, err := NewServices(&store.Storages{}, cfg, Infrastructure{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices_AdminClaimsResolveThroughRoleGrants(t *testing.T) {
	credentials := newMemoryCredentialStore()
	permissions := &fakePermissions{}
	for _, claim := range models.DefaultAdminClaims() {
		permissions.permissions = append(permissions.permissions, models.Permission{Claim: claim, IsAuthorized: true})
	}
	storages := &store.Storages{
		Transactor:              &passThroughTransactor{},
		PrincipalDirectory:      credentials,
		CredentialStore:         credentials,
		PasswordRuleRepository:  &fakePasswordRules{},
		AuthorizationRepository: permissions,
		BootstrapRepository:     newMemoryBootstrap(credentials),
	}
	services, err := NewServices(storages, testStructuredConfig(), Infrastructure{Clock: utils.NewFakeClock(testNow)}, logger.Nop())
	require.NoError(t, err)
	credentials.addUser(t, "u1", "u1p")

	ctx := utils.WithCaller(context.Background(), models.Caller{PrincipalID: "admin-id", UserName: "admin"})
	token, err := services.AuthenticationService.GeneratePasswordResetToken(ctx, "u1")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
