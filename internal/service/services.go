package service

import (
	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/metrics"
	"github.com/MKhiriev/go-forms-auth/internal/store"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

// Infrastructure carries the optional shared backends of the services.
type Infrastructure struct {
	// Redis, when set, backs the claim cache and the session revocation
	// list; otherwise both are kept in process memory.
	Redis redis.Cmdable
	// Metrics may be nil.
	Metrics *metrics.Metrics

	// Build is the metadata linked into the binary; its version replaces
	// the default App.Version.
	Build models.AppBuildInfo

	Clock      utils.Clock
	SessionIDs utils.IDGenerator
}

type Services struct {
	AuthenticationService AuthenticationService
	ClaimAuthorization    ClaimAuthorization
	SessionManager        SessionManager
	AdminBootstrap        AdminBootstrap
	AppInfoService        AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, infra Infrastructure, logger *logger.Logger) (*Services, error) {
	if infra.Clock == nil {
		infra.Clock = utils.SystemClock()
	}
	if infra.SessionIDs == nil {
		infra.SessionIDs = utils.NewULIDGenerator()
	}

	var (
		claimCache  ClaimCache
		revocations RevocationStore
	)
	if infra.Redis != nil {
		claimCache = NewRedisClaimCache(infra.Redis, cfg.Auth.ClaimCacheTTL)
		revocations = NewRedisRevocationStore(infra.Redis, cfg.App.SessionDuration)
	} else {
		claimCache = NewMemoryClaimCache(cfg.Auth.ClaimCacheTTL, infra.Clock)
		revocations = NewMemoryRevocationStore(cfg.App.SessionDuration, infra.Clock)
	}

	authorization := NewClaimAuthorization(storages.AuthorizationRepository, claimCache, logger)
	resetTokens := NewResetTokenService(cfg.App, infra.Clock, infra.SessionIDs, logger)
	sessions := NewSessionManager(cfg.App, revocations, infra.Clock, infra.SessionIDs, logger)

	authenticationService := NewAuthenticationService(AuthenticationDependencies{
		Transactor:    storages.Transactor,
		Principals:    storages.PrincipalDirectory,
		Credentials:   storages.CredentialStore,
		Authorization: authorization,
		Policy:        NewPasswordPolicy(storages.PasswordRuleRepository, cfg.Auth.PasswordPolicy, logger),
		ResetTokens:   resetTokens,
		Sessions:      sessions,
		Plugins:       NewDeliveryPlugins(cfg.Delivery, infra.Clock, logger),
		Metrics:       infra.Metrics,
		Clock:         infra.Clock,
	}, cfg.Auth, logger)

	appInfoService, err := NewAppInfoService(cfg.App, infra.Build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthenticationService: NewAuthenticationServiceValidator(authorization, logger).Wrap(authenticationService),
		ClaimAuthorization:    authorization,
		SessionManager:        sessions,
		AdminBootstrap:        NewAdminBootstrap(storages, authorization, resetTokens, cfg.Auth, logger),
		AppInfoService:        appInfoService,
	}, nil
}
