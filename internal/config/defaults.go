package config

import "time"

// Defaults of the credential state machine and of the HTTP API.
const (
	DefaultTokenIssuer        = "go-forms-auth"
	DefaultSessionDuration    = 24 * time.Hour
	DefaultResetTokenDuration = 24 * time.Hour
	DefaultMaxFailedAttempts  = 5
	DefaultLockoutDuration    = 5 * time.Minute
	DefaultClaimCacheTTL      = time.Minute
	DefaultAdminUserName      = "admin"
	DefaultAdminRoleName      = "SecurityAdministrator"
	DefaultBaseRoute          = "/api/auth"
	DefaultCookieName         = "FormsAuth"
	DefaultRequestTimeout     = 30 * time.Second
	DefaultAMQPQueue          = "password.reset"
	DefaultVersion            = "N/A"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        DefaultTokenIssuer,
			SessionDuration:    DefaultSessionDuration,
			ResetTokenDuration: DefaultResetTokenDuration,
			LogLevel:           "info",
			Version:            DefaultVersion,
		},
		Auth: Auth{
			MaxFailedAttempts: DefaultMaxFailedAttempts,
			LockoutDuration:   DefaultLockoutDuration,
			ClaimCacheTTL:     DefaultClaimCacheTTL,
			AdminUserName:     DefaultAdminUserName,
			AdminRoleName:     DefaultAdminRoleName,
			PasswordPolicy: PasswordPolicy{
				RequiredLength: 1,
			},
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
			BaseRoute:      DefaultBaseRoute,
			CookieName:     DefaultCookieName,
			RateLimit: RateLimit{
				PerSecond: 5,
				Burst:     10,
			},
		},
		Delivery: Delivery{
			AMQP: AMQP{Queue: DefaultAMQPQueue},
		},
	}
}
