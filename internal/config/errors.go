package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing HTTP address or request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing token key, issuer or lifetime.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates invalid lockout or bootstrap settings.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidDeliveryConfigs indicates an unknown or incomplete delivery plugin.
	ErrInvalidDeliveryConfigs = errors.New("invalid delivery configuration")
)
