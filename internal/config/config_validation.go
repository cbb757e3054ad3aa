// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"slices"
)

// KnownDeliveryPlugins lists the delivery plugin names the server can build.
var KnownDeliveryPlugins = []string{"amqp", "log"}

// serverConfig checks that the merged configuration can run the HTTP server.
func serverConfig(cfg *StructuredConfig) error {
	var errs []error

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	errs = append(errs, cfg.validateCore()...)

	for _, plugin := range cfg.Delivery.Plugins {
		if !slices.Contains(KnownDeliveryPlugins, plugin) {
			errs = append(errs, fmt.Errorf("%w: unknown plugin %q", ErrInvalidDeliveryConfigs, plugin))
		}
		if plugin == "amqp" && cfg.Delivery.AMQP.URL == "" {
			errs = append(errs, fmt.Errorf("%w: amqp plugin requires an URL", ErrInvalidDeliveryConfigs))
		}
	}

	return errors.Join(errs...)
}

// adminSetupConfig checks that the merged configuration can run the
// admin-setup tool, which needs the database and the token key only.
func adminSetupConfig(cfg *StructuredConfig) error {
	return errors.Join(cfg.validateCore()...)
}

func (cfg *StructuredConfig) validateCore() []error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" ||
		cfg.App.SessionDuration <= 0 || cfg.App.ResetTokenDuration <= 0 {
		errs = append(errs, ErrInvalidAppConfigs)
	}

	if cfg.Auth.MaxFailedAttempts < 1 || cfg.Auth.LockoutDuration <= 0 ||
		cfg.Auth.AdminUserName == "" || cfg.Auth.AdminRoleName == "" {
		errs = append(errs, ErrInvalidAuthConfigs)
	}

	return errs
}
