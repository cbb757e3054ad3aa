package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/store"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

type adminBootstrap struct {
	transactor    store.Transactor
	bootstrap     store.BootstrapRepository
	principals    store.PrincipalDirectory
	credentials   store.PasswordStore
	authorization ClaimAuthorization
	resetTokens   ResetTokenService

	adminUserName string
	adminRoleName string
	claims        []models.Claim

	logger *logger.Logger
}

// NewAdminBootstrap seeds the administrator principal, its role and the
// default administrative claims.
func NewAdminBootstrap(storages *store.Storages, authorization ClaimAuthorization, resetTokens ResetTokenService, cfg config.Auth, logger *logger.Logger) AdminBootstrap {
	return &adminBootstrap{
		transactor:    storages.Transactor,
		bootstrap:     storages.BootstrapRepository,
		principals:    storages.PrincipalDirectory,
		credentials:   storages.CredentialStore,
		authorization: authorization,
		resetTokens:   resetTokens,
		adminUserName: cfg.AdminUserName,
		adminRoleName: cfg.AdminRoleName,
		claims:        models.DefaultAdminClaims(),
		logger:        logger,
	}
}

// Run inserts every missing row and reads back the existing ones, so it can
// be repeated against a fully seeded database without changing it.
func (b *adminBootstrap) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var created int
	count := func(ok bool) {
		if ok {
			created++
		}
	}

	err := b.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		principal, ok, err := b.bootstrap.EnsurePrincipal(ctx, b.adminUserName)
		if err != nil {
			return fmt.Errorf("ensure principal %q: %w", b.adminUserName, err)
		}
		count(ok)

		role, ok, err := b.bootstrap.EnsureRole(ctx, b.adminRoleName)
		if err != nil {
			return fmt.Errorf("ensure role %q: %w", b.adminRoleName, err)
		}
		count(ok)

		ok, err = b.bootstrap.EnsurePrincipalRole(ctx, principal.ID, role.ID)
		if err != nil {
			return fmt.Errorf("ensure principal role: %w", err)
		}
		count(ok)

		for _, claim := range b.claims {
			stored, ok, err := b.bootstrap.EnsureClaim(ctx, claim)
			if err != nil {
				return fmt.Errorf("ensure claim %s: %w", claim.Key(), err)
			}
			count(ok)

			ok, err = b.bootstrap.GrantRolePermission(ctx, role.ID, stored.ID, true)
			if err != nil {
				return fmt.Errorf("grant %s to role %q: %w", claim.Key(), b.adminRoleName, err)
			}
			count(ok)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*adminBootstrap.Run").Msg("admin bootstrap failed")
		return err
	}

	if err = b.authorization.Invalidate(ctx); err != nil {
		log.Err(err).Str("func", "*adminBootstrap.Run").Msg("error invalidating claim cache")
		return err
	}

	log.Info().Str("func", "*adminBootstrap.Run").
		Str("admin", b.adminUserName).
		Int("rows_created", created).
		Msg("admin bootstrap completed")

	return nil
}

// SetAdminPassword installs password for the administrator without
// applying the password strength policy.
func (b *adminBootstrap) SetAdminPassword(ctx context.Context, password string) error {
	return b.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		principal, err := b.principals.FindPrincipalByName(ctx, b.adminUserName)
		if err != nil {
			return err
		}
		if principal == nil {
			return NewUserError(msgMissingAdmin, b.adminUserName)
		}

		credential, err := b.credentials.LockByName(ctx, principal.Name)
		if err != nil {
			return err
		}
		if credential == nil {
			// deleted between the two reads
			return NewUserError(msgMissingAdmin, b.adminUserName)
		}

		if err = b.resetPassword(ctx, *credential, password); err != nil {
			var userErr *UserError
			if errors.As(err, &userErr) {
				return err
			}
			logger.FromContext(ctx).Err(err).Str("func", "*adminBootstrap.SetAdminPassword").Msg("admin password reset failed")
			return &UserError{Message: fmt.Sprintf(msgAdminResetFailed, err), Err: err}
		}

		logger.FromContext(ctx).Info().Str("func", "*adminBootstrap.SetAdminPassword").
			Str("admin", b.adminUserName).
			Bool("replaced_existing", credential.HasPassword()).
			Msg("admin password changed")
		return nil
	})
}

func (b *adminBootstrap) resetPassword(ctx context.Context, credential models.Credential, password string) error {
	token, err := b.resetTokens.Generate(ctx, credential)
	if err != nil {
		return err
	}
	if err = b.resetTokens.Validate(ctx, credential, token); err != nil {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return b.credentials.SetPasswordHash(ctx, credential.PrincipalID, hash)
}
