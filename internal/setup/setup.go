package setup

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/service"
)

// Migrator applies the schema migrations.
type Migrator interface {
	Migrate() error
}

// PasswordReader supplies the new admin password.
type PasswordReader interface {
	ReadPassword(ctx context.Context) (string, error)
}

// Setup runs the admin-setup steps in order: migrations, bootstrap
// initializers, then the admin password.
type Setup struct {
	migrator  Migrator
	bootstrap service.AdminBootstrap
	passwords PasswordReader
	logger    *logger.Logger
}

func New(migrator Migrator, bootstrap service.AdminBootstrap, passwords PasswordReader, logger *logger.Logger) *Setup {
	return &Setup{
		migrator:  migrator,
		bootstrap: bootstrap,
		passwords: passwords,
		logger:    logger,
	}
}

// Run executes the flow. A non-empty password skips the prompt.
func (s *Setup) Run(ctx context.Context, password string) error {
	log := s.logger.With().Str("func", "*Setup.Run").Logger()

	if err := s.migrator.Migrate(); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	log.Debug().Msg("migrations applied")

	if err := s.bootstrap.Run(ctx); err != nil {
		return fmt.Errorf("admin bootstrap: %w", err)
	}

	if password == "" {
		var err error
		if password, err = s.passwords.ReadPassword(ctx); err != nil {
			return err
		}
	}

	if err := s.bootstrap.SetAdminPassword(ctx, password); err != nil {
		return err
	}
	log.Info().Msg("admin password set")

	return nil
}

// compile-time check
var _ PasswordReader = (*PasswordPrompt)(nil)
