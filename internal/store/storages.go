package store

import (
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
)

// Storages groups every repository built on one [DB].
type Storages struct {
	Transactor              Transactor
	PrincipalDirectory      PrincipalDirectory
	CredentialStore         CredentialStore
	PasswordRuleRepository  PasswordRuleRepository
	AuthorizationRepository AuthorizationRepository
	BootstrapRepository     BootstrapRepository
}

func NewStorages(db *DB, idGenerator utils.IDGenerator, logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating storages")

	return &Storages{
		Transactor:              db,
		PrincipalDirectory:      NewPrincipalRepository(db, logger),
		CredentialStore:         NewCredentialRepository(db, logger),
		PasswordRuleRepository:  NewPasswordRuleRepository(db, logger),
		AuthorizationRepository: NewAuthorizationRepository(db, logger),
		BootstrapRepository:     NewBootstrapRepository(db, idGenerator, logger),
	}
}
