package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/models"
)

// principalRepository is the PostgreSQL-backed [PrincipalDirectory].
type principalRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPrincipalRepository(db *DB, logger *logger.Logger) PrincipalDirectory {
	logger.Debug().Msg("creating principal repository")
	return &principalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *principalRepository) FindPrincipalByName(ctx context.Context, name string) (*models.Principal, error) {
	return r.findPrincipal(ctx, "*principalRepository.FindPrincipalByName", findPrincipalByName, name)
}

func (r *principalRepository) FindPrincipalByID(ctx context.Context, id string) (*models.Principal, error) {
	return r.findPrincipal(ctx, "*principalRepository.FindPrincipalByID", findPrincipalByID, id)
}

func (r *principalRepository) findPrincipal(ctx context.Context, funcName, query, arg string) (*models.Principal, error) {
	log := logger.FromContext(ctx)

	var principal models.Principal
	err := r.db.conn(ctx).QueryRowContext(ctx, query, arg).Scan(&principal.ID, &principal.Name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error querying principal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return &principal, nil
}
