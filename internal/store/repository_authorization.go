package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/models"
)

type authorizationRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAuthorizationRepository(db *DB, logger *logger.Logger) AuthorizationRepository {
	logger.Debug().Msg("creating authorization repository")
	return &authorizationRepository{
		db:     db,
		logger: logger,
	}
}

// LoadPermissions reads the principal's direct grants and the grants of
// all its roles in one query.
func (r *authorizationRepository) LoadPermissions(ctx context.Context, principalID string) ([]models.Permission, error) {
	log := logger.FromContext(ctx).With().Str("principal_id", principalID).Logger()

	query, args, err := buildLoadPermissionsQuery(principalID)
	if err != nil {
		log.Err(err).Str("func", "*authorizationRepository.LoadPermissions").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorizationRepository.LoadPermissions").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var permissions []models.Permission
	for rows.Next() {
		var p models.Permission
		if err := rows.Scan(&p.Claim.ID, &p.Claim.Resource, &p.Claim.Right, &p.IsAuthorized); err != nil {
			log.Err(err).Str("func", "*authorizationRepository.LoadPermissions").Msg("failed to scan permission row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		permissions = append(permissions, p)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*authorizationRepository.LoadPermissions").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return permissions, nil
}
