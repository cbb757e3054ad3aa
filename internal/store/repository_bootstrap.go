package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

// bootstrapRepository implements [BootstrapRepository] as
// insert-on-conflict-do-nothing followed by a read of the natural key.
type bootstrapRepository struct {
	db          *DB
	idGenerator utils.IDGenerator
	logger      *logger.Logger
}

func NewBootstrapRepository(db *DB, idGenerator utils.IDGenerator, logger *logger.Logger) BootstrapRepository {
	logger.Debug().Msg("creating bootstrap repository")
	return &bootstrapRepository{
		db:          db,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

func (r *bootstrapRepository) EnsurePrincipal(ctx context.Context, name string) (models.Principal, bool, error) {
	table := models.Principal{}.TableName()

	created, err := r.insert(ctx, "*bootstrapRepository.EnsurePrincipal", func() (string, []any, error) {
		return buildInsertPrincipalQuery(r.idGenerator.Generate(), name)
	})
	if err != nil {
		return models.Principal{}, false, err
	}

	var principal models.Principal
	if err := r.selectByName(ctx, "*bootstrapRepository.EnsurePrincipal", table, name, &principal.ID, &principal.Name); err != nil {
		return models.Principal{}, false, err
	}

	return principal, created, nil
}

func (r *bootstrapRepository) EnsureRole(ctx context.Context, name string) (models.Role, bool, error) {
	table := models.Role{}.TableName()

	created, err := r.insert(ctx, "*bootstrapRepository.EnsureRole", func() (string, []any, error) {
		return buildInsertRoleQuery(r.idGenerator.Generate(), name)
	})
	if err != nil {
		return models.Role{}, false, err
	}

	var role models.Role
	if err := r.selectByName(ctx, "*bootstrapRepository.EnsureRole", table, name, &role.ID, &role.Name); err != nil {
		return models.Role{}, false, err
	}

	return role, created, nil
}

func (r *bootstrapRepository) EnsurePrincipalRole(ctx context.Context, principalID, roleID string) (bool, error) {
	return r.insert(ctx, "*bootstrapRepository.EnsurePrincipalRole", func() (string, []any, error) {
		return buildInsertPrincipalRoleQuery(principalID, roleID)
	})
}

func (r *bootstrapRepository) EnsureClaim(ctx context.Context, claim models.Claim) (models.Claim, bool, error) {
	log := logger.FromContext(ctx)

	created, err := r.insert(ctx, "*bootstrapRepository.EnsureClaim", func() (string, []any, error) {
		return buildInsertClaimQuery(r.idGenerator.Generate(), claim)
	})
	if err != nil {
		return models.Claim{}, false, err
	}

	query, args, err := buildSelectClaimQuery(claim)
	if err != nil {
		return models.Claim{}, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored models.Claim
	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&stored.ID, &stored.Resource, &stored.Right)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Claim{}, false, fmt.Errorf("%w: claim %s", ErrNotFound, claim.Key())
	case err != nil:
		log.Err(err).Str("func", "*bootstrapRepository.EnsureClaim").Msg("error reading claim")
		return models.Claim{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stored, created, nil
}

func (r *bootstrapRepository) GrantRolePermission(ctx context.Context, roleID, claimID string, isAuthorized bool) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGrantRolePermissionQuery(roleID, claimID, isAuthorized)
	if err != nil {
		log.Err(err).Str("func", "*bootstrapRepository.GrantRolePermission").Msg("failed to create query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var inserted bool
	if err := r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&inserted); err != nil {
		log.Err(err).Str("func", "*bootstrapRepository.GrantRolePermission").Msg("error granting role permission")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return inserted, nil
}

// insert runs an ON CONFLICT DO NOTHING statement and reports whether a
// row was added.
func (r *bootstrapRepository) insert(ctx context.Context, funcName string, build func() (string, []any, error)) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := build()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to create query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute insert")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (r *bootstrapRepository) selectByName(ctx context.Context, funcName, table, name string, dest ...any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectByNameQuery(table, name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(dest...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%w: %s %q", ErrNotFound, table, name)
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error reading row by name")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
