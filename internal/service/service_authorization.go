package service

import (
	"context"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/store"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

type claimAuthorization struct {
	permissions store.AuthorizationRepository
	cache       ClaimCache

	logger *logger.Logger
}

// NewClaimAuthorization resolves claims from the principal's direct and
// role grants. Resolved grant sets are kept in cache until it is
// invalidated or expires.
func NewClaimAuthorization(permissions store.AuthorizationRepository, cache ClaimCache, logger *logger.Logger) ClaimAuthorization {
	return &claimAuthorization{
		permissions: permissions,
		cache:       cache,
		logger:      logger,
	}
}

// IsAuthorized reports whether caller holds claim. An explicit deny from
// any grant overrides every allow. Anonymous callers hold no claims.
func (a *claimAuthorization) IsAuthorized(ctx context.Context, caller models.Caller, claim models.Claim) (bool, error) {
	if caller.IsAnonymous() {
		return false, nil
	}

	permissions, err := a.load(ctx, caller.PrincipalID)
	if err != nil {
		return false, err
	}

	authorized := false
	for _, permission := range permissions {
		if permission.Claim.Resource != claim.Resource || permission.Claim.Right != claim.Right {
			continue
		}
		if !permission.IsAuthorized {
			return false, nil
		}
		authorized = true
	}

	return authorized, nil
}

func (a *claimAuthorization) Invalidate(ctx context.Context) error {
	return a.cache.Invalidate(ctx)
}

func (a *claimAuthorization) load(ctx context.Context, principalID string) ([]models.Permission, error) {
	log := logger.FromContext(ctx)

	cached, ok, err := a.cache.Get(ctx, principalID)
	if err != nil {
		// the cache is an optimization; fall through to the store
		log.Warn().Err(err).Str("func", "*claimAuthorization.load").Msg("claim cache read failed")
	}
	if ok {
		return cached, nil
	}

	permissions, err := a.permissions.LoadPermissions(ctx, principalID)
	if err != nil {
		log.Err(err).Str("func", "*claimAuthorization.load").Str("principal_id", principalID).Msg("error loading permissions")
		return nil, &FrameworkError{Message: "cannot load permissions", Err: err}
	}

	if err = a.cache.Set(ctx, principalID, permissions); err != nil {
		log.Warn().Err(err).Str("func", "*claimAuthorization.load").Msg("claim cache write failed")
	}

	return permissions, nil
}

// authorize fails with an *AuthorizationError when the caller in ctx lacks
// claim.
func authorize(ctx context.Context, authorization ClaimAuthorization, claim models.Claim) error {
	caller, _ := utils.GetCallerFromContext(ctx)

	ok, err := authorization.IsAuthorized(ctx, caller, claim)
	if err != nil {
		return err
	}
	if !ok {
		return &AuthorizationError{Resource: claim.Resource, Right: claim.Right, Caller: caller.UserName}
	}

	return nil
}
