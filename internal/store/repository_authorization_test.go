package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationRepository_LoadPermissions(t *testing.T) {
	// Arrange
	db, mock := newTestDB(t)
	repo := NewAuthorizationRepository(db, logger.Nop())

	query, _, err := buildLoadPermissionsQuery("p1")
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("p1", "p1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "resource", "right", "is_authorized"}).
			AddRow("c1", models.AuthenticationServiceResource, "UnlockUser", false).
			AddRow("c1", models.AuthenticationServiceResource, "UnlockUser", true))

	// Act
	permissions, err := repo.LoadPermissions(context.Background(), "p1")

	// Assert
	require.NoError(t, err)
	require.Len(t, permissions, 2)
	assert.Equal(t, models.UnlockUserClaim.Key(), permissions[0].Claim.Key())
	assert.False(t, permissions[0].IsAuthorized)
	assert.True(t, permissions[1].IsAuthorized)
}

func TestAuthorizationRepository_LoadPermissions_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorizationRepository(db, logger.Nop())
	mock.ExpectQuery("UNION ALL").WillReturnError(errors.New("db down"))

	_, err := repo.LoadPermissions(context.Background(), "p1")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}
