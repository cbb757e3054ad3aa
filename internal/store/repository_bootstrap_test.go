package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBootstrapRepo(t *testing.T) (BootstrapRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	gen := &sequenceGenerator{ids: []string{"new-id"}}
	return NewBootstrapRepository(db, gen, logger.Nop()), mock
}

func TestBootstrapRepository_EnsurePrincipal_Created(t *testing.T) {
	// Arrange
	repo, mock := newTestBootstrapRepo(t)
	mock.ExpectExec("INSERT INTO principals \\(id,name\\) VALUES \\(\\$1,\\$2\\) ON CONFLICT \\(name\\) DO NOTHING").
		WithArgs("new-id", "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, name FROM principals WHERE name = \\$1").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("new-id", "admin"))

	// Act
	principal, created, err := repo.EnsurePrincipal(context.Background(), "admin")

	// Assert
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.Principal{ID: "new-id", Name: "admin"}, principal)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBootstrapRepository_EnsurePrincipal_Existing(t *testing.T) {
	repo, mock := newTestBootstrapRepo(t)
	mock.ExpectExec("INSERT INTO principals").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM principals").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("old-id", "admin"))

	principal, created, err := repo.EnsurePrincipal(context.Background(), "admin")

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "old-id", principal.ID)
}

func TestBootstrapRepository_EnsureRole_InsertError(t *testing.T) {
	repo, mock := newTestBootstrapRepo(t)
	mock.ExpectExec("INSERT INTO roles").WillReturnError(errors.New("db down"))

	_, _, err := repo.EnsureRole(context.Background(), "SecurityAdministrator")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestBootstrapRepository_EnsureRole_ReadBackMissing(t *testing.T) {
	repo, mock := newTestBootstrapRepo(t)
	mock.ExpectExec("INSERT INTO roles").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM roles").WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	_, _, err := repo.EnsureRole(context.Background(), "SecurityAdministrator")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBootstrapRepository_EnsurePrincipalRole(t *testing.T) {
	repo, mock := newTestBootstrapRepo(t)
	mock.ExpectExec("INSERT INTO principal_roles").
		WithArgs("p1", "r1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.EnsurePrincipalRole(context.Background(), "p1", "r1")

	require.NoError(t, err)
	assert.False(t, created)
}

func TestBootstrapRepository_EnsureClaim(t *testing.T) {
	repo, mock := newTestBootstrapRepo(t)
	claim := models.SetPasswordClaim

	mock.ExpectExec("INSERT INTO claims").
		WithArgs("new-id", claim.Resource, claim.Right).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM claims").
		WillReturnRows(sqlmock.NewRows([]string{"id", "resource", "right"}).AddRow("new-id", claim.Resource, claim.Right))

	stored, created, err := repo.EnsureClaim(context.Background(), claim)

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "new-id", stored.ID)
	assert.Equal(t, claim.Key(), stored.Key())
}

func TestBootstrapRepository_GrantRolePermission(t *testing.T) {
	repo, mock := newTestBootstrapRepo(t)
	mock.ExpectQuery("INSERT INTO role_permissions .* ON CONFLICT \\(role_id, claim_id\\) DO UPDATE").
		WithArgs("r1", "c1", true).
		WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(true))

	created, err := repo.GrantRolePermission(context.Background(), "r1", "c1", true)

	require.NoError(t, err)
	assert.True(t, created)
}

func TestBootstrapRepository_GrantRolePermission_MissingIDs(t *testing.T) {
	repo, mock := newTestBootstrapRepo(t)

	_, err := repo.GrantRolePermission(context.Background(), "", "c1", true)

	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}
