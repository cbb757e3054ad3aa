package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrincipalRepository_FindPrincipalByName(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrincipalRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, name FROM principals WHERE name =").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow("id-admin", "admin"))

	principal, err := repo.FindPrincipalByName(context.Background(), "admin")

	require.NoError(t, err)
	require.NotNil(t, principal)
	assert.Equal(t, "id-admin", principal.ID)
	assert.Equal(t, "admin", principal.Name)
}

func TestPrincipalRepository_FindPrincipalByID_Unknown(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrincipalRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT id, name FROM principals WHERE id =").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	principal, err := repo.FindPrincipalByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, principal)
}

func TestPrincipalRepository_FindPrincipalByName_DBError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewPrincipalRepository(db, logger.Nop())

	mock.ExpectQuery("FROM principals").WillReturnError(errors.New("db down"))

	_, err := repo.FindPrincipalByName(context.Background(), "admin")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}
