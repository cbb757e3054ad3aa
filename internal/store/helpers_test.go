package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewDB(conn, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var credentialColumns = []string{"id", "name", "password_hash", "failed_attempt_count", "lockout_until"}

type sequenceGenerator struct {
	ids []string
	n   int
}

func (g *sequenceGenerator) Generate() string {
	id := g.ids[g.n%len(g.ids)]
	g.n++
	return id
}
