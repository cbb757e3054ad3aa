// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/models"
	"github.com/jackc/pgerrcode"
)

// credentialRepository is the PostgreSQL-backed [CredentialStore]. It maps
// the credential view onto the principals table and the optional
// credentials side row.
//
// Every method runs on the transaction carried by ctx when there is one.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialStore] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialStore {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

// FindByName returns the credential view of the named principal, or nil
// when no such principal exists.
func (r *credentialRepository) FindByName(ctx context.Context, name string) (*models.Credential, error) {
	return r.findCredential(ctx, "*credentialRepository.FindByName", findCredentialByName, name)
}

// FindByID returns the credential view of the principal with the given id,
// or nil when no such principal exists.
func (r *credentialRepository) FindByID(ctx context.Context, principalID string) (*models.Credential, error) {
	return r.findCredential(ctx, "*credentialRepository.FindByID", findCredentialByID, principalID)
}

// LockByName is FindByName with the principal row locked FOR UPDATE.
// Outside a transaction the lock is released immediately.
func (r *credentialRepository) LockByName(ctx context.Context, name string) (*models.Credential, error) {
	return r.findCredential(ctx, "*credentialRepository.LockByName", lockCredentialByName, name)
}

func (r *credentialRepository) findCredential(ctx context.Context, funcName, query, arg string) (*models.Credential, error) {
	log := logger.FromContext(ctx)

	credential, err := scanCredential(r.db.conn(ctx).QueryRowContext(ctx, query, arg))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error reading credential")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return credential, nil
}

// Save writes all mutable credential fields with a single upsert.
func (r *credentialRepository) Save(ctx context.Context, credential models.Credential) error {
	_, err := r.db.conn(ctx).ExecContext(ctx, saveCredential,
		credential.PrincipalID,
		credential.PasswordHash,
		credential.FailedAttemptCount,
		nullTime(credential.LockoutUntil),
	)

	return r.execError(ctx, "*credentialRepository.Save", credential.PrincipalID, err)
}

// SetPasswordHash installs a new password hash, creating the side row when
// it does not exist yet.
func (r *credentialRepository) SetPasswordHash(ctx context.Context, principalID, hash string) error {
	_, err := r.db.conn(ctx).ExecContext(ctx, setPasswordHash, principalID, hash)

	return r.execError(ctx, "*credentialRepository.SetPasswordHash", principalID, err)
}

// RecordFailedAttempt increments the failed-attempt counter in one
// statement. Reaching threshold resets the counter and sets the lockout.
func (r *credentialRepository) RecordFailedAttempt(ctx context.Context, principalID string, threshold int, lockoutUntil time.Time) (*models.Credential, error) {
	row := r.db.conn(ctx).QueryRowContext(ctx, recordFailedAttempt, principalID, threshold, lockoutUntil.UTC())

	credential, err := scanCredential(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMissingPrincipal
		}
		return nil, r.execError(ctx, "*credentialRepository.RecordFailedAttempt", principalID, err)
	}

	return credential, nil
}

func (r *credentialRepository) ResetFailedAttempts(ctx context.Context, principalID string) error {
	_, err := r.db.conn(ctx).ExecContext(ctx, resetFailedAttempts, principalID)

	return r.execError(ctx, "*credentialRepository.ResetFailedAttempts", principalID, err)
}

func (r *credentialRepository) SetLockoutEnd(ctx context.Context, principalID string, end time.Time) error {
	_, err := r.db.conn(ctx).ExecContext(ctx, setLockoutEnd, principalID, end.UTC())

	return r.execError(ctx, "*credentialRepository.SetLockoutEnd", principalID, err)
}

func (r *credentialRepository) CreateCredential(context.Context, models.Credential) error {
	return ErrUnsupported
}

func (r *credentialRepository) DeleteCredential(context.Context, string) error {
	return ErrUnsupported
}

func (r *credentialRepository) SetUserName(context.Context, string, string) error {
	return ErrUnsupported
}

// execError maps a statement error: a foreign key violation means the
// principal does not exist.
func (r *credentialRepository) execError(ctx context.Context, funcName, principalID string, err error) error {
	if err == nil {
		return nil
	}

	log := logger.FromContext(ctx)

	switch postgresError(err) {
	case pgerrcode.ForeignKeyViolation:
		log.Warn().Str("func", funcName).Str("principal_id", principalID).Msg("credential write for missing principal")
		return ErrMissingPrincipal
	default:
		log.Err(err).Str("func", funcName).Str("principal_id", principalID).Msg("error writing credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func scanCredential(row *sql.Row) (*models.Credential, error) {
	var (
		credential   models.Credential
		lockoutUntil sql.NullTime
	)

	if err := row.Scan(
		&credential.PrincipalID,
		&credential.UserName,
		&credential.PasswordHash,
		&credential.FailedAttemptCount,
		&lockoutUntil,
	); err != nil {
		return nil, err
	}

	if lockoutUntil.Valid {
		t := lockoutUntil.Time.UTC()
		credential.LockoutUntil = &t
	}
	credential.LockoutEnabled = true

	return &credential, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}
