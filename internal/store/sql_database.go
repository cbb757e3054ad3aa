// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/migrations"
)

// maxTransactionAttempts bounds how many times a transaction whose error is
// classified [Retryable] is re-run.
const maxTransactionAttempts = 3

// DB wraps the shared connection pool together with the error classifier
// used to decide whether a failed transaction may be retried.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened connection pool.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// querier is the subset of *sql.DB and *sql.Tx used by the repositories.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txCtxKey struct{}

// txState is the open transaction carried by a context. hooks run once,
// after the outermost commit.
type txState struct {
	tx         *sql.Tx
	savepoints int
	hooks      []func(ctx context.Context) error
}

func txFromContext(ctx context.Context) (*txState, bool) {
	state, ok := ctx.Value(txCtxKey{}).(*txState)
	return state, ok
}

// conn returns the transaction carried by ctx, or the pool when there is none.
func (db *DB) conn(ctx context.Context) querier {
	if state, ok := txFromContext(ctx); ok {
		return state.tx
	}
	return db.DB
}

// AfterCommit defers fn until the transaction carried by ctx has committed.
// A transaction that rolls back, or a savepoint rolled back to, drops the
// hooks registered inside it, and a retried transaction registers them
// afresh. Without a transaction fn runs immediately.
//
// Hook errors are returned by [DB.WithinTransaction] but never cause a
// retry: the data is already committed.
func AfterCommit(ctx context.Context, fn func(ctx context.Context) error) error {
	state, ok := txFromContext(ctx)
	if !ok {
		return fn(ctx)
	}

	state.hooks = append(state.hooks, fn)
	return nil
}

// WithinTransaction runs fn inside a database transaction carried by the
// context passed to fn. The transaction commits when fn returns nil and
// rolls back when fn returns an error or panics.
//
// A call made while a transaction is already open runs fn under a
// SAVEPOINT instead: an error from fn rolls back to the savepoint only, so
// the outer transaction stays usable.
//
// When fn fails with an error classified as [Retryable] (serialization
// failure, deadlock, dropped connection) the whole transaction is re-run,
// at most maxTransactionAttempts times.
func (db *DB) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if state, ok := txFromContext(ctx); ok {
		return db.runSavepoint(ctx, state, fn)
	}

	var err error
	for attempt := 1; attempt <= maxTransactionAttempts; attempt++ {
		var committed bool
		committed, err = db.runTransaction(ctx, fn)
		if err == nil || committed || db.errorClassificator == nil ||
			db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.WithinTransaction").
			Int("attempt", attempt).
			Msg("retrying transaction after retryable error")
	}

	return err
}

func (db *DB) runTransaction(ctx context.Context, fn func(ctx context.Context) error) (committed bool, err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	state := &txState{tx: tx}
	if fnErr := fn(context.WithValue(ctx, txCtxKey{}, state)); fnErr != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", "*DB.WithinTransaction").Msg("failed to rollback transaction")
		}
		return false, fnErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*DB.WithinTransaction").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	for _, hook := range state.hooks {
		if err = hook(ctx); err != nil {
			return true, err
		}
	}

	return true, nil
}

func (db *DB) runSavepoint(ctx context.Context, state *txState, fn func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	state.savepoints++
	name := fmt.Sprintf("sp_%d", state.savepoints)
	hooks := len(state.hooks)

	if _, err := state.tx.ExecContext(ctx, "SAVEPOINT "+name); err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Str("savepoint", name).Msg("failed to create savepoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if fnErr := fn(ctx); fnErr != nil {
		state.hooks = state.hooks[:hooks]
		if _, rbErr := state.tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+name); rbErr != nil {
			log.Err(rbErr).Str("func", "*DB.WithinTransaction").Str("savepoint", name).Msg("failed to rollback to savepoint")
		}
		return fnErr
	}

	if _, err := state.tx.ExecContext(ctx, "RELEASE SAVEPOINT "+name); err != nil {
		log.Err(err).Str("func", "*DB.WithinTransaction").Str("savepoint", name).Msg("failed to release savepoint")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
