package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/store"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

// SessionWriter persists or clears a session on the transport the command
// arrived on. The HTTP layer writes every registered scheme (cookie and
// bearer header).
type SessionWriter interface {
	WriteSession(token models.Token, persistent bool)
	ClearSession()
}

type sessionWriterCtxKey struct{}

// WithSessionWriter returns a copy of ctx carrying w.
func WithSessionWriter(ctx context.Context, w SessionWriter) context.Context {
	return context.WithValue(ctx, sessionWriterCtxKey{}, w)
}

func sessionWriterFromContext(ctx context.Context) (SessionWriter, bool) {
	w, ok := ctx.Value(sessionWriterCtxKey{}).(SessionWriter)
	return w, ok && w != nil
}

type sessionManager struct {
	signKey  string
	issuer   string
	duration time.Duration

	revocations RevocationStore
	clock       utils.Clock
	idGenerator utils.IDGenerator
	logger      *logger.Logger
}

// NewSessionManager issues HS256 session tokens. Ended sessions are kept in
// revocations until their token would have expired.
func NewSessionManager(cfg config.App, revocations RevocationStore, clock utils.Clock, idGenerator utils.IDGenerator, logger *logger.Logger) SessionManager {
	return &sessionManager{
		signKey:     cfg.TokenSignKey,
		issuer:      cfg.TokenIssuer,
		duration:    cfg.SessionDuration,
		revocations: revocations,
		clock:       clock,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

func (m *sessionManager) SignIn(ctx context.Context, caller models.Caller, persistent bool) error {
	writer, ok := sessionWriterFromContext(ctx)
	if !ok {
		return ErrNoSessionWriter
	}

	token, err := utils.GenerateSessionToken(m.issuer, caller, m.idGenerator.Generate(), persistent, m.clock.Now(), m.duration, m.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionManager.SignIn").Msg("error generating session token")
		return fmt.Errorf("generate session token: %w", err)
	}

	// the response must not carry a session whose transaction rolled back
	return store.AfterCommit(ctx, func(context.Context) error {
		writer.WriteSession(token, persistent)
		return nil
	})
}

func (m *sessionManager) SignOut(ctx context.Context) error {
	var errs []error

	if caller, ok := utils.GetCallerFromContext(ctx); ok && caller.SessionID != "" {
		if err := m.revocations.Revoke(ctx, caller.SessionID); err != nil {
			errs = append(errs, fmt.Errorf("revoke session: %w", err))
		}
	}

	writer, ok := sessionWriterFromContext(ctx)
	if !ok {
		errs = append(errs, ErrNoSessionWriter)
	} else {
		errs = append(errs, store.AfterCommit(ctx, func(context.Context) error {
			writer.ClearSession()
			return nil
		}))
	}

	return errors.Join(errs...)
}

func (m *sessionManager) Authenticate(ctx context.Context, tokenString string) (models.Caller, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseSessionToken(tokenString, m.signKey, m.issuer, jwt.WithTimeFunc(m.clock.Now))
	if err != nil {
		log.Debug().Err(err).Str("func", "*sessionManager.Authenticate").Msg("session token rejected")
		return models.Caller{}, ErrInvalidSession
	}

	caller := token.Caller()
	revoked, err := m.revocations.IsRevoked(ctx, caller.SessionID)
	if err != nil {
		log.Err(err).Str("func", "*sessionManager.Authenticate").Msg("error checking session revocation")
		return models.Caller{}, &FrameworkError{Message: "cannot check session revocation", Err: err}
	}
	if revoked {
		return models.Caller{}, ErrSessionRevoked
	}

	return caller, nil
}
