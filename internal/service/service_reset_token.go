// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

type resetTokenService struct {
	signKey  string
	issuer   string
	duration time.Duration

	clock       utils.Clock
	idGenerator utils.IDGenerator
	logger      *logger.Logger
}

// NewResetTokenService issues password reset tokens as signed JWTs.
//
// A token is bound to the principal id and to a stamp derived from the
// password hash current at issuance, so installing any new password
// invalidates every token issued before it. Reset tokens are signed with a
// key derived from the session key and never verify as sessions.
func NewResetTokenService(cfg config.App, clock utils.Clock, idGenerator utils.IDGenerator, logger *logger.Logger) ResetTokenService {
	return &resetTokenService{
		signKey:     resetTokenSignKey(cfg.TokenSignKey),
		issuer:      cfg.TokenIssuer,
		duration:    cfg.ResetTokenDuration,
		clock:       clock,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

func (s *resetTokenService) Generate(ctx context.Context, credential models.Credential) (string, error) {
	now := s.clock.Now()

	claims := models.ResetTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   credential.PrincipalID,
			ID:        s.idGenerator.Generate(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
		UserName: credential.UserName,
		Purpose:  models.ResetTokenPurpose,
		Stamp:    s.stamp(credential),
	}

	token, err := utils.SignClaims(claims, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*resetTokenService.Generate").Msg("error signing reset token")
		return "", fmt.Errorf("sign reset token: %w", err)
	}

	return token, nil
}

func (s *resetTokenService) Validate(ctx context.Context, credential models.Credential, token string) error {
	log := logger.FromContext(ctx)

	var claims models.ResetTokenClaims
	if _, err := utils.ParseClaims(token, &claims, s.signKey, s.issuer, jwt.WithTimeFunc(s.clock.Now)); err != nil {
		log.Debug().Err(err).Str("func", "*resetTokenService.Validate").Msg("reset token rejected")
		return ErrInvalidResetToken
	}

	if claims.Purpose != models.ResetTokenPurpose ||
		claims.Subject != credential.PrincipalID ||
		!utils.EqualHashes(claims.Stamp, s.stamp(credential)) {
		log.Debug().Str("func", "*resetTokenService.Validate").
			Str("principal_id", credential.PrincipalID).
			Msg("reset token does not match the principal or its password")
		return ErrInvalidResetToken
	}

	return nil
}

func (s *resetTokenService) stamp(credential models.Credential) string {
	return utils.HashString(credential.PrincipalID+":"+credential.PasswordHash, s.signKey)
}

func resetTokenSignKey(sessionSignKey string) string {
	if sessionSignKey == "" {
		return ""
	}
	return utils.HashString(models.ResetTokenPurpose, sessionSignKey)
}
