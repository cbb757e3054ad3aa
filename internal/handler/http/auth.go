// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	request, err := decodeCommand[models.LoginRequest](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.execute(w, r, func(ctx context.Context) (any, error) {
		return h.services.AuthenticationService.Login(ctx, request.UserName, request.Password, request.PersistCookie)
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, func(ctx context.Context) (any, error) {
		return nil, h.services.AuthenticationService.Logout(ctx)
	})
}

func (h *Handler) setPassword(w http.ResponseWriter, r *http.Request) {
	request, err := decodeCommand[models.SetPasswordRequest](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.execute(w, r, func(ctx context.Context) (any, error) {
		return nil, h.services.AuthenticationService.SetPassword(ctx, request.UserName, request.Password, request.IgnorePasswordStrengthPolicy)
	})
}

// changeMyPassword always acts on the authenticated caller; a user name in
// the body is ignored.
func (h *Handler) changeMyPassword(w http.ResponseWriter, r *http.Request) {
	request, err := decodeCommand[models.ChangeMyPasswordRequest](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	caller, _ := utils.GetCallerFromContext(r.Context())
	h.execute(w, r, func(ctx context.Context) (any, error) {
		return h.services.AuthenticationService.ChangeMyPassword(ctx, caller.UserName, request.OldPassword, request.NewPassword)
	})
}

func (h *Handler) unlockUser(w http.ResponseWriter, r *http.Request) {
	request, err := decodeCommand[models.UnlockUserRequest](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.execute(w, r, func(ctx context.Context) (any, error) {
		return nil, h.services.AuthenticationService.UnlockUser(ctx, request.UserName)
	})
}

func (h *Handler) generatePasswordResetToken(w http.ResponseWriter, r *http.Request) {
	request, err := decodeCommand[models.GeneratePasswordResetTokenRequest](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.execute(w, r, func(ctx context.Context) (any, error) {
		return h.services.AuthenticationService.GeneratePasswordResetToken(ctx, request.UserName)
	})
}

func (h *Handler) sendPasswordResetToken(w http.ResponseWriter, r *http.Request) {
	request, err := decodeCommand[models.SendPasswordResetTokenRequest](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.execute(w, r, func(ctx context.Context) (any, error) {
		return nil, h.services.AuthenticationService.SendPasswordResetToken(ctx, request.UserName, request.AdditionalClientInfo)
	})
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	request, err := decodeCommand[models.ResetPasswordRequest](r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.execute(w, r, func(ctx context.Context) (any, error) {
		return h.services.AuthenticationService.ResetPassword(ctx, request.UserName, request.NewPassword, request.PasswordResetToken)
	})
}

// execute runs command inside one transaction scope and writes its result
// as JSON. A nil result is written as an empty 200 response.
func (h *Handler) execute(w http.ResponseWriter, r *http.Request, command func(ctx context.Context) (any, error)) {
	var result any
	err := h.transactor.WithinTransaction(r.Context(), func(ctx context.Context) error {
		var err error
		result, err = command(ctx)
		return err
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if result == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// decodeCommand reads the JSON body of a command. An absent or null body is
// rejected.
func decodeCommand[T any](r *http.Request) (T, error) {
	var request T

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return request, errInvalidJSON
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return request, errNoParameters
	}

	if err = json.Unmarshal(body, &request); err != nil {
		return request, errInvalidJSON
	}
	return request, nil
}
