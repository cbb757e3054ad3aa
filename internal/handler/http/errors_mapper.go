package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/service"
	"github.com/MKhiriev/go-forms-auth/internal/store"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

const internalServerErrorMessage = "Internal server error occurred. See server log for more information."

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrRateLimited:                http.StatusTooManyRequests,

	service.ErrInvalidSession:    http.StatusUnauthorized,
	service.ErrSessionRevoked:    http.StatusUnauthorized,
	service.ErrNoSessionWriter:   http.StatusInternalServerError,
	service.ErrDeliveryFailed:    http.StatusInternalServerError,
	service.ErrDeliveryAmbiguous: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusFromError classifies err by the service error taxonomy first and by
// the sentinel map second. Anything unrecognised is a 500.
func statusFromError(err error) int {
	var (
		userErr   *service.UserError
		clientErr *service.ClientError
		authErr   *service.AuthorizationError
		fwErr     *service.FrameworkError
	)
	switch {
	case errors.As(err, &userErr), errors.As(err, &clientErr):
		return http.StatusBadRequest
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &fwErr):
		return http.StatusInternalServerError
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// userMessage returns the text that may be shown to the end user. Internal
// failures never leak their details.
func userMessage(err error, status int) string {
	var (
		userErr   *service.UserError
		clientErr *service.ClientError
		authErr   *service.AuthorizationError
	)
	switch {
	case status >= http.StatusInternalServerError:
		return internalServerErrorMessage
	case errors.As(err, &userErr):
		return userErr.Message
	case errors.As(err, &clientErr):
		return clientErr.Message
	case errors.As(err, &authErr):
		return authErr.Error()
	}
	return err.Error()
}

// writeError logs err and writes the {"UserMessage": ...} body.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{UserMessage: userMessage(err, status)}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
