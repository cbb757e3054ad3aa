package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-forms-auth/internal/service"
	"github.com/MKhiriev/go-forms-auth/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"user error", service.NewUserError("bad"), http.StatusBadRequest},
		{"wrapped user error", fmt.Errorf("cmd: %w", service.NewUserError("bad")), http.StatusBadRequest},
		{"client error", errNoParameters, http.StatusBadRequest},
		{"authorization error", &service.AuthorizationError{Resource: "r", Right: "x", Caller: "u"}, http.StatusUnauthorized},
		{"framework error", &service.FrameworkError{Message: "m", Err: service.ErrDeliveryNotEnabled}, http.StatusInternalServerError},
		{"invalid session", service.ErrInvalidSession, http.StatusUnauthorized},
		{"revoked session", service.ErrSessionRevoked, http.StatusUnauthorized},
		{"no authorization header", ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
		{"rate limited", ErrRateLimited, http.StatusTooManyRequests},
		{"store failure", fmt.Errorf("%w: conn reset", store.ErrExecutingQuery), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestUserMessage(t *testing.T) {
	authErr := &service.AuthorizationError{Resource: "FormsAuth.AuthenticationService", Right: "UnlockUser", Caller: "u2"}

	assert.Equal(t, "bad", userMessage(service.NewUserError("bad"), http.StatusBadRequest))
	assert.Equal(t, errNoParameters.Message, userMessage(errNoParameters, http.StatusBadRequest))
	assert.Equal(t, authErr.Error(), userMessage(authErr, http.StatusUnauthorized))
	assert.Equal(t, internalServerErrorMessage, userMessage(errors.New("pq: password=secret"), http.StatusInternalServerError))
}

func TestWriteError_JSONBody(t *testing.T) {
	h := newTestHandler(t)
	rec := httptest.NewRecorder()

	h.writeError(rec, httptest.NewRequest(http.MethodPost, "/", nil), service.NewUserError("The password may not be empty."))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"UserMessage":"The password may not be empty."}`, rec.Body.String())
}
