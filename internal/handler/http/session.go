package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-forms-auth/internal/service"
	"github.com/MKhiriev/go-forms-auth/models"
)

const bearerScheme = "Bearer"

// sessionWriter writes a session through both registered schemes: the
// session cookie and the "Authorization" response header.
type sessionWriter struct {
	w http.ResponseWriter

	cookieName   string
	secureCookie bool
}

func (s *sessionWriter) WriteSession(token models.Token, persistent bool) {
	cookie := &http.Cookie{
		Name:     s.cookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if persistent && token.Claims.ExpiresAt != nil {
		cookie.Expires = token.Claims.ExpiresAt.Time
	}

	http.SetCookie(s.w, cookie)
	s.w.Header().Set("Authorization", bearerScheme+" "+token.SignedString)
}

func (s *sessionWriter) ClearSession() {
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	s.w.Header().Del("Authorization")
}

// withSession attaches a [service.SessionWriter] bound to the response so
// commands can sign the caller in or out.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &sessionWriter{
			w:            w,
			cookieName:   h.cfg.CookieName,
			secureCookie: h.cfg.SecureCookie,
		}
		ctx := service.WithSessionWriter(r.Context(), writer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
