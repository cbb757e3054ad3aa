package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.metrics.Instrument)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	base := h.cfg.BaseRoute

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit, h.withSession)
		r.Post(base+"/login", h.login)
		r.Post(base+"/send-password-reset-token", h.sendPasswordResetToken)
		r.Post(base+"/reset-password", h.resetPassword)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.withSession)
		r.Post(base+"/logout", h.logout)
		r.Post(base+"/set-password", h.setPassword)
		r.Post(base+"/change-my-password", h.changeMyPassword)
		r.Post(base+"/unlock-user", h.unlockUser)
		r.Post(base+"/generate-password-reset-token", h.generatePasswordResetToken)
	})

	router.Get("/api/version/", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
