package http

import (
	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/metrics"
	"github.com/MKhiriev/go-forms-auth/internal/service"
	"github.com/MKhiriev/go-forms-auth/internal/store"
)

type Handler struct {
	services   *service.Services
	transactor store.Transactor
	metrics    *metrics.Metrics

	cfg     config.Server
	limiter *ipRateLimiter

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. metrics may be nil, in which case
// /metrics answers 404 and requests are not instrumented.
func NewHandler(services *service.Services, transactor store.Transactor, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		transactor: transactor,
		metrics:    metrics,
		cfg:        cfg,
		limiter:    newIPRateLimiter(cfg.RateLimit),
		logger:     logger,
	}
}
