package handler

import (
	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/handler/http"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/metrics"
	"github.com/MKhiriev/go-forms-auth/internal/service"
	"github.com/MKhiriev/go-forms-auth/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, transactor store.Transactor, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, transactor, metrics, cfg, logger),
	}, nil
}
