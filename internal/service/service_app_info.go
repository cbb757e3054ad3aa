package service

import (
	"context"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/models"
)

// appInfoService answers /api/version/ with a version resolved once at
// startup.
type appInfoService struct {
	version string
}

// NewAppInfoService picks the reported version. An explicitly configured
// version wins; the "N/A" default gives way to the version linked into the
// binary when there is one. An empty configured version is rejected.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	version := cfg.Version
	source := "config"
	if version == config.DefaultVersion && build.Known() {
		version = build.Version()
		source = "build"
	}

	logger.Info().Str("version", version).
		Str("source", source).
		Str("commit", build.Commit()).
		Msg("app version resolved")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
