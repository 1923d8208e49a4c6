package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/internal/config"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
)

// appInfoService reports the version string chosen at startup.
type appInfoService struct {
	version string
}

// NewAppInfoService picks the reported version:
//   - a configured version other than [config.DefaultVersion] (APP_VERSION, flag or JSON);
//   - otherwise the linker-injected build version, if any;
//   - otherwise the configured default.
//
// Returns [ErrVersionIsNotSpecified] when all of them are empty.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version, source := cfg.Version, "config"
	if (version == "" || version == config.DefaultVersion) && buildInfo.BuildVersion() != "" {
		version, source = buildInfo.BuildVersion(), "build"
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("func", "NewAppInfoService").Str("version", version).Str("source", source).Msg("app version selected")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
