package service

import (
	"context"

	"github.com/MKhiriev/go-auth-service/internal/logger"
)

type appInfoService struct {
	appVersion string
}

// NewAppInfoService returns an [AppInfoService] reporting version. An empty
// version is rejected.
func NewAppInfoService(version string, log *logger.Logger) (AppInfoService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("creating app info service")
	return &appInfoService{
		appVersion: version,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
