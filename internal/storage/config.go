package storage

import (
	"github.com/studydesk/go-services/internal/config"
)

// New picks the artifact backend: MinIO when an endpoint is configured,
// otherwise the local artifact directory.
func New(cfg *config.Config) (Store, error) {
	if cfg.MinIO.Endpoint != "" {
		return NewMinIOStorage(&MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			UseSSL:    cfg.MinIO.UseSSL,
			Bucket:    cfg.MinIO.Bucket,
		})
	}
	return NewLocalStorage(cfg.Artifacts.Dir)
}
