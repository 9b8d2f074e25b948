package config

import "time"

// Defaults applied after all sources have been merged. Only zero-valued
// fields are touched, so any explicit setting wins.
const (
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultUploadTimeout   = 2 * time.Minute
	defaultRefreshThrottle = 5 * time.Second
	defaultBlobRegion      = "auto"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Blob.Region == "" {
		cfg.Storage.Blob.Region = defaultBlobRegion
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.UploadTimeout == 0 {
		cfg.Adapter.UploadTimeout = defaultUploadTimeout
	}
	if cfg.Workers.RefreshThrottle == 0 {
		cfg.Workers.RefreshThrottle = defaultRefreshThrottle
	}
}

// validate checks the merged server config. The blob section must name
// exactly one backend: an S3-compatible endpoint or a local directory.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.Blob.Endpoint != "" && cfg.Storage.Blob.LocalDir != "" {
		return ErrInvalidBlobConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
