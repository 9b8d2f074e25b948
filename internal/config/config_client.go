package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// UploadTimeout is the extended timeout applied to photo uploads.
	UploadTimeout time.Duration
}

// ClientDB contains local database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path holding the pending-upload table.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshThrottle is the minimum gap between background reconciles.
	RefreshThrottle time.Duration
}

// ClientConfig is the client-side view assembled from [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client config view: it loads the
// merged structured configuration and maps only the fields the client
// runtime needs.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			UploadTimeout:  cfg.Adapter.UploadTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshThrottle: cfg.Workers.RefreshThrottle},
	}

	return clientCfg, clientCfg.validate()
}
