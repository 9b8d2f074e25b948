package config

import (
	"time"
)

// StructuredConfig is the top-level server configuration. It is populated by
// merging environment variables, command-line flags, and an optional JSON
// file (see GetStructuredConfig).
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational store and the
	// object store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Extractor holds the upstream text-generation API settings used for
	// ingredient extraction.
	Extractor Extractor `envPrefix:"EXTRACTOR_"`

	// Adapter holds the outbound transport settings used by the client
	// binary. Ignored by the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings used by the client binary.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of env and flag values when non-empty.
	// Env: CONFIG.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// App holds application-level settings.
type App struct {
	// Version is the semantic version string of the running binary.
	// Env: APP_VERSION.
	Version string `env:"VERSION" json:"version"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS.
	HTTPAddress string `env:"ADDRESS" json:"address"`

	// RequestTimeout bounds a single inbound request. Photo uploads are
	// exempt: their background work is detached from the request context.
	// Env: SERVER_REQUEST_TIMEOUT.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Storage groups the persistence backends.
type Storage struct {
	// DB holds relational database settings.
	DB DB `envPrefix:"DB_"`

	// Blob holds object storage settings.
	Blob Blob `envPrefix:"BLOB_"`
}

// DB holds relational database connection settings.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DATABASE_URI.
	DSN string `env:"DATABASE_URI" json:"database_uri"`
}

// Blob holds settings for the S3-compatible object store that keeps recipe
// images. When Endpoint is empty and LocalDir is set, a filesystem-backed
// store is used instead (dev and tests).
type Blob struct {
	// Endpoint is the S3-compatible endpoint URL (e.g. an R2 account URL).
	// Env: STORAGE_BLOB_ENDPOINT.
	Endpoint string `env:"ENDPOINT" json:"endpoint"`

	// Region passed to the SDK; "auto" for R2.
	// Env: STORAGE_BLOB_REGION.
	Region string `env:"REGION" json:"region"`

	// Bucket is the bucket name.
	// Env: STORAGE_BLOB_BUCKET.
	Bucket string `env:"BUCKET" json:"bucket"`

	// AccessKeyID / SecretAccessKey are the static credentials.
	// Env: STORAGE_BLOB_ACCESS_KEY_ID, STORAGE_BLOB_SECRET_ACCESS_KEY.
	AccessKeyID     string `env:"ACCESS_KEY_ID" json:"access_key_id"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY" json:"secret_access_key"`

	// LocalDir selects the filesystem store when no endpoint is set.
	// Env: STORAGE_BLOB_LOCAL_DIR.
	LocalDir string `env:"LOCAL_DIR" json:"local_dir"`
}

// Extractor holds upstream text-generation API settings.
type Extractor struct {
	// Endpoint is the prediction API base URL.
	// Env: EXTRACTOR_ENDPOINT.
	Endpoint string `env:"ENDPOINT" json:"endpoint"`

	// Token is the API token; when empty the extraction endpoint reports
	// the capability as disabled.
	// Env: EXTRACTOR_TOKEN.
	Token string `env:"TOKEN" json:"token"`

	// Model is the model identifier sent with each request.
	// Env: EXTRACTOR_MODEL.
	Model string `env:"MODEL" json:"model"`

	// RequestTimeout bounds one upstream call.
	// Env: EXTRACTOR_REQUEST_TIMEOUT.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Adapter holds outbound transport settings for the client.
type Adapter struct {
	// HTTPAddress is the server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS.
	HTTPAddress string `env:"ADDRESS" json:"address"`

	// RequestTimeout bounds ordinary field-update requests.
	// Env: ADAPTER_REQUEST_TIMEOUT.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`

	// UploadTimeout bounds photo uploads; these are expected to be slow and
	// get a much longer allowance than ordinary writes.
	// Env: ADAPTER_UPLOAD_TIMEOUT.
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT" json:"upload_timeout"`
}

// Workers holds client background job settings.
type Workers struct {
	// RefreshThrottle is the minimum gap between two background
	// reconciles triggered by visibility signals.
	// Env: WORKERS_REFRESH_THROTTLE.
	RefreshThrottle time.Duration `env:"REFRESH_THROTTLE" json:"refresh_throttle"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all sources in priority order (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
