package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or contradictory.
var (
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, a missing server address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty local database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidBlobConfigs indicates contradictory object storage settings
	// (both an S3 endpoint and a local directory configured).
	ErrInvalidBlobConfigs = errors.New("invalid blob storage configuration")
)
