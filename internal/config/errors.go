package config

import "errors"

var (
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs: server url is required")
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: database dsn is required")
	ErrInvalidSyncConfigs    = errors.New("invalid sync configs: page size, push batch size and max workers must be positive")
)
