// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package config

import (
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for decksync.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote endpoint address and request timeout used by
	// the HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds scheduler and paging knobs for the sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the outbound transport.
type Adapter struct {
	// ServerURL is the base URL of the deck server API.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the per-call timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local database settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`

	// MediaDir is the directory for synced media file content; only metadata
	// lives in the database. Defaults to "media" next to the database file.
	// Env: STORAGE_MEDIA_DIR
	MediaDir string `env:"MEDIA_DIR"`

	// TokenPath is the JSON file holding the persisted token pair. Defaults
	// to "tokens.json" next to the database file.
	// Env: STORAGE_TOKEN_PATH
	TokenPath string `env:"TOKEN_PATH"`
}

// DB contains the SQLite connection settings for the local card projection.
type DB struct {
	// DSN is the SQLite file path (or connection string).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync groups the sync engine's tunables.
type Sync struct {
	// Interval is how often each scheduled deck becomes due.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// PageSize is the offset/limit page size requested during full sync and
	// the batch cap hinted to the incremental feed. The server may cap it.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// PushBatchSize is the maximum number of queued edits submitted in one
	// push request; larger backlogs are split across requests.
	// Env: SYNC_PUSH_BATCH_SIZE
	PushBatchSize int `env:"PUSH_BATCH_SIZE"`

	// MaxWorkers bounds how many decks may sync concurrently.
	// Env: SYNC_MAX_WORKERS
	MaxWorkers int `env:"MAX_WORKERS"`

	// MaxRetries bounds transport retries within one cycle before the cycle
	// reports failed-backoff.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// ProtectedFields lists field names excluded from inbound overwrites and
	// ordinary outbound pushes across every deck.
	// Env: SYNC_PROTECTED_FIELDS (comma-separated)
	ProtectedFields []string `env:"PROTECTED_FIELDS" envSeparator:","`

	// Decks lists deck IDs scheduled at startup. Decks may also be scheduled
	// at runtime through the scheduler API.
	// Env: SYNC_DECKS (comma-separated)
	Decks []string `env:"DECKS" envSeparator:","`
}

// ClientConfig is the validated view handed to the client runtime.
type ClientConfig struct {
	Adapter Adapter
	Storage Storage
	Sync    Sync
}

// GetClientConfig builds and validates the client configuration. Flags take
// precedence over environment variables; the JSON file fills remaining gaps,
// and hard defaults cover whatever is still unset.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		Storage: cfg.Storage,
		Sync:    cfg.Sync,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 30 * time.Second
	}
	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = 5 * time.Minute
	}
	if cfg.Sync.PageSize == 0 {
		cfg.Sync.PageSize = 1000
	}
	if cfg.Sync.PushBatchSize == 0 {
		cfg.Sync.PushBatchSize = 500
	}
	if cfg.Sync.MaxWorkers == 0 {
		cfg.Sync.MaxWorkers = 4
	}
	if cfg.Sync.MaxRetries == 0 {
		cfg.Sync.MaxRetries = 3
	}
	if cfg.Storage.MediaDir == "" {
		cfg.Storage.MediaDir = filepath.Join(filepath.Dir(cfg.Storage.DB.DSN), "media")
	}
	if cfg.Storage.TokenPath == "" {
		cfg.Storage.TokenPath = filepath.Join(filepath.Dir(cfg.Storage.DB.DSN), "tokens.json")
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Sync.PageSize < 1 || cfg.Sync.PushBatchSize < 1 || cfg.Sync.MaxWorkers < 1 {
		return ErrInvalidSyncConfigs
	}
	return nil
}
