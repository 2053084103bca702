// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The decksync Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_SERVER_URL":      "https://decks.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",

		// Storage has a nested prefix: STORAGE_ + DB_
		"STORAGE_DB_DSN":     "/var/lib/decksync/decksync.db",
		"STORAGE_MEDIA_DIR":  "/var/lib/decksync/media",
		"STORAGE_TOKEN_PATH": "/var/lib/decksync/tokens.json",

		"SYNC_INTERVAL":         "5m",
		"SYNC_PAGE_SIZE":        "1000",
		"SYNC_PUSH_BATCH_SIZE":  "500",
		"SYNC_MAX_WORKERS":      "4",
		"SYNC_MAX_RETRIES":      "3",
		"SYNC_PROTECTED_FIELDS": "Notes,Mnemonic",
		"SYNC_DECKS":            "deck-1,deck-2",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "https://decks.example.com", cfg.Adapter.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/decksync/decksync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/decksync/media", cfg.Storage.MediaDir)
	assert.Equal(t, "/var/lib/decksync/tokens.json", cfg.Storage.TokenPath)

	assert.Equal(t, 5*time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 1000, cfg.Sync.PageSize)
	assert.Equal(t, 500, cfg.Sync.PushBatchSize)
	assert.Equal(t, 4, cfg.Sync.MaxWorkers)
	assert.Equal(t, 3, cfg.Sync.MaxRetries)
	assert.Equal(t, []string{"Notes", "Mnemonic"}, cfg.Sync.ProtectedFields)
	assert.Equal(t, []string{"deck-1", "deck-2"}, cfg.Sync.Decks)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	t.Setenv("ADAPTER_SERVER_URL", "https://decks.example.com")
	t.Setenv("SYNC_PAGE_SIZE", "200")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "https://decks.example.com", cfg.Adapter.ServerURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)

	assert.Empty(t, cfg.Storage.DB.DSN)

	assert.Equal(t, 200, cfg.Sync.PageSize)
	assert.Zero(t, cfg.Sync.PushBatchSize)
	assert.Empty(t, cfg.Sync.ProtectedFields)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	t.Setenv("SYNC_INTERVAL", "not-a-duration")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
