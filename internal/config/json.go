package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [StructuredConfig] with JSON tags and string durations.
type jsonConfig struct {
	Adapter struct {
		ServerURL      string   `json:"server_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		Interval      Duration `json:"interval"`
		PageSize      int      `json:"page_size"`
		PushBatchSize int      `json:"push_batch_size"`
		MaxWorkers    int      `json:"max_workers"`
		MaxRetries    int      `json:"max_retries"`
	} `json:"sync,omitempty"`
}

// Duration wraps time.Duration so JSON configs can use "30s"-style strings.
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts either a duration string ("5m") or nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, perr := time.ParseDuration(asString)
		if perr != nil {
			return fmt.Errorf("invalid duration %q: %w", asString, perr)
		}
		d.Duration = parsed
		return nil
	}

	var asInt int64
	if err := json.Unmarshal(data, &asInt); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	d.Duration = time.Duration(asInt)
	return nil
}

func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read json config: %w", err)
	}

	var jc jsonConfig
	if err = json.Unmarshal(data, &jc); err != nil {
		return nil, fmt.Errorf("decode json config: %w", err)
	}

	cfg := &StructuredConfig{}
	cfg.Adapter.ServerURL = jc.Adapter.ServerURL
	cfg.Adapter.RequestTimeout = jc.Adapter.RequestTimeout.Duration
	cfg.Storage.DB.DSN = jc.Storage.DB.DSN
	cfg.Sync.Interval = jc.Sync.Interval.Duration
	cfg.Sync.PageSize = jc.Sync.PageSize
	cfg.Sync.PushBatchSize = jc.Sync.PushBatchSize
	cfg.Sync.MaxWorkers = jc.Sync.MaxWorkers
	cfg.Sync.MaxRetries = jc.Sync.MaxRetries

	return cfg, nil
}
