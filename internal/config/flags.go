package config

import (
	"flag"
	"time"
)

// ParseFlags parses the command-line configuration flags.
//
// Flags:
//
//	-a server base URL
//	-d local database path (SQLite)
//	-c/-config json file path with configs
//	-request-timeout per-call request timeout (e.g., "30s")
//	-sync-interval background sync interval (e.g., "5m")
//	-page-size full-sync page size
//	-push-batch maximum edits per push request
//	-sync-workers maximum concurrent deck syncs
func ParseFlags() *StructuredConfig {
	var serverURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var pageSize int
	var pushBatch int
	var syncWorkers int

	flag.StringVar(&serverURL, "a", "", "Server base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.IntVar(&pageSize, "page-size", 0, "Full-sync page size")
	flag.IntVar(&pushBatch, "push-batch", 0, "Maximum edits per push request")
	flag.IntVar(&syncWorkers, "sync-workers", 0, "Maximum concurrent deck syncs")
	flag.Parse()

	cfg := &StructuredConfig{JSONFilePath: jsonConfigPath}
	cfg.Adapter.ServerURL = serverURL
	cfg.Adapter.RequestTimeout = requestTimeout
	cfg.Storage.DB.DSN = databaseDSN
	cfg.Sync.Interval = syncInterval
	cfg.Sync.PageSize = pageSize
	cfg.Sync.PushBatchSize = pushBatch
	cfg.Sync.MaxWorkers = syncWorkers

	return cfg
}
