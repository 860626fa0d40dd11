package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	TokenSecret     string
	ShutdownTimeout time.Duration

	// Stale pending order reaper. A TTL of zero disables it.
	ReaperInterval  time.Duration
	PendingOrderTTL time.Duration
	ReaperBatch     int
	WorkerPoolSize  int

	// RestockOnCancel returns reserved stock when a pending order is
	// cancelled. Off by default: cancellation does not restock.
	RestockOnCancel bool
}

const (
	defaultRunAddress      = ":8080"
	defaultTokenSecret     = "change-me-in-production"
	defaultShutdownTimeout = 10 * time.Second
	defaultReaperInterval  = time.Minute
	defaultReaperBatch     = 32
	defaultWorkerPoolSize  = 4
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:      getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:     getString(lookup, "DATABASE_URI", ""),
		TokenSecret:     getString(lookup, "TOKEN_SECRET", defaultTokenSecret),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		ReaperInterval:  getDuration(lookup, "REAPER_INTERVAL", defaultReaperInterval),
		PendingOrderTTL: getDuration(lookup, "PENDING_ORDER_TTL", 0),
		ReaperBatch:     getInt(lookup, "REAPER_BATCH", defaultReaperBatch),
		WorkerPoolSize:  getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		RestockOnCancel: getBool(lookup, "RESTOCK_ON_CANCEL", false),
	}

	fs := flag.NewFlagSet("saxmarket", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
		reaperIntervalStr  = cfg.ReaperInterval.String()
		pendingTTLStr      = cfg.PendingOrderTTL.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN (empty selects in-memory storage)")
	fs.StringVar(&cfg.TokenSecret, "token-secret", cfg.TokenSecret, "Secret for signing auth tokens")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.StringVar(&reaperIntervalStr, "reaper-interval", reaperIntervalStr, "Interval between stale order sweeps")
	fs.StringVar(&pendingTTLStr, "pending-ttl", pendingTTLStr, "Age after which pending orders are cancelled (0 disables)")
	fs.IntVar(&cfg.ReaperBatch, "reaper-batch", cfg.ReaperBatch, "Maximum orders per reaper sweep")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent reaper workers")
	fs.BoolVar(&cfg.RestockOnCancel, "restock-on-cancel", cfg.RestockOnCancel, "Return reserved stock when a pending order is cancelled")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.ReaperInterval, err = time.ParseDuration(reaperIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reaper interval: %w", err)
	}

	if cfg.PendingOrderTTL, err = time.ParseDuration(pendingTTLStr); err != nil {
		return nil, fmt.Errorf("invalid pending order TTL: %w", err)
	}

	if secretFile, ok := lookup("TOKEN_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}
		cfg.TokenSecret = string(content)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.ReaperInterval <= 0 {
		cfg.ReaperInterval = defaultReaperInterval
	}

	if cfg.PendingOrderTTL < 0 {
		cfg.PendingOrderTTL = 0
	}

	if cfg.ReaperBatch <= 0 {
		cfg.ReaperBatch = defaultReaperBatch
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getBool(lookup envLookup, key string, def bool) bool {
	if v, ok := lookup(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
