package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

const (
	envServerAddress = "SERVER_ADDRESS"
	envBaseURL       = "BASE_URL"
	envDatabaseDSN   = "DATABASE_DSN"
	envSweepInterval = "SWEEP_INTERVAL"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultBaseURL       = "http://localhost:8080"
	defaultDatabaseDSN   = ""
	defaultSweepInterval = time.Minute
)

type Config struct {
	ServerAddress string
	BaseURL       string
	DatabaseDSN   string // пустой DSN - работаем на inmemory хранилище
	SweepInterval time.Duration
}

func NewConfig() *Config {
	cfg := &Config{}

	// Initialize with defaults
	*cfg = Config{
		ServerAddress: defaultServerAddress,
		BaseURL:       defaultBaseURL,
		DatabaseDSN:   defaultDatabaseDSN,
		SweepInterval: defaultSweepInterval,
	}

	// Parse flags
	flag.StringVar(&cfg.ServerAddress, "server-address", cfg.ServerAddress, "Server address")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Base URL")
	flag.StringVar(&cfg.DatabaseDSN, "database-dsn", cfg.DatabaseDSN, "Database DSN")
	flag.DurationVar(&cfg.SweepInterval, "sweep-interval", cfg.SweepInterval, "Expired link sweep interval")
	flag.Parse()

	// Apply environment variables
	cfg.applyEnv(envServerAddress, &cfg.ServerAddress)
	cfg.applyEnv(envBaseURL, &cfg.BaseURL)
	cfg.applyEnv(envDatabaseDSN, &cfg.DatabaseDSN)
	cfg.applyEnvDuration(envSweepInterval, &cfg.SweepInterval)

	// Final setup
	cfg.normalizeServerAddress()
	cfg.normalizeSweepInterval()

	return cfg
}

func (c *Config) applyEnv(key string, target *string) {
	if val, ok := os.LookupEnv(key); ok {
		*target = val
	}
}

func (c *Config) applyEnvDuration(key string, target *time.Duration) {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			*target = d
		}
	}
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}

func (c *Config) normalizeSweepInterval() {
	if c.SweepInterval <= 0 {
		c.SweepInterval = defaultSweepInterval
	}
}
