package config

import (
	"path/filepath"
	"time"
)

// Config holds runtime settings for the vidhub CLI.
type Config struct {
	APIBaseURL     string
	DataDir        string
	DatabaseFile   string
	RequestTimeout time.Duration
	LogLevel       string
	LogDev         bool
}

const (
	DefaultAPIBaseURL     = "http://localhost:4000/api/v1"
	DefaultDataDir        = ".vidhub"
	DefaultDatabaseFile   = "vidhub.db"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
)

// LogFile is the name of the log file inside DataDir.
const LogFile = "vidhub.log"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.DataDir = DefaultDataDir
	c.DatabaseFile = DefaultDatabaseFile
	c.RequestTimeout = DefaultRequestTimeout
	c.LogLevel = DefaultLogLevel
	c.LogDev = false
}

// DatabasePath joins DataDir and DatabaseFile unless DatabaseFile is
// already absolute.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.DatabaseFile) {
		return c.DatabaseFile
	}
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

func (c *Config) LogPath() string {
	return filepath.Join(c.DataDir, LogFile)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
