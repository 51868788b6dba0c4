package config

import "time"

// Config holds runtime settings for the NoteKeeper CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding the key-value store; ":memory:" keeps
//     everything in RAM for the lifetime of the process.
//   - ImageDir: directory that attached photos are copied into.
//   - LogLevel: debug, info, warn or error.
//   - Locale: BCP 47 tag used to order notes by title.
//   - BusyTimeout: how long SQLite waits on a locked database file.
type Config struct {
	DatabasePath string
	ImageDir     string
	LogLevel     string
	Locale       string
	BusyTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "notekeeper.db"
	c.ImageDir = "images"
	c.LogLevel = "warn"
	c.Locale = "en"
	c.BusyTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
