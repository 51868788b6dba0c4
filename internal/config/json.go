package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
	"github.com/dmitrijs2005/notekeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	DatabasePath string         `json:"database_path"`
	ImageDir     string         `json:"image_dir"`
	LogLevel     string         `json:"log_level"`
	Locale       string         `json:"locale"`
	BusyTimeout  timex.Duration `json:"busy_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without such a flag it does nothing. Read or decode errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.ImageDir, jc.ImageDir)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.Locale, jc.Locale)
	if jc.BusyTimeout.Duration > 0 {
		cfg.BusyTimeout = jc.BusyTimeout.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
