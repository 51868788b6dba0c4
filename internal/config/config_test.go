package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "notekeeper.db", c.DatabasePath)
	assert.Equal(t, "images", c.ImageDir)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "en", c.Locale)
	assert.Equal(t, 5*time.Second, c.BusyTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "notekeeper.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Second, cfg.BusyTimeout)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"database_path": "from-json.db",
		"locale":        "sv-SE",
	})
	os.Args = []string{"testbin", "-c", path, "-d", "from-flag.db"}

	cfg := LoadConfig()

	assert.Equal(t, "from-flag.db", cfg.DatabasePath)
	assert.Equal(t, "sv-SE", cfg.Locale)
	assert.Equal(t, "images", cfg.ImageDir)
}
