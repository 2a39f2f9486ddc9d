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

	assert.Equal(t, "http://127.0.0.1:8000", c.APIBaseURL)
	assert.Equal(t, "roomatch.db", c.DatabasePath)
	assert.Equal(t, "roomatch.log", c.LogFilePath)
	assert.Equal(t, 4*time.Second, c.ToastDuration)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	orig := os.Args
	os.Args = []string{"cmd"}
	t.Cleanup(func() { os.Args = orig })

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000", cfg.APIBaseURL)
	assert.Equal(t, "roomatch.db", cfg.DatabasePath)
}
