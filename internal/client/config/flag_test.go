package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "http://10.0.0.5:9000", "-d", "/tmp/x.db", "-l", "/tmp/x.log"},
			expected: &Config{
				APIBaseURL:    "http://10.0.0.5:9000",
				DatabasePath:  "/tmp/x.db",
				LogFilePath:   "/tmp/x.log",
				ToastDuration: 4 * time.Second,
			},
		},
		{
			name: "no flags keeps defaults",
			args: []string{"cmd"},
			expected: &Config{
				APIBaseURL:    "http://127.0.0.1:8000",
				DatabasePath:  "roomatch.db",
				LogFilePath:   "roomatch.log",
				ToastDuration: 4 * time.Second,
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"cmd", "-verbose", "-a", "http://10.0.0.5:9000"},
			expected: &Config{
				APIBaseURL:    "http://10.0.0.5:9000",
				DatabasePath:  "roomatch.db",
				LogFilePath:   "roomatch.log",
				ToastDuration: 4 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := os.Args
			os.Args = tt.args
			t.Cleanup(func() { os.Args = orig })

			config := &Config{}
			config.LoadDefaults()

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(config, tt.expected))
		})
	}
}
