package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/roomatch/roomatch-cli/internal/flagx"
	"github.com/roomatch/roomatch-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "4s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL    string         `json:"api_base_url"`
	DatabasePath  string         `json:"database_path"`
	LogFilePath   string         `json:"log_file_path"`
	ToastDuration timex.Duration `json:"toast_duration"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Only fields present in the file override the current values. Panics on
// read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogFilePath != "" {
		cfg.LogFilePath = jc.LogFilePath
	}
	if jc.ToastDuration.Duration != 0 {
		cfg.ToastDuration = time.Duration(jc.ToastDuration.Duration)
	}
}
