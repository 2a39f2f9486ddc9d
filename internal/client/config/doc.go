// Package config loads runtime configuration for the roomatch client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the matching service (http://host:port)
//	-d string   path to the local client database
//	-l string   path to the log file
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "4s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000",
//	  "database_path": "roomatch.db",
//	  "log_file_path": "roomatch.log",
//	  "toast_duration": "4s"
//	}
//
// Note: This package does not read environment variables; use the JSON file
// or flags to configure values.
package config
