package config

import (
	"flag"
	"os"

	"github.com/roomatch/roomatch-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the matching service (default from Config)
//	-d string   local database path (default from Config)
//	-l string   log file path (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the matching service")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local client database")
	fs.StringVar(&cfg.LogFilePath, "l", cfg.LogFilePath, "path to the log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
