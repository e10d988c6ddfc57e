package config

import (
	"flag"
	"os"
	"time"

	"github.com/msurana/gemvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the catalog API
//	-p int      page size for list queries
//	-d int      debounce interval for filter changes (in milliseconds)
//	-l string   log level (debug, info, warn, error)
//
// The function filters os.Args to the flags it owns, via flagx.FilterArgs, so
// it does not interfere with the config-file flags parsed earlier.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the catalog API")
	pageSize := fs.Int("p", cfg.PageSize, "page size for list queries")
	debounceMs := fs.Int("d", int(cfg.DebounceInterval.Milliseconds()), "debounce interval (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *pageSize > 0 {
		cfg.PageSize = *pageSize
	}
	if *debounceMs > 0 {
		cfg.DebounceInterval = time.Duration(*debounceMs) * time.Millisecond
	}
}
