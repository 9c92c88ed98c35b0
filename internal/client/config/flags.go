package config

import (
	"flag"
	"os"
	"time"

	"github.com/nextboard/boardcli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the board server (default from Config)
//	-d string   path to the local token database
//	-t int      request timeout in seconds
//
// os.Args is filtered to just these flags via flagx.FilterArgs so parsing
// does not interfere with the -c/-config flag handled by the JSON stage.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the board server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local token database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
