package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// The function filters os.Args down to the flags it knows about (see
// flagx.FilterArgs) so the -c/-config flag handled by parseJson does not
// confuse it. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-i", "-l", "-L", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the database file")
	fs.StringVar(&cfg.ImageDir, "i", cfg.ImageDir, "directory for attached photos")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.Locale, "L", cfg.Locale, "locale for sorting titles")
	busy := fs.Int("b", int(cfg.BusyTimeout.Milliseconds()), "database busy timeout (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.BusyTimeout = time.Duration(*busy) * time.Millisecond
}
