package cli

import (
	"errors"
	"fmt"

	"github.com/chenasraf/lockfix/utils"
	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	Paths   []string
	Output  string
	DryRun  bool
	Verify  bool
	JSON    bool
	Verbose bool
	Help    bool
	Version bool
}

// ParseFlags defines and parses command-line flags using pflag. args excludes
// the program name.
func ParseFlags(args []string) (*Config, error) {
	cfg := &Config{}
	fs := pflag.NewFlagSet("lockfix", pflag.ContinueOnError)

	fs.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Report what would change without writing.")
	fs.StringVarP(&cfg.Output, "output", "o", "", "Write the fixed lockfile here instead of overwriting it.")
	fs.BoolVar(&cfg.Verify, "verify", false, "Parse the fixed lockfile and fail if it is not valid JSON with comments.")
	fs.BoolVar(&cfg.JSON, "json", false, "Print a JSON summary instead of text.")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "List changed lines and enable debug logging.")
	fs.BoolVarP(&cfg.Help, "help", "h", false, "Show this help message.")
	fs.BoolVar(&cfg.Version, "version", false, "Print the version.")

	fs.Usage = func() {
		utils.PrintHelp()
		fmt.Println("\nFlags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			cfg.Help = true
			return cfg, nil
		}
		return nil, err
	}
	cfg.Paths = fs.Args()

	if cfg.Help {
		fs.Usage()
		return cfg, nil
	}
	if cfg.Output != "" && len(cfg.Paths) > 1 {
		return nil, fmt.Errorf("--output can only be used with a single lockfile, got %d", len(cfg.Paths))
	}

	return cfg, nil
}
