package main

import (
	"fmt"
	"os"

	"github.com/chenasraf/lockfix/cli"
	"github.com/chenasraf/lockfix/lockfile"
	"github.com/chenasraf/lockfix/report"
	"github.com/chenasraf/lockfix/utils"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	utils.SetVersion(version)

	cfg, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if cfg.Help {
		os.Exit(0)
	}
	if cfg.Version {
		utils.PrintVersion()
		os.Exit(0)
	}

	logger, err := utils.NewLogger(cfg.Verbose)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	paths := cfg.Paths
	if len(paths) == 0 {
		selected, err := findLockfile(logger)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if selected == "" {
			fmt.Println("No lockfile selected.")
			os.Exit(1)
		}
		paths = []string{selected}
	}

	out := report.Stdout()
	opts := lockfile.Options{
		Output: cfg.Output,
		DryRun: cfg.DryRun,
		Verify: cfg.Verify,
		Logger: logger,
	}

	reports, runErr := lockfile.ProcessAll(paths, opts)
	if cfg.JSON {
		if err := report.PrintJSON(out, reports, runErr); err != nil && runErr == nil {
			runErr = err
		}
		if runErr != nil {
			_ = logger.Sync()
			// stdout only carries the JSON document
			fmt.Fprintln(os.Stderr, "Error:", runErr)
			os.Exit(1)
		}
		return
	}

	done := reports
	if runErr != nil {
		done = reports[:len(reports)-1] // the last report is the failed file
	}
	for _, rep := range done {
		report.Print(out, rep, cfg.Verbose)
	}
	if runErr != nil {
		_ = logger.Sync()
		fmt.Println("Error:", runErr)
		os.Exit(1)
	}
}

// findLockfile looks up the configured lockfiles in the project root (or the
// working directory when there is none) and prompts when several exist.
func findLockfile(logger *zap.Logger) (string, error) {
	root, err := utils.FindProjectRoot()
	if err != nil {
		if root, err = os.Getwd(); err != nil {
			return "", err
		}
	}
	logger.Debug("looking for lockfiles", zap.String("root", root))
	return lockfile.Select(root, nil)
}
