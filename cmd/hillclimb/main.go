// Command hillclimb reads a heightmap and prints the fewest steps from the
// start marker to the goal marker (part 1) and from any lowest cell to the
// goal marker (part 2).
//
// Settings are layered: built-in defaults, then an optional HCL profile
// (--config), then HILLCLIMB_* environment variables (a .env file in the
// working directory is loaded first), then flags.
//
//	hillclimb --strategy reverse --log-level debug input.txt
//	hillclimb -c run.hcl
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/hillclimb/internal/app"
	"github.com/katalvlaran/hillclimb/internal/config"
	"github.com/katalvlaran/hillclimb/internal/logging"
)

// Version is reported by --version.
const Version = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load .env file", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdout, os.Stderr).Run(ctx, os.Args); err != nil {
		msg, code := exitStatus(err)
		fmt.Fprintln(os.Stderr, msg)
		stop()
		os.Exit(code)
	}
}

// newCommand builds the root command; out receives answers, logOut receives logs.
func newCommand(out, logOut io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "hillclimb",
		Usage:     "fewest climb-constrained steps across a heightmap",
		ArgsUsage: "[INPUT]",
		Version:   Version,
		Writer:    out,
		ErrWriter: logOut,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return usageError(err)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "heightmap file (\"-\" for stdin)",
				Sources: cli.EnvVars("HILLCLIMB_INPUT"),
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "HCL run profile",
				Sources: cli.EnvVars("HILLCLIMB_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "strategy",
				Usage:   "multi-source strategy: per-start or reverse",
				Sources: cli.EnvVars("HILLCLIMB_STRATEGY"),
			},
			&cli.IntFlag{
				Name:    "workers",
				Usage:   "concurrent searches for the per-start strategy",
				Sources: cli.EnvVars("HILLCLIMB_WORKERS"),
			},
			&cli.IntFlag{
				Name:    "step-budget",
				Usage:   "maximum expansions per search, 0 for unlimited",
				Sources: cli.EnvVars("HILLCLIMB_STEP_BUDGET"),
			},
			&cli.IntFlag{
				Name:    "max-depth",
				Usage:   "ignore routes longer than this, 0 for unlimited",
				Sources: cli.EnvVars("HILLCLIMB_MAX_DEPTH"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Sources: cli.EnvVars("HILLCLIMB_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "text or json",
				Sources: cli.EnvVars("HILLCLIMB_LOG_FORMAT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			profile, err := resolveProfile(cmd)
			if err != nil {
				return usageError(err)
			}

			logger := logging.New(profile.Log.Level, profile.Log.Format, logOut)
			ctx = logging.WithLogger(ctx, logger)
			logger.Debug("profile resolved", "input", profile.Input, "strategy", profile.Strategy,
				"workers", profile.Workers, "step_budget", profile.StepBudget, "max_depth", profile.MaxDepth)

			in, closeIn, err := openInput(profile.Input)
			if err != nil {
				return err
			}
			defer closeIn()

			return app.Run(ctx, in, out, profile.Options()...)
		},
	}
}

// resolveProfile layers defaults, the HCL profile, and explicitly set flags
// or environment variables, then validates the result. A flag set to zero
// still overrides the profile.
func resolveProfile(cmd *cli.Command) (config.Profile, error) {
	profile := config.Default()
	if path := cmd.String("config"); path != "" {
		fromFile, err := config.Load(path)
		if err != nil {
			return config.Profile{}, err
		}
		profile = config.Merge(profile, fromFile)
	}

	if cmd.IsSet("input") {
		profile.Input = cmd.String("input")
	} else if cmd.Args().Present() {
		profile.Input = cmd.Args().First()
	}
	if cmd.IsSet("strategy") {
		profile.Strategy = cmd.String("strategy")
	}
	if cmd.IsSet("workers") {
		profile.Workers = int(cmd.Int("workers"))
	}
	if cmd.IsSet("step-budget") {
		profile.StepBudget = int(cmd.Int("step-budget"))
	}
	if cmd.IsSet("max-depth") {
		profile.MaxDepth = int(cmd.Int("max-depth"))
	}
	if cmd.IsSet("log-level") {
		profile.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		profile.Log.Format = cmd.String("log-format")
	}

	if profile.Input == "" {
		return config.Profile{}, errors.New("hillclimb: no input given (pass a file, --input, or set input in the profile)")
	}
	return profile, profile.Validate()
}

// openInput opens path, treating "-" as stdin.
func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("hillclimb: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
