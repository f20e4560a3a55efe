package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urbanwaste/dumpwatch/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application on the process stdin and stdout
func Run(ctx context.Context, args []string) error {
	return RunWithIO(ctx, args, os.Stdin, os.Stdout)
}

// RunWithIO runs the CLI application reading answers from in and printing to out
func RunWithIO(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	env := &environment{in: in, out: out}

	flags := joinFlags(
		env.loggerCfg.Flags(),
		env.seedCfg.Flags(),
		env.displayCfg.Flags(),
	)

	app := &cli.Command{
		Name:      "dumpwatch",
		Usage:     "Track urban waste disposal points by neighborhood, severity and status",
		Version:   "0.1.0",
		Flags:     flags,
		Reader:    in,
		Writer:    out,
		ErrWriter: os.Stderr,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := env.loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			logger.Debug("Configured",
				slog.Any("logger", env.loggerCfg),
				slog.Any("seed", env.seedCfg),
				slog.Any("display", env.displayCfg),
			)
			return ctx, nil
		},
		Action: env.runShell,
		Commands: []*cli.Command{
			cmdShell(env),
			cmdPoints(env),
			cmdNeighborhood(env),
			cmdSeverity(env),
			cmdReport(env),
			cmdStatus(env),
			cmdBands(env),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		err = goerr.Wrap(err, "CLI execution failed")
		apperr.Handle(ctx, err)
		return err
	}

	return nil
}
