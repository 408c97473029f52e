package cli

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/cli/config"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/apperr"
	"github.com/joho/godotenv"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application. A .env file in the working directory, if present, is loaded
// into the environment before flags are parsed.
func Run(ctx context.Context, args []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return goerr.Wrap(err, "failed to load .env file")
	}
	return run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	var (
		loggerCfg config.Logger
		repoCfg   config.Repository
		slackCfg  config.Slack
	)

	app := &cli.Command{
		Name:      "frtally",
		Usage:     "Tally Federal Register notices by month",
		Version:   "0.1.0",
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: joinFlags(
			loggerCfg.Flags(),
			repoCfg.Flags(),
			slackCfg.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Logs go to errOut so chart and JSON output on out stay clean
			logger, err := loggerCfg.Configure(errOut)
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdPull(&repoCfg, &slackCfg, in, out),
			cmdHistory(&repoCfg, out),
			cmdServe(&repoCfg, &slackCfg),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctxlog.With(ctx, slog.Default()), err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
