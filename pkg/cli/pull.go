package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/cli/config"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/chart"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdPull(repoCfg *config.Repository, slackCfg *config.Slack, in io.Reader, out io.Writer) *cli.Command {
	var (
		registryCfg config.Registry
		cacheCfg    config.Cache
		from, to    string
		output      string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "from",
				Usage:       "First publication date (MM/DD/YYYY); prompted for when omitted",
				Destination: &from,
			},
			&cli.StringFlag{
				Name:        "to",
				Usage:       "Last publication date (MM/DD/YYYY); prompted for when omitted",
				Destination: &to,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output format (chart, table, json, csv)",
				Value:       string(chart.FormatChart),
				Sources:     cli.EnvVars("FRTALLY_OUTPUT"),
				Destination: &output,
			},
		},
		registryCfg.Flags(),
		cacheCfg.Flags(),
	)

	return &cli.Command{
		Name:  "pull",
		Usage: "Search the Federal Register and chart matching notices by month",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			format, err := chart.ParseFormat(output)
			if err != nil {
				return err
			}
			profile, err := registryCfg.Resolve(c)
			if err != nil {
				return err
			}
			human := format == chart.FormatChart || format == chart.FormatTable

			if human {
				if _, err := fmt.Fprintln(out, chart.Intro); err != nil {
					return goerr.Wrap(err, "failed to write intro")
				}
			}

			fromDate, toDate, err := dateRange(from, to, newPrompter(in, out))
			if err != nil {
				return err
			}
			query := &model.Query{
				From:  fromDate,
				To:    toDate,
				Term:  profile.Term,
				Types: profile.DocumentTypes(),
			}

			logger.Debug("Starting pull",
				slog.Any("registry", registryCfg),
				slog.Any("cache", cacheCfg),
				slog.Any("repository", *repoCfg),
				slog.Any("slack", *slackCfg),
			)

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safeClose(ctx, "repository", repo.Close)

			registry, closeCache, err := cacheCfg.Configure(ctx, registryCfg.Configure(), nil)
			if err != nil {
				return err
			}
			defer safeClose(ctx, "search cache", closeCache)

			opts := []usecase.ReportOption{usecase.WithBoundPolicy(profile.Bound)}
			if notifier := slackCfg.Configure(logger); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}
			reportUC := usecase.NewReport(registry, repo, opts...)

			pull, err := reportUC.Run(ctx, query)
			if err != nil {
				return err
			}

			renderer := chart.New(chart.WithWidth(chart.TerminalWidth(out)))
			if human {
				if err := renderer.WriteSummary(out, pull); err != nil {
					return err
				}
			}
			return renderer.Render(out, pull, format)
		},
	}
}
