package cli

import (
	"context"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/cli/config"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/chart"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdHistory(repoCfg *config.Repository, out io.Writer) *cli.Command {
	var (
		limit  int
		output string
	)

	return &cli.Command{
		Name:  "history",
		Usage: "List stored pulls, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "limit",
				Usage:       "Maximum number of pulls to list",
				Value:       usecase.DefaultListLimit,
				Destination: &limit,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output format (table, json)",
				Value:       string(chart.FormatTable),
				Destination: &output,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			format, err := chart.ParseFormat(output)
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safeClose(ctx, "repository", repo.Close)

			// registry is not used for reading history
			reportUC := usecase.NewReport(nil, repo)
			pulls, err := reportUC.List(ctx, limit)
			if err != nil {
				return err
			}

			switch format {
			case chart.FormatJSON:
				return writeHistoryJSON(out, pulls)
			case chart.FormatTable, chart.FormatChart:
				return writeHistoryTable(out, pulls)
			default:
				return goerr.New("history supports table and json output", goerr.V("format", format))
			}
		},
	}
}

func writeHistoryJSON(w io.Writer, pulls []*model.Pull) error {
	views := make([]*chart.PullView, len(pulls))
	for i, p := range pulls {
		views[i] = chart.NewPullView(p)
	}
	return writeJSON(w, views)
}

func writeHistoryTable(w io.Writer, pulls []*model.Pull) error {
	if len(pulls) == 0 {
		_, err := io.WriteString(w, "No pulls stored.\n")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := io.WriteString(tw, "ID\tCREATED\tTERM\tDATES\tRECORDS\tFLAGS\n"); err != nil {
		return goerr.Wrap(err, "failed to write history")
	}
	for _, p := range pulls {
		var flags []string
		if p.Truncated {
			flags = append(flags, "truncated")
		}
		if p.RangeShrunk() {
			flags = append(flags, "range-shrunk")
		}
		if p.OutsideRequested() {
			flags = append(flags, "outside-requested")
		}
		line := strings.Join([]string{
			p.ID.String(),
			p.CreatedAt.Format("2006-01-02 15:04"),
			p.Query.Term,
			model.FormatDate(p.Query.From) + "-" + model.FormatDate(p.Query.To),
			strconv.Itoa(p.RecordCount),
			strings.Join(flags, ","),
		}, "\t")
		if _, err := io.WriteString(tw, line+"\n"); err != nil {
			return goerr.Wrap(err, "failed to write history")
		}
	}
	if err := tw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to write history")
	}
	return nil
}
