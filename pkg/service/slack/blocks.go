package slack

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/chart"
	"github.com/slack-go/slack"
)

// chartWidth fits a code block in a desktop Slack client without wrapping
const chartWidth = 60

// BlockBuilder builds Slack blocks for pulls
type BlockBuilder struct {
	renderer *chart.Renderer
}

// NewBlockBuilder creates a new BlockBuilder
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{
		renderer: chart.New(chart.WithWidth(chartWidth)),
	}
}

// BuildPullBlocks builds the announcement of a completed pull: a header, the query, the bar chart
// and any discrepancy warnings
func (b *BlockBuilder) BuildPullBlocks(pull *model.Pull) ([]slack.Block, error) {
	var buf bytes.Buffer
	if err := b.renderer.Chart(&buf, pull.Series); err != nil {
		return nil, err
	}

	typeNames := make([]string, len(pull.Query.Types))
	for i, t := range pull.Query.Types {
		typeNames[i] = t.String()
	}

	summary := fmt.Sprintf("*Term:* %s\n*Types:* %s\n*Published:* %s to %s\n*Records:* %d",
		pull.Query.Term,
		strings.Join(typeNames, ", "),
		model.FormatDate(pull.Query.From),
		model.FormatDate(pull.Query.To),
		pull.RecordCount,
	)

	blocks := []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "📊 "+chart.Title, true, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, summary, false, false),
			nil,
			nil,
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "```\n"+buf.String()+"```", false, false),
			nil,
			nil,
		),
	}

	if warnings := pullWarnings(pull); len(warnings) > 0 {
		blocks = append(blocks, slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, "⚠️ "+strings.Join(warnings, " "), false, false),
		))
	}

	return blocks, nil
}

func pullWarnings(pull *model.Pull) []string {
	var warnings []string
	if pull.Truncated {
		warnings = append(warnings, "The registry record cap was reached, later notices are missing.")
	}
	if pull.Observed == nil {
		warnings = append(warnings, "No notices were found.")
	} else if pull.RangeShrunk() {
		warnings = append(warnings, fmt.Sprintf("Notices were found only from %s to %s.", pull.Observed.Lower, pull.Observed.Upper))
	}
	return warnings
}
