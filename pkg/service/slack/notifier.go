package slack

import (
	"context"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Notifier posts completed pulls to a Slack channel
type Notifier struct {
	client  interfaces.SlackClient
	channel string
	blocks  *BlockBuilder
}

// NewNotifier creates a Notifier posting to channelID
func NewNotifier(client interfaces.SlackClient, channelID string) *Notifier {
	return &Notifier{
		client:  client,
		channel: channelID,
		blocks:  NewBlockBuilder(),
	}
}

// NotifyPull implements interfaces.Notifier
func (n *Notifier) NotifyPull(ctx context.Context, pull *model.Pull) error {
	blocks, err := n.blocks.BuildPullBlocks(pull)
	if err != nil {
		return goerr.Wrap(err, "failed to build pull message", goerr.V("id", pull.ID))
	}

	fallback := "Federal Register notices " + pull.Requested.String()
	_, ts, err := n.client.PostMessageContext(ctx, n.channel,
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post pull to Slack",
			goerr.V("id", pull.ID),
			goerr.V("channel", n.channel))
	}

	ctxlog.From(ctx).Info("Posted pull to Slack",
		"id", pull.ID,
		"channel", n.channel,
		"ts", ts,
	)
	return nil
}

var _ interfaces.Notifier = (*Notifier)(nil)
