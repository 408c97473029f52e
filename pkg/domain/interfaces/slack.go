package interfaces

//go:generate moq -out mocks/slack_mock.go -pkg mocks . SlackClient Notifier

import (
	"context"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/slack-go/slack"
)

// SlackClient is the subset of the Slack API used to post pull summaries
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier announces a completed pull
type Notifier interface {
	NotifyPull(ctx context.Context, pull *model.Pull) error
}
