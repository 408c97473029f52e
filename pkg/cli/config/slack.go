package config

import (
	"log/slog"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	slackSvc "github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken    string
	ChannelID     string
	SigningSecret string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token used to post finished pulls",
			Category:    "Slack",
			Sources:     cli.EnvVars("FRTALLY_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID that receives finished pulls",
			Category:    "Slack",
			Sources:     cli.EnvVars("FRTALLY_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
		&cli.StringFlag{
			Name:        "slack-signing-secret",
			Usage:       "Slack signing secret; enables the /frtally slash command on serve",
			Category:    "Slack",
			Sources:     cli.EnvVars("FRTALLY_SLACK_SIGNING_SECRET"),
			Destination: &s.SigningSecret,
		},
	}
}

// IsConfigured checks if both the token and channel are set
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// IsCommandEnabled checks if slash commands can be verified
func (s *Slack) IsCommandEnabled() bool {
	return s.SigningSecret != ""
}

// Configure returns a notifier, or nil when Slack is not configured
func (s *Slack) Configure(logger *slog.Logger) interfaces.Notifier {
	if !s.IsConfigured() {
		if s.OAuthToken != "" || s.ChannelID != "" {
			logger.Warn("Slack notifications need both --slack-oauth-token and --slack-channel")
		}
		return nil
	}

	return slackSvc.NewNotifier(slackSvc.New(s.OAuthToken), s.ChannelID)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
		slog.Bool("has_signing_secret", s.SigningSecret != ""),
	)
}
