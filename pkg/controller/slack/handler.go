package slack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	slackSvc "github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/slack"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/apperr"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

const (
	responseEphemeral = "ephemeral"
	responseInChannel = "in_channel"

	// Slack rejects requests signed more than five minutes ago
	signatureMaxAge = 5 * time.Minute
)

// ResponseFunc posts a delayed reply to a slash command's response_url
type ResponseFunc func(ctx context.Context, url string, msg *slack.WebhookMessage) error

// Handler serves the /frtally slash command
type Handler struct {
	signingSecret string
	reportUC      interfaces.Report
	tasks         *async.Group
	defaults      *model.QueryProfile
	blocks        *slackSvc.BlockBuilder
	respond       ResponseFunc
	now           func() time.Time
}

// HandlerOption configures a Handler
type HandlerOption func(*Handler)

// WithQueryDefaults sets the term and document types used when the command omits them
func WithQueryDefaults(profile *model.QueryProfile) HandlerOption {
	return func(h *Handler) {
		h.defaults = profile
	}
}

// WithResponseFunc replaces how delayed replies are posted
func WithResponseFunc(fn ResponseFunc) HandlerOption {
	return func(h *Handler) {
		h.respond = fn
	}
}

// WithClock replaces the clock used to check request timestamps
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.now = now
	}
}

// NewHandler creates a new slash command handler. Pulls run on tasks after the command is
// acknowledged.
func NewHandler(signingSecret string, reportUC interfaces.Report, tasks *async.Group, opts ...HandlerOption) *Handler {
	h := &Handler{
		signingSecret: signingSecret,
		reportUC:      reportUC,
		tasks:         tasks,
		defaults:      &model.QueryProfile{Term: model.DefaultSearchTerm},
		blocks:        slackSvc.NewBlockBuilder(),
		respond:       slack.PostWebhookContext,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleCommand acknowledges a slash command and runs the pull in the background. The chart is
// posted to the command's response_url when it is ready.
func (h *Handler) HandleCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(ctx, w, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.verifySlackSignature(r, body); err != nil {
		ctxlog.From(ctx).Warn("Invalid Slack signature", "error", err)
		h.writeError(ctx, w, goerr.Wrap(err, "invalid signature"), http.StatusUnauthorized)
		return
	}

	r.Body = io.NopCloser(bytes.NewReader(body))
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		h.writeError(ctx, w, goerr.Wrap(err, "failed to parse slash command"), http.StatusBadRequest)
		return
	}

	logger := ctxlog.From(ctx).With("slack_user", cmd.UserID, "slack_channel", cmd.ChannelID)
	ctx = ctxlog.With(ctx, logger)

	query, err := parseCommandText(cmd.Text, h.defaults)
	if err != nil {
		apperr.Handle(ctx, err)
		h.writeMessage(ctx, w, &slack.Msg{
			ResponseType: responseEphemeral,
			Text:         "Sorry, that date format wasn't clear.\n" + commandUsage,
		})
		return
	}

	logger.Info("Slash command accepted",
		"from", model.FormatDate(query.From),
		"to", model.FormatDate(query.To),
		"term", query.Term,
	)
	h.writeMessage(ctx, w, &slack.Msg{
		ResponseType: responseEphemeral,
		Text: fmt.Sprintf("Pulling %q notices published from %s to %s...",
			query.Term, model.FormatDate(query.From), model.FormatDate(query.To)),
	})

	responseURL := cmd.ResponseURL
	h.tasks.Dispatch(ctx, "slash command pull", func(ctx context.Context) error {
		return h.runPull(ctx, responseURL, query)
	})
}

func (h *Handler) runPull(ctx context.Context, responseURL string, query *model.Query) error {
	pull, err := h.reportUC.Run(ctx, query)
	if err != nil {
		msg := &slack.WebhookMessage{
			ResponseType: responseEphemeral,
			Text:         "The pull failed: " + err.Error(),
		}
		if !apperr.IsUserError(err) {
			msg.Text = "The pull failed. The Federal Register may be unavailable, please try again later."
		}
		if respErr := h.respond(ctx, responseURL, msg); respErr != nil {
			ctxlog.From(ctx).Error("Failed to post slash command error", "error", respErr)
		}
		return goerr.Wrap(err, "slash command pull failed")
	}

	blocks, err := h.blocks.BuildPullBlocks(pull)
	if err != nil {
		return goerr.Wrap(err, "failed to build pull message", goerr.V("id", pull.ID))
	}

	if err := h.respond(ctx, responseURL, &slack.WebhookMessage{
		ResponseType: responseInChannel,
		Text:         "Federal Register notices " + pull.Requested.String(),
		Blocks:       &slack.Blocks{BlockSet: blocks},
	}); err != nil {
		return goerr.Wrap(err, "failed to post slash command reply", goerr.V("id", pull.ID))
	}
	return nil
}

// verifySlackSignature verifies the Slack request signature
func (h *Handler) verifySlackSignature(r *http.Request, body []byte) error {
	timestamp := r.Header.Get("X-Slack-Request-Timestamp")
	if timestamp == "" {
		return goerr.New("missing timestamp header")
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return goerr.Wrap(err, "invalid timestamp")
	}

	age := h.now().Sub(time.Unix(ts, 0))
	if age > signatureMaxAge || age < -signatureMaxAge {
		return goerr.New("timestamp too old", goerr.V("timestamp", ts))
	}

	signature := r.Header.Get("X-Slack-Signature")
	if signature == "" {
		return goerr.New("missing signature header")
	}

	mac := hmac.New(sha256.New, []byte(h.signingSecret))
	mac.Write([]byte("v0:" + timestamp + ":" + string(body)))
	expected := "v0=" + hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(signature), []byte(expected)) {
		return goerr.New("signature mismatch")
	}
	return nil
}

func (h *Handler) writeMessage(ctx context.Context, w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		ctxlog.From(ctx).Error("Failed to write slash command response", "error", err)
	}
}

// writeError writes an error response
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	apperr.Handle(ctx, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]string{"error": http.StatusText(status)}); encErr != nil {
		ctxlog.From(ctx).Error("Failed to write error response", "error", encErr)
	}
}
