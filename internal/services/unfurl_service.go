package services

import (
	"context"

	"github.com/slack-go/slack"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/i18n"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/logger"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/ports"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/unfurl"
)

// UnfurlService reacts to the Slack events the bot subscribes to.
type UnfurlService struct {
	tracker    ports.Tracker
	summarizer ports.Summarizer
	slack      ports.SlackClient
	renderer   *unfurl.Renderer
	trans      *i18n.Translations
}

func NewUnfurlService(
	tracker ports.Tracker,
	summarizer ports.Summarizer,
	slackClient ports.SlackClient,
	renderer *unfurl.Renderer,
	trans *i18n.Translations,
) *UnfurlService {
	return &UnfurlService{
		tracker:    tracker,
		summarizer: summarizer,
		slack:      slackClient,
		renderer:   renderer,
		trans:      trans,
	}
}

// HandleLinkShared unfurls every recognised link of the event, in the
// order Slack delivered them. A failing link is logged and skipped.
func (s *UnfurlService) HandleLinkShared(ctx context.Context, ev models.LinkSharedEvent) {
	ctx = logger.With(ctx, "event_type", "link_shared", "channel", ev.Channel, "message_ts", ev.MessageTs)
	logger.Info(ctx, "link shared", "links", len(ev.URLs))

	seen := make(map[string]struct{}, len(ev.URLs))
	for _, url := range ev.URLs {
		if _, dup := seen[url]; dup {
			continue
		}
		seen[url] = struct{}{}

		if err := s.unfurlLink(logger.With(ctx, "url", url), ev.Channel, ev.MessageTs, url); err != nil {
			logger.Error(ctx, "could not unfurl link", err, "url", url)
		}
	}
}

func (s *UnfurlService) unfurlLink(ctx context.Context, channel, ts, url string) error {
	preview, err := s.BuildPreview(ctx, url)
	if err != nil {
		return err
	}

	if _, _, _, err := s.slack.UnfurlMessageContext(ctx, channel, ts, preview.Unfurls()); err != nil {
		return domainErrors.ErrUnfurl.WithError(err).WithContext("url", url)
	}

	logger.Info(ctx, "link unfurled")
	return nil
}

// BuildPreview classifies url and renders the matching preview without
// talking to Slack.
func (s *UnfurlService) BuildPreview(ctx context.Context, url string) (unfurl.Preview, error) {
	ref, ok := unfurl.Classify(url)
	if !ok {
		return unfurl.Preview{}, domainErrors.ErrUnrecognizedURL.WithContext("url", url)
	}

	switch ref.Kind {
	case unfurl.RefVersion:
		version, err := s.tracker.GetVersion(ctx, ref.ID)
		if err != nil {
			return unfurl.Preview{}, err
		}
		return s.renderer.RenderVersion(ctx, *version, url)
	default:
		issue, err := s.tracker.GetIssue(ctx, ref.ID)
		if err != nil {
			return unfurl.Preview{}, err
		}
		return s.renderer.RenderIssue(*issue, url), nil
	}
}

// HandleBlockActions handles an interactive payload. Every view_summary
// action in it is resolved and enriched on its own.
func (s *UnfurlService) HandleBlockActions(ctx context.Context, cb slack.InteractionCallback) {
	ctx = logger.With(ctx, "event_type", "block_actions")

	for _, action := range cb.ActionCallback.BlockActions {
		if action == nil || !unfurl.IsViewSummaryAction(action.ActionID) {
			continue
		}

		parsed, err := unfurl.ParseActionID(action.ActionID)
		if err != nil {
			logger.Warn(ctx, "ignoring malformed action", "action_id", action.ActionID)
			continue
		}

		channel, ts, err := unfurl.ResolveTarget(unfurl.TargetFromCallback(cb))
		if err != nil {
			logger.Error(ctx, "could not locate the message to update", err, "issue_key", parsed.IssueKey)
			continue
		}

		req := models.ViewSummaryRequest{
			IssueKey:  parsed.IssueKey,
			URL:       action.Value,
			Channel:   channel,
			MessageTs: ts,
		}
		if err := s.HandleViewSummary(ctx, req); err != nil {
			logger.Error(ctx, "could not show AI summary", err, "issue_key", parsed.IssueKey)
		}
	}
}

// HandleViewSummary replaces the issue unfurl with one carrying the AI
// summary. When no summary is available nothing is sent to Slack.
func (s *UnfurlService) HandleViewSummary(ctx context.Context, req models.ViewSummaryRequest) error {
	ctx = logger.With(ctx, "issue_key", req.IssueKey, "channel", req.Channel)

	if req.Channel == "" || req.MessageTs == "" {
		return domainErrors.ErrMissingTarget.WithContext("key", req.IssueKey)
	}
	if req.URL == "" {
		return domainErrors.ErrMissingActionValue.WithContext("key", req.IssueKey)
	}

	summary := s.summarizer.Summarize(ctx, req.IssueKey)
	if !summary.Available {
		logger.Info(ctx, "no AI summary available, leaving unfurl as is")
		return nil
	}

	issue, err := s.tracker.GetIssue(ctx, req.IssueKey)
	if err != nil {
		return err
	}

	preview := s.renderer.RenderEnriched(*issue, req.URL, summary.Text)
	if _, _, _, err := s.slack.UnfurlMessageContext(ctx, req.Channel, req.MessageTs, preview.Unfurls()); err != nil {
		return domainErrors.ErrUnfurl.WithError(err).WithContext("key", req.IssueKey).WithContext("url", req.URL)
	}

	logger.Info(ctx, "unfurl enriched with AI summary")
	return nil
}

// HandleMention answers any mention so people can check the bot is up.
func (s *UnfurlService) HandleMention(ctx context.Context, channel string) error {
	ctx = logger.With(ctx, "event_type", "app_mention", "channel", channel)

	text := s.trans.GetMessage("bot_alive", 0, nil)
	if _, _, err := s.slack.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false)); err != nil {
		return domainErrors.ErrPostMessage.WithError(err)
	}
	return nil
}
