package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/logger"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
)

const maxBodyBytes = 1 << 20

// EventProcessor is what the handler hands decoded Slack traffic to.
type EventProcessor interface {
	HandleLinkShared(ctx context.Context, ev models.LinkSharedEvent)
	HandleBlockActions(ctx context.Context, cb slack.InteractionCallback)
	HandleMention(ctx context.Context, channel string) error
}

// DispatchFunc runs work after the HTTP response has been written.
type DispatchFunc func(work func(ctx context.Context))

// SlackHandler serves the single Slack endpoint: events API callbacks and
// interactive payloads both arrive here.
type SlackHandler struct {
	processor     EventProcessor
	signingSecret string
	dispatch      DispatchFunc
}

// NewSlackHandler builds a handler whose background work inherits the
// values of baseCtx (logger included) but not its cancellation, bounded by
// eventTimeout.
func NewSlackHandler(baseCtx context.Context, processor EventProcessor, signingSecret string, eventTimeout time.Duration) *SlackHandler {
	return &SlackHandler{
		processor:     processor,
		signingSecret: signingSecret,
		dispatch:      asyncDispatch(baseCtx, eventTimeout),
	}
}

func asyncDispatch(baseCtx context.Context, timeout time.Duration) DispatchFunc {
	return func(work func(ctx context.Context)) {
		go func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(baseCtx), timeout)
			defer cancel()
			work(ctx)
		}()
	}
}

func (h *SlackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		http.Error(w, "method_not_allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		logger.Error(ctx, "read body", err)
		http.Error(w, "bad_request", http.StatusBadRequest)
		return
	}

	if err := h.verify(r.Header, body); err != nil {
		logger.Warn(ctx, "signature verification failed", "error", err)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		h.handleInteraction(ctx, w, body)
		return
	}

	h.handleEvent(ctx, w, r, body)
}

func (h *SlackHandler) verify(header http.Header, body []byte) error {
	if h.signingSecret == "" {
		return nil
	}

	sv, err := slack.NewSecretsVerifier(header, h.signingSecret)
	if err != nil {
		return domainErrors.ErrSignature.WithError(err)
	}
	if _, err := sv.Write(body); err != nil {
		return domainErrors.ErrSignature.WithError(err)
	}
	if err := sv.Ensure(); err != nil {
		return domainErrors.ErrSignature.WithError(err)
	}
	return nil
}

func (h *SlackHandler) handleEvent(ctx context.Context, w http.ResponseWriter, r *http.Request, body []byte) {
	ev, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		logger.Warn(ctx, "unparseable event payload", "error", err)
		http.Error(w, "bad_request", http.StatusBadRequest)
		return
	}

	if ev.Type == slackevents.URLVerification {
		challenge, ok := ev.Data.(*slackevents.EventsAPIURLVerificationEvent)
		if !ok {
			http.Error(w, "bad_request", http.StatusBadRequest)
			return
		}
		logger.Info(ctx, "url_verification challenge")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"challenge": challenge.Challenge})
		return
	}

	w.WriteHeader(http.StatusOK)

	if ev.Type != slackevents.CallbackEvent {
		logger.Debug(ctx, "ignoring envelope", "type", ev.Type)
		return
	}
	if retry := r.Header.Get("X-Slack-Retry-Num"); retry != "" {
		// The first delivery was acknowledged and is already being processed.
		logger.Info(ctx, "ignoring slack retry", "retry", retry, "reason", r.Header.Get("X-Slack-Retry-Reason"))
		return
	}

	switch inner := ev.InnerEvent.Data.(type) {
	case *slackevents.LinkSharedEvent:
		shared := models.LinkSharedEvent{
			Channel:   inner.Channel,
			MessageTs: string(inner.MessageTimeStamp),
		}
		for _, link := range inner.Links {
			shared.URLs = append(shared.URLs, link.URL)
		}
		h.dispatch(func(ctx context.Context) {
			h.processor.HandleLinkShared(ctx, shared)
		})
	case *slackevents.AppMentionEvent:
		channel := inner.Channel
		h.dispatch(func(ctx context.Context) {
			if err := h.processor.HandleMention(ctx, channel); err != nil {
				logger.Error(ctx, "could not answer mention", err, "channel", channel)
			}
		})
	default:
		logger.Debug(ctx, "ignoring event", "event_type", ev.InnerEvent.Type)
	}
}

func (h *SlackHandler) handleInteraction(ctx context.Context, w http.ResponseWriter, body []byte) {
	form, err := url.ParseQuery(string(body))
	if err != nil || form.Get("payload") == "" {
		http.Error(w, "bad_request", http.StatusBadRequest)
		return
	}

	var cb slack.InteractionCallback
	if err := json.Unmarshal([]byte(form.Get("payload")), &cb); err != nil {
		logger.Warn(ctx, "unparseable interaction payload", "error", err)
		http.Error(w, "bad_request", http.StatusBadRequest)
		return
	}

	// Slack wants the ack within three seconds, before any tracker call.
	w.WriteHeader(http.StatusOK)

	if cb.Type != slack.InteractionTypeBlockActions {
		logger.Debug(ctx, "ignoring interaction", "type", cb.Type)
		return
	}

	h.dispatch(func(ctx context.Context) {
		h.processor.HandleBlockActions(ctx, cb)
	})
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
