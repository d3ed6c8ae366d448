package ports

import (
	"context"

	"github.com/slack-go/slack"
)

// SlackClient is the part of *slack.Client the bot calls.
type SlackClient interface {
	UnfurlMessageContext(ctx context.Context, channelID, timestamp string, unfurls map[string]slack.Attachment, options ...slack.MsgOption) (string, string, string, error)
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}
