package unfurl

import (
	"strings"

	"github.com/slack-go/slack"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
)

// ViewSummary is a parsed "View AI Summary" action.
type ViewSummary struct {
	IssueKey string
}

// ParseActionID accepts only identifiers of the form view_summary_<KEY>.
func ParseActionID(actionID string) (ViewSummary, error) {
	key, ok := strings.CutPrefix(actionID, viewSummaryPrefix)
	if !ok || strings.TrimSpace(key) == "" {
		return ViewSummary{}, domainErrors.ErrMalformedAction.WithContext("action_id", actionID)
	}
	return ViewSummary{IssueKey: key}, nil
}

func IsViewSummaryAction(actionID string) bool {
	return strings.HasPrefix(actionID, viewSummaryPrefix)
}

// ActionTarget locates the message whose unfurl an action should update.
// The concrete types are ContainerTarget, MessageTarget and MissingTarget.
type ActionTarget interface {
	isActionTarget()
}

// ContainerTarget comes from the payload container. FallbackChannelID is
// the top level channel id, used when the container has none.
type ContainerTarget struct {
	ChannelID         string
	MessageTs         string
	FallbackChannelID string
}

// MessageTarget comes from the payload message and top level channel.
type MessageTarget struct {
	ChannelID string
	MessageTs string
}

type MissingTarget struct{}

func (ContainerTarget) isActionTarget() {}
func (MessageTarget) isActionTarget()   {}
func (MissingTarget) isActionTarget()   {}

// TargetFromCallback prefers the container timestamp, then the message
// timestamp.
func TargetFromCallback(cb slack.InteractionCallback) ActionTarget {
	switch {
	case cb.Container.MessageTs != "":
		return ContainerTarget{
			ChannelID:         cb.Container.ChannelID,
			MessageTs:         cb.Container.MessageTs,
			FallbackChannelID: cb.Channel.ID,
		}
	case cb.Message.Timestamp != "":
		return MessageTarget{ChannelID: cb.Channel.ID, MessageTs: cb.Message.Timestamp}
	default:
		return MissingTarget{}
	}
}

// ResolveTarget returns the channel and message timestamp to unfurl into.
func ResolveTarget(target ActionTarget) (channel string, ts string, err error) {
	switch t := target.(type) {
	case ContainerTarget:
		channel = t.ChannelID
		if channel == "" {
			channel = t.FallbackChannelID
		}
		ts = t.MessageTs
	case MessageTarget:
		channel, ts = t.ChannelID, t.MessageTs
	case MissingTarget, nil:
	}

	if channel == "" || ts == "" {
		return "", "", domainErrors.ErrMissingTarget
	}
	return channel, ts, nil
}
