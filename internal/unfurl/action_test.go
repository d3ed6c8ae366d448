package unfurl

import (
	"errors"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
)

func TestParseActionID(t *testing.T) {
	t.Run("extracts the issue key", func(t *testing.T) {
		got, err := ParseActionID("view_summary_PROJ-123")

		require.NoError(t, err)
		assert.Equal(t, "PROJ-123", got.IssueKey)
	})

	for _, id := range []string{"", "view_summary_", "view_summary_  ", "open_PROJ-1", "xview_summary_PROJ-1", "VIEW_SUMMARY_PROJ-1"} {
		t.Run("rejects "+id, func(t *testing.T) {
			_, err := ParseActionID(id)

			assert.True(t, errors.Is(err, domainErrors.ErrMalformedAction))
		})
	}
}

func TestIsViewSummaryAction(t *testing.T) {
	assert.True(t, IsViewSummaryAction("view_summary_A-1"))
	assert.False(t, IsViewSummaryAction("other"))
}

func TestTargetFromCallback(t *testing.T) {
	t.Run("container timestamp wins", func(t *testing.T) {
		var cb slack.InteractionCallback
		cb.Container.MessageTs = "111.1"
		cb.Container.ChannelID = "C-container"
		cb.Channel.ID = "C-top"
		cb.Message.Timestamp = "222.2"

		assert.Equal(t, ContainerTarget{ChannelID: "C-container", MessageTs: "111.1", FallbackChannelID: "C-top"}, TargetFromCallback(cb))
	})

	t.Run("falls back to the message", func(t *testing.T) {
		var cb slack.InteractionCallback
		cb.Channel.ID = "C-top"
		cb.Message.Timestamp = "222.2"

		assert.Equal(t, MessageTarget{ChannelID: "C-top", MessageTs: "222.2"}, TargetFromCallback(cb))
	})

	t.Run("missing everything", func(t *testing.T) {
		assert.Equal(t, MissingTarget{}, TargetFromCallback(slack.InteractionCallback{}))
	})
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		name        string
		target      ActionTarget
		wantChannel string
		wantTs      string
		wantErr     bool
	}{
		{
			name:        "container with channel",
			target:      ContainerTarget{ChannelID: "C1", MessageTs: "1.0", FallbackChannelID: "C2"},
			wantChannel: "C1",
			wantTs:      "1.0",
		},
		{
			name:        "container falls back to top level channel",
			target:      ContainerTarget{MessageTs: "1.0", FallbackChannelID: "C2"},
			wantChannel: "C2",
			wantTs:      "1.0",
		},
		{
			name:    "container without any channel",
			target:  ContainerTarget{MessageTs: "1.0"},
			wantErr: true,
		},
		{
			name:        "message target",
			target:      MessageTarget{ChannelID: "C3", MessageTs: "2.0"},
			wantChannel: "C3",
			wantTs:      "2.0",
		},
		{
			name:    "message target without channel",
			target:  MessageTarget{MessageTs: "2.0"},
			wantErr: true,
		},
		{name: "missing", target: MissingTarget{}, wantErr: true},
		{name: "nil", target: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			channel, ts, err := ResolveTarget(tt.target)

			if tt.wantErr {
				assert.True(t, errors.Is(err, domainErrors.ErrMissingTarget))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantChannel, channel)
			assert.Equal(t, tt.wantTs, ts)
		})
	}
}
