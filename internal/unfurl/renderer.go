package unfurl

import (
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/i18n"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/ports"
)

const (
	DefaultEmoji           = "jira"
	DefaultMaxLinked       = 10
	DefaultNarrowThreshold = 10
)

type Options struct {
	// Emoji is the workspace emoji shown in front of every header.
	Emoji string
	// MaxLinked caps the issues listed in a version preview.
	MaxLinked int
	// NarrowThreshold is the fixed-issue count above which a version
	// preview only lists bugs, epics and stories.
	NarrowThreshold int
}

// Renderer turns tracker entities into Slack previews.
type Renderer struct {
	tracker ports.Tracker
	trans   *i18n.Translations
	opts    Options
}

func NewRenderer(tracker ports.Tracker, trans *i18n.Translations, opts Options) *Renderer {
	if opts.Emoji == "" {
		opts.Emoji = DefaultEmoji
	}
	if opts.MaxLinked <= 0 {
		opts.MaxLinked = DefaultMaxLinked
	}
	if opts.NarrowThreshold <= 0 {
		opts.NarrowThreshold = DefaultNarrowThreshold
	}
	return &Renderer{tracker: tracker, trans: trans, opts: opts}
}
