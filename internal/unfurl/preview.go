package unfurl

import "github.com/slack-go/slack"

// Preview is one rich attachment keyed by the URL it unfurls.
type Preview struct {
	URL    string
	Color  string
	Blocks []slack.Block
}

// Unfurls builds the map chat.unfurl expects.
func (p Preview) Unfurls() map[string]slack.Attachment {
	return map[string]slack.Attachment{
		p.URL: {
			Color:  p.Color,
			Blocks: slack.Blocks{BlockSet: p.Blocks},
		},
	}
}

func mrkdwnSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}
