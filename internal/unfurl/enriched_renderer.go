package unfurl

import (
	"github.com/slack-go/slack"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
)

// RenderEnriched replaces the button of an issue preview with the AI summary.
func (r *Renderer) RenderEnriched(issue models.Issue, url, summary string) Preview {
	return Preview{
		URL:   url,
		Color: ColorFor(issue.IssueType),
		Blocks: []slack.Block{
			mrkdwnSection(r.issueHeader(issue)),
			slack.NewDividerBlock(),
			mrkdwnSection(r.trans.GetMessage("unfurl_ai_summary_title", 0, nil) + "\n" + summary),
		},
	}
}
