package unfurl

import (
	"fmt"

	"github.com/slack-go/slack"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
)

const viewSummaryPrefix = "view_summary_"

// RenderIssue builds the issue preview: a header line plus the
// "View AI Summary" button whose value is the original URL.
func (r *Renderer) RenderIssue(issue models.Issue, url string) Preview {
	button := slack.NewButtonBlockElement(
		viewSummaryPrefix+issue.Key,
		url,
		slack.NewTextBlockObject(slack.PlainTextType, r.trans.GetMessage("unfurl_view_summary_button", 0, nil), true, false),
	)

	return Preview{
		URL:   url,
		Color: ColorFor(issue.IssueType),
		Blocks: []slack.Block{
			mrkdwnSection(r.issueHeader(issue)),
			slack.NewActionBlock("", button),
		},
	}
}

func (r *Renderer) issueHeader(issue models.Issue) string {
	return fmt.Sprintf(":%s: *%s* [*%s*] : %s", r.opts.Emoji, issue.Key, issue.Status, issue.Summary)
}
