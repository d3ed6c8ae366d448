package unfurl

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/slack-go/slack"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/logger"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
)

const narrowedTypesClause = " AND issuetype in (Bug, Epic, Story)"

// RenderVersion builds the version preview. It queries the tracker for the
// issues fixed by the version, narrowing the query when there are too many,
// and lists the highest-priority ones.
func (r *Renderer) RenderVersion(ctx context.Context, version models.Version, url string) (Preview, error) {
	var text strings.Builder
	text.WriteString(fmt.Sprintf(":%s: *%s* [*%s*]", r.opts.Emoji, version.Name, r.releaseInfo(version)))
	if version.Description != "" {
		text.WriteString(" : ")
		text.WriteString(version.Description)
	}

	fixed, err := r.tracker.CountIssuesFixedByVersion(ctx, version.ID)
	if err != nil {
		return Preview{}, err
	}

	jql := VersionJQL(version, fixed > r.opts.NarrowThreshold)
	logger.Debug(ctx, "searching version issues", "version_id", version.ID, "fixed_count", fixed, "jql", jql)

	linked, err := r.tracker.SearchIssues(ctx, jql)
	if err != nil {
		return Preview{}, err
	}

	RankLinkedIssues(linked)

	shown := linked
	if len(shown) > r.opts.MaxLinked {
		shown = shown[:r.opts.MaxLinked]
	}
	for _, issue := range shown {
		text.WriteString(fmt.Sprintf("\n\t\t:%s: <%s|%s>", IconFor(issue.IssueType), issue.Permalink, issue.Summary))
	}

	if hidden := len(linked) - r.opts.MaxLinked; hidden > 0 {
		text.WriteString("\n\t\t")
		text.WriteString(r.trans.GetMessage("unfurl_more_issues", hidden, map[string]interface{}{
			"Count": hidden,
			"URL":   url,
		}))
	}

	return Preview{
		URL:    url,
		Color:  versionColor,
		Blocks: []slack.Block{mrkdwnSection(text.String())},
	}, nil
}

func (r *Renderer) releaseInfo(version models.Version) string {
	switch {
	case version.Released && version.ReleaseDate != "":
		return r.trans.GetMessage("unfurl_released_at", 0, map[string]interface{}{"Date": version.ReleaseDate})
	case version.Released:
		return r.trans.GetMessage("unfurl_released", 0, nil)
	default:
		return r.trans.GetMessage("unfurl_unreleased", 0, nil)
	}
}

// VersionJQL returns the query listing the issues fixed by version. With
// narrow set it only matches bugs, epics and stories.
func VersionJQL(version models.Version, narrow bool) string {
	name := strings.ReplaceAll(version.Name, `"`, `\"`)
	jql := fmt.Sprintf(`project = %s AND fixVersion = "%s"`, version.ProjectID, name)
	if narrow {
		jql += narrowedTypesClause
	}
	return jql
}

// RankLinkedIssues orders issues Epic, Bug, Story, Task, then everything
// else, keeping the tracker order inside each group.
func RankLinkedIssues(issues []models.LinkedIssue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return PriorityOf(issues[i].IssueType) < PriorityOf(issues[j].IssueType)
	})
}
