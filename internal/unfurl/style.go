package unfurl

import "github.com/Tomas-vilte/jira-unfurl-bot/internal/models"

const (
	defaultIssueColor = "#025BA6"
	versionColor      = "#ff8b3d"
	fallbackIcon      = "jira-1992"
	lowestPriority    = 5
)

var issueTypeColors = map[string]string{
	models.IssueTypeEpic:  "#4c00b0",
	models.IssueTypeTask:  "#1c4966",
	models.IssueTypeBug:   "#7c0a02",
	models.IssueTypeStory: "#3bb143",
}

var issueTypeIcons = map[string]string{
	models.IssueTypeEpic:  "jiraepic",
	models.IssueTypeBug:   "jirabug",
	models.IssueTypeTask:  "jiratask",
	models.IssueTypeStory: "jirastory",
}

// Lower sorts first in a version preview.
var issueTypePriority = map[string]int{
	models.IssueTypeEpic:  1,
	models.IssueTypeBug:   2,
	models.IssueTypeStory: 3,
	models.IssueTypeTask:  4,
}

func ColorFor(issueType string) string {
	if c, ok := issueTypeColors[issueType]; ok {
		return c
	}
	return defaultIssueColor
}

func IconFor(issueType string) string {
	if icon, ok := issueTypeIcons[issueType]; ok {
		return icon
	}
	return fallbackIcon
}

func PriorityOf(issueType string) int {
	if p, ok := issueTypePriority[issueType]; ok {
		return p
	}
	return lowestPriority
}
