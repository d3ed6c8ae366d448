package regex

import "regexp"

var (
	// Jira description cleanup
	AcceptanceCriteriaEN = regexp.MustCompile(`(?i)Acceptance criteria:.*(\n.*)*`)
	AcceptanceCriteriaES = regexp.MustCompile(`(?i)Criterio de aceptaci[oó]n:.*(\n.*)*`)
	JiraCodeBlock        = regexp.MustCompile(`(?s)\{(?:code|noformat)[^}]*\}.*?\{(?:code|noformat)\}`)
	BlankLines           = regexp.MustCompile(`\n{3,}`)

	// AI output to Slack mrkdwn
	MarkdownCodeFence = regexp.MustCompile("(?s)```[a-z]*\n?(.*?)```")
	MarkdownBold      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	MarkdownHeading   = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)
)

// CleanDescription drops the parts of a Jira description that only add noise
// to a summary prompt.
func CleanDescription(description string) string {
	out := AcceptanceCriteriaEN.ReplaceAllString(description, "")
	out = AcceptanceCriteriaES.ReplaceAllString(out, "")
	out = JiraCodeBlock.ReplaceAllString(out, "")
	out = BlankLines.ReplaceAllString(out, "\n\n")
	return out
}

// ToSlackMrkdwn rewrites the markdown a model tends to produce into what
// Slack renders.
func ToSlackMrkdwn(text string) string {
	out := MarkdownCodeFence.ReplaceAllString(text, "$1")
	out = MarkdownHeading.ReplaceAllString(out, "*$1*")
	out = MarkdownBold.ReplaceAllString(out, "*$1*")
	return out
}
