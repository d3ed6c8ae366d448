package gemini

import (
	"fmt"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/regex"
)

const (
	issuePromptEN = `You summarize Jira issues for a Slack preview.
Write at most three short sentences in plain text, no headings or lists.
Say what the issue is about and where it stands.

Issue: %s
Type: %s
Status: %s
Title: %s
Description:
%s`

	issuePromptES = `Resumís issues de Jira para una vista previa en Slack.
Escribí como máximo tres oraciones cortas en texto plano, sin títulos ni listas.
Contá de qué trata el issue y en qué estado está.

Issue: %s
Tipo: %s
Estado: %s
Título: %s
Descripción:
%s`
)

func buildPrompt(lang string, issue *models.Issue) string {
	template := issuePromptEN
	if lang == "es" {
		template = issuePromptES
	}
	return fmt.Sprintf(template, issue.Key, issue.IssueType, issue.Status, issue.Summary, regex.CleanDescription(issue.Description))
}
