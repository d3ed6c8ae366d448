package ports

import (
	"context"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
)

// Summarizer produces a short AI summary of an issue. Failures are folded
// into an unavailable result instead of an error.
type Summarizer interface {
	Summarize(ctx context.Context, issueKey string) models.SummaryResult
}
