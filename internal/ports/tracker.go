package ports

import (
	"context"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
)

// Tracker is the read-only view of the issue tracker the previews are built from.
type Tracker interface {
	GetIssue(ctx context.Context, key string) (*models.Issue, error)
	GetVersion(ctx context.Context, id string) (*models.Version, error)
	// CountIssuesFixedByVersion returns how many issues list the version as fix version.
	CountIssuesFixedByVersion(ctx context.Context, versionID string) (int, error)
	SearchIssues(ctx context.Context, jql string) ([]models.LinkedIssue, error)
}
