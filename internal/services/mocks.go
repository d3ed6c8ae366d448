package services

import (
	"context"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/mock"

	"github.com/Tomas-vilte/jira-unfurl-bot/internal/models"
)

type (
	MockTracker struct {
		mock.Mock
	}

	MockSummarizer struct {
		mock.Mock
	}

	MockSlackClient struct {
		mock.Mock
	}
)

func (m *MockTracker) GetIssue(ctx context.Context, key string) (*models.Issue, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

func (m *MockTracker) GetVersion(ctx context.Context, id string) (*models.Version, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Version), args.Error(1)
}

func (m *MockTracker) CountIssuesFixedByVersion(ctx context.Context, versionID string) (int, error) {
	args := m.Called(ctx, versionID)
	return args.Int(0), args.Error(1)
}

func (m *MockTracker) SearchIssues(ctx context.Context, jql string) ([]models.LinkedIssue, error) {
	args := m.Called(ctx, jql)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LinkedIssue), args.Error(1)
}

func (m *MockSummarizer) Summarize(ctx context.Context, issueKey string) models.SummaryResult {
	args := m.Called(ctx, issueKey)
	return args.Get(0).(models.SummaryResult)
}

func (m *MockSlackClient) UnfurlMessageContext(ctx context.Context, channelID, timestamp string, unfurls map[string]slack.Attachment, options ...slack.MsgOption) (string, string, string, error) {
	args := m.Called(ctx, channelID, timestamp, unfurls)
	return args.String(0), args.String(1), args.String(2), args.Error(3)
}

func (m *MockSlackClient) PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error) {
	args := m.Called(ctx, channelID)
	return args.String(0), args.String(1), args.Error(2)
}
