package models

// LinkSharedEvent carries the links Slack reported for one message.
type LinkSharedEvent struct {
	Channel   string
	MessageTs string
	URLs      []string
}

// ViewSummaryRequest is a resolved "View AI Summary" button press.
type ViewSummaryRequest struct {
	IssueKey  string
	URL       string
	Channel   string
	MessageTs string
}
