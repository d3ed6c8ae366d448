package models

// IssueType names used by the tracker for the types the bot styles
// specially. Anything else falls back to the default style.
const (
	IssueTypeEpic  = "Epic"
	IssueTypeBug   = "Bug"
	IssueTypeStory = "Story"
	IssueTypeTask  = "Task"
)

// Issue is the subset of a tracker issue the previews need.
type Issue struct {
	Key         string
	Status      string
	Summary     string
	IssueType   string
	Description string
	Permalink   string
}

// Version is a release/fix version of a project.
type Version struct {
	ID          string
	Name        string
	ProjectID   string
	Released    bool
	ReleaseDate string
	Description string
}

// LinkedIssue is an issue listed inside a version preview.
type LinkedIssue struct {
	Key       string
	Permalink string
	Summary   string
	IssueType string
}
