package unfurl

import (
	"net/url"
	"strings"
)

// RefKind tells which tracker entity a URL points at.
type RefKind int

const (
	RefIssue RefKind = iota + 1
	RefVersion
)

func (k RefKind) String() string {
	switch k {
	case RefIssue:
		return "issue"
	case RefVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Reference is a classified tracker URL. ID holds the issue key or the version id.
type Reference struct {
	Kind RefKind
	ID   string
}

// Classify maps a shared URL to the tracker entity it references. The
// rules are checked in order: a "browse" segment, then a "versions"
// segment, then the /projects/<p>/issues/<key> form.
func Classify(rawURL string) (Reference, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Reference{}, false
	}

	segments := strings.Split(strings.TrimSuffix(u.Path, "/"), "/")
	last := segments[len(segments)-1]

	var ref Reference
	switch {
	case contains(segments, "browse"):
		ref = Reference{Kind: RefIssue, ID: last}
	case contains(segments, "versions"):
		ref = Reference{Kind: RefVersion, ID: last}
	case len(segments) > 4 && segments[1] == "projects" && segments[3] == "issues":
		ref = Reference{Kind: RefIssue, ID: segments[4]}
	default:
		return Reference{}, false
	}

	// "/browse" alone leaves the keyword itself as the last segment.
	if ref.ID == "" || ref.ID == "browse" || ref.ID == "versions" {
		return Reference{}, false
	}
	return ref, true
}

func contains(segments []string, s string) bool {
	for _, seg := range segments {
		if seg == s {
			return true
		}
	}
	return false
}
