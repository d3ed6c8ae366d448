package httpclient

import (
	"net/http"
	"time"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// New returns an *http.Client bounded by timeout. Every outbound call the
// bot makes (Jira, summary service, Slack) goes through one of these.
func New(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}
