package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeClassification ErrorType = "CLASSIFICATION"
	TypeFetch          ErrorType = "FETCH"
	TypeCorrelation    ErrorType = "CORRELATION"
	TypeConfiguration  ErrorType = "CONFIGURATION"
	TypeSlack          ErrorType = "SLACK"
	TypeInternal       ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if key, ok := e.Context["key"].(string); ok && key != "" {
			msg += fmt.Sprintf(" - key=%s", key)
		}
		if url, ok := e.Context["url"].(string); ok && url != "" {
			msg += fmt.Sprintf(" - url=%s", url)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError of the same type and message, so
// sentinels keep matching after WithError/WithContext copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Classification errors
var (
	ErrUnrecognizedURL = NewAppError(TypeClassification, "URL does not reference a known Jira entity", nil)
)

// Tracker and summary fetch errors
var (
	ErrIssueFetch = NewAppError(TypeFetch, "failed to fetch Jira issue", nil).
			WithSuggestion("Check that JIRA_ACCESS_TOKEN can read the issue")

	ErrVersionFetch = NewAppError(TypeFetch, "failed to fetch Jira version", nil)

	ErrRelatedCount = NewAppError(TypeFetch, "failed to count issues fixed by version", nil)

	ErrIssueSearch = NewAppError(TypeFetch, "failed to search Jira issues", nil).
			WithSuggestion("Verify the generated JQL is valid for the project")

	ErrSummaryFetch = NewAppError(TypeFetch, "failed to fetch AI summary", nil)

	ErrInvalidTrackerResponse = NewAppError(TypeFetch, "unexpected Jira response payload", nil)
)

// Correlation errors
var (
	ErrMissingTarget = NewAppError(TypeCorrelation, "could not extract message timestamp or channel id from payload", nil)

	ErrMalformedAction = NewAppError(TypeCorrelation, "action identifier is not a view_summary action", nil)

	ErrMissingActionValue = NewAppError(TypeCorrelation, "action carries no unfurl URL", nil)
)

// Configuration errors
var (
	ErrSummaryTokenMissing = NewAppError(TypeConfiguration, "summary service token is not set", nil).
				WithSuggestion("Set INTELLITLDR_TOKEN to enable AI summaries")

	ErrSlackTokenMissing = NewAppError(TypeConfiguration, "Slack bot token is missing", nil).
				WithSuggestion("Set SLACK_BOT_TOKEN")

	ErrJiraConfigMissing = NewAppError(TypeConfiguration, "Jira server or access token is missing", nil).
				WithSuggestion("Set JIRA_SERVER and JIRA_ACCESS_TOKEN")

	ErrUnsupportedConfigFormat = NewAppError(TypeConfiguration, "unsupported configuration file format", nil).
					WithSuggestion("Use a .toml, .yaml or .yml file")

	ErrSummaryProviderUnknown = NewAppError(TypeConfiguration, "summary provider not registered", nil)
)

// Slack errors
var (
	ErrUnfurl = NewAppError(TypeSlack, "chat.unfurl call failed", nil)

	ErrPostMessage = NewAppError(TypeSlack, "chat.postMessage call failed", nil)

	ErrSignature = NewAppError(TypeSlack, "request signature verification failed", nil)
)
