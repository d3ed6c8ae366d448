package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("connection refused")
	appErr := ErrIssueFetch.WithError(baseErr)

	if appErr.Err != baseErr {
		t.Errorf("Expected underlying error to be %v, got %v", baseErr, appErr.Err)
	}

	if appErr.Type != TypeFetch {
		t.Errorf("Expected type %s, got %s", TypeFetch, appErr.Type)
	}
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrIssueFetch.WithContext("key", "PROJ-1").WithContext("url", "https://issues.example.com/browse/PROJ-1")

	if appErr.Context["key"] != "PROJ-1" {
		t.Errorf("Expected key context 'PROJ-1', got %v", appErr.Context["key"])
	}

	if appErr.Context["url"] != "https://issues.example.com/browse/PROJ-1" {
		t.Errorf("Expected url context, got %v", appErr.Context["url"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name: "Simple error without underlying error",
			err:  ErrMissingTarget,
			contains: []string{
				"CORRELATION",
				"could not extract message timestamp",
			},
		},
		{
			name: "Error with underlying error",
			err:  ErrVersionFetch.WithError(errors.New("404 Not Found")),
			contains: []string{
				"FETCH",
				"failed to fetch Jira version",
				"404 Not Found",
			},
		},
		{
			name: "Error with key and url context",
			err: ErrIssueFetch.WithError(errors.New("timeout")).
				WithContext("key", "PROJ-7").
				WithContext("url", "https://issues.example.com/browse/PROJ-7"),
			contains: []string{
				"FETCH",
				"timeout",
				"key=PROJ-7",
				"url=https://issues.example.com/browse/PROJ-7",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(errMsg, substr) {
					t.Errorf("Expected error message to contain %q, got: %s", substr, errMsg)
				}
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	baseErr := errors.New("base error")
	appErr := ErrUnfurl.WithError(baseErr)

	unwrapped := appErr.Unwrap()
	if unwrapped != baseErr {
		t.Errorf("Expected unwrapped error to be %v, got %v", baseErr, unwrapped)
	}

	if !errors.Is(appErr, baseErr) {
		t.Error("errors.Is should work with AppError")
	}
}

func TestAppError_IsMatchesSentinelAfterCopy(t *testing.T) {
	appErr := ErrSummaryTokenMissing.WithContext("key", "PROJ-1")

	if !errors.Is(appErr, ErrSummaryTokenMissing) {
		t.Error("copied error should still match its sentinel")
	}
	if errors.Is(appErr, ErrSummaryFetch) {
		t.Error("different sentinels must not match")
	}

	var target *AppError
	if !errors.As(appErr, &target) || target.Type != TypeConfiguration {
		t.Errorf("expected CONFIGURATION AppError, got %v", target)
	}
}

func TestAppError_ChainedContext(t *testing.T) {
	appErr := ErrIssueSearch.
		WithError(errors.New("jql parse error")).
		WithContext("jql", `project = 10 AND fixVersion = "1.0"`).
		WithContext("version", "1.0")

	if appErr.Context["version"] != "1.0" {
		t.Errorf("Expected version context, got %v", appErr.Context["version"])
	}

	if ErrIssueSearch.Context != nil {
		t.Error("Original error should not have context")
	}
}
