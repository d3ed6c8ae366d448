package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	domainErrors "github.com/Tomas-vilte/jira-unfurl-bot/internal/errors"
	"github.com/Tomas-vilte/jira-unfurl-bot/internal/i18n"
)

var (
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgYellow)
	Dim     = color.New(color.FgHiBlack)
)

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("✗"), Error.Sprint(msg))
}

// PrintKeyValue prints "key value" with the key highlighted, one pair per line.
func PrintKeyValue(w io.Writer, key, value string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Info.Sprint(key), Accent.Sprint(value))
}

// HandleAppError prints err for a terminal user. AppErrors get their type,
// cause and suggestion on separate lines. t may be nil.
func HandleAppError(w io.Writer, err error, t *i18n.Translations) {
	if err == nil {
		return
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	PrintError(w, fmt.Sprintf("%s: %s", appErr.Type, appErr.Message))

	if appErr.Err != nil {
		detailsPrefix := "Details:"
		if t != nil {
			detailsPrefix = t.GetMessage("ui_error_details", 0, nil)
		}
		_, _ = Dim.Fprintf(w, "  %s %v\n", detailsPrefix, appErr.Err)
	}

	if appErr.Suggestion != "" {
		tryPrefix := "Try:"
		if t != nil {
			tryPrefix = t.GetMessage("ui_error_try_suggestion", 0, nil)
		}
		lines := strings.Split(appErr.Suggestion, "\n")
		_, _ = fmt.Fprintf(w, "  %s %s\n", Info.Sprint(tryPrefix), lines[0])
		for _, line := range lines[1:] {
			_, _ = fmt.Fprintf(w, "       %s\n", line)
		}
	}
}
