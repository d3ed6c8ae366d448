package models

// SummaryResult is what a summarizer hands back. Text is only meaningful
// when Available is true.
type SummaryResult struct {
	Text      string
	Available bool
}

func SummaryUnavailable() SummaryResult {
	return SummaryResult{}
}

func SummaryOf(text string) SummaryResult {
	return SummaryResult{Text: text, Available: true}
}
