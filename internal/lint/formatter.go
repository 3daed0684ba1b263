package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats check results for output.
type Formatter interface {
	Format(w io.Writer, result *Result, source string) error
}

// NewFormatter returns the formatter for a format name ("text" or "json").
func NewFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return TextFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// Format outputs results in human-readable text format.
func (TextFormatter) Format(w io.Writer, result *Result, source string) error {
	ew := &errWriter{w: w}
	ew.printf("Checking site configuration: %s\n", source)
	ew.printf("%s\n", strings.Repeat("━", 60))
	for _, issue := range result.Issues {
		icon := "⚠"
		if issue.Severity == SeverityError {
			icon = "✗"
		}
		ew.printf("%s %s\n", icon, issue.Location)
		ew.printf("  %s: %s (%s)\n", issue.Severity, issue.Message, issue.Rule)
	}
	if len(result.Issues) > 0 {
		ew.printf("%s\n", strings.Repeat("━", 60))
	}
	errs, warns := result.ErrorCount(), result.WarningCount()
	switch {
	case errs > 0:
		ew.printf("%d error%s, %d warning%s\n", errs, pluralize(errs), warns, pluralize(warns))
	case warns > 0:
		ew.printf("%d warning%s, no errors\n", warns, pluralize(warns))
	default:
		ew.printf("Site configuration is well-formed\n")
	}
	return ew.err
}

// JSONFormatter formats results as JSON.
type JSONFormatter struct{}

// JSONOutput represents the JSON output structure.
type JSONOutput struct {
	Source       string      `json:"source"`
	ErrorCount   int         `json:"error_count"`
	WarningCount int         `json:"warning_count"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single issue in JSON format.
type JSONIssue struct {
	Location string `json:"location"`
	Severity string `json:"severity"`
	Rule     string `json:"rule"`
	Message  string `json:"message"`
}

// Format outputs results in JSON format.
func (JSONFormatter) Format(w io.Writer, result *Result, source string) error {
	out := JSONOutput{
		Source:       source,
		ErrorCount:   result.ErrorCount(),
		WarningCount: result.WarningCount(),
		Issues:       make([]JSONIssue, 0, len(result.Issues)),
	}
	for _, issue := range result.Issues {
		out.Issues = append(out.Issues, JSONIssue{
			Location: issue.Location,
			Severity: strings.ToLower(issue.Severity.String()),
			Rule:     issue.Rule,
			Message:  issue.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
