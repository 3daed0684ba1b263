// Package lint holds the issue model shared by the navbar and site shape checks
// and the formatters used by the validate command.
package lint

// Severity indicates the importance level of an issue.
type Severity int

const (
	// SeverityWarning indicates definition smells that don't block generation.
	SeverityWarning Severity = iota + 1
	// SeverityError indicates data the external framework will reject.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Issue represents a single shape problem found in the site data.
type Issue struct {
	Location string   // e.g. "site.locales" or "navbar[/][1].children[0]"
	Severity Severity // Issue severity level
	Rule     string   // Rule identifier (e.g., "group-text-required")
	Message  string   // Brief description of the issue
}

// Errorf builds an error-level issue.
func Errorf(location, rule, message string) Issue {
	return Issue{Location: location, Severity: SeverityError, Rule: rule, Message: message}
}

// Warnf builds a warning-level issue.
func Warnf(location, rule, message string) Issue {
	return Issue{Location: location, Severity: SeverityWarning, Rule: rule, Message: message}
}

// Result contains all issues found during a check.
type Result struct {
	Issues []Issue
}

// Add appends issues to the result.
func (r *Result) Add(issues ...Issue) { r.Issues = append(r.Issues, issues...) }

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool { return r.ErrorCount() > 0 }

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int { return r.count(SeverityError) }

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int { return r.count(SeverityWarning) }

func (r *Result) count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}
