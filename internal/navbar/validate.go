package navbar

import (
	"strings"

	"git.home.luguber.info/inful/blogcfg/internal/lint"
)

// Rule identifiers reported by Validate.
const (
	RuleLinkPathRequired   = "link-path-required"
	RuleGroupTextRequired  = "group-text-required"
	RuleGroupChildrenEmpty = "group-children-empty"
	RuleEntryNil           = "entry-nil"
)

// Validate reports shape problems in n. Locations are prefixed with scope
// (for example "navbar[/]").
func Validate(scope string, n Navbar) []lint.Issue {
	var issues []lint.Issue
	_ = Walk(n, func(loc string, e Entry, _ int) error {
		at := scope + loc
		switch v := e.(type) {
		case nil:
			issues = append(issues, lint.Errorf(at, RuleEntryNil, "entry is empty"))
		case Link:
			if strings.TrimSpace(v.Path) == "" {
				issues = append(issues, lint.Errorf(at, RuleLinkPathRequired, "link has no path"))
			}
		case Group:
			if strings.TrimSpace(v.Text) == "" {
				issues = append(issues, lint.Errorf(at, RuleGroupTextRequired, "group has no text"))
			}
			if len(v.Children) == 0 {
				issues = append(issues, lint.Warnf(at, RuleGroupChildrenEmpty, "group declares no children"))
			}
		}
		return nil
	})
	return issues
}
