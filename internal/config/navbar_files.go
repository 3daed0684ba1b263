package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
	"git.home.luguber.info/inful/blogcfg/internal/lint"
	"git.home.luguber.info/inful/blogcfg/internal/logfields"
	"git.home.luguber.info/inful/blogcfg/internal/navbar"
)

// Rule identifiers for navbar definitions found in more than one place.
const (
	RuleNavbarDuplicate          = "navbar-duplicate"
	RuleNavbarDuplicateDiverging = "navbar-duplicate-diverging"
)

// ReadNavbarFile reads a standalone navbar YAML file.
func ReadNavbarFile(path string) (navbar.Navbar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to read navbar file").
			WithContext("path", path)
	}
	var n navbar.Navbar
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryNavbar, derrors.SeverityFatal, "failed to parse navbar file").
			WithContext("path", path)
	}
	return n, nil
}

// mergeNavbarFiles combines inline navbars with navbar_files. A locale with
// both definitions keeps the inline one; the pair is reported as a duplicate,
// and every diverging field becomes an error-level issue.
func (c *Config) mergeNavbarFiles(dir string) error {
	merged := make(map[string]navbar.Navbar, len(c.Navbar)+len(c.NavbarFiles))
	for locale, n := range c.Navbar {
		merged[locale] = n
	}

	locales := make([]string, 0, len(c.NavbarFiles))
	for locale := range c.NavbarFiles {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	for _, locale := range locales {
		p := c.NavbarFiles[locale]
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		fromFile, err := ReadNavbarFile(p)
		if err != nil {
			return err
		}
		inline, ok := merged[locale]
		if !ok {
			merged[locale] = fromFile
			continue
		}
		c.issues = append(c.issues, compareDuplicate(locale, inline, fromFile, c.NavbarFiles[locale])...)
		slog.Warn("Navbar defined both inline and in a file; keeping the inline definition",
			logfields.Locale(locale), logfields.Path(p))
	}
	c.navbars = merged
	return nil
}

func compareDuplicate(locale string, inline, fromFile navbar.Navbar, file string) []lint.Issue {
	scope := "navbar[" + locale + "]"
	diffs := navbar.Compare(inline, fromFile)
	if len(diffs) == 0 {
		return []lint.Issue{lint.Warnf(scope, RuleNavbarDuplicate,
			fmt.Sprintf("navbar is also defined in %s with identical content", file))}
	}
	issues := make([]lint.Issue, 0, len(diffs))
	for _, d := range diffs {
		issues = append(issues, lint.Errorf(scope+d.Location, RuleNavbarDuplicateDiverging,
			fmt.Sprintf("inline and %s disagree on %s: %q vs %q", file, d.Field, d.Left, d.Right)))
	}
	return issues
}

// DuplicateError returns a navbar error when loading found diverging
// duplicate definitions.
func (c *Config) DuplicateError() error {
	counts := map[string]int{}
	var order []string
	for _, issue := range c.issues {
		if issue.Rule != RuleNavbarDuplicateDiverging {
			continue
		}
		locale := localeOf(issue.Location)
		if counts[locale] == 0 {
			order = append(order, locale)
		}
		counts[locale]++
	}
	if len(order) == 0 {
		return nil
	}
	return derrors.DuplicateNavbar(order[0], counts[order[0]])
}

// localeOf extracts "/en/" from "navbar[/en/][1]".
func localeOf(location string) string {
	const prefix = "navbar["
	rest := location[len(prefix):]
	for i := 0; i < len(rest); i++ {
		if rest[i] == ']' {
			return rest[:i]
		}
	}
	return rest
}
