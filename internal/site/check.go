package site

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/blogcfg/internal/lint"
	"git.home.luguber.info/inful/blogcfg/internal/navbar"
)

// Rule identifiers reported by Check.
const (
	RuleBaseFormat          = "base-format"
	RuleRootLocaleRequired  = "root-locale-required"
	RuleLocaleKeyFormat     = "locale-key-format"
	RuleLocaleKeyCollision  = "locale-key-collision"
	RuleLocaleLangRequired  = "locale-lang-required"
	RuleLocaleLangInvalid   = "locale-lang-invalid"
	RuleLocaleTitleEmpty    = "locale-title-empty"
	RuleNavbarLocaleUnknown = "navbar-locale-unknown"
	RuleHostnameInvalid     = "hostname-invalid"
)

// Check asserts the data shape of cfg. It never mutates cfg.
func Check(cfg *Config) []lint.Issue {
	var issues []lint.Issue
	if !strings.HasPrefix(cfg.Base, "/") || !strings.HasSuffix(cfg.Base, "/") {
		issues = append(issues, lint.Errorf("site.base", RuleBaseFormat, "base must start and end with /"))
	}
	if cfg.Hostname != "" {
		if u, err := url.Parse(cfg.Hostname); err != nil || u.Scheme == "" || u.Host == "" {
			issues = append(issues, lint.Errorf("site.hostname", RuleHostnameInvalid, "hostname must be an absolute URL"))
		}
	}
	if _, ok := cfg.Locales[RootLocale]; !ok {
		issues = append(issues, lint.Errorf("site.locales", RuleRootLocaleRequired, `locales must contain "/"`))
	}
	// Hugo keys languages by name; two locales must not map to the same one.
	langKeys := map[string]string{}
	for _, key := range cfg.LocaleKeys() {
		loc := cfg.Locales[key]
		at := "site.locales[" + key + "]"
		if !strings.HasPrefix(key, "/") || !strings.HasSuffix(key, "/") {
			issues = append(issues, lint.Errorf(at, RuleLocaleKeyFormat, "locale key must start and end with /"))
		}
		lk := LanguageKey(key, loc.Lang)
		if other, dup := langKeys[lk]; dup {
			issues = append(issues, lint.Errorf(at, RuleLocaleKeyCollision,
				"locale shares the language key "+strconv.Quote(lk)+" with "+other))
		} else {
			langKeys[lk] = key
		}
		switch {
		case strings.TrimSpace(loc.Lang) == "":
			issues = append(issues, lint.Errorf(at+".lang", RuleLocaleLangRequired, "lang is required"))
		default:
			if _, err := language.Parse(loc.Lang); err != nil {
				issues = append(issues, lint.Errorf(at+".lang", RuleLocaleLangInvalid, "lang is not a BCP 47 tag: "+loc.Lang))
			}
		}
		if strings.TrimSpace(loc.Title) == "" {
			issues = append(issues, lint.Warnf(at+".title", RuleLocaleTitleEmpty, "title is empty"))
		}
	}
	for _, key := range cfg.NavbarKeys() {
		scope := "navbar[" + key + "]"
		if _, ok := cfg.Locales[key]; !ok {
			issues = append(issues, lint.Errorf(scope, RuleNavbarLocaleUnknown, "navbar names an undeclared locale"))
		}
		issues = append(issues, navbar.Validate(scope, cfg.Navbars[key])...)
	}
	return issues
}
