package config

import (
	"fmt"
	"strings"

	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
)

// validate rejects configurations that cannot be assembled. Shape problems
// that still allow generation are reported later by site.Check.
func (c *Config) validate() error {
	if c.Version != CurrentVersion {
		return derrors.ValidationFailed("version",
			fmt.Sprintf("unsupported version %q, expected %q", c.Version, CurrentVersion))
	}
	if len(c.Site.Locales) == 0 {
		return derrors.ConfigRequired("site.locales")
	}
	for locale, p := range c.NavbarFiles {
		if strings.TrimSpace(p) == "" {
			return derrors.ValidationFailed("navbar_files["+locale+"]", "path must not be empty")
		}
	}
	if c.Site.Repo != "" && c.Site.Repo != RepoAuto &&
		!strings.Contains(c.Site.Repo, "://") && strings.Count(c.Site.Repo, "/") != 1 {
		return derrors.ValidationFailed("site.repo",
			"must be a URL, an owner/name shorthand or \""+RepoAuto+"\"")
	}
	return nil
}
