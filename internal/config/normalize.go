package config

import (
	"fmt"
	"strings"
)

// normalize canonicalizes enumerated fields and trims free-form strings.
// Unknown enum values are errors rather than silent coercions.
func (c *Config) normalize() error {
	c.Version = strings.TrimSpace(c.Version)
	c.Site.Base = strings.TrimSpace(c.Site.Base)
	c.Site.Hostname = strings.TrimSpace(c.Site.Hostname)
	c.Site.Repo = strings.TrimSpace(c.Site.Repo)
	c.Site.Theme.Name = normalizeKey(c.Site.Theme.Name)

	for key, loc := range c.Site.Locales {
		loc.Lang = strings.TrimSpace(loc.Lang)
		c.Site.Locales[key] = loc
	}

	var err error
	if c.Output.Target, err = targets.normalize(string(c.Output.Target)); err != nil {
		return fmt.Errorf("output.target: %w", err)
	}
	if c.Monitoring.Logging.Level, err = logLevels.normalize(string(c.Monitoring.Logging.Level)); err != nil {
		return fmt.Errorf("monitoring.logging.level: %w", err)
	}
	if c.Monitoring.Logging.Format, err = logFormats.normalize(string(c.Monitoring.Logging.Format)); err != nil {
		return fmt.Errorf("monitoring.logging.format: %w", err)
	}
	return nil
}

// NormalizeTarget parses a target name given on the command line.
func NormalizeTarget(raw string) (Target, error) { return targets.normalize(raw) }
