package config

import (
	"git.home.luguber.info/inful/blogcfg/internal/lint"
	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/site"
)

// CurrentVersion is the only supported configuration file version.
const CurrentVersion = "1"

// Config represents the blogcfg.yaml configuration file.
type Config struct {
	Version string     `yaml:"version"`
	Site    SiteConfig `yaml:"site"`
	// Navbar holds inline navbar definitions keyed by locale prefix.
	Navbar map[string]navbar.Navbar `yaml:"navbar,omitempty"`
	// NavbarFiles points locales at standalone navbar YAML files
	// (relative to the configuration file).
	NavbarFiles map[string]string `yaml:"navbar_files,omitempty"`
	Content     ContentConfig     `yaml:"content"`
	Output      OutputConfig      `yaml:"output"`
	Monitoring  MonitoringConfig  `yaml:"monitoring"`

	// path is the file the configuration was loaded from.
	path string
	// navbars is the merged per-locale navbar set after duplicate detection.
	navbars map[string]navbar.Navbar
	// issues collects data problems found while loading.
	issues []lint.Issue
}

// SiteConfig is the site section as written in the file.
type SiteConfig struct {
	Base     string `yaml:"base"`
	Hostname string `yaml:"hostname,omitempty"`
	// Repo is a repository URL, or "auto" to read the git origin remote.
	Repo    string                 `yaml:"repo,omitempty"`
	Locales map[string]site.Locale `yaml:"locales"`
	Theme   site.ThemeRef          `yaml:"theme"`
}

// ContentConfig locates the site's markdown sources.
type ContentConfig struct {
	Directory string `yaml:"directory"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	// Target overrides the framework implied by the theme.
	Target Target `yaml:"target,omitempty"`
	// Clean removes stale generated files before writing.
	Clean bool `yaml:"clean,omitempty"`
}

// MonitoringConfig represents logging and metrics configuration.
type MonitoringConfig struct {
	Logging     LoggingConfig `yaml:"logging"`
	MetricsFile string        `yaml:"metrics_file,omitempty"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string { return c.path }

// LoadIssues returns data problems found while loading (duplicate navbars).
func (c *Config) LoadIssues() []lint.Issue { return append([]lint.Issue(nil), c.issues...) }

// Navbars returns the merged navbar per locale.
func (c *Config) Navbars() map[string]navbar.Navbar {
	if c.navbars == nil {
		return c.Navbar
	}
	return c.navbars
}

// Assemble builds the framework-facing site configuration.
func (c *Config) Assemble() (*site.Config, error) {
	opts := []site.Option{site.WithHostname(c.Site.Hostname)}
	if c.Site.Repo != "" && c.Site.Repo != RepoAuto {
		opts = append(opts, site.WithRepo(c.Site.Repo))
	}
	for locale, n := range c.Navbars() {
		opts = append(opts, site.WithNavbar(locale, n))
	}
	return site.Assemble(c.Site.Base, c.Site.Locales, c.Site.Theme, opts...)
}
