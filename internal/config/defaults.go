package config

import "git.home.luguber.info/inful/blogcfg/internal/site"

// RepoAuto asks the generator to derive the repository link from the
// enclosing git checkout.
const RepoAuto = "auto"

// Default values applied to empty fields.
const (
	DefaultBase             = "/"
	DefaultTheme            = "hope"
	DefaultOutputDirectory  = "./dist"
	DefaultContentDirectory = "src"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config)
	Domain() string
}

type siteDefaults struct{}

func (siteDefaults) Domain() string { return "site" }

func (siteDefaults) ApplyDefaults(cfg *Config) {
	if cfg.Site.Base == "" {
		cfg.Site.Base = DefaultBase
	}
	if cfg.Site.Theme.Name == "" {
		cfg.Site.Theme.Name = DefaultTheme
	}
	if cfg.Site.Locales == nil {
		cfg.Site.Locales = map[string]site.Locale{}
	}
}

type outputDefaults struct{}

func (outputDefaults) Domain() string { return "output" }

func (outputDefaults) ApplyDefaults(cfg *Config) {
	if cfg.Output.Directory == "" {
		cfg.Output.Directory = DefaultOutputDirectory
	}
	if cfg.Content.Directory == "" {
		cfg.Content.Directory = DefaultContentDirectory
	}
}

type monitoringDefaults struct{}

func (monitoringDefaults) Domain() string { return "monitoring" }

func (monitoringDefaults) ApplyDefaults(cfg *Config) {
	if cfg.Monitoring.Logging.Level == "" {
		cfg.Monitoring.Logging.Level = LogLevelInfo
	}
	if cfg.Monitoring.Logging.Format == "" {
		cfg.Monitoring.Logging.Format = LogFormatText
	}
}

var defaultAppliers = []DefaultApplier{siteDefaults{}, outputDefaults{}, monitoringDefaults{}}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	for _, a := range defaultAppliers {
		a.ApplyDefaults(c)
	}
}
