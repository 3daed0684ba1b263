// Package site assembles the configuration value handed to the external
// static-site framework: base path, locale metadata, theme reference and the
// per-locale navbars.
package site

import (
	"sort"
	"strings"

	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
	"git.home.luguber.info/inful/blogcfg/internal/navbar"
)

// RootLocale is the locale key every site must declare.
const RootLocale = "/"

// Locale is the metadata attached to a site path prefix.
type Locale struct {
	Lang        string `yaml:"lang" json:"lang"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// ThemeRef references the external theme package. Nothing about the theme is
// implemented here.
type ThemeRef struct {
	Name    string         `yaml:"name" json:"name"`
	Package string         `yaml:"package,omitempty" json:"package,omitempty"`
	Version string         `yaml:"version,omitempty" json:"version,omitempty"`
	Options map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// Config is the assembled site configuration.
type Config struct {
	Base     string                   `yaml:"base" json:"base"`
	Hostname string                   `yaml:"hostname,omitempty" json:"hostname,omitempty"`
	Repo     string                   `yaml:"repo,omitempty" json:"repo,omitempty"`
	Locales  map[string]Locale        `yaml:"locales" json:"locales"`
	Theme    ThemeRef                 `yaml:"theme" json:"theme"`
	Navbars  map[string]navbar.Navbar `yaml:"navbar,omitempty" json:"navbar,omitempty"`
}

// Option customizes Assemble.
type Option func(*Config)

// WithHostname sets the canonical host (scheme included) the site is served from.
func WithHostname(h string) Option { return func(c *Config) { c.Hostname = h } }

// WithRepo sets the source repository URL shown by the theme.
func WithRepo(r string) Option { return func(c *Config) { c.Repo = r } }

// WithNavbar attaches the navbar of a locale.
func WithNavbar(locale string, n navbar.Navbar) Option {
	return func(c *Config) {
		if c.Navbars == nil {
			c.Navbars = map[string]navbar.Navbar{}
		}
		c.Navbars[locale] = n.Clone()
	}
}

// Assemble composes locale metadata and a theme reference into a single
// configuration value. Fields the framework requires must be present; their
// framework-level semantics are not re-validated here.
func Assemble(base string, locales map[string]Locale, theme ThemeRef, opts ...Option) (*Config, error) {
	if strings.TrimSpace(base) == "" {
		return nil, derrors.ConfigRequired("base")
	}
	if len(locales) == 0 {
		return nil, derrors.ConfigRequired("locales")
	}
	if strings.TrimSpace(theme.Name) == "" {
		return nil, derrors.ConfigRequired("theme.name")
	}
	cfg := &Config{
		Base:    base,
		Locales: make(map[string]Locale, len(locales)),
		Theme:   theme,
	}
	for k, v := range locales {
		cfg.Locales[k] = v
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg, nil
}

// LocaleKeys returns the locale prefixes with the root locale first and the
// rest in lexical order.
func (c *Config) LocaleKeys() []string {
	return sortedKeys(c.Locales)
}

// NavbarKeys returns the locales that carry a navbar, ordered like LocaleKeys.
func (c *Config) NavbarKeys() []string {
	return sortedKeys(c.Navbars)
}

// LanguageKey derives the Hugo language key for a locale prefix: "/en/" is
// "en"; the root locale uses its lowercased language tag.
func LanguageKey(locale, lang string) string {
	if k := strings.Trim(locale, "/"); k != "" {
		return strings.ToLower(k)
	}
	if lang == "" {
		return "en"
	}
	return strings.ToLower(lang)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == RootLocale || keys[j] == RootLocale {
			return keys[i] == RootLocale && keys[j] != RootLocale
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Example returns the reference blog configuration.
func Example() *Config {
	cfg, _ := Assemble("/",
		map[string]Locale{
			RootLocale: {
				Lang:        "zh-CN",
				Title:       "Skiars's Rambling",
				Description: "A blog demo for vuepress-theme-hope",
			},
		},
		ThemeRef{Name: "hope"},
		WithNavbar(RootLocale, ExampleNavbar()),
	)
	return cfg
}

// ExampleNavbar returns the reference blog navbar.
func ExampleNavbar() navbar.Navbar {
	return navbar.Build(
		navbar.Path("/"),
		navbar.Group{
			Text:   "Posts",
			Icon:   "edit",
			Prefix: "/posts/",
			Children: navbar.Navbar{
				navbar.Group{
					Text:     "Interpreter",
					Icon:     "edit",
					Prefix:   "interpreter/",
					Children: navbar.Navbar{navbar.Path("0-intro")},
				},
				navbar.Item("Hello world", "edit", "2023/hello-world"),
			},
		},
		navbar.Item("About", "info", "/about"),
	)
}
