package emit

import (
	"fmt"

	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/site"
	"git.home.luguber.info/inful/blogcfg/internal/theme"
)

// Output file names for the vuepress target.
const (
	VuePressConfigFile = "config.json"
	VuePressNavbarFile = "navbar.json"
)

// VuePress emits config.json and navbar.json for VuePress 2 with a
// theme-hope style theme.
type VuePress struct{}

func (VuePress) Target() theme.Target { return theme.TargetVuePress }

type vuepressConfig struct {
	Base     string                 `json:"base"`
	Hostname string                 `json:"hostname,omitempty"`
	Locales  map[string]site.Locale `json:"locales"`
	Theme    vuepressTheme          `json:"theme"`
}

type vuepressTheme struct {
	Name    string         `json:"name"`
	Package string         `json:"package,omitempty"`
	Version string         `json:"version,omitempty"`
	Options map[string]any `json:"options"`
}

// Emit renders the framework config and the per-locale navbar literal. Plain
// links stay bare strings: the theme labels them from page titles itself.
func (VuePress) Emit(in Input) ([]File, error) {
	cfg := in.Config
	feat := features(in)

	pkg, version := cfg.Theme.Package, cfg.Theme.Version
	if pkg == "" {
		pkg = feat.Package
	}
	if version == "" && cfg.Theme.Package == "" {
		version = feat.Version
	}

	options := themeParams(in)
	injectNavbars(options, cfg)

	doc := vuepressConfig{
		Base:     cfg.Base,
		Hostname: cfg.Hostname,
		Locales:  cfg.Locales,
		Theme: vuepressTheme{
			Name:    cfg.Theme.Name,
			Package: pkg,
			Version: version,
			Options: options,
		},
	}
	configData, err := site.EncodeJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("vuepress config: %w", err)
	}

	navbars := cfg.Navbars
	if navbars == nil {
		navbars = map[string]navbar.Navbar{}
	}
	navbarData, err := site.EncodeJSON(navbars)
	if err != nil {
		return nil, fmt.Errorf("vuepress navbar: %w", err)
	}

	return []File{
		{Name: VuePressConfigFile, Data: configData},
		{Name: VuePressNavbarFile, Data: navbarData},
	}, nil
}

// injectNavbars places navbars where theme-hope reads them: a single-locale
// site uses the top-level navbar option, otherwise each locale carries its own
// under options.locales. User-provided locale options are kept.
func injectNavbars(options map[string]any, cfg *site.Config) {
	if len(cfg.Navbars) == 0 {
		return
	}
	if len(cfg.Locales) == 1 {
		if n, ok := cfg.Navbars[site.RootLocale]; ok {
			options["navbar"] = n
			return
		}
	}
	locales, _ := options["locales"].(map[string]any)
	if locales == nil {
		locales = map[string]any{}
		options["locales"] = locales
	}
	for _, key := range cfg.NavbarKeys() {
		loc, _ := locales[key].(map[string]any)
		if loc == nil {
			loc = map[string]any{}
			locales[key] = loc
		}
		loc["navbar"] = cfg.Navbars[key]
	}
}
