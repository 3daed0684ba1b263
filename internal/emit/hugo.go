package emit

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/site"
	"git.home.luguber.info/inful/blogcfg/internal/theme"
)

// Output file names for the hugo target.
const (
	HugoConfigFile = "hugo.yaml"
	HugoGoModFile  = "go.mod"
)

// Weights for the entries module themes append to the main menu. They sort
// after every navbar entry.
const (
	weightSearch      = 990
	weightThemeToggle = 998
	weightRepository  = 999
)

// Hugo emits hugo.yaml (and go.mod for module themes).
type Hugo struct{}

func (Hugo) Target() theme.Target { return theme.TargetHugo }

type menuEntry struct {
	Identifier string         `yaml:"identifier,omitempty"`
	Name       string         `yaml:"name"`
	URL        string         `yaml:"url,omitempty"`
	Parent     string         `yaml:"parent,omitempty"`
	Weight     int            `yaml:"weight"`
	Pre        string         `yaml:"pre,omitempty"`
	Params     map[string]any `yaml:"params,omitempty"`
}

// Emit renders hugo.yaml. The root locale becomes the default content
// language and carries the top-level menu; other locales get a language
// block with their own menus.
func (Hugo) Emit(in Input) ([]File, error) {
	cfg := in.Config
	feat := features(in)
	menuName := feat.MenuName
	if menuName == "" {
		menuName = "main"
	}

	rootLocale := cfg.Locales[site.RootLocale]
	defaultLang := site.LanguageKey(site.RootLocale, rootLocale.Lang)

	params := themeParams(in)
	if rootLocale.Description != "" {
		theme.SetDefault(params, "description", rootLocale.Description)
	}

	root := map[string]any{
		"baseURL":                BaseURL(cfg.Hostname, cfg.Base),
		"title":                  rootLocale.Title,
		"languageCode":           rootLocale.Lang,
		"defaultContentLanguage": defaultLang,
		"markup": map[string]any{
			"goldmark": map[string]any{"renderer": map[string]any{"unsafe": true}},
		},
		"params": params,
	}

	languages := map[string]any{}
	for i, key := range cfg.LocaleKeys() {
		loc := cfg.Locales[key]
		lang := map[string]any{
			"languageCode": loc.Lang,
			"languageName": languageName(loc),
			"title":        loc.Title,
			"weight":       i + 1,
			"contentDir":   contentDir(key),
		}
		if loc.Description != "" {
			lang["params"] = map[string]any{"description": loc.Description}
		}
		items := menuFor(in, feat, key)
		if key == site.RootLocale {
			if len(items) > 0 {
				root["menu"] = map[string]any{menuName: items}
			}
		} else if len(items) > 0 {
			lang["menus"] = map[string]any{menuName: items}
		}
		languages[site.LanguageKey(key, loc.Lang)] = lang
	}
	root["languages"] = languages

	if feat.UsesModules && feat.Package != "" {
		root["module"] = map[string]any{"imports": []map[string]any{{"path": feat.Package}}}
	} else {
		root["theme"] = cfg.Theme.Name
	}

	if in.Theme != nil {
		in.Theme.CustomizeRoot(in, root)
	}

	data, err := site.EncodeYAML(root)
	if err != nil {
		return nil, fmt.Errorf("hugo config: %w", err)
	}
	files := []File{{Name: HugoConfigFile, Data: data}}
	if feat.UsesModules && feat.Package != "" {
		files = append(files, File{Name: HugoGoModFile, Data: goMod(cfg, feat)})
	}
	return files, nil
}

func menuFor(in Input, feat theme.Features, locale string) []menuEntry {
	n, ok := in.Config.Navbars[locale]
	var items []menuEntry
	if ok {
		items = menuEntries(in, feat, locale, navbar.Resolve(n), "")
	}
	if !feat.AutoMainMenu {
		return items
	}
	items = append(items,
		menuEntry{Name: "Search", Weight: weightSearch, Params: map[string]any{"type": "search"}},
		menuEntry{Name: "Theme", Weight: weightThemeToggle, Params: map[string]any{"type": "theme-toggle", "label": false}},
	)
	if repo := in.Config.Repo; strings.Contains(repo, "github.com") {
		items = append(items, menuEntry{Name: "GitHub", Weight: weightRepository, URL: repo, Params: map[string]any{"icon": "github"}})
	}
	return items
}

// menuEntries flattens the resolved navbar into Hugo menu entries linked by
// identifier. Siblings are weighted in navbar order. Icons become the "pre"
// field only for themes that render them.
func menuEntries(in Input, feat theme.Features, locale string, rs []navbar.Resolved, parent string) []menuEntry {
	var out []menuEntry
	for i, r := range rs {
		id := navbar.Identifier(locale, r)
		e := menuEntry{
			Identifier: id,
			Name:       in.label(r),
			Parent:     parent,
			Weight:     (i + 1) * 10,
		}
		if feat.SupportsIcons {
			e.Pre = r.Icon
		}
		if r.Link != "" {
			e.URL = withBase(in.Config.Base, r.Link)
		}
		out = append(out, e)
		out = append(out, menuEntries(in, feat, locale, r.Children, id)...)
	}
	return out
}

// BaseURL joins hostname and base. Without a hostname the base path alone is
// used, which Hugo accepts for relative builds.
func BaseURL(hostname, base string) string {
	if hostname == "" {
		return base
	}
	if !strings.Contains(hostname, "://") {
		hostname = "https://" + hostname
	}
	return strings.TrimSuffix(hostname, "/") + base
}

func contentDir(locale string) string {
	if k := strings.Trim(locale, "/"); k != "" {
		return "content/" + k
	}
	return "content"
}

func languageName(loc site.Locale) string {
	if loc.Lang != "" {
		return loc.Lang
	}
	return loc.Title
}

// withBase prefixes site-absolute links with a non-root base path.
func withBase(base, link string) string {
	if base == "" || base == "/" || navbar.IsExternal(link) || !navbar.IsAbsolute(link) {
		return link
	}
	return strings.TrimSuffix(base, "/") + link
}

func goMod(cfg *site.Config, feat theme.Features) []byte {
	name := "blogcfg-site"
	if host := hostOnly(cfg.Hostname); host != "" {
		name = strings.ReplaceAll(host, ".", "-")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n\ngo 1.21\n", name)
	if feat.Version != "" {
		fmt.Fprintf(&b, "\nrequire %s %s\n", feat.Package, feat.Version)
	}
	return []byte(b.String())
}

func hostOnly(hostname string) string {
	s := hostname
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexAny(s, "/:"); i >= 0 {
		s = s[:i]
	}
	return s
}
