// Package theme describes the external themes a site can reference. Themes are
// never implemented here: a descriptor only declares where the theme comes
// from, which generator consumes it, and which default parameters it expects.
package theme

import (
	"sort"
	"strings"
	"sync"

	"git.home.luguber.info/inful/blogcfg/internal/site"
)

// Target names the external static-site framework a theme belongs to.
type Target string

const (
	TargetVuePress Target = "vuepress"
	TargetHugo     Target = "hugo"
)

// Features describes capability flags and the package reference for a theme.
type Features struct {
	Name   string
	Target Target
	// Package is the npm package (vuepress) or Hugo module path.
	Package string
	Version string
	// UsesModules imports the theme as a Hugo module instead of a themes/ dir.
	UsesModules bool
	// AutoMainMenu appends the theme's search and toggle entries to the menu.
	AutoMainMenu bool
	// MenuName is the Hugo menu the navbar is rendered into.
	MenuName string
	// SupportsIcons reports whether the theme renders navbar icons.
	SupportsIcons bool
}

// ParamContext is the minimal surface a theme needs from the generator.
type ParamContext interface {
	Site() *site.Config
}

// Theme provides hooks for shaping the emitted configuration.
type Theme interface {
	Name() string
	Features() Features
	ApplyParams(ctx ParamContext, params map[string]any)
	CustomizeRoot(ctx ParamContext, root map[string]any)
}

var (
	regMu sync.RWMutex
	reg   = map[string]Theme{}
)

// Register registers a Theme implementation. Duplicate names are ignored.
func Register(t Theme) {
	if t == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := reg[t.Name()]; !ok {
		reg[t.Name()] = t
	}
}

// Get retrieves a theme by (case-insensitive) name, or nil.
func Get(name string) Theme {
	regMu.RLock()
	defer regMu.RUnlock()
	return reg[Normalize(name)]
}

// Resolve returns the registered theme or NullTheme for unknown names.
func Resolve(name string) (Theme, bool) {
	if t := Get(name); t != nil {
		return t, true
	}
	return NullTheme{name: Normalize(name)}, false
}

// Names lists registered theme names in order.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(reg))
	for n := range reg {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Normalize case-folds and trims a theme name.
func Normalize(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// NullTheme is a no-op theme used for unknown names. It targets Hugo with a
// plain theme directory reference.
type NullTheme struct{ name string }

func (n NullTheme) Name() string { return n.name }
func (n NullTheme) Features() Features {
	return Features{Name: n.name, Target: TargetHugo, MenuName: "main"}
}
func (NullTheme) ApplyParams(ParamContext, map[string]any)   {}
func (NullTheme) CustomizeRoot(ParamContext, map[string]any) {}

// SetDefault sets params[key] = value unless key is already present.
func SetDefault(params map[string]any, key string, value any) {
	if _, ok := params[key]; !ok {
		params[key] = value
	}
}

// MergeParams deep-merges src into dst. Maps merge recursively; slices and
// scalars are replaced.
func MergeParams(dst, src map[string]any) {
	for k, v := range src {
		if mv, ok := v.(map[string]any); ok {
			if existing, ok2 := dst[k].(map[string]any); ok2 {
				MergeParams(existing, mv)
			} else {
				cp := map[string]any{}
				MergeParams(cp, mv)
				dst[k] = cp
			}
			continue
		}
		dst[k] = v
	}
}
