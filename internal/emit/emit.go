// Package emit renders the assembled site configuration into the files an
// external static-site framework reads at build start.
package emit

import (
	"fmt"

	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/site"
	"git.home.luguber.info/inful/blogcfg/internal/theme"
)

// File is one generated output file, relative to the output directory.
type File struct {
	Name string
	Data []byte
}

// Input is everything an emitter needs. Titles maps resolved plain links to
// display labels; links missing from it fall back to navbar.Label.
type Input struct {
	Config *site.Config
	Theme  theme.Theme
	Titles map[string]string
}

// Site implements theme.ParamContext.
func (in Input) Site() *site.Config { return in.Config }

// Emitter produces the configuration files for one framework.
type Emitter interface {
	Target() theme.Target
	Emit(in Input) ([]File, error)
}

// For returns the emitter for target.
func For(target theme.Target) (Emitter, error) {
	switch target {
	case theme.TargetVuePress:
		return VuePress{}, nil
	case theme.TargetHugo:
		return Hugo{}, nil
	default:
		return nil, fmt.Errorf("unsupported target %q", target)
	}
}

// themeParams builds the theme parameter map: the user's options first, then
// the theme fills in whatever they left unset.
func themeParams(in Input) map[string]any {
	params := map[string]any{}
	if in.Config.Theme.Options != nil {
		theme.MergeParams(params, in.Config.Theme.Options)
	}
	if in.Theme != nil {
		in.Theme.ApplyParams(in, params)
	}
	return params
}

// label picks the display name of a resolved entry.
func (in Input) label(r navbar.Resolved) string {
	if r.Text != "" {
		return r.Text
	}
	if t, ok := in.Titles[r.Link]; ok && t != "" {
		return t
	}
	return navbar.Label(r.Link)
}

func features(in Input) theme.Features {
	if in.Theme == nil {
		return theme.NullTheme{}.Features()
	}
	return in.Theme.Features()
}
