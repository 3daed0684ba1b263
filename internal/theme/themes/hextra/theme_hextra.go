// Package hextra describes the Hextra Hugo theme.
package hextra

import (
	th "git.home.luguber.info/inful/blogcfg/internal/theme"
)

type Theme struct{}

func (Theme) Name() string { return "hextra" }

func (Theme) Features() th.Features {
	return th.Features{
		Name:          "hextra",
		Target:        th.TargetHugo,
		Package:       "github.com/imfing/hextra",
		Version:       "v0.11.0",
		UsesModules:   true,
		AutoMainMenu:  true,
		MenuName:      "main",
		SupportsIcons: true,
	}
}

// ApplyParams fills in defaults around the user's options. A bare bool for
// search toggles it; partial maps keep the user's keys.
func (Theme) ApplyParams(_ th.ParamContext, params map[string]any) {
	switch v := params["search"].(type) {
	case nil:
		params["search"] = map[string]any{"enable": true, "type": "flexsearch", "flexsearch": map[string]any{"index": "content", "tokenize": "forward"}}
	case bool:
		params["search"] = map[string]any{"enable": v}
	case map[string]any:
		th.SetDefault(v, "enable", true)
		th.SetDefault(v, "type", "flexsearch")
	}
	section(params, "theme", map[string]any{"default": "system", "displayToggle": true})
	section(params, "navbar", map[string]any{"width": "normal", "displayTitle": true, "displayLogo": false})
}

func section(params map[string]any, key string, defaults map[string]any) {
	m, ok := params[key].(map[string]any)
	if !ok {
		m = map[string]any{}
		params[key] = m
	}
	for k, v := range defaults {
		th.SetDefault(m, k, v)
	}
}

func (Theme) CustomizeRoot(_ th.ParamContext, _ map[string]any) {}

func init() { th.Register(Theme{}) }
