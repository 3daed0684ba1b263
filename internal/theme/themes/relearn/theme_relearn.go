// Package relearn describes the Relearn Hugo theme.
package relearn

import (
	th "git.home.luguber.info/inful/blogcfg/internal/theme"
)

type Theme struct{}

func (Theme) Name() string { return "relearn" }

func (Theme) Features() th.Features {
	return th.Features{
		Name:        "relearn",
		Target:      th.TargetHugo,
		Package:     "github.com/McShelby/hugo-theme-relearn",
		UsesModules: true,
		// Relearn builds its sidebar from content; configured links go to the
		// shortcuts menu.
		MenuName: "shortcuts",
	}
}

func (Theme) ApplyParams(_ th.ParamContext, params map[string]any) {
	th.SetDefault(params, "themeVariant", "auto")
	th.SetDefault(params, "disableBreadcrumb", false)
	th.SetDefault(params, "collapsibleMenu", true)
	th.SetDefault(params, "showVisitedLinks", true)
	th.SetDefault(params, "disableLandingPageButton", true)
}

// CustomizeRoot labels the shortcuts menu section.
func (Theme) CustomizeRoot(_ th.ParamContext, root map[string]any) {
	params, _ := root["params"].(map[string]any)
	if params != nil {
		th.SetDefault(params, "disableShortcutsTitle", false)
	}
}

func init() { th.Register(Theme{}) }
