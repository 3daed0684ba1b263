// Package hope describes vuepress-theme-hope.
package hope

import (
	"git.home.luguber.info/inful/blogcfg/internal/gitinfo"
	th "git.home.luguber.info/inful/blogcfg/internal/theme"
)

type Theme struct{}

func (Theme) Name() string { return "hope" }

func (Theme) Features() th.Features {
	return th.Features{
		Name:          "hope",
		Target:        th.TargetVuePress,
		Package:       "vuepress-theme-hope",
		Version:       "2.0.0-rc.52",
		SupportsIcons: true,
	}
}

func (Theme) ApplyParams(ctx th.ParamContext, params map[string]any) {
	th.SetDefault(params, "iconAssets", "fontawesome-with-brands")
	th.SetDefault(params, "darkmode", "switch")
	if s := ctx.Site(); s != nil {
		if s.Hostname != "" {
			th.SetDefault(params, "hostname", s.Hostname)
		}
		if s.Repo != "" {
			th.SetDefault(params, "repo", gitinfo.Shorthand(s.Repo))
		}
	}
}

func (Theme) CustomizeRoot(_ th.ParamContext, _ map[string]any) {}

func init() { th.Register(Theme{}) }
