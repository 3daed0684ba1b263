package commands

import (
	"fmt"
	"log/slog"
	"os"

	"git.home.luguber.info/inful/blogcfg/internal/content"
	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
	"git.home.luguber.info/inful/blogcfg/internal/logfields"
	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/preview"
)

// NavbarCmd implements the 'navbar' command.
type NavbarCmd struct {
	Locale string `short:"l" default:"/" help:"Locale prefix whose navbar is shown"`
	Format string `short:"f" default:"tree" help:"Output format: tree, markdown, html, json" enum:"tree,markdown,html,json"`
}

func (cmd *NavbarCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	n, ok := cfg.Navbars()[cmd.Locale]
	if !ok {
		return derrors.ValidationFailed("locale", fmt.Sprintf("no navbar defined for locale %q", cmd.Locale))
	}

	dir := resolveAgainst(root.configDir(), cfg.Content.Directory)
	out, err := preview.Render(cmd.Locale, n, pageTitles(dir, cfg.Site.Base, n), preview.Format(cmd.Format))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(g.Out, out)
	return err
}

// pageTitles reads plain link labels from the content directory, if any.
func pageTitles(dir, base string, n navbar.Navbar) map[string]string {
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		slog.Debug("Content directory missing; labels derived from links", logfields.Path(dir))
		return nil
	}
	titles := map[string]string{}
	for link, t := range content.NewFinder(dir, base).Discover(navbar.Resolve(n)) {
		titles[link] = t.Text
	}
	return titles
}
