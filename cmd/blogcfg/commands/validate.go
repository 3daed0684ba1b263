package commands

import (
	"fmt"

	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
	"git.home.luguber.info/inful/blogcfg/internal/lint"
	"git.home.luguber.info/inful/blogcfg/internal/site"
	"git.home.luguber.info/inful/blogcfg/internal/theme"
)

// RuleThemeUnknown flags a theme name with no built-in descriptor.
const RuleThemeUnknown = "theme-unknown"

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	Format string `short:"f" default:"text" help:"Output format (text or json)" enum:"text,json"`
}

func (cmd *ValidateCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	sc, err := cfg.Assemble()
	if err != nil {
		return err
	}

	result := &lint.Result{}
	result.Add(cfg.LoadIssues()...)
	result.Add(site.Check(sc)...)
	if _, known := theme.Resolve(sc.Theme.Name); !known {
		result.Add(lint.Warnf("site.theme.name", RuleThemeUnknown,
			fmt.Sprintf("theme %q has no built-in descriptor; defaults are used", sc.Theme.Name)))
	}

	formatter, err := lint.NewFormatter(cmd.Format)
	if err != nil {
		return err
	}
	if err := formatter.Format(g.Out, result, root.Config); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if result.HasErrors() {
		return derrors.New(derrors.CategoryValidation, derrors.SeverityError,
			fmt.Sprintf("configuration has %d error(s)", result.ErrorCount()))
	}
	return nil
}
