package commands

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"git.home.luguber.info/inful/blogcfg/internal/config"
	"git.home.luguber.info/inful/blogcfg/internal/generate"
	"git.home.luguber.info/inful/blogcfg/internal/logfields"
	"git.home.luguber.info/inful/blogcfg/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Output   string        `short:"o" help:"Output directory (overrides output.directory)" type:"path"`
	Target   string        `help:"Framework to emit for: vuepress or hugo"`
	Resync   time.Duration `default:"0s" help:"Also regenerate on this interval, picking up page title changes (0 disables)"`
	Debounce time.Duration `default:"500ms" help:"Quiet period after the last change before regenerating"`
}

func (cmd *WatchCmd) Run(g *Global, root *CLI) error {
	if _, err := root.loadConfig(); err != nil {
		return err
	}
	opts, err := generatorOptions(cmd.Output, cmd.Target, false)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	w := watch.New(generate.New(root.Config, opts...), watchedFiles(root.Config),
		watch.WithDebounce(cmd.Debounce),
		watch.WithResync(cmd.Resync),
		watch.WithOnRun(func(report *generate.Report, err error) {
			if err == nil && report != nil {
				printReport(g, report)
			}
		}),
	)
	fmt.Fprintf(g.Out, "Watching %s (press Ctrl+C to stop)\n", root.Config)
	return w.Run(ctx)
}

// watchedFiles lists the configuration file, its env files and every
// navbar file it references. The last good list is kept while the
// configuration does not load.
func watchedFiles(configPath string) watch.FilesFunc {
	dir := filepath.Dir(configPath)
	base := []string{configPath, filepath.Join(dir, ".env"), filepath.Join(dir, ".env.local")}
	last := base
	return func() []string {
		cfg, err := config.Load(configPath)
		if err != nil {
			slog.Debug("Keeping previous watch list", logfields.Error(err))
			return last
		}
		files := append([]string(nil), base...)
		for _, locale := range slices.Sorted(maps.Keys(cfg.NavbarFiles)) {
			files = append(files, resolveAgainst(dir, cfg.NavbarFiles[locale]))
		}
		last = files
		return files
	}
}
