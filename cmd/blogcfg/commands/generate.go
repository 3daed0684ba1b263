package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/blogcfg/internal/config"
	"git.home.luguber.info/inful/blogcfg/internal/generate"
	"git.home.luguber.info/inful/blogcfg/internal/logfields"
	"git.home.luguber.info/inful/blogcfg/internal/metrics"
	"git.home.luguber.info/inful/blogcfg/internal/theme"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output      string `short:"o" help:"Output directory (overrides output.directory)" type:"path"`
	Target      string `help:"Framework to emit for: vuepress or hugo (defaults to the theme's framework)"`
	Force       bool   `help:"Write files even when the output is unchanged"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in text format to this file" type:"path"`
}

func (cmd *GenerateCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	opts, err := generatorOptions(cmd.Output, cmd.Target, cmd.Force)
	if err != nil {
		return err
	}

	metricsFile := cmd.MetricsFile
	if metricsFile == "" && cfg.Monitoring.MetricsFile != "" {
		metricsFile = resolveAgainst(root.configDir(), cfg.Monitoring.MetricsFile)
	}
	var rec *metrics.PrometheusRecorder
	if metricsFile != "" {
		rec = metrics.NewPrometheusRecorder(prometheus.NewRegistry())
		opts = append(opts, generate.WithRecorder(rec))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	report, runErr := generate.New(root.Config, opts...).Run(ctx)
	if rec != nil {
		if err := rec.WriteTextfile(metricsFile); err != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(metricsFile), logfields.Error(err))
		}
	}
	if runErr != nil {
		return runErr
	}
	printReport(g, report)
	return nil
}

// generatorOptions converts the shared generate/watch flags.
func generatorOptions(output, target string, force bool) ([]generate.Option, error) {
	opts := []generate.Option{generate.WithForce(force)}
	if output != "" {
		opts = append(opts, generate.WithOutputDir(output))
	}
	if target != "" {
		t, err := config.NormalizeTarget(target)
		if err != nil {
			return nil, fmt.Errorf("--target: %w", err)
		}
		opts = append(opts, generate.WithTarget(theme.Target(t)))
	}
	return opts, nil
}

func printReport(g *Global, report *generate.Report) {
	if report.Skipped {
		fmt.Fprintf(g.Out, "%s configuration in %s is up to date\n", report.Target, report.OutputDir)
		return
	}
	fmt.Fprintf(g.Out, "Wrote %s configuration to %s\n", report.Target, report.OutputDir)
	for _, f := range report.Files {
		fmt.Fprintf(g.Out, "  %s\n", f)
	}
}
