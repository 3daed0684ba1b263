// Package generate runs the blogcfg pipeline: load the configuration, check
// it, discover link titles, render the framework files, fingerprint them and
// write them atomically.
package generate

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/blogcfg/internal/config"
	"git.home.luguber.info/inful/blogcfg/internal/emit"
	"git.home.luguber.info/inful/blogcfg/internal/gitinfo"
	"git.home.luguber.info/inful/blogcfg/internal/lint"
	"git.home.luguber.info/inful/blogcfg/internal/logfields"
	"git.home.luguber.info/inful/blogcfg/internal/metrics"
	"git.home.luguber.info/inful/blogcfg/internal/site"
	"git.home.luguber.info/inful/blogcfg/internal/theme"
	// Register the built-in theme descriptors.
	_ "git.home.luguber.info/inful/blogcfg/internal/theme/themes"
	"git.home.luguber.info/inful/blogcfg/internal/version"
)

// RepoDetector looks up repository metadata for a directory.
type RepoDetector func(dir string) (*gitinfo.Info, error)

// Generator turns a blogcfg.yaml into framework configuration files.
type Generator struct {
	configPath string
	outputDir  string
	target     theme.Target
	force      bool
	recorder   metrics.Recorder
	detectRepo RepoDetector
	stages     []StageDef
}

// Option customizes a Generator.
type Option func(*Generator)

// WithOutputDir overrides output.directory.
func WithOutputDir(dir string) Option { return func(g *Generator) { g.outputDir = dir } }

// WithTarget overrides output.target and the theme's own target.
func WithTarget(t theme.Target) Option { return func(g *Generator) { g.target = t } }

// WithForce writes output even when the fingerprint is unchanged.
func WithForce(force bool) Option { return func(g *Generator) { g.force = force } }

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithRepoDetector replaces the git lookup used for `repo: auto`.
func WithRepoDetector(d RepoDetector) Option { return func(g *Generator) { g.detectRepo = d } }

// New returns a Generator for the configuration file at configPath.
func New(configPath string, opts ...Option) *Generator {
	g := &Generator{
		configPath: configPath,
		recorder:   metrics.NoopRecorder{},
		detectRepo: gitinfo.Detect,
		stages:     defaultStages(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ConfigPath returns the configuration file the generator reads.
func (g *Generator) ConfigPath() string { return g.configPath }

// runState carries values between stages of one run.
type runState struct {
	gen    *Generator
	report *Report

	cfg       *config.Config
	site      *site.Config
	theme     theme.Theme
	target    theme.Target
	outputDir string
	titles    map[string]string
	files     []emit.File
	entries   []ManifestFileEntry
	manifest  *Manifest
}

// Run executes all stages once. The report is returned even on failure.
func (g *Generator) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	s := &runState{gen: g, report: newReport()}
	err := runStages(ctx, s, g.stages)

	elapsed := time.Since(start)
	s.report.Duration = elapsed
	g.recorder.ObserveGenerateDuration(elapsed)

	switch {
	case err != nil:
		s.report.Outcome = metrics.OutcomeFailed
	case s.report.Skipped:
		s.report.Outcome = metrics.OutcomeUnchanged
	default:
		s.report.Outcome = metrics.OutcomeWritten
	}
	g.recorder.IncGenerateOutcome(s.report.Outcome)

	if err != nil {
		slog.Error("Generation failed", logfields.Error(err))
		return s.report, err
	}
	slog.Info("Generation complete",
		logfields.Target(string(s.target)),
		logfields.Path(s.outputDir),
		slog.String("outcome", string(s.report.Outcome)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return s.report, nil
}

// Report summarizes one generation run.
type Report struct {
	Target         theme.Target
	OutputDir      string
	Files          []string
	Issues         []lint.Issue
	Fingerprint    string
	Skipped        bool
	Outcome        metrics.OutcomeLabel
	StageDurations map[string]time.Duration
	Duration       time.Duration
}

func newReport() *Report {
	return &Report{StageDurations: map[string]time.Duration{}}
}

func manifestFor(s *runState) *Manifest {
	return &Manifest{
		Generator:   version.Version,
		Target:      string(s.target),
		Config:      s.cfg.Snapshot(),
		Fingerprint: s.report.Fingerprint,
		Files:       s.entries,
	}
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
