package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"git.home.luguber.info/inful/blogcfg/internal/config"
	"git.home.luguber.info/inful/blogcfg/internal/content"
	"git.home.luguber.info/inful/blogcfg/internal/emit"
	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
	"git.home.luguber.info/inful/blogcfg/internal/lint"
	"git.home.luguber.info/inful/blogcfg/internal/logfields"
	"git.home.luguber.info/inful/blogcfg/internal/navbar"
	"git.home.luguber.info/inful/blogcfg/internal/site"
	"git.home.luguber.info/inful/blogcfg/internal/theme"
)

func stageLoad(_ context.Context, s *runState) error {
	cfg, err := config.Load(s.gen.configPath)
	if err != nil {
		return err
	}
	s.cfg = cfg

	sc, err := cfg.Assemble()
	if err != nil {
		return err
	}
	s.site = sc
	cfgDir := filepath.Dir(s.gen.configPath)

	if cfg.Site.Repo == config.RepoAuto {
		info, err := s.gen.detectRepo(cfgDir)
		switch {
		case err != nil:
			slog.Warn("Repository link unavailable", logfields.Error(err))
		case info.URL == "":
			slog.Warn("Repository has no origin remote; repository link omitted", logfields.Path(info.Root))
		default:
			sc.Repo = info.URL
		}
	}

	th, known := theme.Resolve(sc.Theme.Name)
	if !known {
		slog.Warn("Unknown theme; using defaults", logfields.Theme(sc.Theme.Name))
	}
	s.theme = th

	s.target = s.gen.target
	if s.target == "" {
		s.target = theme.Target(cfg.Output.Target)
	}
	if s.target == "" {
		s.target = th.Features().Target
	}
	if ft := th.Features().Target; known && ft != s.target {
		slog.Warn("Theme belongs to a different framework than the output target",
			logfields.Theme(sc.Theme.Name), logfields.Target(string(s.target)), slog.String("theme_target", string(ft)))
	}

	s.outputDir = s.gen.outputDir
	if s.outputDir == "" {
		s.outputDir = resolvePath(cfgDir, cfg.Output.Directory)
	}
	s.report.Target = s.target
	s.report.OutputDir = s.outputDir
	return nil
}

func stageCheck(_ context.Context, s *runState) error {
	issues := append(s.cfg.LoadIssues(), site.Check(s.site)...)
	s.report.Issues = issues

	res := &lint.Result{Issues: issues}
	s.gen.recorder.AddIssues("error", res.ErrorCount())
	s.gen.recorder.AddIssues("warning", res.WarningCount())
	for _, key := range s.site.NavbarKeys() {
		s.gen.recorder.SetNavbarEntries(key, s.site.Navbars[key].Len())
	}
	for _, issue := range issues {
		if issue.Severity == lint.SeverityWarning {
			slog.Warn(issue.Message, logfields.Entry(issue.Location), slog.String("rule", issue.Rule))
		}
	}

	if err := s.cfg.DuplicateError(); err != nil {
		return err
	}
	if res.HasErrors() {
		first := issues[firstError(issues)]
		return derrors.New(derrors.CategoryValidation, derrors.SeverityFatal,
			fmt.Sprintf("configuration has %d error(s)", res.ErrorCount())).
			WithContext("first", first.Location+": "+first.Message)
	}
	return nil
}

func firstError(issues []lint.Issue) int {
	for i, issue := range issues {
		if issue.Severity == lint.SeverityError {
			return i
		}
	}
	return 0
}

// stageTitles labels plain links for targets that need explicit names. The
// vuepress theme reads page titles itself.
func stageTitles(_ context.Context, s *runState) error {
	if s.target != theme.TargetHugo {
		return nil
	}
	dir := resolvePath(filepath.Dir(s.gen.configPath), s.cfg.Content.Directory)
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		slog.Debug("Content directory missing; labels derived from links", logfields.Path(dir))
		return nil
	}
	finder := content.NewFinder(dir, s.site.Base)
	s.titles = map[string]string{}
	for _, key := range s.site.NavbarKeys() {
		for link, t := range finder.Discover(navbar.Resolve(s.site.Navbars[key])) {
			s.titles[link] = t.Text
		}
	}
	return nil
}

func stageRender(_ context.Context, s *runState) error {
	em, err := emit.For(s.target)
	if err != nil {
		return derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "no emitter for target").
			WithContext("target", string(s.target))
	}
	files, err := em.Emit(emit.Input{Config: s.site, Theme: s.theme, Titles: s.titles})
	if err != nil {
		return err
	}
	s.files = files
	return nil
}

func stageFingerprint(_ context.Context, s *runState) error {
	s.entries = make([]ManifestFileEntry, 0, len(s.files))
	for _, f := range s.files {
		s.entries = append(s.entries, ManifestFileEntry{Name: f.Name, Fingerprint: fingerprintFile(f)})
		s.report.Files = append(s.report.Files, f.Name)
	}
	s.report.Fingerprint = fingerprintSet(string(s.target), s.entries)

	prev, err := ReadManifest(s.outputDir)
	if err != nil {
		slog.Warn("Ignoring unreadable manifest", logfields.Path(s.outputDir), logfields.Error(err))
		prev = nil
	}
	s.manifest = prev
	if s.gen.force || prev == nil {
		return nil
	}
	if prev.Fingerprint == s.report.Fingerprint && prev.Config == s.cfg.Snapshot() && prev.unchanged(s.outputDir) {
		slog.Info("Output unchanged; skipping write", logfields.Path(s.outputDir))
		s.report.Skipped = true
		return errSkipRemaining
	}
	return nil
}

func stageWrite(_ context.Context, s *runState) error {
	if err := os.MkdirAll(s.outputDir, 0o750); err != nil {
		return derrors.WriteFailed(s.outputDir, err)
	}
	for _, f := range s.files {
		p := filepath.Join(s.outputDir, f.Name)
		if err := renameio.WriteFile(p, f.Data, 0o644); err != nil {
			return derrors.WriteFailed(p, err)
		}
		s.gen.recorder.IncFilesWritten(string(s.target))
		slog.Debug("Wrote file", logfields.Path(p))
	}
	if s.cfg.Output.Clean && s.manifest != nil {
		for _, name := range s.manifest.stale(s.entries) {
			p := filepath.Join(s.outputDir, name)
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return derrors.WriteFailed(p, err)
			}
			slog.Info("Removed stale output", logfields.Path(p))
		}
	}
	if err := writeManifest(s.outputDir, manifestFor(s)); err != nil {
		return derrors.WriteFailed(filepath.Join(s.outputDir, ManifestFile), err)
	}
	return nil
}

