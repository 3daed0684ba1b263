package generate

import (
	"context"
	"errors"
	"log/slog"
	"time"

	derrors "git.home.luguber.info/inful/blogcfg/internal/errors"
	"git.home.luguber.info/inful/blogcfg/internal/logfields"
	"git.home.luguber.info/inful/blogcfg/internal/metrics"
)

// StageName identifies a generation stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageLoad        StageName = "load"
	StageCheck       StageName = "check"
	StageTitles      StageName = "titles"
	StageRender      StageName = "render"
	StageFingerprint StageName = "fingerprint"
	StageWrite       StageName = "write"
)

// Stage runs one step of a generation. Returning errSkipRemaining ends the
// run successfully without executing later stages.
type Stage func(ctx context.Context, s *runState) error

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

var errSkipRemaining = errors.New("skip remaining stages")

func defaultStages() []StageDef {
	return []StageDef{
		{StageLoad, stageLoad},
		{StageCheck, stageCheck},
		{StageTitles, stageTitles},
		{StageRender, stageRender},
		{StageFingerprint, stageFingerprint},
		{StageWrite, stageWrite},
	}
}

// runStages executes stages in order, recording timing and stopping on the
// first error.
func runStages(ctx context.Context, s *runState, stages []StageDef) error {
	rec := s.gen.recorder
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			rec.IncStageResult(string(st.Name), metrics.ResultFatal)
			return derrors.GenerateFailed(string(st.Name), err)
		}

		t0 := time.Now()
		err := st.Fn(ctx, s)
		dur := time.Since(t0)
		s.report.StageDurations[string(st.Name)] = dur
		rec.ObserveStageDuration(string(st.Name), dur)
		slog.Debug("Stage complete",
			logfields.Stage(string(st.Name)),
			logfields.DurationMS(float64(dur.Microseconds())/1000))

		switch {
		case errors.Is(err, errSkipRemaining):
			rec.IncStageResult(string(st.Name), metrics.ResultSkipped)
			return nil
		case err != nil:
			rec.IncStageResult(string(st.Name), metrics.ResultFatal)
			if _, ok := derrors.As(err); ok {
				return err
			}
			return derrors.GenerateFailed(string(st.Name), err)
		default:
			rec.IncStageResult(string(st.Name), metrics.ResultSuccess)
		}
	}
	return nil
}
