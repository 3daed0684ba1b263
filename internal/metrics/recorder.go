package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultSkipped ResultLabel = "skipped"
	ResultFatal   ResultLabel = "fatal"
)

// OutcomeLabel enumerates final generation outcomes.
type OutcomeLabel string

const (
	OutcomeWritten   OutcomeLabel = "written"
	OutcomeUnchanged OutcomeLabel = "unchanged"
	OutcomeFailed    OutcomeLabel = "failed"
)

// Recorder defines observability hooks for generation runs. Implementations
// may forward to Prometheus; NoopRecorder discards everything.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveGenerateDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncGenerateOutcome(outcome OutcomeLabel)
	SetNavbarEntries(locale string, n int)
	AddIssues(severity string, n int)
	IncFilesWritten(target string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveGenerateDuration(time.Duration)      {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncGenerateOutcome(OutcomeLabel)            {}
func (NoopRecorder) SetNavbarEntries(string, int)               {}
func (NoopRecorder) AddIssues(string, int)                      {}
func (NoopRecorder) IncFilesWritten(string)                     {}
