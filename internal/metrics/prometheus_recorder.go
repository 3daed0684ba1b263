package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "blogcfg"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg              *prom.Registry
	stageDuration    *prom.HistogramVec
	generateDuration prom.Histogram
	stageResults     *prom.CounterVec
	outcomes         *prom.CounterVec
	navbarEntries    *prom.GaugeVec
	issues           *prom.CounterVec
	filesWritten     *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg. A nil
// reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "stage_duration_seconds",
		Help:      "Duration of individual generation stages",
		Buckets:   prom.DefBuckets,
	}, []string{"stage"})
	pr.generateDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "generate_duration_seconds",
		Help:      "Total generation duration",
		Buckets:   prom.DefBuckets,
	})
	pr.stageResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "stage_results_total",
		Help:      "Stage result counts by outcome",
	}, []string{"stage", "result"})
	pr.outcomes = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "generate_outcomes_total",
		Help:      "Generation runs by final outcome",
	}, []string{"outcome"})
	pr.navbarEntries = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "navbar_entries",
		Help:      "Number of navbar entries per locale in the last run",
	}, []string{"locale"})
	pr.issues = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "check_issues_total",
		Help:      "Configuration issues reported by severity",
	}, []string{"severity"})
	pr.filesWritten = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "files_written_total",
		Help:      "Generated configuration files written by target",
	}, []string{"target"})
	reg.MustRegister(pr.stageDuration, pr.generateDuration, pr.stageResults, pr.outcomes,
		pr.navbarEntries, pr.issues, pr.filesWritten)
	return pr
}

// Registry returns the registry the metrics are registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.reg }

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveGenerateDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.generateDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncStageResult(stage string, result ResultLabel) {
	if p == nil {
		return
	}
	p.stageResults.WithLabelValues(stage, string(result)).Inc()
}

func (p *PrometheusRecorder) IncGenerateOutcome(outcome OutcomeLabel) {
	if p == nil {
		return
	}
	p.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetNavbarEntries(locale string, n int) {
	if p == nil {
		return
	}
	p.navbarEntries.WithLabelValues(locale).Set(float64(n))
}

func (p *PrometheusRecorder) AddIssues(severity string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.issues.WithLabelValues(severity).Add(float64(n))
}

func (p *PrometheusRecorder) IncFilesWritten(target string) {
	if p == nil {
		return
	}
	p.filesWritten.WithLabelValues(target).Inc()
}

// WriteTextfile writes the registry in the text exposition format, for
// node_exporter's textfile collector or CI artifact scraping. The file is
// replaced atomically.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
