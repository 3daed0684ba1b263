// Package metrics records generation metrics.
//
// Components receive a Recorder and default to NoopRecorder, so metrics are
// optional everywhere:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	gen := generate.New(cfg, generate.WithRecorder(rec))
//	...
//	_ = rec.WriteTextfile("blogcfg.prom")
package metrics
