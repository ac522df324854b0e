// Package metrics records tree build observations.
//
// Components receive a Recorder and default to NoopRecorder, so metrics stay
// optional. The server swaps in a PrometheusRecorder bound to the registry it
// exposes on /metrics.
package metrics

import "time"

// Outcome labels the result of a single tree build.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeMissing Outcome = "missing"
	OutcomeFailed  Outcome = "failed"
)

// Recorder defines observability hooks for tree builds.
type Recorder interface {
	ObserveBuildDuration(kind string, d time.Duration)
	IncBuildOutcome(kind string, outcome Outcome)
	ObserveEntries(kind string, n int)
}

// NoopRecorder is a Recorder that does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(string, time.Duration) {}
func (NoopRecorder) IncBuildOutcome(string, Outcome)            {}
func (NoopRecorder) ObserveEntries(string, int)                 {}
