package services

import "time"

// stubMetrics satisfies MetricsRecorderInterface for tests that don't assert
// on metric output. Service tests can't use the generated metrics mock because
// the mock package imports this one.
type stubMetrics struct{}

func (stubMetrics) IncrementCounter(name string, tags map[string]string)      {}
func (stubMetrics) RecordProcessingTime(name string, duration time.Duration) {}
