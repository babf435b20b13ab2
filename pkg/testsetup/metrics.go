package testsetup

import (
	"github.com/AccelByte/extend-core-objectpool/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) SetPooledInstances(tag string, count int) {
}

func (s stubMetricsCollection) SetActiveInstances(tag string, count int) {
}

func (s stubMetricsCollection) AddSynthesizedInstance(tag string) {
}

func (s stubMetricsCollection) AddRejectedRelease(tag string, reason string) {
}

func NewMetrics() metrics.PoolMetrics {
	return stubMetricsCollection{}
}

// RecordingMetrics keeps the last reported values so tests can assert on them.
type RecordingMetrics struct {
	Pooled      map[string]int
	Active      map[string]int
	Synthesized map[string]int
	Rejected    map[string]map[string]int
}

func NewRecordingMetrics() *RecordingMetrics {
	return &RecordingMetrics{
		Pooled:      map[string]int{},
		Active:      map[string]int{},
		Synthesized: map[string]int{},
		Rejected:    map[string]map[string]int{},
	}
}

func (r *RecordingMetrics) SetPooledInstances(tag string, count int) {
	r.Pooled[tag] = count
}

func (r *RecordingMetrics) SetActiveInstances(tag string, count int) {
	r.Active[tag] = count
}

func (r *RecordingMetrics) AddSynthesizedInstance(tag string) {
	r.Synthesized[tag]++
}

func (r *RecordingMetrics) AddRejectedRelease(tag string, reason string) {
	if r.Rejected[tag] == nil {
		r.Rejected[tag] = map[string]int{}
	}
	r.Rejected[tag][reason]++
}
