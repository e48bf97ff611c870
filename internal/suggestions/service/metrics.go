package service

import (
	"sync/atomic"
	"time"
)

// metrics tracks pipeline call counters
type metrics struct {
	modelCalls      int64
	modelErrors     int64
	modelLatency    int64 // Total latency in nanoseconds
	generateRuns    int64
	applyRuns       int64
	fallbacksServed int64
}

var globalMetrics = &metrics{}

// Snapshot is a point-in-time copy of the pipeline counters.
type Snapshot struct {
	ModelCalls        int64   `json:"model_calls"`
	ModelErrors       int64   `json:"model_errors"`
	AvgModelLatencyMs float64 `json:"avg_model_latency_ms"`
	ModelErrorRate    float64 `json:"model_error_rate"`
	GenerateRuns      int64   `json:"generate_runs"`
	ApplyRuns         int64   `json:"apply_runs"`
	FallbacksServed   int64   `json:"fallbacks_served"`
}

// GetMetrics returns the current metrics snapshot
func GetMetrics() Snapshot {
	calls := atomic.LoadInt64(&globalMetrics.modelCalls)
	errors := atomic.LoadInt64(&globalMetrics.modelErrors)
	latency := atomic.LoadInt64(&globalMetrics.modelLatency)

	s := Snapshot{
		ModelCalls:      calls,
		ModelErrors:     errors,
		GenerateRuns:    atomic.LoadInt64(&globalMetrics.generateRuns),
		ApplyRuns:       atomic.LoadInt64(&globalMetrics.applyRuns),
		FallbacksServed: atomic.LoadInt64(&globalMetrics.fallbacksServed),
	}
	if calls > 0 {
		s.AvgModelLatencyMs = float64(latency) / float64(calls) / 1e6
		s.ModelErrorRate = float64(errors) / float64(calls) * 100
	}
	return s
}

// ResetMetrics resets all metrics (useful for testing)
func ResetMetrics() {
	atomic.StoreInt64(&globalMetrics.modelCalls, 0)
	atomic.StoreInt64(&globalMetrics.modelErrors, 0)
	atomic.StoreInt64(&globalMetrics.modelLatency, 0)
	atomic.StoreInt64(&globalMetrics.generateRuns, 0)
	atomic.StoreInt64(&globalMetrics.applyRuns, 0)
	atomic.StoreInt64(&globalMetrics.fallbacksServed, 0)
}

// RecordFallback counts one advisory fallback list served in place of a
// failed generation.
func RecordFallback() {
	atomic.AddInt64(&globalMetrics.fallbacksServed, 1)
}

func recordModelCall(duration time.Duration, err error) {
	atomic.AddInt64(&globalMetrics.modelCalls, 1)
	atomic.AddInt64(&globalMetrics.modelLatency, duration.Nanoseconds())
	if err != nil {
		atomic.AddInt64(&globalMetrics.modelErrors, 1)
	}
}

func recordGenerateRun() {
	atomic.AddInt64(&globalMetrics.generateRuns, 1)
}

func recordApplyRun() {
	atomic.AddInt64(&globalMetrics.applyRuns, 1)
}
