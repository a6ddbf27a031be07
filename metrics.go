package pointkernel

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting kernel query metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Kernels call the collector from every query, possibly from many goroutines
// at once, so implementations must be safe for concurrent use.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    basisHistogram prometheus.Histogram
//	    fallbacks      prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordBasis(size int, fallback bool) {
//	    p.basisHistogram.Observe(float64(size))
//	    if fallback {
//	        p.fallbacks.Inc()
//	    }
//	}
type MetricsCollector interface {
	// RecordBasis is called after each ComputeBasis call.
	// size is the number of basis points found; fallback reports whether the
	// radius query was empty and the closest point was used instead.
	RecordBasis(size int, fallback bool)

	// RecordWeights is called after each ComputeWeights call.
	// size is the number of weights written (0 for an empty or invalid
	// basis); coincident reports whether the query hit a basis point exactly.
	RecordWeights(size int, coincident bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBasis(int, bool)   {}
func (NoopMetricsCollector) RecordWeights(int, bool) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BasisCount      atomic.Int64
	BasisPoints     atomic.Int64
	FallbackCount   atomic.Int64
	EmptyCount      atomic.Int64
	WeightsCount    atomic.Int64
	WeightsPoints   atomic.Int64
	CoincidentCount atomic.Int64
	NoWeightsCount  atomic.Int64
}

// RecordBasis implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBasis(size int, fallback bool) {
	b.BasisCount.Add(1)
	b.BasisPoints.Add(int64(size))
	if fallback {
		b.FallbackCount.Add(1)
	}
	if size == 0 {
		b.EmptyCount.Add(1)
	}
}

// RecordWeights implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWeights(size int, coincident bool) {
	b.WeightsCount.Add(1)
	b.WeightsPoints.Add(int64(size))
	if coincident {
		b.CoincidentCount.Add(1)
	}
	if size == 0 {
		b.NoWeightsCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BasisCount:      b.BasisCount.Load(),
		AvgBasisSize:    avg(b.BasisPoints.Load(), b.BasisCount.Load()),
		FallbackCount:   b.FallbackCount.Load(),
		EmptyCount:      b.EmptyCount.Load(),
		WeightsCount:    b.WeightsCount.Load(),
		CoincidentCount: b.CoincidentCount.Load(),
		NoWeightsCount:  b.NoWeightsCount.Load(),
	}
}

func avg(total, count int64) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BasisCount      int64
	AvgBasisSize    float64
	FallbackCount   int64
	EmptyCount      int64
	WeightsCount    int64
	CoincidentCount int64
	NoWeightsCount  int64
}
