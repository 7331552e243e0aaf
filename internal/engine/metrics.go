package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	CaptureRequests atomic.Int64
	CaptureErrors   atomic.Int64
	FetchRequests   atomic.Int64
	FetchErrors     atomic.Int64
	APIJobsRequests atomic.Int64
	APIJobsErrors   atomic.Int64
	TrackerWrites   atomic.Int64
	TrackerReads    atomic.Int64
}

// IncrCaptureRequests increments the posting-capture counter.
func IncrCaptureRequests() { metrics.CaptureRequests.Add(1) }

// IncrCaptureErrors increments the posting-capture error counter.
func IncrCaptureErrors() { metrics.CaptureErrors.Add(1) }

// IncrFetchRequests increments the page-fetch counter.
func IncrFetchRequests() { metrics.FetchRequests.Add(1) }

// IncrFetchErrors increments the page-fetch error counter.
func IncrFetchErrors() { metrics.FetchErrors.Add(1) }

// IncrAPIJobsRequests increments the apijobs.dev request counter.
func IncrAPIJobsRequests() { metrics.APIJobsRequests.Add(1) }

// IncrAPIJobsErrors increments the apijobs.dev error counter.
func IncrAPIJobsErrors() { metrics.APIJobsErrors.Add(1) }

// IncrTrackerWrites increments the tracker write counter.
func IncrTrackerWrites() { metrics.TrackerWrites.Add(1) }

// IncrTrackerReads increments the tracker read counter.
func IncrTrackerReads() { metrics.TrackerReads.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"capture_requests": metrics.CaptureRequests.Load(),
		"capture_errors":   metrics.CaptureErrors.Load(),
		"fetch_requests":   metrics.FetchRequests.Load(),
		"fetch_errors":     metrics.FetchErrors.Load(),
		"apijobs_requests": metrics.APIJobsRequests.Load(),
		"apijobs_errors":   metrics.APIJobsErrors.Load(),
		"tracker_writes":   metrics.TrackerWrites.Load(),
		"tracker_reads":    metrics.TrackerReads.Load(),
		"cache_hits":       hits,
		"cache_misses":     misses,
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"capture_requests", "capture_errors",
		"fetch_requests", "fetch_errors",
		"apijobs_requests", "apijobs_errors",
		"tracker_writes", "tracker_reads",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
