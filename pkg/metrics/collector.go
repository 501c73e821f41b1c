package metrics

import (
	"fmt"
	"time"
)

// Collector handles collecting and managing metrics for a pipeline run.
// It is not safe for concurrent use; the pipeline records through its
// elected worker only.
type Collector struct {
	metrics    *Metrics
	numThreads int
}

// NewCollector creates a new metrics collector
func NewCollector(numThreads int) *Collector {
	return &Collector{
		metrics: &Metrics{
			NumThreads: numThreads,
		},
		numThreads: numThreads,
	}
}

// StartTiming starts measuring total time
func (c *Collector) StartTiming() time.Time {
	return time.Now()
}

// StopTiming stops measuring total time
func (c *Collector) StopTiming(start time.Time) {
	c.metrics.TotalTime = time.Since(start)
}

// SetReadTime sets the time spent decoding the input raster
func (c *Collector) SetReadTime(d time.Duration) {
	c.metrics.ReadingTime = d
}

// SetInput records the input dimensions
func (c *Collector) SetInput(width, height int) {
	c.metrics.Resolution = fmt.Sprintf("%dx%d", width, height)
	c.metrics.Pixels = width * height
}

// SetWorking records the working image dimensions and whether it was
// resampled
func (c *Collector) SetWorking(width, height int, rescaled bool) {
	c.metrics.WorkingWidth = width
	c.metrics.WorkingHeight = height
	c.metrics.Rescaled = rescaled
}

// SetGrid records the occupancy grid dimensions
func (c *Collector) SetGrid(rows, cols int) {
	c.metrics.GridRows = rows
	c.metrics.GridCols = cols
}

// RecordPhase appends the time of a completed phase
func (c *Collector) RecordPhase(name string, d time.Duration) {
	c.metrics.Phases = append(c.metrics.Phases, PhaseMetrics{Name: name, Time: d})
}

// SetPipelineTime sets the time from worker start to worker join
func (c *Collector) SetPipelineTime(d time.Duration) {
	c.metrics.PipelineTime = d
}

// SetSaveTime sets the time spent saving the image
func (c *Collector) SetSaveTime(d time.Duration) {
	c.metrics.SaveTime = d
}

// GetMetrics returns the collected metrics
func (c *Collector) GetMetrics() *Metrics {
	return c.metrics
}
