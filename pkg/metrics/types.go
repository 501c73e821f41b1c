package metrics

import "time"

// Metrics contains all the metrics for one contour pipeline run
type Metrics struct {
	Resolution    string // input dimensions, "WxH"
	NumThreads    int    // Number of pipeline workers
	Rescaled      bool
	WorkingWidth  int
	WorkingHeight int
	GridRows      int
	GridCols      int
	Pixels        int
	TotalTime     time.Duration
	ReadingTime   time.Duration
	PipelineTime  time.Duration
	SaveTime      time.Duration
	Phases        []PhaseMetrics
}

// PhaseMetrics holds the wall time of one synchronized pipeline phase,
// measured from the phase start to the release of its barrier
type PhaseMetrics struct {
	Name string
	Time time.Duration
}

// PhaseTime returns the recorded time of the named phase, or zero
func (m *Metrics) PhaseTime(name string) time.Duration {
	for _, p := range m.Phases {
		if p.Name == name {
			return p.Time
		}
	}
	return 0
}
