package metrics

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// PrintMetricsTable prints the run summary table followed by the phase
// breakdown of every run
func PrintMetricsTable(w io.Writer, metricas []*Metrics) {
	fmt.Fprintln(w, "┌ Run Summary ──┬─────────────┬─────────────┬──────────┬──────────┬──────────┬──────────┐")
	fmt.Fprintf(w, "│ %-7s │ %-11s │ %-11s │ %-8s │ %-8s │ %-8s │ %-8s │\n",
		"Threads",
		"Input",
		"Working",
		"Read",
		"Pipeline",
		"Saving",
		"Total")
	fmt.Fprintln(w, "├─────────┼─────────────┼─────────────┼──────────┼──────────┼──────────┼──────────┤")

	for _, m := range metricas {
		readMag, readUnit := getMagnitudeAndUnit(m.ReadingTime)
		pipeMag, pipeUnit := getMagnitudeAndUnit(m.PipelineTime)
		saveMag, saveUnit := getMagnitudeAndUnit(m.SaveTime)
		totalMag, totalUnit := getMagnitudeAndUnit(m.TotalTime)

		working := fmt.Sprintf("%dx%d", m.WorkingWidth, m.WorkingHeight)
		if m.Rescaled {
			working += "*"
		}

		fmt.Fprintf(w, "│ %-7d │ %-11s │ %-11s │ %s%-2s │ %s%-2s │ %s%-2s │ %s%-2s │\n",
			m.NumThreads,
			m.Resolution,
			working,
			formatNumber(readMag, 6), readUnit,
			formatNumber(pipeMag, 6), pipeUnit,
			formatNumber(saveMag, 6), saveUnit,
			formatNumber(totalMag, 6), totalUnit)
	}
	fmt.Fprintln(w, "└─────────┴─────────────┴─────────────┴──────────┴──────────┴──────────┴──────────┘")
	fmt.Fprintln(w, "  * working image resampled")

	for _, m := range metricas {
		fmt.Fprintln(w)
		printPhaseTable(w, m)
	}
}

// printPhaseTable prints the per-phase breakdown of one run
func printPhaseTable(w io.Writer, m *Metrics) {
	fmt.Fprintf(w, "Phases with %d threads (%s px, grid %dx%d)\n",
		m.NumThreads, printer.Sprintf("%d", m.Pixels), m.GridRows, m.GridCols)
	fmt.Fprintln(w, "┌────────────────────────┬──────────┬────────┐")
	fmt.Fprintf(w, "│ %-22s │ %-8s │ %-6s │\n", "Phase", "Time", "Share")
	fmt.Fprintln(w, "├────────────────────────┼──────────┼────────┤")

	for _, p := range m.Phases {
		mag, unit := getMagnitudeAndUnit(p.Time)
		share := 0.0
		if m.PipelineTime > 0 {
			share = float64(p.Time) / float64(m.PipelineTime) * 100
		}
		fmt.Fprintf(w, "│ %-22s │ %s%-2s │ %s%% │\n",
			p.Name, formatNumber(mag, 6), unit, formatNumber(share, 5))
	}
	fmt.Fprintln(w, "└────────────────────────┴──────────┴────────┘")
}

// PrintScalabilityAnalysis prints a table with scalability information,
// grouped by input resolution
func PrintScalabilityAnalysis(w io.Writer, metricas []*Metrics) {
	fmt.Fprintln(w, "\n--- SCALABILITY ANALYSIS ---")

	// Group metrics by resolution, keeping first-seen order
	var order []string
	metricsByResolution := make(map[string][]*Metrics)
	for _, m := range metricas {
		if _, ok := metricsByResolution[m.Resolution]; !ok {
			order = append(order, m.Resolution)
		}
		metricsByResolution[m.Resolution] = append(metricsByResolution[m.Resolution], m)
	}

	for _, res := range order {
		ms := metricsByResolution[res]
		fmt.Fprintf(w, "\nResolution: %s\n", res)
		fmt.Fprintln(w, "┌────────────┬────────────┬─────────┬────────────┐")
		fmt.Fprintf(w, "│ %-10s │ %-10s │ %-7s │ %-10s │\n",
			"Threads", "Time (s)", "Speedup", "Efficiency")
		fmt.Fprintln(w, "├────────────┼────────────┼─────────┼────────────┤")

		base := baseTime(ms)
		for _, m := range ms {
			secs := m.PipelineTime.Seconds()
			speedup := 0.0
			if secs > 0 {
				speedup = base / secs
			}
			efficiency := speedup / float64(m.NumThreads)

			fmt.Fprintf(w, "│ %-10d │ %10.3f │ %7.2f │ %10.2f │\n",
				m.NumThreads, secs, speedup, efficiency)
		}
		fmt.Fprintln(w, "└────────────┴────────────┴─────────┴────────────┘")
	}
}

// baseTime returns the pipeline time of the single-thread run, falling back
// to the first run
func baseTime(ms []*Metrics) float64 {
	for _, m := range ms {
		if m.NumThreads == 1 {
			return m.PipelineTime.Seconds()
		}
	}
	if len(ms) > 0 {
		return ms[0].PipelineTime.Seconds()
	}
	return 0
}

// getMagnitudeAndUnit returns the appropriate magnitude and unit for a duration
func getMagnitudeAndUnit(d time.Duration) (float64, string) {
	if d < time.Microsecond {
		return float64(d.Nanoseconds()), "ns"
	} else if d < time.Millisecond {
		return float64(d.Nanoseconds()) / 1000, "µs"
	} else if d < time.Second {
		return float64(d.Nanoseconds()) / 1000000, "ms"
	} else {
		return d.Seconds(), "s"
	}
}

// formatNumber formats a number to display in the metrics table
func formatNumber(num float64, desiredLength int) string {
	integerPart := int(math.Floor(math.Abs(num)))
	integerLength := len(strconv.Itoa(integerPart))

	precision := 0
	if integerLength < desiredLength {
		precision = desiredLength - integerLength
		if precision > 0 {
			precision--
		}
	}

	if precision > 0 {
		return fmt.Sprintf("%.*f", precision, num)
	} else {
		return fmt.Sprintf("%d", integerPart)
	}
}

// AggregateMetrics adds values from two metrics structures
// Used to accumulate metrics in multiple runs
func AggregateMetrics(accumulated, new *Metrics) {
	accumulated.TotalTime += new.TotalTime
	accumulated.ReadingTime += new.ReadingTime
	accumulated.PipelineTime += new.PipelineTime
	accumulated.SaveTime += new.SaveTime
	for i := range accumulated.Phases {
		if i < len(new.Phases) && new.Phases[i].Name == accumulated.Phases[i].Name {
			accumulated.Phases[i].Time += new.Phases[i].Time
		}
	}
}

// AverageMetrics calculates the average of accumulated metrics
func AverageMetrics(accumulated *Metrics, numRuns int) *Metrics {
	result := CopyMetrics(accumulated)

	// Divide times by number of runs
	result.TotalTime /= time.Duration(numRuns)
	result.ReadingTime /= time.Duration(numRuns)
	result.PipelineTime /= time.Duration(numRuns)
	result.SaveTime /= time.Duration(numRuns)
	for i := range result.Phases {
		result.Phases[i].Time /= time.Duration(numRuns)
	}

	// Dimensions and other static values remain the same

	return result
}

// CopyMetrics creates a copy of the metrics
func CopyMetrics(m *Metrics) *Metrics {
	copy := *m // Copy all fields
	copy.Phases = append([]PhaseMetrics(nil), m.Phases...)
	return &copy
}

// InitializeAccumulatedMetrics creates an initial structure for accumulating metrics
func InitializeAccumulatedMetrics(original *Metrics) *Metrics {
	return CopyMetrics(original)
}
