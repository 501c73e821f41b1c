package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luismi/marching_squares/config"
	"github.com/luismi/marching_squares/pkg/contour"
	"github.com/luismi/marching_squares/pkg/metrics"
	"github.com/luismi/marching_squares/pkg/raster"
	"github.com/luismi/marching_squares/pkg/rasterio"
	"github.com/luismi/marching_squares/pkg/utils"
)

const usage = "Usage: contour <in_file> <out_file> <P>"

// errUsage marks command-line mistakes, reported with the usage line
var errUsage = errors.New("invalid arguments")

// errInput marks an unreadable or malformed input raster
var errInput = errors.New("cannot read input")

func main() {
	os.Exit(report(newRootCommand().Execute(), os.Stdout, os.Stderr))
}

// report prints err where its kind belongs and returns the process status:
// usage and input problems go to stderr with status 1, pipeline failures to
// stdout with status -1
func report(err error, stdout, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		fmt.Fprintln(stderr, usage)
		return 1
	case errors.Is(err, errInput):
		fmt.Fprintln(stderr, err)
		return 1
	default:
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return -1
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "contour <in_file> <out_file> <P>",
		Short:         "Draw marching-squares contours over a raster image",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return fmt.Errorf("%w: expected 3 arguments, got %d", errUsage, len(args))
			}
			return nil
		},
		RunE: run,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errUsage, err)
	})

	flags := cmd.Flags()
	flags.String("contours", config.DefaultContoursDir, "Directory holding the contour tiles 0.ppm..15.ppm")
	flags.Bool("verbose", false, "Log pipeline phases to stderr")
	flags.Bool("metrics", false, "Print the phase timing tables")
	flags.String("bench", "", "Comma-separated list of worker counts to benchmark instead of P")
	flags.Int("iter", 1, "Number of iterations per worker count")
	return cmd
}

// parseThreads parses a comma-separated list of worker counts
func parseThreads(threadsFlag string) ([]int, error) {
	var threadConfigs []int
	for _, t := range strings.Split(threadsFlag, ",") {
		threads, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil || threads < 1 {
			return nil, fmt.Errorf("%w: invalid thread configuration %q", errUsage, t)
		}
		threadConfigs = append(threadConfigs, threads)
	}
	return threadConfigs, nil
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	inFile, outFile := args[0], args[1]
	workers, err := strconv.Atoi(args[2])
	if err != nil || workers < 1 {
		return fmt.Errorf("%w: P must be a positive integer, got %q", errUsage, args[2])
	}

	threadConfigs := []int{workers}
	if settings.Bench != "" {
		if threadConfigs, err = parseThreads(settings.Bench); err != nil {
			return err
		}
	}
	if settings.Iterations < 1 {
		return fmt.Errorf("%w: --iter must be at least 1", errUsage)
	}

	if settings.Verbose {
		contour.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Collect metrics for all runs
	var allMetrics []*metrics.Metrics
	for _, threadCount := range threadConfigs {
		if len(threadConfigs) > 1 {
			fmt.Printf("\nRunning contour pipeline with %d threads...\n", threadCount)
		}
		m, err := runPipeline(cmd.Context(), settings, inFile, outFile, threadCount)
		if err != nil {
			return err
		}
		allMetrics = append(allMetrics, m)
	}

	if settings.Metrics || len(threadConfigs) > 1 {
		fmt.Println("\n=== Contour Results ===")
		metrics.PrintMetricsTable(os.Stdout, allMetrics)
	}
	if len(threadConfigs) > 1 {
		metrics.PrintScalabilityAnalysis(os.Stdout, allMetrics)
	}
	return nil
}

// runPipeline runs the contour pipeline the configured number of times and
// returns the averaged metrics
func runPipeline(ctx context.Context, settings *config.Settings, inFile, outFile string, numThreads int) (*metrics.Metrics, error) {
	// Codec is picked per file from its extension
	var reader raster.Reader = rasterio.NewReader()
	var writer raster.Writer = rasterio.NewWriter()

	var accumulatedMetrics *metrics.Metrics
	for i := 0; i < settings.Iterations; i++ {
		if settings.Iterations > 1 {
			fmt.Printf("Running iteration %d/%d...\n", i+1, settings.Iterations)
		}

		collector := metrics.NewCollector(numThreads)
		startTime := collector.StartTiming()

		image, readTime, err := reader.Read(inFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInput, err)
		}
		collector.SetReadTime(readTime)

		pipeline := &contour.Pipeline{
			Workers:   numThreads,
			Tiles:     contour.DirTileSource{Dir: settings.ContoursDir},
			Writer:    writer,
			Collector: collector,
		}
		if _, err := pipeline.Run(ctx, image, outFile); err != nil {
			return nil, err
		}

		collector.StopTiming(startTime)

		// Get metrics for this iteration
		iterationMetrics := collector.GetMetrics()
		if i == 0 {
			accumulatedMetrics = metrics.InitializeAccumulatedMetrics(iterationMetrics)
		} else {
			metrics.AggregateMetrics(accumulatedMetrics, iterationMetrics)
		}

		// Force garbage collection between iterations
		utils.FreeMemory()
		contour.Logger().Debug("memory after teardown", utils.MemoryUsage()...)
	}

	return metrics.AverageMetrics(accumulatedMetrics, settings.Iterations), nil
}
