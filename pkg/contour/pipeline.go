// Package contour extracts marching-squares isolines from a raster and
// stamps the matching contour tile over every grid cell.
//
// The computation runs on a fixed set of workers that share one reusable
// barrier. Every phase partitions its work into disjoint index ranges with
// Range, and no worker starts phase n+1 before all workers have finished
// phase n, so the output is identical for any worker count. Worker 0 is
// the elected worker: it makes every globally singular decision (rescale,
// allocation, output write, teardown) while the others wait at the
// surrounding barriers.
package contour

import (
	"context"
	"fmt"
	"time"

	"github.com/marusama/cyclicbarrier"
	"golang.org/x/sync/errgroup"

	"github.com/luismi/marching_squares/config"
	"github.com/luismi/marching_squares/pkg/metrics"
	"github.com/luismi/marching_squares/pkg/raster"
)

// elected is the id of the worker performing singular bookkeeping
const elected = 0

// Phase names, in execution order. Each phase ends at the shared barrier.
const (
	PhaseLoadTiles    = "load tiles"
	PhaseRescalePlan  = "rescale decision"
	PhaseResample     = "bicubic resample"
	PhaseGridAlloc    = "grid allocation"
	PhaseInterior     = "binarize interior"
	PhaseLastColumn   = "binarize last column"
	PhaseLastRow      = "binarize last row"
	PhaseStitch       = "stitch"
	PhaseWriteOutput  = "write output"
	PhaseReleaseTiles = "release tiles"
)

type phase struct {
	name string
	run  func(w *worker) error
}

// phases is the canonical ordered list of synchronization points
var phases = []phase{
	{PhaseLoadTiles, (*worker).loadTiles},
	{PhaseRescalePlan, (*worker).planRescale},
	{PhaseResample, (*worker).resample},
	{PhaseGridAlloc, (*worker).allocateGrid},
	{PhaseInterior, (*worker).binarizeInterior},
	{PhaseLastColumn, (*worker).binarizeLastColumn},
	{PhaseLastRow, (*worker).binarizeLastRow},
	{PhaseStitch, (*worker).stitch},
	{PhaseWriteOutput, (*worker).writeOutput},
	{PhaseReleaseTiles, (*worker).releaseTiles},
}

// Phases returns the phase names in execution order
func Phases() []string {
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = p.name
	}
	return names
}

// Pipeline configures a contour extraction run. The zero values of the
// optional fields select the defaults from the config package.
type Pipeline struct {
	Workers int           // number of workers P, at least 1
	Tiles   TileSource    // contour tiles, one per configuration
	Writer  raster.Writer // persists the final working image

	StepX, StepY       int     // grid step; default config.Step
	Sigma              int     // luminance threshold; default config.Sigma
	RescaleX, RescaleY int     // working image bound; default config.RescaleX/Y
	Sampler            Sampler // default SampleBicubic

	// Collector receives per-phase timings; a fresh one is used when nil
	Collector *metrics.Collector
}

// Result describes a completed run
type Result struct {
	Width, Height int  // working image dimensions
	Rescaled      bool // whether the input was resampled
	GridRows      int
	GridCols      int
	Metrics       *metrics.Metrics
}

// shared is the state every worker references. Fields below the line are
// written once by the elected worker before a barrier and only read after it.
type shared struct {
	p            int
	stepX, stepY int
	sigma        int
	maxX, maxY   int
	sample       Sampler
	src          TileSource
	writer       raster.Writer
	outPath      string
	barrier      cyclicbarrier.CyclicBarrier
	collector    *metrics.Collector

	image    *raster.Image
	tiles    TileSet
	working  *raster.Image
	rescaled bool
	grid     *Grid
}

type worker struct {
	id int
	*shared
}

// Run extracts the contours of img and writes the result to outPath.
//
// Run takes ownership of img: its buffer is released once the output has
// been written, so the caller must not use img afterwards. The first
// worker failure cancels the run and is returned.
func (pl *Pipeline) Run(ctx context.Context, img *raster.Image, outPath string) (*Result, error) {
	if pl.Workers < 1 {
		return nil, ErrInvalidWorkers
	}
	if img.Freed() {
		return nil, fmt.Errorf("contour: input image has no pixel data")
	}
	if pl.Tiles == nil || pl.Writer == nil {
		return nil, fmt.Errorf("contour: pipeline needs a tile source and a writer")
	}

	sh := &shared{
		p:         pl.Workers,
		stepX:     orDefault(pl.StepX, config.Step),
		stepY:     orDefault(pl.StepY, config.Step),
		sigma:     orDefault(pl.Sigma, config.Sigma),
		maxX:      orDefault(pl.RescaleX, config.RescaleX),
		maxY:      orDefault(pl.RescaleY, config.RescaleY),
		sample:    pl.Sampler,
		src:       pl.Tiles,
		writer:    pl.Writer,
		outPath:   outPath,
		barrier:   cyclicbarrier.New(pl.Workers),
		collector: pl.Collector,
		image:     img,
	}
	if sh.sample == nil {
		sh.sample = SampleBicubic
	}
	if sh.collector == nil {
		sh.collector = metrics.NewCollector(pl.Workers)
	}
	sh.collector.SetInput(img.Width, img.Height)

	Logger().Info("contour pipeline start",
		"workers", sh.p, "width", img.Width, "height", img.Height, "output", outPath)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for id := 0; id < sh.p; id++ {
		w := &worker{id: id, shared: sh}
		g.Go(func() error {
			return w.run(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sh.collector.SetPipelineTime(time.Since(start))

	Logger().Info("contour pipeline done", "elapsed", time.Since(start))

	return &Result{
		Width:    sh.working.Width,
		Height:   sh.working.Height,
		Rescaled: sh.rescaled,
		GridRows: sh.grid.P + 1,
		GridCols: sh.grid.Q + 1,
		Metrics:  sh.collector.GetMetrics(),
	}, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// run executes every phase followed by the barrier, then the elected
// worker's final teardown
func (w *worker) run(ctx context.Context) error {
	for _, ph := range phases {
		start := time.Now()
		if err := ph.run(w); err != nil {
			return &WorkerError{Worker: w.id, Phase: ph.name, Err: err}
		}
		if err := w.barrier.Await(ctx); err != nil {
			return &WorkerError{Worker: w.id, Phase: ph.name, Err: err}
		}
		if w.id == elected {
			d := time.Since(start)
			w.collector.RecordPhase(ph.name, d)
			Logger().Debug("phase complete", "phase", ph.name, "elapsed", d)
		}
	}

	if w.id == elected {
		w.teardown()
	}
	return nil
}

// loadTiles loads this worker's share of the 16 contour tiles
func (w *worker) loadTiles() error {
	start, end := Range(w.id, w.p, config.ContourConfigCount)
	return w.tiles.load(w.src, start, end, w.stepX, w.stepY)
}

// planRescale lets the elected worker pick the working image and size the
// grid. Every other worker only observes the outcome after the barrier.
func (w *worker) planRescale() error {
	if w.id != elected {
		return nil
	}

	if !needsRescale(w.image, w.maxX, w.maxY) {
		w.working = w.image
	} else {
		working, err := raster.New(w.maxX, w.maxY)
		if err != nil {
			return err
		}
		w.working = working
		w.rescaled = true
	}

	w.grid = newGrid(w.working.Width/w.stepX, w.working.Height/w.stepY)

	w.collector.SetWorking(w.working.Width, w.working.Height, w.rescaled)
	w.collector.SetGrid(w.grid.P+1, w.grid.Q+1)
	Logger().Debug("rescale decision",
		"rescaled", w.rescaled,
		"width", w.working.Width, "height", w.working.Height,
		"grid_rows", w.grid.P+1, "grid_cols", w.grid.Q+1)
	return nil
}

// resample fills this worker's outer-index range of the working image
func (w *worker) resample() error {
	if !w.rescaled {
		return nil
	}
	start, end := Range(w.id, w.p, w.working.Width)
	resampleColumns(w.working, w.image, start, end, w.sample)
	return nil
}

// allocateGrid allocates this worker's grid rows. The last worker also owns
// row p, which the row-partitioned phases read as the row below their range.
func (w *worker) allocateGrid() error {
	start, end := Range(w.id, w.p, w.grid.P)
	w.grid.allocRows(start, end)
	if w.id == w.p-1 {
		w.grid.allocRows(w.grid.P, w.grid.P+1)
	}
	return nil
}

func (w *worker) binarizeInterior() error {
	start, end := Range(w.id, w.p, w.grid.P)
	binarizeInterior(w.grid, w.working, start, end, w.stepX, w.stepY, w.sigma)
	if w.id == elected {
		// The far corner is never sampled
		w.grid.Cells[w.grid.P][w.grid.Q] = 0
	}
	return nil
}

func (w *worker) binarizeLastColumn() error {
	start, end := Range(w.id, w.p, w.grid.P)
	binarizeLastColumn(w.grid, w.working, start, end, w.stepX, w.sigma)
	return nil
}

func (w *worker) binarizeLastRow() error {
	start, end := Range(w.id, w.p, w.grid.Q)
	binarizeLastRow(w.grid, w.working, start, end, w.stepY, w.sigma)
	return nil
}

func (w *worker) stitch() error {
	start, end := Range(w.id, w.p, w.grid.P)
	stitchRows(w.working, w.grid, &w.tiles, start, end, w.stepX, w.stepY)
	return nil
}

func (w *worker) writeOutput() error {
	if w.id != elected {
		return nil
	}
	d, err := w.writer.Write(w.working, w.outPath)
	if err != nil {
		return fmt.Errorf("write %s: %w", w.outPath, err)
	}
	w.collector.SetSaveTime(d)
	return nil
}

// releaseTiles frees the tiles this worker loaded
func (w *worker) releaseTiles() error {
	start, end := Range(w.id, w.p, config.ContourConfigCount)
	w.tiles.release(start, end)
	return nil
}

// teardown releases the grid and the image buffers. It runs on the elected
// worker after the output has been written and every tile released.
func (w *worker) teardown() {
	w.grid.Free()
	if w.rescaled {
		w.working.Free()
	}
	w.image.Free()
}
