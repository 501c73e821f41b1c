package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/luismi/marching_squares/config"
	"github.com/luismi/marching_squares/pkg/tiles"
)

var (
	// Command-line flags
	dir  = flag.String("dir", config.DefaultContoursDir, "Directory to write the 16 contour tiles into")
	step = flag.Int("step", config.Step, "Tile edge in pixels; must match the pipeline grid step")
)

func main() {
	flag.Parse()

	if err := tiles.WriteDir(*dir, *step); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing contour tiles: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d contour tiles (%dx%d) to %s\n", config.ContourConfigCount, *step, *step, *dir)
}
