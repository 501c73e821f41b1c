package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("contour", pflag.ContinueOnError)
	fs.String("contours", DefaultContoursDir, "")
	fs.Bool("verbose", false, "")
	fs.Bool("metrics", false, "")
	fs.String("bench", "", "")
	fs.Int("iter", 1, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	fs := newFlags()
	require.NoError(t, fs.Parse(nil))

	s, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, DefaultContoursDir, s.ContoursDir)
	assert.False(t, s.Verbose)
	assert.Equal(t, 1, s.Iterations)
}

func TestLoadEnvironmentFillsUnsetFlags(t *testing.T) {
	t.Setenv("CONTOUR_CONTOURS", "/opt/tiles")
	t.Setenv("CONTOUR_ITER", "3")
	t.Setenv("CONTOUR_BENCH", "1,2")

	fs := newFlags()
	require.NoError(t, fs.Parse([]string{"--bench", "4,8"}))

	s, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "/opt/tiles", s.ContoursDir)
	assert.Equal(t, 3, s.Iterations)
	assert.Equal(t, "4,8", s.Bench, "explicit flags win over the environment")
}

func TestTilePath(t *testing.T) {
	assert.Equal(t, "contours/7.ppm", TilePath("contours", 7))
}
