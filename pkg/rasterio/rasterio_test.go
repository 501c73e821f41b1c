package rasterio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismi/marching_squares/pkg/raster"
)

func testImage(t *testing.T) *raster.Image {
	t.Helper()
	img, err := raster.New(7, 4)
	require.NoError(t, err)
	for k := range img.Pix {
		img.Pix[k] = raster.Pixel{R: uint8(k * 9), G: 200, B: uint8(255 - k)}
	}
	return img
}

func TestSaveLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ppm", "a.PNM", "a.png", "a.bmp", "a.tiff", "a.ppm.zst", "a.png.zst"} {
		t.Run(name, func(t *testing.T) {
			img := testImage(t)
			path := filepath.Join(dir, name)

			_, err := NewWriter().Write(img, path)
			require.NoError(t, err)

			got, _, err := NewReader().Read(path)
			require.NoError(t, err)
			if diff := cmp.Diff(img, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompressedFileIsZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.ppm.zst")
	_, err := Save(testImage(t), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 4)
	// zstd frame magic number, little endian 0xFD2FB528
	assert.Equal(t, []byte{0x28, 0xB5, 0x2F, 0xFD}, data[:4])
}

func TestPathsWithoutImageExtensionUsePPM(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"result", "result.out", "result.webp", "a.zst"} {
		t.Run(name, func(t *testing.T) {
			img := testImage(t)
			path := filepath.Join(dir, name)

			_, err := Save(img, path)
			require.NoError(t, err)

			if name != "a.zst" {
				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.True(t, bytes.HasPrefix(data, []byte("P6\n7 4\n255\n")), "header %q", data[:min(len(data), 12)])
			}

			got, _, err := Load(path)
			require.NoError(t, err)
			if diff := cmp.Diff(img, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadSniffsPixmapContent(t *testing.T) {
	dir := t.TempDir()
	img := testImage(t)

	src := filepath.Join(dir, "in.ppm")
	_, err := Save(img, src)
	require.NoError(t, err)
	data, err := os.ReadFile(src)
	require.NoError(t, err)

	noExt := filepath.Join(dir, "in_noext")
	require.NoError(t, os.WriteFile(noExt, data, 0o644))
	got, _, err := NewReader().Read(noExt)
	require.NoError(t, err)
	if diff := cmp.Diff(img, got); diff != "" {
		t.Errorf("sniffed load mismatch (-want +got):\n%s", diff)
	}

	plain := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(plain, []byte("P3\n1 1\n255\n9 8 7\n"), 0o644))
	got, _, err = Load(plain)
	require.NoError(t, err)
	assert.Equal(t, []raster.Pixel{{R: 9, G: 8, B: 7}}, got.Pix)
}

func TestLoadUnknownContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, _, err := Load(path)
	var ferr *raster.FormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestLoadMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.png.zst"))
	assert.Error(t, err)
}
