package visualization

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	_ "image/jpeg"
	_ "image/png"

	"lifgallery/internal/models"
	"lifgallery/pkg/hierarchy"
	"lifgallery/pkg/raster"
)

func createTestRaster(t *testing.T, width, height int, value uint8) *raster.Raster {
	t.Helper()
	ra, err := raster.New(width, height)
	if err != nil {
		t.Fatalf("Failed to create raster: %v", err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ra.SetARGB(x, y, 255, value, value, value)
		}
	}
	return ra
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode %s: %v", path, err)
	}
	return img
}

func TestSaveRasterByExtension(t *testing.T) {
	dir := t.TempDir()
	ra := createTestRaster(t, 5, 3, 128)

	for _, name := range []string{"out.png", "out.jpg", "out.jpeg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := SaveRaster(ra, path); err != nil {
				t.Fatalf("SaveRaster failed: %v", err)
			}

			img := decodeFile(t, path)
			if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 3 {
				t.Errorf("Saved image is %v, want 5x3", img.Bounds())
			}
		})
	}
}

func TestSaveRasterUnsupportedExtension(t *testing.T) {
	ra := createTestRaster(t, 2, 2, 10)
	if err := SaveRaster(ra, filepath.Join(t.TempDir(), "out.bmp")); err == nil {
		t.Error("SaveRaster should reject unsupported extensions")
	}
}

func buildTestTree(t *testing.T) *hierarchy.Tree {
	t.Helper()
	planes := []models.PlaneRecord{
		{SeriesID: 0, ChannelID: 0, DepthIndex: 0, Raster: createTestRaster(t, 4, 4, 40)},
		{SeriesID: 0, ChannelID: 0, DepthIndex: 1, Raster: createTestRaster(t, 4, 4, 90)},
		{SeriesID: 0, ChannelID: 1, DepthIndex: 0, Raster: createTestRaster(t, 4, 4, 60)},
	}
	tree, err := hierarchy.Build(planes, hierarchy.Options{SynthesizeProjectionSlices: true})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return tree
}

func TestSaveChannelBases(t *testing.T) {
	dir := t.TempDir()
	tree := buildTestTree(t)

	if err := SaveChannelBases(tree, dir); err != nil {
		t.Fatalf("SaveChannelBases failed: %v", err)
	}

	for _, name := range []string{"series_00_channel_00.png", "series_00_channel_01.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("Expected %s to exist: %v", name, err)
		}
	}
}

func TestSaveSliceSequenceSkipsSynthetic(t *testing.T) {
	dir := t.TempDir()
	tree := buildTestTree(t)

	// Channel (0,0) has two acquired slices plus one synthetic projection
	if err := SaveSliceSequence(tree.Channel(0, 0), dir); err != nil {
		t.Fatalf("SaveSliceSequence failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read output dir: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Saved %d files, want 2 acquired slices only", len(entries))
	}
}
