package compose

import (
	"testing"

	"lifgallery/pkg/raster"
)

// createTestRaster creates a raster filled by the given per-pixel pattern
func createTestRaster(t *testing.T, width, height int, pattern func(x, y int) (a, r, g, b uint8)) *raster.Raster {
	t.Helper()
	ra, err := raster.New(width, height)
	if err != nil {
		t.Fatalf("Failed to create %dx%d raster: %v", width, height, err)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			a, r, g, b := pattern(x, y)
			ra.SetARGB(x, y, a, r, g, b)
		}
	}
	return ra
}

// createUniformRaster creates a raster with every pixel set to one value
func createUniformRaster(t *testing.T, width, height int, a, r, g, b uint8) *raster.Raster {
	t.Helper()
	return createTestRaster(t, width, height, func(x, y int) (uint8, uint8, uint8, uint8) {
		return a, r, g, b
	})
}

// createGradientRaster creates a raster whose channels vary with position,
// useful when tests need distinct values everywhere
func createGradientRaster(t *testing.T, width, height int) *raster.Raster {
	t.Helper()
	return createTestRaster(t, width, height, func(x, y int) (uint8, uint8, uint8, uint8) {
		return 255, uint8((x * 7) % 256), uint8((y * 11) % 256), uint8((x*y + 3) % 256)
	})
}
