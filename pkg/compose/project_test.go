package compose

import (
	"errors"
	"math/rand"
	"testing"

	"lifgallery/pkg/raster"
)

func TestProjectSingleInput(t *testing.T) {
	src := createGradientRaster(t, 8, 8)

	out, err := Project([]*raster.Raster{src})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}
	if !out.Equal(src) {
		t.Error("Projection of a single raster must be value-equal to it")
	}
	if out == src {
		t.Error("Projection must return a copy, not the input")
	}
}

func TestProjectChannelsIndependently(t *testing.T) {
	// One slice carries the maximum red, the other the maximum green; the
	// projection must combine them rather than pick a whole winning pixel
	redSlice := createUniformRaster(t, 2, 2, 200, 180, 10, 40)
	greenSlice := createUniformRaster(t, 2, 2, 100, 20, 220, 30)

	out, err := Project([]*raster.Raster{redSlice, greenSlice})
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	a, r, g, b := out.ARGBAt(1, 1)
	if a != 200 || r != 180 || g != 220 || b != 40 {
		t.Errorf("Projected pixel = (%d,%d,%d,%d), want per-channel maxima (200,180,220,40)", a, r, g, b)
	}
}

func TestProjectOrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	stack := make([]*raster.Raster, 5)
	for i := range stack {
		stack[i] = createTestRaster(t, 6, 6, func(x, y int) (uint8, uint8, uint8, uint8) {
			return uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))
		})
	}

	want, err := Project(stack)
	if err != nil {
		t.Fatalf("Project failed: %v", err)
	}

	for trial := 0; trial < 10; trial++ {
		shuffled := make([]*raster.Raster, len(stack))
		copy(shuffled, stack)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got, err := Project(shuffled)
		if err != nil {
			t.Fatalf("Project of shuffled stack failed: %v", err)
		}
		if !got.Equal(want) {
			t.Fatalf("Projection changed under input permutation (trial %d)", trial)
		}
	}
}

func TestProjectEmptyInput(t *testing.T) {
	if _, err := Project(nil); !errors.Is(err, raster.ErrEmptyInput) {
		t.Errorf("Project(nil) = %v, want ErrEmptyInput", err)
	}
}

func TestProjectShapeMismatch(t *testing.T) {
	a := createUniformRaster(t, 2, 2, 255, 1, 2, 3)
	b := createUniformRaster(t, 3, 3, 255, 1, 2, 3)

	if _, err := Project([]*raster.Raster{a, b}); !errors.Is(err, raster.ErrShapeMismatch) {
		t.Errorf("Project with mismatched shapes = %v, want ErrShapeMismatch", err)
	}
}
