package viewport

import (
	"errors"
	"math"
	"testing"

	"lifgallery/pkg/raster"
)

func newTestTransform(t *testing.T) *Transform {
	t.Helper()
	tr, err := NewTransform(DefaultBounds)
	if err != nil {
		t.Fatalf("Failed to create transform: %v", err)
	}
	return tr
}

func TestNewTransformRejectsBadBounds(t *testing.T) {
	cases := []struct {
		name   string
		bounds Bounds
	}{
		{"ZeroMin", Bounds{Min: 0, Max: 10}},
		{"NegativeMin", Bounds{Min: -1, Max: 10}},
		{"Inverted", Bounds{Min: 2, Max: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTransform(tc.bounds); !errors.Is(err, raster.ErrInvalidParameter) {
				t.Errorf("NewTransform(%+v) = %v, want ErrInvalidParameter", tc.bounds, err)
			}
		})
	}
}

func TestZoomAtKeepsAnchorFixed(t *testing.T) {
	factors := []float64{0.5, 0.9, 1.1, 2.0, 3.7}

	tr := newTestTransform(t)
	tr.Pan(31, -12)
	tr.ZoomAt(100, 80, 1.6)

	const anchorX, anchorY = 320.0, 240.0
	for _, factor := range factors {
		// The content point currently under the anchor must still be
		// there after zooming about the anchor
		cx, cy := tr.ScreenToContent(anchorX, anchorY)
		tr.ZoomAt(anchorX, anchorY, factor)
		sx, sy := tr.ContentToScreen(cx, cy)

		if math.Abs(sx-anchorX) > 1e-9 || math.Abs(sy-anchorY) > 1e-9 {
			t.Fatalf("After ZoomAt factor %g, anchored content moved to (%.6f, %.6f), want (%g, %g)",
				factor, sx, sy, anchorX, anchorY)
		}
	}
}

func TestZoomAtClampsToBounds(t *testing.T) {
	tr := newTestTransform(t)

	tr.ZoomAt(0, 0, 1000)
	if tr.Zoom() != DefaultBounds.Max {
		t.Errorf("Zoom = %g after huge factor, want clamp at %g", tr.Zoom(), DefaultBounds.Max)
	}

	tr.ZoomAt(0, 0, 1e-6)
	if tr.Zoom() != DefaultBounds.Min {
		t.Errorf("Zoom = %g after tiny factor, want clamp at %g", tr.Zoom(), DefaultBounds.Min)
	}
}

func TestPanAccumulates(t *testing.T) {
	tr := newTestTransform(t)
	tr.Pan(10, 5)
	tr.Pan(-3, 7)

	x, y := tr.Offset()
	if x != 7 || y != 12 {
		t.Errorf("Offset = (%g, %g), want (7, 12)", x, y)
	}
}

func TestReset(t *testing.T) {
	tr := newTestTransform(t)
	tr.ZoomAt(50, 50, 2.5)
	tr.Pan(100, -40)

	tr.Reset()
	x, y := tr.Offset()
	if tr.Zoom() != 1.0 || x != 0 || y != 0 {
		t.Errorf("After Reset: zoom %g pan (%g, %g), want 1.0 and (0, 0)", tr.Zoom(), x, y)
	}
}

func TestFitTo(t *testing.T) {
	t.Run("WideViewport", func(t *testing.T) {
		tr := newTestTransform(t)
		tr.Pan(40, 40)

		// Height is the tighter fit: 300/200 < 800/100
		tr.FitTo(800, 300, 100, 200)
		if tr.Zoom() != 1.5 {
			t.Errorf("Fit zoom = %g, want 1.5", tr.Zoom())
		}
		if x, y := tr.Offset(); x != 0 || y != 0 {
			t.Errorf("FitTo left pan at (%g, %g), want reset to (0, 0)", x, y)
		}
	})

	t.Run("ClampsToBounds", func(t *testing.T) {
		tr := newTestTransform(t)
		tr.FitTo(10000, 10000, 10, 10)
		if tr.Zoom() != DefaultBounds.Max {
			t.Errorf("Fit zoom = %g for tiny raster, want clamp at %g", tr.Zoom(), DefaultBounds.Max)
		}
	})
}

func TestCoordinateMappingRoundTrip(t *testing.T) {
	tr := newTestTransform(t)
	tr.ZoomAt(13, 29, 1.8)
	tr.Pan(-5, 44)

	const cx, cy = 123.0, 456.0
	sx, sy := tr.ContentToScreen(cx, cy)
	gx, gy := tr.ScreenToContent(sx, sy)
	if math.Abs(gx-cx) > 1e-9 || math.Abs(gy-cy) > 1e-9 {
		t.Errorf("Round trip moved (%g, %g) to (%.6f, %.6f)", cx, cy, gx, gy)
	}
}
