// Package viewport models the per-viewport presentation state: an
// anchor-preserving zoom/pan transform and the Z-stack navigation a
// viewer needs. The package renders nothing; an external renderer applies
// the transform when it draws the raster the pipeline produced.
package viewport

import (
	"fmt"

	"lifgallery/pkg/raster"
)

// Bounds is the allowed zoom range for a transform.
type Bounds struct {
	Min float64
	Max float64
}

// DefaultBounds is the zoom range used when the caller does not configure
// one.
var DefaultBounds = Bounds{Min: 0.1, Max: 10.0}

// Transform maps content coordinates to screen coordinates as
// screen = content*zoom + pan. One Transform belongs to one viewport and
// is mutated in place by its owner; it is not safe for concurrent use.
type Transform struct {
	zoom   float64
	panX   float64
	panY   float64
	bounds Bounds
}

// NewTransform creates an identity transform (zoom 1, no pan) with the
// given zoom bounds. Bounds must satisfy 0 < Min <= Max, otherwise
// raster.ErrInvalidParameter is returned.
func NewTransform(bounds Bounds) (*Transform, error) {
	if bounds.Min <= 0 || bounds.Max < bounds.Min {
		return nil, fmt.Errorf("%w: zoom bounds must satisfy 0 < min <= max, got [%g, %g]",
			raster.ErrInvalidParameter, bounds.Min, bounds.Max)
	}
	return &Transform{zoom: 1.0, bounds: bounds}, nil
}

// Zoom returns the current zoom factor.
func (t *Transform) Zoom() float64 { return t.zoom }

// Offset returns the current pan offset in screen coordinates.
func (t *Transform) Offset() (x, y float64) { return t.panX, t.panY }

// ZoomAt multiplies the current zoom by factor, clamped into the
// configured bounds, while keeping the content point currently under the
// screen point (screenX, screenY) fixed there. With old zoom z, new zoom
// z' and old pan p, the new pan is s - (s-p)*(z'/z).
func (t *Transform) ZoomAt(screenX, screenY, factor float64) {
	oldZoom := t.zoom
	newZoom := t.clampZoom(oldZoom * factor)

	ratio := newZoom / oldZoom
	t.panX = screenX - (screenX-t.panX)*ratio
	t.panY = screenY - (screenY-t.panY)*ratio
	t.zoom = newZoom
}

// Pan shifts the view by (dx, dy) screen units, unconditionally.
func (t *Transform) Pan(dx, dy float64) {
	t.panX += dx
	t.panY += dy
}

// Reset restores the identity view: zoom 1, pan (0, 0).
func (t *Transform) Reset() {
	t.zoom = 1.0
	t.panX = 0
	t.panY = 0
}

// FitTo sets the zoom so the raster fills the viewport in its tighter
// dimension without cropping, and resets the pan. The fit zoom is clamped
// into the configured bounds like any other zoom.
func (t *Transform) FitTo(viewportWidth, viewportHeight, rasterWidth, rasterHeight float64) {
	sx := viewportWidth / rasterWidth
	sy := viewportHeight / rasterHeight
	fit := sx
	if sy < fit {
		fit = sy
	}
	t.zoom = t.clampZoom(fit)
	t.panX = 0
	t.panY = 0
}

// ContentToScreen maps a content coordinate through the transform.
func (t *Transform) ContentToScreen(cx, cy float64) (sx, sy float64) {
	return cx*t.zoom + t.panX, cy*t.zoom + t.panY
}

// ScreenToContent maps a screen coordinate back to content space.
func (t *Transform) ScreenToContent(sx, sy float64) (cx, cy float64) {
	return (sx - t.panX) / t.zoom, (sy - t.panY) / t.zoom
}

func (t *Transform) clampZoom(z float64) float64 {
	if z < t.bounds.Min {
		return t.bounds.Min
	}
	if z > t.bounds.Max {
		return t.bounds.Max
	}
	return z
}
