package viewport

import (
	"lifgallery/pkg/raster"
)

// StackView is the navigation state of one viewport: the raster or
// Z-stack currently loaded, the selected slice, and the view transform.
// Loading a new raster or stack resets the transform, so a freshly loaded
// image always appears at 1:1 with no leftover pan.
type StackView struct {
	stack     []*raster.Raster
	slice     int
	transform *Transform
}

// NewStackView creates an empty view with the given zoom bounds.
func NewStackView(bounds Bounds) (*StackView, error) {
	t, err := NewTransform(bounds)
	if err != nil {
		return nil, err
	}
	return &StackView{transform: t}, nil
}

// Transform returns the view's transform for zoom/pan operations.
func (v *StackView) Transform() *Transform { return v.transform }

// SetRaster loads a single raster, replacing any stack, and resets the
// transform.
func (v *StackView) SetRaster(ra *raster.Raster) {
	v.stack = []*raster.Raster{ra}
	v.slice = 0
	v.transform.Reset()
}

// SetStack loads a Z-stack and selects its first slice. An empty stack
// clears the view. The transform is reset either way.
func (v *StackView) SetStack(stack []*raster.Raster) {
	v.stack = stack
	v.slice = 0
	v.transform.Reset()
}

// SetSlice selects a slice by index. Out-of-range indices are ignored and
// the current selection stays.
func (v *StackView) SetSlice(z int) {
	if z >= 0 && z < len(v.stack) {
		v.slice = z
	}
}

// Slice returns the index of the selected slice.
func (v *StackView) Slice() int { return v.slice }

// SliceCount returns the number of slices loaded.
func (v *StackView) SliceCount() int { return len(v.stack) }

// Current returns the selected slice's raster, or nil when nothing is
// loaded.
func (v *StackView) Current() *raster.Raster {
	if len(v.stack) == 0 {
		return nil
	}
	return v.stack[v.slice]
}
