// Package raster provides the 2D ARGB pixel grid that every stage of the
// composition pipeline consumes and produces. A Raster is created once,
// filled by a decoder or a pipeline stage, and treated as read-only from
// then on; transforms always allocate a fresh Raster instead of mutating
// their input.
package raster

import (
	"fmt"
	"image"
	"image/color"
)

// Raster is a width*height grid of 8-bit ARGB pixels stored row-major.
// Alpha is straight (not premultiplied), matching what standard image
// decoders hand us.
type Raster struct {
	width  int
	height int

	// pix holds 4 bytes per pixel in A, R, G, B order.
	// Invariant: len(pix) == 4*width*height.
	pix []uint8
}

// New creates a fully transparent black raster of the given dimensions.
// Dimensions must be positive.
func New(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: raster dimensions must be positive, got %dx%d",
			ErrInvalidParameter, width, height)
	}
	return &Raster{
		width:  width,
		height: height,
		pix:    make([]uint8, 4*width*height),
	}, nil
}

// Width returns the raster width in pixels.
func (ra *Raster) Width() int { return ra.width }

// Height returns the raster height in pixels.
func (ra *Raster) Height() int { return ra.height }

// ARGBAt returns the four channel values of the pixel at (x, y).
// Coordinates outside the raster panic, as with a slice index.
func (ra *Raster) ARGBAt(x, y int) (a, r, g, b uint8) {
	i := ra.offset(x, y)
	return ra.pix[i], ra.pix[i+1], ra.pix[i+2], ra.pix[i+3]
}

// SetARGB writes the pixel at (x, y). It exists for decoders and pipeline
// stages filling a raster they just allocated; stages never call it on a
// raster they received as input.
func (ra *Raster) SetARGB(x, y int, a, r, g, b uint8) {
	i := ra.offset(x, y)
	ra.pix[i] = a
	ra.pix[i+1] = r
	ra.pix[i+2] = g
	ra.pix[i+3] = b
}

func (ra *Raster) offset(x, y int) int {
	if x < 0 || x >= ra.width || y < 0 || y >= ra.height {
		panic(fmt.Sprintf("raster: pixel (%d,%d) outside %dx%d", x, y, ra.width, ra.height))
	}
	return 4 * (y*ra.width + x)
}

// SameShape reports whether two rasters have identical dimensions.
func (ra *Raster) SameShape(other *Raster) bool {
	return ra.width == other.width && ra.height == other.height
}

// Equal reports whether two rasters have identical dimensions and identical
// pixel data in every channel.
func (ra *Raster) Equal(other *Raster) bool {
	if !ra.SameShape(other) {
		return false
	}
	for i := range ra.pix {
		if ra.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy whose pixel buffer is independent of the
// original.
func (ra *Raster) Clone() *Raster {
	out := &Raster{
		width:  ra.width,
		height: ra.height,
		pix:    make([]uint8, len(ra.pix)),
	}
	copy(out.pix, ra.pix)
	return out
}

// FromImage converts a decoded standard-library image into a Raster.
// This is the boundary where external decoders (PNG, JPEG, or a container
// format reader) hand pixel data to the pipeline. Palette and other exotic
// source formats are normalized through the NRGBA color model, the Go
// equivalent of forcing an indexed image into ARGB.
func FromImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	out, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.SetARGB(x-bounds.Min.X, y-bounds.Min.Y, c.A, c.R, c.G, c.B)
		}
	}
	return out, nil
}

// ToImage converts the raster back into a standard-library image for
// encoding or display by an external renderer.
func (ra *Raster) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ra.width, ra.height))
	for y := 0; y < ra.height; y++ {
		for x := 0; x < ra.width; x++ {
			a, r, g, b := ra.ARGBAt(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: a})
		}
	}
	return img
}
