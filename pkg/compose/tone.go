package compose

import (
	"fmt"
	"math"

	"lifgallery/pkg/raster"
)

// Adjust applies a linear brightness/contrast rescale to each of the R, G
// and B channels: out = clamp(0, 255, round(brightness*in + contrast)).
//
// Alpha is passed through unchanged: tone adjustment affects visible
// intensity only, never transparency. This means an adjusted raster
// round-trips its alpha channel exactly.
//
// brightness of 1.0 with contrast 0 is the identity and returns RGB values
// bit-identical to the input. A negative brightness factor is rejected with
// raster.ErrInvalidParameter.
func (c *Compositor) Adjust(src *raster.Raster, brightness, contrast float64) (*raster.Raster, error) {
	if brightness < 0 {
		return nil, fmt.Errorf("%w: brightness factor must be non-negative, got %g",
			raster.ErrInvalidParameter, brightness)
	}

	out, err := raster.New(src.Width(), src.Height())
	if err != nil {
		return nil, err
	}

	width := src.Width()
	c.eachRowRange(src.Height(), func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < width; x++ {
				a, r, g, b := src.ARGBAt(x, y)
				out.SetARGB(x, y, a,
					rescale(r, brightness, contrast),
					rescale(g, brightness, contrast),
					rescale(b, brightness, contrast))
			}
		}
	})
	return out, nil
}

// Adjust applies a linear tone rescale on the calling goroutine.
// See Compositor.Adjust.
func Adjust(src *raster.Raster, brightness, contrast float64) (*raster.Raster, error) {
	return serial.Adjust(src, brightness, contrast)
}

// rescale maps one channel value through the linear transform, rounding to
// nearest and clamping into the 8-bit range rather than wrapping.
func rescale(v uint8, brightness, contrast float64) uint8 {
	scaled := math.Round(brightness*float64(v) + contrast)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}
