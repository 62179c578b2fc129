package compose

import (
	"fmt"

	"lifgallery/pkg/raster"
)

// Project computes the maximum-intensity projection of an ordered depth
// stack: for every pixel coordinate, each of the A, R, G and B channels
// independently takes the maximum value observed across all sources at
// that coordinate. Channels are never projected jointly; the result pixel
// may combine the red of one slice with the green of another.
//
// The operation is commutative and associative, so source order does not
// affect the output. A single-source stack yields a value-equal copy.
//
// An empty stack is rejected with raster.ErrEmptyInput; sources of
// differing dimensions with raster.ErrShapeMismatch.
func (c *Compositor) Project(sources []*raster.Raster) (*raster.Raster, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: projection requires at least one source", raster.ErrEmptyInput)
	}
	if err := sameShape(sources); err != nil {
		return nil, err
	}

	out, err := raster.New(sources[0].Width(), sources[0].Height())
	if err != nil {
		return nil, err
	}

	width := sources[0].Width()
	c.eachRowRange(sources[0].Height(), func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < width; x++ {
				var maxA, maxR, maxG, maxB uint8
				for _, src := range sources {
					a, r, g, b := src.ARGBAt(x, y)
					if a > maxA {
						maxA = a
					}
					if r > maxR {
						maxR = r
					}
					if g > maxG {
						maxG = g
					}
					if b > maxB {
						maxB = b
					}
				}
				out.SetARGB(x, y, maxA, maxR, maxG, maxB)
			}
		}
	})
	return out, nil
}

// Project computes a maximum-intensity projection on the calling
// goroutine. See Compositor.Project.
func Project(sources []*raster.Raster) (*raster.Raster, error) {
	return serial.Project(sources)
}
