package compose

import (
	"fmt"

	"lifgallery/pkg/raster"
)

// blendSlots is the number of output color channels a blend can route
// sources into.
const blendSlots = 3

// Blend combines up to three single-channel rasters into one composite:
// source 0 drives the output's red channel, source 1 green, source 2 blue.
//
// Each source's per-pixel intensity is taken as max(R, G, B) of its own
// pixel, treating the source as grayscale regardless of how the gray was
// encoded. Sources are nominally grayscale with R=G=B, making the max
// redundant for them, but it is what keeps oddly-encoded sources (palette
// remnants, single-channel tints) blending by their visible strength, so
// it is deliberate and must not be replaced by a single-channel lookup.
//
// Output alpha is the maximum alpha among the contributing sources.
// Sources past index 2 are ignored entirely; passing more than three is
// accepted and documented truncation, not an error. An empty source list
// is rejected with raster.ErrEmptyInput, mismatched dimensions with
// raster.ErrShapeMismatch.
func (c *Compositor) Blend(channels []*raster.Raster) (*raster.Raster, error) {
	if len(channels) == 0 {
		return nil, fmt.Errorf("%w: blend requires at least one channel", raster.ErrEmptyInput)
	}
	if err := sameShape(channels); err != nil {
		return nil, err
	}

	used := channels
	if len(used) > blendSlots {
		used = used[:blendSlots]
	}

	out, err := raster.New(channels[0].Width(), channels[0].Height())
	if err != nil {
		return nil, err
	}

	width := channels[0].Width()
	c.eachRowRange(channels[0].Height(), func(yStart, yEnd int) {
		for y := yStart; y < yEnd; y++ {
			for x := 0; x < width; x++ {
				var rgb [blendSlots]uint8
				var maxA uint8
				for i, src := range used {
					a, r, g, b := src.ARGBAt(x, y)
					rgb[i] = intensity(r, g, b)
					if a > maxA {
						maxA = a
					}
				}
				out.SetARGB(x, y, maxA, rgb[0], rgb[1], rgb[2])
			}
		}
	})
	return out, nil
}

// Blend combines single-channel rasters into a composite on the calling
// goroutine. See Compositor.Blend.
func Blend(channels []*raster.Raster) (*raster.Raster, error) {
	return serial.Blend(channels)
}

// intensity is the grayscale strength of a pixel: the brightest of its
// three color channels.
func intensity(r, g, b uint8) uint8 {
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	return max
}
