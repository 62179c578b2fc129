package compose

import (
	"gonum.org/v1/gonum/stat"

	"lifgallery/pkg/raster"
)

// Stats summarizes the intensity distribution of a raster. Intensity is
// the same max(R,G,B) grayscale strength the blend step uses, in 0-255.
type Stats struct {
	// Mean is the average intensity.
	Mean float64

	// StdDev is the intensity standard deviation.
	StdDev float64

	// Min and Max are the darkest and brightest intensities present.
	Min float64
	Max float64

	// Entropy is the Shannon entropy (nats) of the 256-bin intensity
	// histogram. Flat images score 0; noisy, well-spread images score high.
	Entropy float64
}

// Auto-tone targets: bring the mean intensity to mid-gray and stretch the
// spread to a quarter of the full range, with the gain limited so near-flat
// images are not amplified into noise.
const (
	autoToneTargetMean   = 128.0
	autoToneTargetStdDev = 64.0
	autoToneMinGain      = 0.25
	autoToneMaxGain      = 4.0
)

// Measure computes intensity statistics for a raster.
func Measure(src *raster.Raster) Stats {
	width, height := src.Width(), src.Height()
	values := make([]float64, 0, width*height)
	var hist [256]float64

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			_, r, g, b := src.ARGBAt(x, y)
			v := intensity(r, g, b)
			values = append(values, float64(v))
			hist[v]++
		}
	}

	dist := hist[:]
	total := float64(len(values))
	for i := range dist {
		dist[i] /= total
	}

	s := Stats{
		Mean:   stat.Mean(values, nil),
		StdDev: stat.StdDev(values, nil),
		Min:    values[0],
		Max:    values[0],
	}
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	// stat.Entropy expects a normalized distribution; empty bins
	// contribute zero by convention.
	s.Entropy = stat.Entropy(dist)
	return s
}

// AutoTone derives a brightness/contrast pair that normalizes the raster's
// intensity distribution: gain stretches the standard deviation toward
// autoToneTargetStdDev (clamped to a sane range), offset then recenters the
// mean on mid-gray. The returned pair is always a valid Adjust input.
func AutoTone(src *raster.Raster) (brightness, contrast float64) {
	s := Measure(src)

	brightness = 1.0
	if s.StdDev > 0 {
		brightness = autoToneTargetStdDev / s.StdDev
	}
	if brightness < autoToneMinGain {
		brightness = autoToneMinGain
	}
	if brightness > autoToneMaxGain {
		brightness = autoToneMaxGain
	}

	contrast = autoToneTargetMean - brightness*s.Mean
	return brightness, contrast
}

// AutoAdjust measures the raster, derives auto-tone parameters and applies
// them, returning the adjusted raster along with the parameters used so
// the caller can report or persist them.
func (c *Compositor) AutoAdjust(src *raster.Raster) (*raster.Raster, float64, float64, error) {
	brightness, contrast := AutoTone(src)
	out, err := c.Adjust(src, brightness, contrast)
	if err != nil {
		return nil, 0, 0, err
	}
	return out, brightness, contrast, nil
}
