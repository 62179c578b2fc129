// Package compose implements the raster composition pipeline: linear tone
// adjustment, maximum-intensity projection over a depth stack, and blending
// of single-channel rasters into a multi-channel composite.
//
// All operations are pure: inputs are never mutated and the result is a
// freshly allocated raster. Every per-pixel computation reads and writes a
// single coordinate, so the pixel loops can be partitioned across workers
// by disjoint row ranges without changing the result.
package compose

import (
	"fmt"
	"sync"

	"lifgallery/pkg/raster"
)

// Compositor runs pipeline operations with a fixed degree of parallelism.
// The zero value runs everything on the calling goroutine. Output is
// bit-identical regardless of worker count.
type Compositor struct {
	// Workers is the number of goroutines used for pixel loops.
	// Values below 1 mean single-threaded.
	Workers int
}

var serial = &Compositor{Workers: 1}

func (c *Compositor) workers() int {
	if c.Workers > 1 {
		return c.Workers
	}
	return 1
}

// eachRowRange invokes fn over [0,height) split into one contiguous row
// range per worker and waits for all of them to finish.
func (c *Compositor) eachRowRange(height int, fn func(yStart, yEnd int)) {
	workers := c.workers()
	if workers == 1 || height < workers {
		fn(0, height)
		return
	}

	rowsPerWorker := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		yStart := w * rowsPerWorker
		yEnd := yStart + rowsPerWorker
		if yEnd > height {
			yEnd = height
		}
		if yStart >= yEnd {
			break
		}

		wg.Add(1)
		go func(yStart, yEnd int) {
			defer wg.Done()
			fn(yStart, yEnd)
		}(yStart, yEnd)
	}
	wg.Wait()
}

// sameShape verifies that every raster in rs matches the first one.
func sameShape(rs []*raster.Raster) error {
	first := rs[0]
	for i, r := range rs[1:] {
		if !first.SameShape(r) {
			return fmt.Errorf("%w: source %d is %dx%d, expected %dx%d",
				raster.ErrShapeMismatch, i+1, r.Width(), r.Height(),
				first.Width(), first.Height())
		}
	}
	return nil
}
