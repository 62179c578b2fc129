// Package hierarchy groups a flat, ordered sequence of decoded planes into
// the series → channel → slice tree an acquisition container describes,
// and computes each channel's base raster (the single slice, or the
// maximum-intensity projection of the stack).
//
// A tree is built once per load and replaced wholesale on the next load;
// nothing mutates a tree after Build returns. Consumers that rebuild (for
// example when toggling projection slices) swap the new tree in and let
// in-flight readers finish with the old one.
package hierarchy

import (
	"fmt"

	"lifgallery/internal/models"
	"lifgallery/pkg/compose"
	"lifgallery/pkg/raster"
)

// SyntheticIndex is the sentinel depth/time index carried by synthetic
// projection slices, which have no position in the acquired stack.
const SyntheticIndex = -1

// Tree is the root of a built hierarchy. Series appear in first-seen
// order of their IDs in the input.
type Tree struct {
	Series []*Series
}

// Series is one independent acquisition within a container, owning its
// channels in first-seen order.
type Series struct {
	ID       int
	Channels []*Channel
}

// Channel is one detector stream within a series. Slices keep the arrival
// order of their PlaneRecords; Base is the channel's representative
// raster, shared with the sole slice when there is only one.
type Channel struct {
	ID     int
	Slices []*Slice
	Base   *raster.Raster
}

// Slice wraps one plane of a channel stack. Synthetic slices are
// projection views appended by Build; they carry SyntheticIndex for both
// positions and are never treated as acquired data.
type Slice struct {
	Raster     *raster.Raster
	DepthIndex int
	TimeIndex  int
	Synthetic  bool
}

// Options controls tree construction.
type Options struct {
	// SynthesizeProjectionSlices appends, to every channel with more than
	// one slice, an extra slice holding that channel's projection so a
	// browser can present the projection alongside the acquired planes.
	SynthesizeProjectionSlices bool

	// Workers is the parallelism used for projection pixel loops.
	Workers int
}

// Build groups planes into a tree in a single pass and computes every
// channel's base raster.
//
// Grouping is by numeric identity of (SeriesID, ChannelID): the first
// record with a new series ID appends a Series node, the first record with
// a new channel ID within a series appends a Channel node, and every
// record appends exactly one Slice in arrival order. Slices are not
// re-sorted by DepthIndex; the decoder's emission order is authoritative.
// Non-contiguous and out-of-order IDs group correctly because only
// identity matters.
//
// An empty input yields an empty tree, not an error. Build fails only if a
// channel's slices disagree on dimensions, which makes its projection
// impossible.
func Build(planes []models.PlaneRecord, opts Options) (*Tree, error) {
	tree := &Tree{}
	seriesByID := make(map[int]*Series)
	channelsBySeries := make(map[int]map[int]*Channel)

	for _, p := range planes {
		s, ok := seriesByID[p.SeriesID]
		if !ok {
			s = &Series{ID: p.SeriesID}
			seriesByID[p.SeriesID] = s
			channelsBySeries[p.SeriesID] = make(map[int]*Channel)
			tree.Series = append(tree.Series, s)
		}

		ch, ok := channelsBySeries[p.SeriesID][p.ChannelID]
		if !ok {
			ch = &Channel{ID: p.ChannelID}
			channelsBySeries[p.SeriesID][p.ChannelID] = ch
			s.Channels = append(s.Channels, ch)
		}

		ch.Slices = append(ch.Slices, &Slice{
			Raster:     p.Raster,
			DepthIndex: p.DepthIndex,
			TimeIndex:  p.TimeIndex,
		})
	}

	comp := &compose.Compositor{Workers: opts.Workers}
	for _, s := range tree.Series {
		for _, ch := range s.Channels {
			if err := finishChannel(comp, s, ch, opts); err != nil {
				return nil, err
			}
		}
	}
	return tree, nil
}

// finishChannel computes the channel's base raster and, when requested,
// appends the synthetic projection slice. The base shares the sole slice's
// raster rather than copying it; projection is only run for true stacks.
// Synthetic slices are appended after the base is computed so they never
// feed back into the projection.
func finishChannel(comp *compose.Compositor, s *Series, ch *Channel, opts Options) error {
	if len(ch.Slices) == 1 {
		ch.Base = ch.Slices[0].Raster
		return nil
	}

	sources := make([]*raster.Raster, len(ch.Slices))
	for i, sl := range ch.Slices {
		sources[i] = sl.Raster
	}
	base, err := comp.Project(sources)
	if err != nil {
		return fmt.Errorf("series %d channel %d: %w", s.ID, ch.ID, err)
	}
	ch.Base = base

	if opts.SynthesizeProjectionSlices {
		ch.Slices = append(ch.Slices, &Slice{
			Raster:     base,
			DepthIndex: SyntheticIndex,
			TimeIndex:  SyntheticIndex,
			Synthetic:  true,
		})
	}
	return nil
}

// Channel returns the channel with the given IDs, or nil when absent.
func (t *Tree) Channel(seriesID, channelID int) *Channel {
	for _, s := range t.Series {
		if s.ID != seriesID {
			continue
		}
		for _, ch := range s.Channels {
			if ch.ID == channelID {
				return ch
			}
		}
	}
	return nil
}

// AcquiredSlices returns the channel's non-synthetic slices in stored
// order. Use this when slices are fed onward as source data.
func (ch *Channel) AcquiredSlices() []*Slice {
	out := make([]*Slice, 0, len(ch.Slices))
	for _, sl := range ch.Slices {
		if !sl.Synthetic {
			out = append(out, sl)
		}
	}
	return out
}

// PlaneCount returns the number of acquired planes in the whole tree.
func (t *Tree) PlaneCount() int {
	n := 0
	for _, s := range t.Series {
		for _, ch := range s.Channels {
			n += len(ch.AcquiredSlices())
		}
	}
	return n
}
