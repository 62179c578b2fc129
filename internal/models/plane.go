package models

import (
	"lifgallery/pkg/raster"
)

// PlaneRecord represents a single decoded 2D plane together with its
// position in the acquisition hierarchy. An external container-format
// decoder emits one PlaneRecord per plane; the hierarchy builder consumes
// them in emission order.
type PlaneRecord struct {
	// SeriesID identifies the acquisition series this plane belongs to.
	// Grouping is by numeric identity; values need not be contiguous.
	SeriesID int

	// ChannelID identifies the detector/wavelength channel within the series.
	ChannelID int

	// DepthIndex is the plane's Z position within its channel stack.
	// It is metadata only: stacking order is the order records arrive in,
	// because decoders already emit planes in depth-then-time order.
	DepthIndex int

	// TimeIndex is the plane's timepoint, zero for single-timepoint
	// acquisitions.
	TimeIndex int

	// Raster is the decoded pixel data for this plane.
	Raster *raster.Raster
}
