// Package visualization writes pipeline output to disk for inspection:
// single rasters, per-channel base images of a built hierarchy, and whole
// slice sequences. Encoding stops at PNG and JPEG; anything fancier is an
// external concern.
package visualization

import (
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"lifgallery/pkg/hierarchy"
	"lifgallery/pkg/raster"
)

// jpegQuality matches the quality used for saved slices.
const jpegQuality = 90

// SaveRaster encodes a raster into the file named by path. The format is
// chosen by extension: .png, or .jpg/.jpeg.
func SaveRaster(ra *raster.Raster, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(file, ra.ToImage())
	case ".jpg", ".jpeg":
		return jpeg.Encode(file, ra.ToImage(), &jpeg.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("unsupported image extension: %s (must be .png, .jpg or .jpeg)", filepath.Ext(path))
	}
}

// SaveChannelBases writes every channel's base raster in the tree as
// series_SS_channel_CC.png files under outputDir, creating the directory
// if needed.
func SaveChannelBases(tree *hierarchy.Tree, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for _, s := range tree.Series {
		for _, ch := range s.Channels {
			name := fmt.Sprintf("series_%02d_channel_%02d.png", s.ID, ch.ID)
			if err := SaveRaster(ch.Base, filepath.Join(outputDir, name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveSliceSequence writes a channel's acquired slices as numbered PNG
// files under outputDir, in stored (depth) order. Synthetic projection
// slices are skipped; they duplicate the channel base.
func SaveSliceSequence(ch *hierarchy.Channel, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	for i, sl := range ch.AcquiredSlices() {
		name := fmt.Sprintf("slice_%03d.png", i)
		if err := SaveRaster(sl.Raster, filepath.Join(outputDir, name)); err != nil {
			return err
		}
	}
	return nil
}
