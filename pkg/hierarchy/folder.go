package hierarchy

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"lifgallery/internal/models"
	"lifgallery/pkg/raster"
)

// LoadFolder reads every PNG/JPEG image in a directory and returns one
// PlaneRecord per file, all in series 0, channel 0, with DepthIndex equal
// to the file's position in sorted order. This covers the
// folder-of-images case where a stack was exported as numbered standalone
// files instead of a container format.
//
// Files are ordered by the number embedded in their name so that
// "slice_10" sorts after "slice_2"; names without digits fall back to
// plain name order.
func LoadFolder(dir string) ([]models.PlaneRecord, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no PNG or JPEG images found in %s", dir)
	}

	// Sort by embedded number to keep the stack in its intended depth
	// order, then by name for stability among unnumbered files.
	sort.Slice(names, func(i, j int) bool {
		ni, nj := extractNumber(names[i]), extractNumber(names[j])
		if ni != nj {
			return ni < nj
		}
		return names[i] < names[j]
	})

	planes := make([]models.PlaneRecord, 0, len(names))
	for depth, name := range names {
		ra, err := loadRaster(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to load image %s: %w", name, err)
		}
		planes = append(planes, models.PlaneRecord{
			SeriesID:   0,
			ChannelID:  0,
			DepthIndex: depth,
			TimeIndex:  0,
			Raster:     ra,
		})
	}
	return planes, nil
}

// extractNumber concatenates the digits of a filename into one integer,
// so slice_007.png and 7_slice.png both order as 7.
func extractNumber(filename string) int {
	numStr := ""
	for _, c := range filepath.Base(filename) {
		if c >= '0' && c <= '9' {
			numStr += string(c)
		}
	}

	if numStr != "" {
		if num, err := strconv.Atoi(numStr); err == nil {
			return num
		}
	}
	return 0
}

func loadRaster(path string) (*raster.Raster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return raster.FromImage(img)
}
