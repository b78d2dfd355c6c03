package sheet

import (
	"image"
)

// DefaultAlphaThreshold is the alpha value at or below which a pixel
// counts as empty. Sprites exported from some editors carry "ghost"
// pixels with alpha around 1 that are visually invisible but would
// otherwise register as content; the default tolerates those. The
// constant was tuned on real asset packs, not derived, so Detector leaves
// it adjustable.
const DefaultAlphaThreshold = 10

// Detector holds the tunables for alpha-based boundary scans.
type Detector struct {
	// AlphaThreshold: pixels with alpha <= this are treated as empty.
	AlphaThreshold uint8
}

// Default is the Detector used by the package-level functions.
var Default = Detector{AlphaThreshold: DefaultAlphaThreshold}

// FirstFrameBounds runs Default.FirstFrameBounds.
func FirstFrameBounds(img image.Image) (image.Rectangle, bool) {
	return Default.FirstFrameBounds(img)
}

// FirstFrameBounds finds the content bounding box of the first frame in a
// spritesheet.
//
// Phase one scans for the first fully empty column after a column with
// content, and likewise for rows; those gutters delimit the first frame
// cell. A dimension with no gutter extends to the full image, which makes
// single sprites and gapless sheets degrade to a plain content bbox.
// Phase two computes the tight bounding box of above-threshold pixels
// inside the cell, in the original image's coordinate space.
//
// The second return is false when the image has no alpha channel to work
// from or no pixel in the cell clears the threshold.
func (d Detector) FirstFrameBounds(img image.Image) (image.Rectangle, bool) {
	alpha, w, h, ok := alphaPlane(img)
	if !ok || w == 0 || h == 0 {
		return image.Rectangle{}, false
	}

	gapCol := w
	seenContent := false
	for x := 0; x < w; x++ {
		empty := true
		for y := 0; y < h; y++ {
			if alpha[y*w+x] > d.AlphaThreshold {
				empty = false
				break
			}
		}
		if !empty {
			seenContent = true
		} else if seenContent {
			gapCol = x
			break
		}
	}

	gapRow := h
	seenContent = false
	for y := 0; y < h; y++ {
		empty := true
		row := alpha[y*w : y*w+w]
		for x := 0; x < w; x++ {
			if row[x] > d.AlphaThreshold {
				empty = false
				break
			}
		}
		if !empty {
			seenContent = true
		} else if seenContent {
			gapRow = y
			break
		}
	}

	// Tight content bbox within [0, gapCol) x [0, gapRow).
	minX, minY := gapCol, gapRow
	maxX, maxY := -1, -1
	for y := 0; y < gapRow; y++ {
		row := alpha[y*w : y*w+gapCol]
		for x := 0; x < gapCol; x++ {
			if row[x] > d.AlphaThreshold {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				maxY = y
			}
		}
	}

	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// alphaPlane extracts a w*h row-major alpha buffer from rasters that
// actually carry alpha. Images without an alpha channel report ok=false;
// callers treat that as "nothing to detect", mirroring how indexers skip
// opaque-format files.
func alphaPlane(img image.Image) (alpha []uint8, w, h int, ok bool) {
	bounds := img.Bounds()
	w, h = bounds.Dx(), bounds.Dy()

	switch src := img.(type) {
	case *image.NRGBA:
		alpha = make([]uint8, w*h)
		for y := 0; y < h; y++ {
			rowStart := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < w; x++ {
				alpha[y*w+x] = src.Pix[rowStart+x*4+3]
			}
		}
		return alpha, w, h, true
	case *image.RGBA:
		alpha = make([]uint8, w*h)
		for y := 0; y < h; y++ {
			rowStart := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			for x := 0; x < w; x++ {
				alpha[y*w+x] = src.Pix[rowStart+x*4+3]
			}
		}
		return alpha, w, h, true
	}

	return nil, 0, 0, false
}
