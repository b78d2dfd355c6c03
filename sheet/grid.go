package sheet

import (
	"image"
)

// gridCellSizes are tried in order against square sheets. The order
// prefers the cell sizes most common in asset packs over a plain
// ascending scan.
var gridCellSizes = []int{32, 16, 64, 48, 24, 8}

// DetectGrid guesses a whole-sheet cell layout from dimensions alone, for
// images whose alpha channel gives the detectors nothing to work with.
// Cells come back in reading order (left to right, top to bottom).
//
// A square sheet is tried against the common cell sizes; a wide sheet
// that divides evenly into height-sized squares is taken as a horizontal
// strip, a tall one as a vertical strip. Anything else is a single frame.
func DetectGrid(width, height int) []image.Rectangle {
	if width <= 0 || height <= 0 {
		return nil
	}

	if width == height {
		for _, cell := range gridCellSizes {
			if width%cell != 0 {
				continue
			}
			cols, rows := width/cell, height/cell
			cells := make([]image.Rectangle, 0, cols*rows)
			for row := 0; row < rows; row++ {
				for col := 0; col < cols; col++ {
					cells = append(cells, image.Rect(col*cell, row*cell, (col+1)*cell, (row+1)*cell))
				}
			}
			return cells
		}
	}

	if width > height && width%height == 0 {
		count := width / height
		cells := make([]image.Rectangle, count)
		for i := range cells {
			cells[i] = image.Rect(i*height, 0, (i+1)*height, height)
		}
		return cells
	}

	if height > width && height%width == 0 {
		count := height / width
		cells := make([]image.Rectangle, count)
		for i := range cells {
			cells[i] = image.Rect(0, i*width, width, (i+1)*width)
		}
		return cells
	}

	return []image.Rectangle{image.Rect(0, 0, width, height)}
}
