package sheet

import (
	"image"
)

// FloodFillBounds runs Default.FloodFillBounds.
func FloodFillBounds(img image.Image) (image.Rectangle, bool) {
	return Default.FloodFillBounds(img)
}

// FloodFillBounds finds the bounding box of the first connected blob of
// visible pixels, scanning rows top to bottom for a seed and growing it
// with an 8-way flood fill.
//
// Unlike FirstFrameBounds this ignores grid structure entirely, which
// works better for irregular sheets where sprites are packed without
// gutters but never touch. The second return is false when the image has
// no alpha channel or is entirely empty under the threshold.
func (d Detector) FloodFillBounds(img image.Image) (image.Rectangle, bool) {
	alpha, w, h, ok := alphaPlane(img)
	if !ok || w == 0 || h == 0 {
		return image.Rectangle{}, false
	}

	seedX, seedY := -1, -1
	for y := 0; y < h && seedX < 0; y++ {
		for x := 0; x < w; x++ {
			if alpha[y*w+x] > d.AlphaThreshold {
				seedX, seedY = x, y
				break
			}
		}
	}
	if seedX < 0 {
		return image.Rectangle{}, false
	}

	visited := make([]bool, w*h)
	visited[seedY*w+seedX] = true
	stack := []image.Point{{seedX, seedY}}

	minX, minY, maxX, maxY := seedX, seedY, seedX, seedY
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := p.X+dx, p.Y+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				idx := ny*w + nx
				if visited[idx] || alpha[idx] <= d.AlphaThreshold {
					continue
				}
				visited[idx] = true
				stack = append(stack, image.Point{nx, ny})
			}
		}
	}

	return image.Rect(minX, minY, maxX+1, maxY+1), true
}
