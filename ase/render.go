package ase

// Frame compositing: cels are painted bottom-to-top onto a canvas-sized
// transparent raster, with straight-alpha "over" blending throughout.

import (
	"image"
	"sort"

	"github.com/golang/glog"
)

// RenderFrame composites all cels of the given frame into one raster of
// the document's canvas size, bottom layer first.
//
// The render is best effort: a cel that fails to decompress or to resolve
// its link is skipped with a log line rather than failing the whole frame.
// A frame index outside the document yields an all-transparent canvas.
// Cels on hidden layers are skipped; a cel whose layer index is beyond the
// known layer list is treated as visible.
func (d *Document) RenderFrame(frame int) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))

	if frame < 0 || frame >= len(d.Frames) {
		return canvas
	}

	cels := make([]Cel, len(d.Frames[frame].Cels))
	copy(cels, d.Frames[frame].Cels)
	sort.SliceStable(cels, func(i, j int) bool {
		return cels[i].LayerIndex < cels[j].LayerIndex
	})

	for _, cel := range cels {
		layerOpacity := uint8(255)
		if cel.LayerIndex < len(d.Layers) {
			layer := d.Layers[cel.LayerIndex]
			if !layer.Visible {
				continue
			}
			layerOpacity = layer.Opacity
		}

		src, err := d.resolveCel(cel)
		if err != nil {
			glog.Errorf("skipping cel on layer %d of frame %d: %v", cel.LayerIndex, frame, err)
			continue
		}

		raster, err := src.Rasterize(d.ColorMode, d.Palette)
		if err != nil {
			glog.Errorf("skipping cel on layer %d of frame %d: %v", cel.LayerIndex, frame, err)
			continue
		}

		drawOver(canvas, raster, cel.X, cel.Y, cel.Opacity, layerOpacity)
	}

	return canvas
}

// resolveCel maps a linked cel to the cel actually holding pixels: the one
// stored at (cel.LinkedFrame, same layer). Non-linked cels resolve to
// themselves. Chained links are not a thing the format produces, so a
// linked target is reported as unresolvable.
func (d *Document) resolveCel(cel Cel) (Cel, error) {
	if !cel.Linked {
		return cel, nil
	}
	if cel.LinkedFrame < 0 || cel.LinkedFrame >= len(d.Frames) {
		return Cel{}, &LinkError{Frame: cel.LinkedFrame, Layer: cel.LayerIndex}
	}
	for _, candidate := range d.Frames[cel.LinkedFrame].Cels {
		if candidate.LayerIndex == cel.LayerIndex && !candidate.Linked {
			return candidate, nil
		}
	}
	return Cel{}, &LinkError{Frame: cel.LinkedFrame, Layer: cel.LayerIndex}
}

// drawOver paints src onto dst at (offX, offY) with straight-alpha
// source-over blending. The source alpha is scaled by celOpacity/255 and
// again by layerOpacity/255; the two factors are multiplicative.
func drawOver(dst, src *image.NRGBA, offX, offY int, celOpacity, layerOpacity uint8) {
	target := src.Bounds().Add(image.Pt(offX, offY)).Intersect(dst.Bounds())
	if target.Empty() {
		return
	}

	for y := target.Min.Y; y < target.Max.Y; y++ {
		srcRow := src.PixOffset(target.Min.X-offX, y-offY)
		dstRow := dst.PixOffset(target.Min.X, y)
		for x := target.Min.X; x < target.Max.X; x++ {
			sr := uint32(src.Pix[srcRow+0])
			sg := uint32(src.Pix[srcRow+1])
			sb := uint32(src.Pix[srcRow+2])
			sa := uint32(src.Pix[srcRow+3])

			sa = sa * uint32(celOpacity) / 255
			sa = sa * uint32(layerOpacity) / 255

			if sa != 0 {
				dr := uint32(dst.Pix[dstRow+0])
				dg := uint32(dst.Pix[dstRow+1])
				db := uint32(dst.Pix[dstRow+2])
				da := uint32(dst.Pix[dstRow+3])

				outA := sa + da*(255-sa)/255
				dst.Pix[dstRow+0] = uint8((sr*sa*255 + dr*da*(255-sa)) / (255 * outA))
				dst.Pix[dstRow+1] = uint8((sg*sa*255 + dg*da*(255-sa)) / (255 * outA))
				dst.Pix[dstRow+2] = uint8((sb*sa*255 + db*da*(255-sa)) / (255 * outA))
				dst.Pix[dstRow+3] = uint8(outA)
			}

			srcRow += 4
			dstRow += 4
		}
	}
}
