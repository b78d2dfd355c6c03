package ase

// Cel pixel payload normalization: every color mode ends up as a
// straight-alpha RGBA raster (image.NRGBA), four bytes per pixel.

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"image"
	"image/color"
	"io"
)

// DecompressionError reports a corrupt compressed cel payload. It is local
// to one cel: a caller rendering a whole frame may skip the offending cel
// and keep the rest of the document usable.
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string {
	return fmt.Sprintf("ase: corrupt compressed cel payload: %v", e.Err)
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// LinkError reports a linked cel whose target cel does not exist. Like
// DecompressionError it is local to one cel.
type LinkError struct {
	Frame, Layer int
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("ase: no cel to link to at frame %d, layer %d", e.Frame, e.Layer)
}

// Rasterize decodes the cel's pixel payload into a straight-alpha RGBA
// image of the cel's size, anchored at (0, 0); the cel's canvas offset is
// applied by the compositor, not here.
//
// Grayscale payloads expand (gray, alpha) to (gray, gray, gray, alpha);
// indexed payloads are resolved through the passed palette, with any
// out-of-range index becoming fully transparent black. Linked cels carry
// no payload and must be resolved to their target cel first.
func (c *Cel) Rasterize(mode ColorMode, palette []color.RGBA) (*image.NRGBA, error) {
	if c.Linked {
		return nil, &LinkError{Frame: c.LinkedFrame, Layer: c.LayerIndex}
	}

	bpp := mode.BytesPerPixel()
	if bpp == 0 {
		return nil, formatErrorf("unsupported color depth %d", uint16(mode))
	}

	px := c.raw
	if c.compressed {
		zr, err := zlib.NewReader(bytes.NewReader(c.raw))
		if err != nil {
			return nil, &DecompressionError{Err: err}
		}
		px, err = io.ReadAll(zr)
		zr.Close()
		if err != nil {
			return nil, &DecompressionError{Err: err}
		}
	}

	need := c.Width * c.Height * bpp
	if len(px) < need {
		return nil, formatErrorf("cel payload has %d bytes, want %d for %dx%d at %d bpp", len(px), need, c.Width, c.Height, bpp)
	}

	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))

	switch mode {
	case ColorRGBA:
		copy(img.Pix, px[:need])
	case ColorGrayscale:
		for i, o := 0, 0; i < need; i, o = i+2, o+4 {
			gray, alpha := px[i], px[i+1]
			img.Pix[o+0] = gray
			img.Pix[o+1] = gray
			img.Pix[o+2] = gray
			img.Pix[o+3] = alpha
		}
	case ColorIndexed:
		for i, o := 0, 0; i < need; i, o = i+1, o+4 {
			idx := int(px[i])
			if idx >= len(palette) {
				continue // transparent black
			}
			entry := palette[idx]
			img.Pix[o+0] = entry.R
			img.Pix[o+1] = entry.G
			img.Pix[o+2] = entry.B
			img.Pix[o+3] = entry.A
		}
	}

	return img, nil
}
