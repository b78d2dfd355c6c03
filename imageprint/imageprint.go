// Package imageprint draws sprite previews on a terminal.
//
// Terminals with inline graphics support (Kitty, iTerm2/WezTerm, sixel)
// get the real image; everywhere else the sprite is drawn as colored
// block art, two characters per pixel.
package imageprint

import (
	"fmt"
	"image"
	ic "image/color"
	"io"

	"github.com/gookit/color"
)

// Mode selects how block-art pixels are colored.
type Mode int

const (
	// ModeAuto lets the color library pick the best escape codes the
	// terminal supports.
	ModeAuto Mode = iota
	// ModeTrueColor always emits 24-bit background escapes.
	ModeTrueColor
	// ModeNoColor emits no escape sequences at all. Only useful together
	// with luminance glyphs.
	ModeNoColor
)

// PrintBlocks draws img to w as block art. With blanks set, each pixel
// is a plain colored cell; otherwise the glyph tracks the pixel's
// luminance so the sprite stays readable in a monochrome capture.
func PrintBlocks(w io.Writer, img image.Image, mode Mode, blanks bool) {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			cell(w, img.At(x, y), mode, blanks)
		}
		if mode != ModeNoColor {
			fmt.Fprintf(w, "\x1b[0m")
		}
		fmt.Fprintf(w, "\n")
	}
}

// cell writes one pixel as a two-character cell. Transparent pixels
// reset the background so the canvas shows through.
func cell(w io.Writer, col ic.Color, mode Mode, blanks bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if mode == ModeNoColor {
			fmt.Fprintf(w, "  ")
		} else {
			fmt.Fprintf(w, "\x1b[0m  ")
		}
		return
	}

	glyph := "  "
	if !blanks {
		glyph = luminanceGlyph(cR, cG, cB)
	}

	switch mode {
	case ModeNoColor:
		fmt.Fprint(w, glyph)
	case ModeTrueColor:
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm%s\x1b[0m", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), glyph)
	default:
		fmt.Fprint(w, color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true).Sprint(glyph))
	}
}

func luminanceGlyph(r, g, b uint32) string {
	lum := ((r + g + b) / 3) >> 8
	switch {
	case lum < 32:
		return ".."
	case lum < 64:
		return "--"
	case lum < 128:
		return "=="
	default:
		return "##"
	}
}
