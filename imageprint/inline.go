package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/pkg/errors"
)

// PrintInline writes img to w using whichever inline graphics protocol
// the terminal advertises, trying Kitty, then iTerm2/WezTerm, then
// sixel. It reports false when the terminal supports none of them, in
// which case nothing was written and the caller should fall back to
// PrintBlocks.
func PrintInline(w io.Writer, img image.Image) (bool, error) {
	if rasterm.IsTermKitty() {
		if err := (rasterm.Settings{}).KittyWriteImage(w, img); err != nil {
			return true, errors.Wrap(err, "writing kitty image")
		}
		fmt.Fprintf(w, "\n")
		return true, nil
	}

	if rasterm.IsTermItermWez() {
		if err := (rasterm.Settings{}).ItermWriteImage(w, img); err != nil {
			return true, errors.Wrap(err, "writing iterm image")
		}
		fmt.Fprintf(w, "\n")
		return true, nil
	}

	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		// Sixel wants a paletted image.
		paletted := image.NewPaletted(img.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(paletted, img.Bounds(), img, image.Point{})

		if err := (rasterm.Settings{}).SixelWriteImage(w, paletted); err != nil {
			return true, errors.Wrap(err, "writing sixel image")
		}
		fmt.Fprintf(w, "\n")
		return true, nil
	}

	return false, nil
}

// PrintITerm writes img to w with iTerm2's file escape sequence,
// without probing the terminal first. The name is advisory and shows up
// in the terminal's UI.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, img image.Image, name string) error {
	var buf bytes.Buffer
	enc := base64.NewEncoder(base64.StdEncoding, &buf)
	if err := png.Encode(enc, img); err != nil {
		return errors.Wrap(err, "encoding png")
	}
	enc.Close()

	size := img.Bounds().Size()
	fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d,width=%dpx;height=%dpx:%s\a\n",
		base64.StdEncoding.EncodeToString([]byte(name)), buf.Len(), size.X, size.Y, buf.String())
	return nil
}
