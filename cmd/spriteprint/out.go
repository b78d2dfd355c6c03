package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spritecat/imageprint"
)

func writePNG(img image.Image) error {
	f, err := os.Create(*pngPath)
	if err != nil {
		return errors.Wrap(err, "creating png output")
	}
	defer f.Close()
	return errors.Wrap(png.Encode(f, img), "encoding png")
}

func out(img image.Image) {
	if *downsize {
		if sz, err := termSize(); err == nil {
			if sz.XPixel != 0 && sz.YPixel != 0 && *inline {
				// Inline graphics draw in pixels, block art in cells.
				img = resize.Thumbnail(sz.XPixel/2, sz.YPixel/2, img, resize.NearestNeighbor)
			} else {
				rows := sz.Rows
				if rows > 4 {
					rows -= 4
				}
				img = resize.Thumbnail(sz.Cols/2, rows, img, resize.NearestNeighbor)
			}
		}
	}

	if *iterm {
		if err := imageprint.PrintITerm(os.Stdout, img, filepath.Base(*inPath)); err != nil {
			glog.Errorf("iterm output failed: %v", err)
		}
		return
	}

	if *inline && !*col256 && !*noColor {
		drawn, err := imageprint.PrintInline(os.Stdout, img)
		if err != nil {
			glog.Errorf("inline output failed: %v", err)
			return
		}
		if drawn {
			return
		}
	}

	mode := imageprint.ModeTrueColor
	if *col256 {
		mode = imageprint.ModeAuto
	}
	if *noColor {
		mode = imageprint.ModeNoColor
	}
	imageprint.PrintBlocks(os.Stdout, img, mode, *blanks && !*noColor)
}
