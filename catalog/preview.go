package catalog

import (
	"image"
	"io/ioutil"
	"math"

	"github.com/bradfitz/iter"
	"github.com/fogleman/gg"
	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spritecat/ase"
)

// Montage renders the first frames of the records into one contact
// sheet, one cell per record, laid out in a near-square grid. Each
// frame is thumbnailed to fit into a cell of cellSize pixels.
func Montage(records []Record, cellSize int) (image.Image, error) {
	if len(records) == 0 {
		return nil, errors.New("no records to montage")
	}
	if cellSize < 1 {
		return nil, errors.Errorf("cell size %d is not drawable", cellSize)
	}

	cols := int(math.Ceil(math.Sqrt(float64(len(records)))))
	rows := (len(records) + cols - 1) / cols

	dc := gg.NewContext(cols*cellSize, rows*cellSize)
	dc.SetRGB(0.16, 0.16, 0.16)
	dc.Clear()

	for i := range iter.N(len(records)) {
		thumb, err := recordThumbnail(records[i], cellSize)
		if err != nil {
			// Assets can disappear between Scan and Montage; leave the
			// cell empty.
			glog.Errorf("montage cell %d (%s): %v", i, records[i].Path, err)
			continue
		}

		cellX := (i % cols) * cellSize
		cellY := (i / cols) * cellSize
		size := thumb.Bounds().Size()
		dc.DrawImage(thumb, cellX+(cellSize-size.X)/2, cellY+(cellSize-size.Y)/2)
	}

	// Grid lines between cells.
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.SetLineWidth(1)
	for c := range iter.N(cols - 1) {
		x := float64((c + 1) * cellSize)
		dc.DrawLine(x, 0, x, float64(rows*cellSize))
	}
	for r := range iter.N(rows - 1) {
		y := float64((r + 1) * cellSize)
		dc.DrawLine(0, y, float64(cols*cellSize), y)
	}
	dc.Stroke()

	return dc.Image(), nil
}

func recordThumbnail(rec Record, cellSize int) (image.Image, error) {
	data, err := ioutil.ReadFile(rec.Path)
	if err != nil {
		return nil, errors.Wrap(err, "reading asset")
	}
	doc, err := ase.DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	frame := doc.RenderFrame(0)
	if frame.Bounds().Dx() <= cellSize && frame.Bounds().Dy() <= cellSize {
		// Frames that already fit are placed unscaled.
		return frame, nil
	}
	return resize.Thumbnail(uint(cellSize), uint(cellSize), frame, resize.NearestNeighbor), nil
}
