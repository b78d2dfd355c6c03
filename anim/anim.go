// Package anim exports animation tags from sprite documents as animated
// GIFs.
//
// Frames are composited through the document renderer, quantized down to
// a 255-color palette with one slot reserved for transparency, and
// written with per-frame delays taken from the document's frame
// durations.
package anim

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/go-spritecat/ase"
)

// EncodeGIF renders the frame range of the named tag and writes it to w
// as an animated GIF. An empty tag name exports every frame of the
// document in forward order. The tag's playback direction (forward,
// reverse, ping-pong and its reverse) is baked into the emitted frame
// sequence.
func EncodeGIF(w io.Writer, doc *ase.Document, tagName string) error {
	sequence, err := frameSequence(doc, tagName)
	if err != nil {
		return err
	}

	glog.V(1).Infof("encoding %d-frame gif for tag %q", len(sequence), tagName)

	var g gif.GIF
	quantizer := quantize.MedianCutQuantizer{}

	for _, frame := range sequence {
		img := doc.RenderFrame(frame)

		pal := quantizer.Quantize(make([]color.Color, 0, 255), img)

		// Transparency goes into slot 0 so an undrawn paletted image
		// defaults to it.
		framed := image.NewPaletted(img.Bounds(), append(color.Palette{color.Transparent}, pal...))
		draw.Draw(framed, img.Bounds(), img, image.Point{}, draw.Over)

		g.Image = append(g.Image, framed)
		g.Delay = append(g.Delay, delayCentisec(doc, frame))
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0

	return errors.Wrap(gif.EncodeAll(w, &g), "encoding gif")
}

// frameSequence expands a tag into the ordered frame indices to emit.
func frameSequence(doc *ase.Document, tagName string) ([]int, error) {
	from, to := 0, doc.FrameCount()-1
	direction := ase.Forward

	if tagName != "" {
		tag, ok := doc.TagNamed(tagName)
		if !ok {
			return nil, errors.Errorf("document has no tag %q", tagName)
		}
		from, to = tag.From, tag.To
		direction = tag.Direction
	}

	// Clamp into the decoded frame range; tags in the file may overreach.
	if from < 0 {
		from = 0
	}
	if to >= doc.FrameCount() {
		to = doc.FrameCount() - 1
	}
	if from > to {
		if tagName == "" {
			return nil, errors.New("document has no frames")
		}
		return nil, errors.Errorf("tag %q covers no decoded frames", tagName)
	}

	var sequence []int
	switch direction {
	case ase.Reverse:
		for i := to; i >= from; i-- {
			sequence = append(sequence, i)
		}
	case ase.PingPong:
		for i := from; i <= to; i++ {
			sequence = append(sequence, i)
		}
		for i := to - 1; i > from; i-- {
			sequence = append(sequence, i)
		}
	case ase.PingPongReverse:
		for i := to; i >= from; i-- {
			sequence = append(sequence, i)
		}
		for i := from + 1; i < to; i++ {
			sequence = append(sequence, i)
		}
	default:
		for i := from; i <= to; i++ {
			sequence = append(sequence, i)
		}
	}

	return sequence, nil
}

// delayCentisec converts a frame's duration to GIF delay units. Browsers
// treat very small delays as "as fast as possible", so 2cs is the floor.
func delayCentisec(doc *ase.Document, frame int) int {
	delay := doc.Frames[frame].DurationMS / 10
	if delay < 2 {
		delay = 2
	}
	return delay
}
