// spriteprint decodes one sprite document, prints its metadata, and
// renders a frame to the terminal or to PNG/GIF/data-URL output.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"io/ioutil"
	"os"
	"strings"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"

	"badc0de.net/pkg/go-spritecat/anim"
	"badc0de.net/pkg/go-spritecat/ase"
	"badc0de.net/pkg/go-spritecat/sheet"
)

var (
	inPath   = flag.String("in", "", "sprite document to decode")
	frameIdx = flag.Int("frame", 0, "frame to render")
	tagName  = flag.String("tag", "", "animation tag to export with -gif (empty: all frames)")

	pngPath = flag.String("png", "", "write the rendered frame as PNG to this path")
	gifPath = flag.String("gif", "", "write the animation as GIF to this path")
	dataURL = flag.Bool("dataurl", false, "print the rendered frame as a data: URL instead of drawing it")
	bounds  = flag.Bool("bounds", false, "also print the detected first-sprite bounds of the frame")

	inline  = flag.Bool("inline", true, "draw with inline terminal graphics when the terminal supports them")
	iterm   = flag.Bool("iterm", false, "force iterm escape codes instead of probing the terminal")
	col256  = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	noColor = flag.Bool("nocolor", false, "draw without color escape sequences")
	blanks  = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")

	downsize = flag.Bool("downsize", true, "shrink the frame to fit the terminal before drawing")
)

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *inPath == "" {
		glog.Exit("no input; pass -in <sprite document>")
	}

	doc, err := load(*inPath)
	if err != nil {
		glog.Exitf("%v", err)
	}

	printMeta(doc)

	if *gifPath != "" {
		if err := writeGIF(doc); err != nil {
			glog.Exitf("%v", err)
		}
		return
	}

	if *frameIdx < 0 || *frameIdx >= doc.FrameCount() {
		glog.Exitf("frame %d out of range, document has %d", *frameIdx, doc.FrameCount())
	}
	img := doc.RenderFrame(*frameIdx)

	if *bounds {
		if r, ok := sheet.FirstFrameBounds(img); ok {
			fmt.Printf("sprite bounds: %v\n", r)
		} else {
			fmt.Printf("sprite bounds: none\n")
		}
	}

	switch {
	case *pngPath != "":
		if err := writePNG(img); err != nil {
			glog.Exitf("%v", err)
		}
	case *dataURL:
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			glog.Exitf("encoding png: %v", err)
		}
		fmt.Println(dataurl.New(buf.Bytes(), "image/png").String())
	default:
		out(img)
	}
}

func load(path string) (*ase.Document, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return ase.DecodeDocument(data)
}

func printMeta(doc *ase.Document) {
	fmt.Printf("canvas: %dx%d %s\n", doc.Width, doc.Height, doc.ColorMode)
	fmt.Printf("frames: %d (%dms total)\n", doc.FrameCount(), doc.Duration())

	var layers []string
	for _, l := range doc.Layers {
		name := l.Name
		if !l.Visible {
			name += " (hidden)"
		}
		layers = append(layers, name)
	}
	fmt.Printf("layers: %s\n", strings.Join(layers, ", "))

	for _, tag := range doc.Tags {
		fmt.Printf("tag: %s [%d..%d] %v\n", tag.Name, tag.From, tag.To, tag.Direction)
	}
}

func writeGIF(doc *ase.Document) error {
	f, err := os.Create(*gifPath)
	if err != nil {
		return errors.Wrap(err, "creating gif output")
	}
	defer f.Close()
	return anim.EncodeGIF(f, doc, *tagName)
}
