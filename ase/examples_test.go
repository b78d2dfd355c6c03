package ase

import (
	"fmt"
)

// ExampleDecodeDocument decodes a synthetic document and prints the
// metadata an indexer would catalog.
func ExampleDecodeDocument() {
	file := buildFile(32, 32, ColorRGBA,
		buildFrame(100, false,
			buildLayerChunk("body", true, 255),
			buildCelCompressed(0, 0, 0, 32, 32, 255, solidPixels(32, 32, 255, 0, 0, 255)),
			buildTagsChunk(tagSpec{Name: "idle", From: 0, To: 1}),
		),
		buildFrame(120, false,
			buildCelLinked(0, 0, 0, 255, 0),
		),
	)

	doc, err := DecodeDocument(file)
	if err != nil {
		fmt.Printf("failed to decode: %s", err)
		return
	}

	fmt.Printf("canvas: %dx%d\n", doc.Width, doc.Height)
	fmt.Printf("frames: %d, duration: %dms\n", doc.FrameCount(), doc.Duration())
	fmt.Printf("layers: %d, tags: %v\n", len(doc.Layers), doc.TagNames())
	// Output:
	// canvas: 32x32
	// frames: 2, duration: 220ms
	// layers: 1, tags: [idle]
}

// ExampleDocument_RenderFrame composites a frame and reports its size.
func ExampleDocument_RenderFrame() {
	doc, err := DecodeDocument(buildMinimalFile(16, 16, 0, 0, 255, 255))
	if err != nil {
		fmt.Printf("failed to decode: %s", err)
		return
	}

	img := doc.RenderFrame(0)
	fmt.Printf("image: %dx%d\n", img.Bounds().Size().X, img.Bounds().Size().Y)
	// Output: image: 16x16
}
