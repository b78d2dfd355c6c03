package ase

import (
	"testing"
)

func decodeOneCelFile(t *testing.T, file []byte) (*Document, *Cel) {
	t.Helper()
	doc, err := DecodeDocument(file)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(doc.Frames) == 0 || len(doc.Frames[0].Cels) == 0 {
		t.Fatal("fixture has no cel in frame 0")
	}
	return doc, &doc.Frames[0].Cels[0]
}

func TestRasterizeRGBARaw(t *testing.T) {
	px := solidPixels(2, 2, 1, 2, 3, 4)
	doc, cel := decodeOneCelFile(t, buildFile(2, 2, ColorRGBA, buildFrame(100, false,
		buildCelRaw(0, 0, 0, 2, 2, 255, px),
	)))

	img, err := cel.Rasterize(doc.ColorMode, doc.Palette)
	if err != nil {
		t.Fatalf("failed to rasterize: %v", err)
	}
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 1 || img.Pix[i+1] != 2 || img.Pix[i+2] != 3 || img.Pix[i+3] != 4 {
			t.Fatalf("pixel at %d = %v, want (1 2 3 4)", i/4, img.Pix[i:i+4])
		}
	}
}

func TestRasterizeGrayscale(t *testing.T) {
	// Two pixels: mid gray opaque, black transparent.
	payload := []byte{128, 255, 0, 0}
	doc, cel := decodeOneCelFile(t, buildFile(2, 1, ColorGrayscale, buildFrame(100, false,
		buildCelRaw(0, 0, 0, 2, 1, 255, payload),
	)))

	img, err := cel.Rasterize(doc.ColorMode, doc.Palette)
	if err != nil {
		t.Fatalf("failed to rasterize: %v", err)
	}

	want := []byte{128, 128, 128, 255, 0, 0, 0, 0}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestRasterizeIndexed(t *testing.T) {
	doc, cel := decodeOneCelFile(t, buildFile(2, 1, ColorIndexed, buildFrame(100, false,
		buildPaletteChunk(0,
			[4]uint8{9, 9, 9, 9},
			[4]uint8{200, 100, 50, 255},
		),
		buildCelRaw(0, 0, 0, 2, 1, 255, []byte{1, 0}),
	)))

	img, err := cel.Rasterize(doc.ColorMode, doc.Palette)
	if err != nil {
		t.Fatalf("failed to rasterize: %v", err)
	}

	want := []byte{200, 100, 50, 255, 9, 9, 9, 9}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("pix[%d] = %d, want %d", i, img.Pix[i], want[i])
		}
	}
}

func TestRasterizeIndexedOutOfRange(t *testing.T) {
	// Index 7 has no palette entry; it must come out transparent black,
	// not crash.
	doc, cel := decodeOneCelFile(t, buildFile(1, 1, ColorIndexed, buildFrame(100, false,
		buildPaletteChunk(0, [4]uint8{1, 1, 1, 255}),
		buildCelRaw(0, 0, 0, 1, 1, 255, []byte{7}),
	)))

	img, err := cel.Rasterize(doc.ColorMode, doc.Palette)
	if err != nil {
		t.Fatalf("failed to rasterize: %v", err)
	}
	for i := 0; i < 4; i++ {
		if img.Pix[i] != 0 {
			t.Fatalf("pix[%d] = %d, want 0", i, img.Pix[i])
		}
	}
}

func TestRasterizeCompressed(t *testing.T) {
	px := solidPixels(4, 4, 40, 50, 60, 255)
	doc, cel := decodeOneCelFile(t, buildFile(4, 4, ColorRGBA, buildFrame(100, false,
		buildCelCompressed(0, 0, 0, 4, 4, 255, px),
	)))

	img, err := cel.Rasterize(doc.ColorMode, doc.Palette)
	if err != nil {
		t.Fatalf("failed to rasterize: %v", err)
	}
	if img.Pix[0] != 40 || img.Pix[1] != 50 || img.Pix[2] != 60 {
		t.Errorf("first pixel = %v, want (40 50 60 255)", img.Pix[:4])
	}
}

func TestRasterizeCorruptZlib(t *testing.T) {
	chunk := buildCelCompressed(0, 0, 0, 4, 4, 255, solidPixels(4, 4, 1, 1, 1, 255))
	// Stomp on the zlib stream, past the 20-byte cel header.
	for i := chunkHeaderSize + 20; i < len(chunk); i++ {
		chunk[i] = 0xAA
	}
	doc, cel := decodeOneCelFile(t, buildFile(4, 4, ColorRGBA, buildFrame(100, false, chunk)))

	_, err := cel.Rasterize(doc.ColorMode, doc.Palette)
	if err == nil {
		t.Fatal("rasterize of corrupt stream succeeded, want DecompressionError")
	}
	if _, ok := err.(*DecompressionError); !ok {
		t.Errorf("got error %T (%v), want *DecompressionError", err, err)
	}
}

func TestRasterizeShortPayload(t *testing.T) {
	// Declares 4x4 but carries one pixel.
	doc, cel := decodeOneCelFile(t, buildFile(4, 4, ColorRGBA, buildFrame(100, false,
		buildCelRaw(0, 0, 0, 4, 4, 255, []byte{1, 2, 3, 4}),
	)))

	if _, err := cel.Rasterize(doc.ColorMode, doc.Palette); err == nil {
		t.Fatal("rasterize of short payload succeeded, want FormatError")
	}
}

func TestRasterizeLinkedCelRefused(t *testing.T) {
	cel := &Cel{Linked: true, LinkedFrame: 0}
	if _, err := cel.Rasterize(ColorRGBA, nil); err == nil {
		t.Fatal("rasterize of linked cel succeeded, want LinkError")
	}
}
