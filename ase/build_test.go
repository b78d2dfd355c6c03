package ase

// Local shorthand over the asetest fixture builders, so tests read in
// terms of this package's own constants and types.

import (
	"badc0de.net/pkg/go-spritecat/asetest"
)

func buildChunk(typ uint16, payload []byte) []byte {
	return asetest.Chunk(typ, payload)
}

func buildFrame(durationMS int, wideCount bool, chunks ...[]byte) []byte {
	return asetest.Frame(durationMS, wideCount, chunks...)
}

func buildFile(width, height int, depth ColorMode, frames ...[]byte) []byte {
	return asetest.File(width, height, int(depth), frames...)
}

func buildLayerChunk(name string, visible bool, opacity uint8) []byte {
	return asetest.Layer(name, visible, opacity)
}

func celChunkHeader(layer, x, y int, opacity uint8, celType uint16) []byte {
	return asetest.CelHeader(layer, x, y, opacity, celType)
}

func buildCelRaw(layer, x, y, w, h int, opacity uint8, pixels []byte) []byte {
	return asetest.CelRawChunk(layer, x, y, w, h, opacity, pixels)
}

func buildCelCompressed(layer, x, y, w, h int, opacity uint8, pixels []byte) []byte {
	return asetest.CelCompressedChunk(layer, x, y, w, h, opacity, pixels)
}

func buildCelLinked(layer, x, y int, opacity uint8, targetFrame int) []byte {
	return asetest.CelLinkedChunk(layer, x, y, opacity, targetFrame)
}

type tagSpec = asetest.TagSpec

func buildTagsChunk(tags ...tagSpec) []byte {
	return asetest.TagsChunk(tags...)
}

func buildPaletteChunk(first int, colors ...[4]uint8) []byte {
	return asetest.PaletteChunk(first, colors...)
}

func buildEmptyPaletteChunk() []byte {
	return asetest.EmptyPaletteChunk()
}

func solidPixels(w, h int, r, g, b, a uint8) []byte {
	return asetest.Solid(w, h, r, g, b, a)
}

func buildMinimalFile(w, h int, r, g, b, a uint8) []byte {
	return asetest.Minimal(w, h, r, g, b, a)
}
