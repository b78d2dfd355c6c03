// Package asetest assembles synthetic sprite document buffers for tests.
// It builds the binary container byte by byte and deliberately does not
// depend on the decoder it exists to exercise.
package asetest

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
)

// Chunk type tags mirrored here so fixtures can be built without
// importing the decoder.
const (
	ChunkLayer    = 0x2004
	ChunkCel      = 0x2005
	ChunkTags     = 0x2018
	ChunkPalette  = 0x2019
	ChunkUserData = 0x2020
)

// Cel storage kinds.
const (
	CelRaw        = 0
	CelLinked     = 1
	CelCompressed = 2
	CelTilemap    = 3
)

const (
	headerMagic     = 0xA5E0
	frameMagic      = 0xF1FA
	headerSize      = 128
	frameHeaderSize = 16
	chunkHeaderSize = 6
)

// Chunk wraps a payload in a (size, type) chunk header.
func Chunk(typ uint16, payload []byte) []byte {
	chunk := make([]byte, chunkHeaderSize+len(payload))
	binary.LittleEndian.PutUint32(chunk[0:], uint32(len(chunk)))
	binary.LittleEndian.PutUint16(chunk[4:], typ)
	copy(chunk[chunkHeaderSize:], payload)
	return chunk
}

// Frame assembles a frame sub-header plus chunks. When wideCount is set,
// the narrow chunk count field holds the 0xFFFF sentinel and the real
// count goes into the wide field, exercising the newer encoding.
func Frame(durationMS int, wideCount bool, chunks ...[]byte) []byte {
	body := bytes.Join(chunks, nil)

	frame := make([]byte, frameHeaderSize)
	binary.LittleEndian.PutUint32(frame[0:], uint32(frameHeaderSize+len(body)))
	binary.LittleEndian.PutUint16(frame[4:], frameMagic)
	if wideCount {
		binary.LittleEndian.PutUint16(frame[6:], 0xFFFF)
		binary.LittleEndian.PutUint32(frame[12:], uint32(len(chunks)))
	} else {
		binary.LittleEndian.PutUint16(frame[6:], uint16(len(chunks)))
	}
	binary.LittleEndian.PutUint16(frame[8:], uint16(durationMS))

	return append(frame, body...)
}

// File assembles a complete document: 128-byte header plus frames. Depth
// is the color depth field (32 RGBA, 16 grayscale, 8 indexed).
func File(width, height, depth int, frames ...[]byte) []byte {
	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint16(header[4:], headerMagic)
	binary.LittleEndian.PutUint16(header[6:], uint16(len(frames)))
	binary.LittleEndian.PutUint16(header[8:], uint16(width))
	binary.LittleEndian.PutUint16(header[10:], uint16(height))
	binary.LittleEndian.PutUint16(header[12:], uint16(depth))

	file := append(header, bytes.Join(frames, nil)...)
	binary.LittleEndian.PutUint32(file[0:], uint32(len(file)))
	return file
}

// Layer builds a layer chunk.
func Layer(name string, visible bool, opacity uint8) []byte {
	payload := make([]byte, 18+len(name))
	if visible {
		payload[0] = 1
	}
	payload[12] = opacity
	binary.LittleEndian.PutUint16(payload[16:], uint16(len(name)))
	copy(payload[18:], name)
	return Chunk(ChunkLayer, payload)
}

// CelHeader builds the fixed 16-byte prefix of a cel chunk payload.
func CelHeader(layer, x, y int, opacity uint8, celType uint16) []byte {
	payload := make([]byte, 16)
	binary.LittleEndian.PutUint16(payload[0:], uint16(layer))
	binary.LittleEndian.PutUint16(payload[2:], uint16(int16(x)))
	binary.LittleEndian.PutUint16(payload[4:], uint16(int16(y)))
	payload[6] = opacity
	binary.LittleEndian.PutUint16(payload[7:], celType)
	return payload
}

// CelRawChunk builds an uncompressed cel chunk.
func CelRawChunk(layer, x, y, w, h int, opacity uint8, pixels []byte) []byte {
	payload := CelHeader(layer, x, y, opacity, CelRaw)
	payload = appendSize(payload, w, h)
	payload = append(payload, pixels...)
	return Chunk(ChunkCel, payload)
}

// CelCompressedChunk builds a zlib-compressed cel chunk.
func CelCompressedChunk(layer, x, y, w, h int, opacity uint8, pixels []byte) []byte {
	var compressed bytes.Buffer
	zw := zlib.NewWriter(&compressed)
	zw.Write(pixels)
	zw.Close()

	payload := CelHeader(layer, x, y, opacity, CelCompressed)
	payload = appendSize(payload, w, h)
	payload = append(payload, compressed.Bytes()...)
	return Chunk(ChunkCel, payload)
}

// CelLinkedChunk builds a linked cel chunk referencing targetFrame.
func CelLinkedChunk(layer, x, y int, opacity uint8, targetFrame int) []byte {
	payload := CelHeader(layer, x, y, opacity, CelLinked)
	target := make([]byte, 2)
	binary.LittleEndian.PutUint16(target, uint16(targetFrame))
	return Chunk(ChunkCel, append(payload, target...))
}

func appendSize(payload []byte, w, h int) []byte {
	size := make([]byte, 4)
	binary.LittleEndian.PutUint16(size[0:], uint16(w))
	binary.LittleEndian.PutUint16(size[2:], uint16(h))
	return append(payload, size...)
}

// TagSpec describes one animation tag for TagsChunk.
type TagSpec struct {
	Name      string
	From, To  int
	Direction uint8
}

// TagsChunk builds a tags chunk holding the passed records.
func TagsChunk(tags ...TagSpec) []byte {
	payload := make([]byte, 10)
	binary.LittleEndian.PutUint16(payload[0:], uint16(len(tags)))

	for _, tag := range tags {
		record := make([]byte, 18+len(tag.Name))
		binary.LittleEndian.PutUint16(record[0:], uint16(tag.From))
		binary.LittleEndian.PutUint16(record[2:], uint16(tag.To))
		record[4] = tag.Direction
		binary.LittleEndian.PutUint16(record[16:], uint16(len(tag.Name)))
		copy(record[18:], tag.Name)
		payload = append(payload, record...)
	}

	return Chunk(ChunkTags, payload)
}

// PaletteChunk builds a palette chunk with entries starting at index
// first.
func PaletteChunk(first int, colors ...[4]uint8) []byte {
	payload := make([]byte, 20)
	binary.LittleEndian.PutUint32(payload[0:], uint32(len(colors)))
	binary.LittleEndian.PutUint32(payload[4:], uint32(first))
	binary.LittleEndian.PutUint32(payload[8:], uint32(first+len(colors)-1))

	for _, c := range colors {
		entry := make([]byte, 6)
		entry[2], entry[3], entry[4], entry[5] = c[0], c[1], c[2], c[3]
		payload = append(payload, entry...)
	}

	return Chunk(ChunkPalette, payload)
}

// EmptyPaletteChunk declares last < first, which must decode to no
// palette entries rather than an error.
func EmptyPaletteChunk() []byte {
	payload := make([]byte, 20)
	binary.LittleEndian.PutUint32(payload[4:], 5)
	binary.LittleEndian.PutUint32(payload[8:], 2)
	return Chunk(ChunkPalette, payload)
}

// Solid returns w*h RGBA pixels of one color.
func Solid(w, h int, r, g, b, a uint8) []byte {
	px := make([]byte, 0, w*h*4)
	for i := 0; i < w*h; i++ {
		px = append(px, r, g, b, a)
	}
	return px
}

// Minimal is the canonical one-frame, one-layer, solid-color RGBA
// document used across tests.
func Minimal(w, h int, r, g, b, a uint8) []byte {
	return File(w, h, 32, Frame(100, false,
		Layer("Layer 1", true, 255),
		CelCompressedChunk(0, 0, 0, w, h, 255, Solid(w, h, r, g, b, a)),
	))
}
