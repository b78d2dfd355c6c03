package ase

// This file contains code directly related to decoding the
// sprite document container format.

import (
	"encoding/binary"
	"fmt"
	"image/color"
)

const (
	headerMagic = 0xA5E0
	frameMagic  = 0xF1FA

	headerSize      = 128
	frameHeaderSize = 16
	chunkHeaderSize = 6
)

// Chunk type tags. Only a subset is decoded; the rest is skipped by size.
const (
	chunkLayer    = 0x2004
	chunkCel      = 0x2005
	chunkCelExtra = 0x2006
	chunkTags     = 0x2018
	chunkPalette  = 0x2019
	chunkUserData = 0x2020
	chunkTileset  = 0x2023
)

// Cel storage kinds, as stored in the cel chunk's type discriminant.
const (
	celRaw        = 0
	celLinked     = 1
	celCompressed = 2
	celTilemap    = 3
)

// ColorMode describes the pixel encoding of cel payloads. The numeric
// values match the container's color depth field (bits per pixel).
type ColorMode uint16

const (
	ColorRGBA      ColorMode = 32
	ColorGrayscale ColorMode = 16
	ColorIndexed   ColorMode = 8
)

// BytesPerPixel returns the payload width of one pixel in this mode, or 0
// for an unknown mode.
func (m ColorMode) BytesPerPixel() int {
	switch m {
	case ColorRGBA:
		return 4
	case ColorGrayscale:
		return 2
	case ColorIndexed:
		return 1
	}
	return 0
}

func (m ColorMode) String() string {
	switch m {
	case ColorRGBA:
		return "rgba"
	case ColorGrayscale:
		return "grayscale"
	case ColorIndexed:
		return "indexed"
	}
	return fmt.Sprintf("unknown(%d)", uint16(m))
}

// Direction is an animation tag's playback direction.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
	PingPong
	PingPongReverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case PingPong:
		return "ping-pong"
	case PingPongReverse:
		return "ping-pong reverse"
	}
	return fmt.Sprintf("unknown(%d)", uint8(d))
}

// LayerKind distinguishes normal, group and tilemap layers.
type LayerKind uint16

const (
	LayerNormal LayerKind = iota
	LayerGroup
	LayerTilemap
)

// FormatError reports a structural problem with the container: a bad magic
// number, a truncated header, frame or chunk, or a chunk whose declared
// size reaches outside its frame. A document that produced a FormatError
// cannot be trusted at all, so Decode never returns a partial Document.
type FormatError string

func (e FormatError) Error() string { return "ase: " + string(e) }

func formatErrorf(format string, args ...interface{}) FormatError {
	return FormatError(fmt.Sprintf(format, args...))
}

// Layer is one entry of the document's layer stack. The stack is ordered
// bottom-most first; a cel's layer index points into this slice.
type Layer struct {
	Name       string
	Visible    bool
	Opacity    uint8
	BlendMode  uint16
	Kind       LayerKind
	ChildLevel int
}

// Cel is the pixel content of one layer within one frame. A linked cel has
// no payload of its own and aliases the cel of an earlier frame on the
// same layer.
type Cel struct {
	LayerIndex int
	X, Y       int
	Opacity    uint8

	// Width and Height are 0 for linked cels.
	Width, Height int

	// Linked is set for cels that alias LinkedFrame's cel on the same
	// layer.
	Linked      bool
	LinkedFrame int

	raw        []byte
	compressed bool
}

// Tag is a named animation frame range. From and To are inclusive frame
// indices.
type Tag struct {
	Name      string
	From, To  int
	Direction Direction
}

// Frame owns the cels declared in one frame of the container, plus the
// frame's display duration.
type Frame struct {
	DurationMS int
	Cels       []Cel
}

// Document is one fully parsed sprite document. It is immutable once
// returned by DecodeDocument.
type Document struct {
	Width, Height int
	ColorMode     ColorMode
	Layers        []Layer
	Frames        []Frame
	Tags          []Tag
	Palette       []color.RGBA
}

// FrameCount returns the number of frames actually decoded.
func (d *Document) FrameCount() int { return len(d.Frames) }

// Duration returns the total animation length in milliseconds, summed over
// all frames.
func (d *Document) Duration() int {
	total := 0
	for _, f := range d.Frames {
		total += f.DurationMS
	}
	return total
}

// TagNames returns the animation tag names in file order.
func (d *Document) TagNames() []string {
	names := make([]string, len(d.Tags))
	for i, t := range d.Tags {
		names[i] = t.Name
	}
	return names
}

// TagNamed finds a tag by name. File order wins if there are duplicates.
func (d *Document) TagNamed(name string) (Tag, bool) {
	for _, t := range d.Tags {
		if t.Name == name {
			return t, true
		}
	}
	return Tag{}, false
}

// DecodeDocument parses a complete sprite document from the passed buffer.
//
// The whole buffer is walked eagerly: a structural error anywhere aborts
// the decode with a FormatError. Corrupt compressed pixel payloads are not
// detected here; they surface from Cel.Rasterize so that one bad cel does
// not make the rest of the document unreadable.
func DecodeDocument(data []byte) (*Document, error) {
	if len(data) < headerSize {
		return nil, formatErrorf("file too small for header: %d bytes, want at least %d", len(data), headerSize)
	}

	magic := binary.LittleEndian.Uint16(data[4:])
	if magic != headerMagic {
		return nil, formatErrorf("bad magic number 0x%04X, want 0x%04X", magic, headerMagic)
	}

	frameCount := int(binary.LittleEndian.Uint16(data[6:]))
	width := int(binary.LittleEndian.Uint16(data[8:]))
	height := int(binary.LittleEndian.Uint16(data[10:]))
	depth := ColorMode(binary.LittleEndian.Uint16(data[12:]))

	if width == 0 || height == 0 {
		return nil, formatErrorf("zero canvas size %dx%d", width, height)
	}
	if depth.BytesPerPixel() == 0 {
		return nil, formatErrorf("unsupported color depth %d", uint16(depth))
	}

	doc := &Document{
		Width:     width,
		Height:    height,
		ColorMode: depth,
	}

	offset := headerSize
	for frameIdx := 0; frameIdx < frameCount; frameIdx++ {
		next, err := decodeFrame(data, offset, frameIdx, doc)
		if err != nil {
			return nil, err
		}
		offset = next
	}

	return doc, nil
}

// decodeFrame parses one frame sub-header and its chunk table, appends the
// frame to doc and returns the offset of the next frame.
func decodeFrame(data []byte, offset, frameIdx int, doc *Document) (int, error) {
	if offset+frameHeaderSize > len(data) {
		return 0, formatErrorf("truncated frame %d header at offset %d", frameIdx, offset)
	}

	frameSize := int(binary.LittleEndian.Uint32(data[offset:]))
	magic := binary.LittleEndian.Uint16(data[offset+4:])
	oldChunks := binary.LittleEndian.Uint16(data[offset+6:])
	duration := int(binary.LittleEndian.Uint16(data[offset+8:]))

	if magic != frameMagic {
		return 0, formatErrorf("bad frame magic 0x%04X at offset %d, want 0x%04X", magic, offset, frameMagic)
	}
	if frameSize < frameHeaderSize || offset+frameSize > len(data) {
		return 0, formatErrorf("frame %d size %d reaches outside the file", frameIdx, frameSize)
	}

	// Older files store the chunk count in the narrow 16-bit field; newer
	// ones write the sentinel 0xFFFF there and the real count in a wider
	// field at +12.
	numChunks := int(oldChunks)
	if oldChunks == 0xFFFF {
		numChunks = int(binary.LittleEndian.Uint32(data[offset+12:]))
	}

	frame := Frame{DurationMS: duration}
	frameEnd := offset + frameSize

	chunkOffset := offset + frameHeaderSize
	for i := 0; i < numChunks; i++ {
		if chunkOffset+chunkHeaderSize > frameEnd {
			return 0, formatErrorf("truncated chunk %d in frame %d", i, frameIdx)
		}

		chunkSize := int(binary.LittleEndian.Uint32(data[chunkOffset:]))
		chunkType := binary.LittleEndian.Uint16(data[chunkOffset+4:])

		if chunkSize < chunkHeaderSize {
			return 0, formatErrorf("chunk %d in frame %d declares size %d, want at least %d", i, frameIdx, chunkSize, chunkHeaderSize)
		}
		if chunkOffset+chunkSize > frameEnd {
			return 0, formatErrorf("chunk %d in frame %d extends past the frame boundary", i, frameIdx)
		}

		payload := data[chunkOffset+chunkHeaderSize : chunkOffset+chunkSize]

		switch chunkType {
		case chunkLayer:
			layer, err := decodeLayerChunk(payload)
			if err != nil {
				return 0, err
			}
			doc.Layers = append(doc.Layers, layer)
		case chunkCel:
			cel, ok, err := decodeCelChunk(payload, frameIdx)
			if err != nil {
				return 0, err
			}
			if ok {
				frame.Cels = append(frame.Cels, cel)
			}
		case chunkTags:
			tags, err := decodeTagsChunk(payload)
			if err != nil {
				return 0, err
			}
			doc.Tags = append(doc.Tags, tags...)
		case chunkPalette:
			if err := decodePaletteChunk(payload, doc); err != nil {
				return 0, err
			}
		default:
			// Unknown chunk; size is self-describing, skip.
		}

		chunkOffset += chunkSize
	}

	doc.Frames = append(doc.Frames, frame)

	// Advance by the declared frame size regardless of how many chunk
	// bytes were consumed, to tolerate trailing padding.
	return offset + frameSize, nil
}

// Layer chunk payload layout:
//
//	flags(2) type(2) childLevel(2) defaultW(2) defaultH(2) blend(2)
//	opacity(1) future(3) nameLen(2) name(nameLen)
func decodeLayerChunk(payload []byte) (Layer, error) {
	if len(payload) < 18 {
		return Layer{}, formatErrorf("truncated layer chunk: %d bytes", len(payload))
	}

	flags := binary.LittleEndian.Uint16(payload[0:])
	kind := binary.LittleEndian.Uint16(payload[2:])
	childLevel := binary.LittleEndian.Uint16(payload[4:])
	blend := binary.LittleEndian.Uint16(payload[10:])
	opacity := payload[12]

	nameLen := int(binary.LittleEndian.Uint16(payload[16:]))
	if 18+nameLen > len(payload) {
		return Layer{}, formatErrorf("layer name length %d exceeds chunk", nameLen)
	}

	return Layer{
		Name:       string(payload[18 : 18+nameLen]),
		Visible:    flags&1 != 0,
		Opacity:    opacity,
		BlendMode:  blend,
		Kind:       LayerKind(kind),
		ChildLevel: int(childLevel),
	}, nil
}

// Cel chunk payload layout:
//
//	layerIndex(2) x(2,signed) y(2,signed) opacity(1) celType(2)
//	zIndex(2) future(5)
//
// followed by width(2) height(2) pixels for raw and compressed cels, or a
// target frame reference(2) for linked cels. Tilemap cels and any unknown
// discriminant are ignored rather than rejected.
func decodeCelChunk(payload []byte, frameIdx int) (Cel, bool, error) {
	if len(payload) < 16 {
		return Cel{}, false, formatErrorf("truncated cel chunk in frame %d: %d bytes", frameIdx, len(payload))
	}

	cel := Cel{
		LayerIndex: int(binary.LittleEndian.Uint16(payload[0:])),
		X:          int(int16(binary.LittleEndian.Uint16(payload[2:]))),
		Y:          int(int16(binary.LittleEndian.Uint16(payload[4:]))),
		Opacity:    payload[6],
	}
	celType := binary.LittleEndian.Uint16(payload[7:])

	switch celType {
	case celLinked:
		if len(payload) < 18 {
			return Cel{}, false, formatErrorf("truncated linked cel in frame %d", frameIdx)
		}
		target := int(binary.LittleEndian.Uint16(payload[16:]))
		if target >= frameIdx {
			return Cel{}, false, formatErrorf("linked cel in frame %d references frame %d, want an earlier frame", frameIdx, target)
		}
		cel.Linked = true
		cel.LinkedFrame = target
		return cel, true, nil

	case celRaw, celCompressed:
		if len(payload) < 20 {
			return Cel{}, false, formatErrorf("truncated cel chunk in frame %d: %d bytes", frameIdx, len(payload))
		}
		cel.Width = int(binary.LittleEndian.Uint16(payload[16:]))
		cel.Height = int(binary.LittleEndian.Uint16(payload[18:]))
		cel.raw = payload[20:]
		cel.compressed = celType == celCompressed
		return cel, true, nil
	}

	// Tilemap or future cel kind; treated as absent.
	return Cel{}, false, nil
}

// Tags chunk payload layout: count(2) reserved(8), then per tag:
//
//	from(2) to(2) direction(1) repeat(2) reserved(6) color(3)
//	nameLen(2) name(nameLen)
func decodeTagsChunk(payload []byte) ([]Tag, error) {
	if len(payload) < 10 {
		return nil, formatErrorf("truncated tags chunk: %d bytes", len(payload))
	}

	count := int(binary.LittleEndian.Uint16(payload[0:]))
	tags := make([]Tag, 0, count)

	offset := 10
	for i := 0; i < count; i++ {
		if offset+18 > len(payload) {
			return nil, formatErrorf("truncated tag record %d", i)
		}

		from := int(binary.LittleEndian.Uint16(payload[offset:]))
		to := int(binary.LittleEndian.Uint16(payload[offset+2:]))
		dir := Direction(payload[offset+4])

		nameLen := int(binary.LittleEndian.Uint16(payload[offset+16:]))
		if offset+18+nameLen > len(payload) {
			return nil, formatErrorf("tag %d name length %d exceeds chunk", i, nameLen)
		}
		name := string(payload[offset+18 : offset+18+nameLen])

		tags = append(tags, Tag{
			Name:      name,
			From:      from,
			To:        to,
			Direction: dir,
		})

		offset += 18 + nameLen
	}

	return tags, nil
}

// maxPaletteSize bounds the retained palette. Indexed cel pixels are
// single bytes, so entries past 255 are unreachable anyway.
const maxPaletteSize = 256

// Palette chunk payload layout: newSize(4) first(4) last(4) reserved(8),
// then per entry: flags(2) r g b a [nameLen(2) name when flags bit 0].
//
// Only the four color bytes are retained, and only for the first
// maxPaletteSize entries. A range with last < first yields no entries,
// which is not an error.
func decodePaletteChunk(payload []byte, doc *Document) error {
	if len(payload) < 20 {
		return formatErrorf("truncated palette chunk: %d bytes", len(payload))
	}

	first := int(binary.LittleEndian.Uint32(payload[4:]))
	last := int(binary.LittleEndian.Uint32(payload[8:]))
	if last < first {
		return nil
	}

	// The range fields are untrusted: each entry takes at least 6 payload
	// bytes, so a range wider than the payload could hold is structurally
	// broken. Checking before sizing the palette keeps a malformed chunk
	// from demanding a giant allocation.
	if entries, max := last-first+1, (len(payload)-20)/6; entries > max {
		return formatErrorf("palette range %d..%d declares %d entries, chunk holds at most %d", first, last, entries, max)
	}

	needed := last + 1
	if needed > maxPaletteSize {
		needed = maxPaletteSize
	}
	if len(doc.Palette) < needed {
		grown := make([]color.RGBA, needed)
		copy(grown, doc.Palette)
		doc.Palette = grown
	}

	offset := 20
	for i := first; i <= last; i++ {
		if offset+6 > len(payload) {
			return formatErrorf("truncated palette entry %d", i)
		}

		flags := binary.LittleEndian.Uint16(payload[offset:])
		if i < maxPaletteSize {
			doc.Palette[i] = color.RGBA{
				R: payload[offset+2],
				G: payload[offset+3],
				B: payload[offset+4],
				A: payload[offset+5],
			}
		}
		offset += 6

		if flags&1 != 0 {
			if offset+2 > len(payload) {
				return formatErrorf("truncated palette entry %d name", i)
			}
			nameLen := int(binary.LittleEndian.Uint16(payload[offset:]))
			offset += 2 + nameLen
			if offset > len(payload) {
				return formatErrorf("palette entry %d name length %d exceeds chunk", i, nameLen)
			}
		}
	}

	return nil
}
