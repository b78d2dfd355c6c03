package ase

// This file wires the document decoder into the stdlib image codec
// registry, modeled after the public interface of the image/png package:
// Decode renders the first frame, DecodeConfig reads only the header.

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"
)

func init() {
	// Magic 0xA5E0 (little endian) at offset 4, after the file size field.
	image.RegisterFormat("ase", "????\xe0\xa5", Decode, DecodeConfig)
}

// Decode reads a whole sprite document from r and returns its first frame,
// composited.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	doc, err := DecodeDocument(data)
	if err != nil {
		return nil, err
	}
	return doc.RenderFrame(0), nil
}

// DecodeConfig returns the canvas dimensions and color model of a sprite
// document without decoding frames.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return image.Config{}, formatErrorf("file too small for header: %v", err)
	}

	if magic := binary.LittleEndian.Uint16(header[4:]); magic != headerMagic {
		return image.Config{}, formatErrorf("bad magic number 0x%04X, want 0x%04X", magic, headerMagic)
	}

	width := int(binary.LittleEndian.Uint16(header[8:]))
	height := int(binary.LittleEndian.Uint16(header[10:]))
	depth := ColorMode(binary.LittleEndian.Uint16(header[12:]))

	if width == 0 || height == 0 {
		return image.Config{}, formatErrorf("zero canvas size %dx%d", width, height)
	}
	if depth.BytesPerPixel() == 0 {
		return image.Config{}, formatErrorf("unsupported color depth %d", uint16(depth))
	}

	// Every color mode is normalized to straight-alpha RGBA on render.
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      width,
		Height:     height,
	}, nil
}
