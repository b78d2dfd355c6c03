// Package ase implements a reader for the chunk-based sprite document
// format used by pixel art editors (.ase / .aseprite files).
//
// The decoder walks the frame table and the per-frame chunk table and
// produces an immutable Document holding layers, per-frame cels, animation
// tags and the palette. Only the chunk subset needed for metadata
// extraction and frame rendering is understood; unknown chunks are skipped
// by their declared size.
//
// A higher level package (or the image.Decode registration in this one)
// can turn a Document into a composited raster for a single frame.
package ase
