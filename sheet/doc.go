// Package sheet infers sprite frame geometry from spritesheet rasters
// using nothing but the alpha channel: no external metadata, no sidecar
// files.
//
// The main entry point, FirstFrameBounds, finds the content bounding box
// of the first frame cell by scanning for fully transparent gutter columns
// and rows. FloodFillBounds is an alternative that grows a connected
// component from the first visible pixel. DetectGrid guesses a whole-sheet
// cell layout from dimensions alone, for sheets without usable
// transparency.
//
// All functions are pure queries over pixel data; they never fail with an
// error, they just report that no bounds were found.
package sheet
