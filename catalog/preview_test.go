package catalog

import (
	"context"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"badc0de.net/pkg/go-spritecat/asetest"
)

func TestMontageLayout(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ase", "b.ase", "c.ase", "d.ase", "e.ase"} {
		writeAsset(t, dir, name, asetest.Minimal(8, 8, 200, 100, 0, 255))
	}

	records, err := Scan(context.Background(), dir, DefaultConfig())
	assert.NoError(t, err)
	assert.Len(t, records, 5)

	// Five cells pack into a 3x2 grid.
	img, err := Montage(records, 32)
	assert.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	// The first cell's center carries the sprite's color.
	r, g, _, _ := img.At(16, 16).RGBA()
	assert.InDelta(t, 200, int(r>>8), 8)
	assert.InDelta(t, 100, int(g>>8), 8)
}

func TestMontageDownscalesLargeFrames(t *testing.T) {
	dir := t.TempDir()
	writeAsset(t, dir, "big.ase", asetest.Minimal(64, 64, 0, 0, 255, 255))

	records, err := Scan(context.Background(), dir, DefaultConfig())
	assert.NoError(t, err)

	img, err := Montage(records, 16)
	assert.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())

	_, _, b, _ := img.At(8, 8).RGBA()
	assert.InDelta(t, 255, int(b>>8), 8)
}

func TestMontageNoRecords(t *testing.T) {
	_, err := Montage(nil, 32)
	assert.Error(t, err)
}

func TestMontageMissingAssetLeavesCellEmpty(t *testing.T) {
	records := []Record{{Path: "/nonexistent/gone.ase", Width: 8, Height: 8}}

	img, err := Montage(records, 16)
	assert.NoError(t, err)

	// The lone cell stays at the background color.
	c := color.NRGBAModel.Convert(img.At(8, 8)).(color.NRGBA)
	assert.Less(t, int(c.R), 64)
}
