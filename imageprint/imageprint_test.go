package imageprint

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

// twoByTwo has an opaque red pixel, an opaque dark pixel, a transparent
// pixel, and an opaque white pixel.
func twoByTwo() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{10, 10, 10, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})
	return img
}

func TestPrintBlocksNoColor(t *testing.T) {
	var buf bytes.Buffer
	PrintBlocks(&buf, twoByTwo(), ModeNoColor, false)

	out := buf.String()
	if strings.Contains(out, "\x1b") {
		t.Errorf("no-color output contains escape sequences: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("got %d rows, want 2", got)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "==.." {
		t.Errorf("row 0 = %q, want mid-luminance red then dark pixel", lines[0])
	}
	if lines[1] != "  ##" {
		t.Errorf("row 1 = %q, want transparent cell then white pixel", lines[1])
	}
}

func TestPrintBlocksTrueColor(t *testing.T) {
	var buf bytes.Buffer
	PrintBlocks(&buf, twoByTwo(), ModeTrueColor, true)

	out := buf.String()
	if !strings.Contains(out, "\x1b[48;2;255;0;0m") {
		t.Errorf("output misses the 24-bit escape for the red pixel: %q", out)
	}
	if !strings.Contains(out, "\x1b[0m  ") {
		t.Errorf("transparent pixel should reset the background: %q", out)
	}
}

func TestPrintBlocksBlanksCarryNoGlyphs(t *testing.T) {
	var buf bytes.Buffer
	PrintBlocks(&buf, twoByTwo(), ModeTrueColor, true)

	for _, glyph := range []string{"..", "--", "==", "##"} {
		if strings.Contains(buf.String(), glyph) {
			t.Errorf("blank mode emitted luminance glyph %q", glyph)
		}
	}
}

func TestPrintInlineKitty(t *testing.T) {
	t.Setenv("TERM", "xterm-kitty")
	t.Setenv("KITTY_WINDOW_ID", "1")

	var buf bytes.Buffer
	ok, err := PrintInline(&buf, twoByTwo())
	if err != nil {
		t.Fatalf("inline print failed: %v", err)
	}
	if !ok {
		t.Fatal("kitty terminal not recognized")
	}
	if !strings.Contains(buf.String(), "\x1b_G") {
		t.Errorf("output misses the kitty graphics introducer: %q", buf.String())
	}
}

func TestPrintITermEscape(t *testing.T) {
	var buf bytes.Buffer
	if err := PrintITerm(&buf, twoByTwo(), "sprite.png"); err != nil {
		t.Fatalf("iterm print failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "\033]1337;File=name=") {
		t.Errorf("output misses the iterm file escape: %q", out)
	}
	if !strings.Contains(out, "width=2px;height=2px") {
		t.Errorf("output misses the pixel dimensions: %q", out)
	}
}
