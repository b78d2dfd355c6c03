//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

type TermSize struct {
	Rows, Cols     uint
	XPixel, YPixel uint
}

// termSize asks the controlling terminal for its size. Pixel dimensions
// come back zero on terminals that do not report them.
func termSize() (TermSize, error) {
	f, err := os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666)
	if err == nil {
		defer f.Close()
		if sz, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
			return TermSize{
				Rows: uint(sz.Row), Cols: uint(sz.Col),
				XPixel: uint(sz.Xpixel), YPixel: uint(sz.Ypixel),
			}, nil
		}
	}

	w, h, err := terminal.GetSize(0)
	if err != nil {
		return TermSize{}, err
	}
	return TermSize{Rows: uint(h), Cols: uint(w)}, nil
}
