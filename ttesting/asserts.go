// Package ttesting carries small assertion helpers shared by tests across
// the module. Each assertion runs as a named subtest so failures point at
// the value that went wrong.
package ttesting

import (
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

func AssertEqualString(t *testing.T, name string, got, want string) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %q; want %q", got, want)
		}
	})
}

func AssertEqualBool(t *testing.T, name string, got, want bool) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %v; want %v", got, want)
		}
	})
}

// AssertNearUint8 passes when got is within tolerance of want. Useful for
// pixel math that is only exact up to 8-bit integer rounding.
func AssertNearUint8(t *testing.T, name string, got, want, tolerance uint8) {
	t.Run(name, func(t *testing.T) {
		diff := int(got) - int(want)
		if diff < 0 {
			diff = -diff
		}
		if diff > int(tolerance) {
			t.Errorf("got %d; want %d within %d", got, want, tolerance)
		}
	})
}
