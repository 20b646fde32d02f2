//go:build pixfmt_debug

package pixfmt

import (
	"errors"
	"testing"
)

// requirePrecondition runs fn and fails unless it panics with an error
// wrapping ErrPrecondition.
func requirePrecondition(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPrecondition) {
			t.Fatalf("panic value = %v, want error wrapping ErrPrecondition", r)
		}
	}()
	fn()
}

func TestDebugAssertions(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"alpha not a byte", func() { PackARGB32(256, 0, 0, 0) }},
		{"red above alpha", func() { PackARGB32(10, 11, 0, 0) }},
		{"rgba byte", func() { PackARGBAsRGBA(0, 0, 0, 300) }},
		{"red16 too wide", func() { PackRGB16(32, 0, 0) }},
		{"green16 too wide", func() { PackRGB16(0, 64, 0) }},
		{"nibble too wide", func() { PackARGB4444(16, 0, 0, 0) }},
		{"replicate nibble", func() { ReplicateNibble(0x10) }},
		{"narrow non-byte", func() { R32ToR16(256) }},
		{"widen too wide", func() { Widen(32, 5) }},
		{"widen bad width", func() { Widen(0, 3) }},
		{"scale above 256", func() { AlphaBlend(0, 0, 257) }},
		{"negative scale", func() { AlphaBlend(0, 0, -1) }},
		{"fast scale", func() { FastFourByteInterp256(0, 0, 300) }},
		{"weight above 255", func() { FourByteInterp(0, 0, 256) }},
		{"coverage above 255", func() { BlendARGB32(0, 0, 256) }},
		{"format channel too wide", func() { FormatARGB4444.Pack(0, 0, 0, 16) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requirePrecondition(t, tt.fn)
		})
	}
}

func TestDebugAssertionsAllowLegalInput(t *testing.T) {
	PackARGB32(255, 255, 255, 255)
	PackRGB16(31, 63, 31)
	PackARGB4444(15, 15, 15, 15)
	Widen(31, 5)
	AlphaBlend(255, 0, 256)
	FourByteInterp(0, 0, 255)
	FormatRGB565.Pack(255, 31, 63, 31)
	for i := 0; i <= 0xFFFF; i++ {
		Pixel16ToColor(RGB565(i))
	}
}
