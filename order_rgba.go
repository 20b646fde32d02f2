//go:build pixfmt_rgba

package pixfmt

// The canonical PMColor layout is RGBA in memory.
const (
	PMColorIsBGRA = false

	A32Shift = RGBAA32Shift
	R32Shift = RGBAR32Shift
	G32Shift = RGBAG32Shift
	B32Shift = RGBAB32Shift

	CanonicalFormat = FormatRGBA32
)
