//go:build !pixfmt_rgba

package pixfmt

// The canonical PMColor layout is BGRA in memory.
const (
	PMColorIsBGRA = true

	A32Shift = BGRAA32Shift
	R32Shift = BGRAR32Shift
	G32Shift = BGRAG32Shift
	B32Shift = BGRAB32Shift

	CanonicalFormat = FormatBGRA32
)
