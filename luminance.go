package pixfmt

// ITU-R BT.709 luminance coefficients, see
// http://www.itu.int/rec/R-REC-BT.709/ .
const (
	LumCoeffR float32 = 0.2126
	LumCoeffG float32 = 0.7152
	LumCoeffB float32 = 0.0722
)

// ComputeLuminance approximates BT.709 luminance of linear-space bytes with
// the integer weights 54/256, 183/256 and 19/256. The weights sum to 256, so
// white maps to 255.
func ComputeLuminance(r, g, b uint32) uint32 {
	return (r*54 + g*183 + b*19) >> 8
}
