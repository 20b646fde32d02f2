package pixfmt

import "image/color"

// Models for converting any color.Color to the packed types.
var (
	PMColorModel  color.Model = color.ModelFunc(pmColorModel)
	RGB565Model   color.Model = color.ModelFunc(rgb565Model)
	ARGB4444Model color.Model = color.ModelFunc(argb4444Model)
)

func pmColorModel(c color.Color) color.Color {
	if _, ok := c.(PMColor); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	return PackARGB32(a>>8, r>>8, g>>8, b>>8)
}

// rgb565Model drops alpha; premultiplied channels composite onto black.
func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Pack888ToRGB16(r>>8, g>>8, b>>8)
}

func argb4444Model(c color.Color) color.Color {
	if _, ok := c.(ARGB4444); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	return PackARGB4444(a>>12, r>>12, g>>12, b>>12)
}
