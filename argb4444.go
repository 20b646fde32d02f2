package pixfmt

// ARGB4444 is a 16-bit premultiplied color with 4 bits per channel, laid
// out R,G,B,A from the most significant nibble down.
type ARGB4444 uint16

// PackARGB4444 packs nibbles. Debug builds assert each is at most 15.
func PackARGB4444(a, r, g, b uint32) ARGB4444 {
	assertMax(a, Mask4444, "alpha4")
	assertMax(r, Mask4444, "red4")
	assertMax(g, Mask4444, "green4")
	assertMax(b, Mask4444, "blue4")
	return ARGB4444(a<<A4444Shift | r<<R4444Shift | g<<G4444Shift | b<<B4444Shift)
}

// A returns the 4-bit alpha channel.
func (c ARGB4444) A() uint32 { return (uint32(c) >> A4444Shift) & Mask4444 }

// R returns the 4-bit premultiplied red channel.
func (c ARGB4444) R() uint32 { return (uint32(c) >> R4444Shift) & Mask4444 }

// G returns the 4-bit premultiplied green channel.
func (c ARGB4444) G() uint32 { return (uint32(c) >> G4444Shift) & Mask4444 }

// B returns the 4-bit premultiplied blue channel.
func (c ARGB4444) B() uint32 { return (uint32(c) >> B4444Shift) & Mask4444 }

// RGBA implements color.Color.
func (c ARGB4444) RGBA() (r, g, b, a uint32) {
	return Pixel4444ToPixel32(c).RGBA()
}

// Packed4444ToA32 returns the alpha of c widened to 8 bits.
func Packed4444ToA32(c ARGB4444) uint32 {
	return ReplicateNibble(c.A())
}

// Pixel4444ToPixel32 widens every channel of c by nibble replication.
//
// The nibbles are first placed in the low half of each byte slot of the
// canonical layout, then the whole word is replicated up by four bits.
func Pixel4444ToPixel32(c ARGB4444) PMColor {
	d := c.A()<<A32Shift | c.R()<<R32Shift | c.G()<<G32Shift | c.B()<<B32Shift
	return PMColor(d | d<<4)
}
