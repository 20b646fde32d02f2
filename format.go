package pixfmt

// Format identifies a packed pixel layout.
type Format uint8

const (
	// FormatBGRA32 is 32-bit premultiplied color stored B,G,R,A in
	// little-endian memory (A,R,G,B from the most significant byte down).
	FormatBGRA32 Format = iota

	// FormatRGBA32 is 32-bit premultiplied color stored R,G,B,A in
	// little-endian memory (A,B,G,R from the most significant byte down).
	FormatRGBA32

	// FormatRGB565 is 16-bit opaque color with 5/6/5 bit channels.
	FormatRGB565

	// FormatARGB4444 is 16-bit premultiplied color with 4 bits per channel.
	FormatARGB4444

	// FormatRGBAF32 is premultiplied color as four float32 lanes in [0,1].
	// It has no packed integer layout.
	FormatRGBAF32

	// formatCount is the number of formats (for internal use).
	formatCount
)

// Channel names one component of a color.
type Channel uint8

const (
	// ChannelA is alpha.
	ChannelA Channel = iota
	// ChannelR is red.
	ChannelR
	// ChannelG is green.
	ChannelG
	// ChannelB is blue.
	ChannelB

	channelCount
)

// String returns the single-letter channel name.
func (c Channel) String() string {
	switch c {
	case ChannelA:
		return "A"
	case ChannelR:
		return "R"
	case ChannelG:
		return "G"
	case ChannelB:
		return "B"
	default:
		return "?"
	}
}

// ChannelLayout is the position of one channel inside a packed value.
// A zero Bits means the format does not store the channel.
type ChannelLayout struct {
	Shift uint8
	Bits  uint8
}

// Max returns the largest value the channel can hold.
func (l ChannelLayout) Max() uint32 {
	return 1<<l.Bits - 1
}

// Mask returns the channel's bits in place.
func (l ChannelLayout) Mask() uint32 {
	return l.Max() << l.Shift
}

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// IsPremultiplied indicates if color channels are premultiplied by alpha.
	IsPremultiplied bool

	// Layout holds the shift and width of each channel, indexed by Channel.
	Layout [channelCount]ChannelLayout
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatBGRA32: {
		BytesPerPixel:   4,
		HasAlpha:        true,
		IsPremultiplied: true,
		Layout: [channelCount]ChannelLayout{
			ChannelA: {Shift: BGRAA32Shift, Bits: A32Bits},
			ChannelR: {Shift: BGRAR32Shift, Bits: R32Bits},
			ChannelG: {Shift: BGRAG32Shift, Bits: G32Bits},
			ChannelB: {Shift: BGRAB32Shift, Bits: B32Bits},
		},
	},
	FormatRGBA32: {
		BytesPerPixel:   4,
		HasAlpha:        true,
		IsPremultiplied: true,
		Layout: [channelCount]ChannelLayout{
			ChannelA: {Shift: RGBAA32Shift, Bits: A32Bits},
			ChannelR: {Shift: RGBAR32Shift, Bits: R32Bits},
			ChannelG: {Shift: RGBAG32Shift, Bits: G32Bits},
			ChannelB: {Shift: RGBAB32Shift, Bits: B32Bits},
		},
	},
	FormatRGB565: {
		BytesPerPixel:   2,
		HasAlpha:        false,
		IsPremultiplied: false,
		Layout: [channelCount]ChannelLayout{
			ChannelR: {Shift: R16Shift, Bits: R16Bits},
			ChannelG: {Shift: G16Shift, Bits: G16Bits},
			ChannelB: {Shift: B16Shift, Bits: B16Bits},
		},
	},
	FormatARGB4444: {
		BytesPerPixel:   2,
		HasAlpha:        true,
		IsPremultiplied: true,
		Layout: [channelCount]ChannelLayout{
			ChannelA: {Shift: A4444Shift, Bits: 4},
			ChannelR: {Shift: R4444Shift, Bits: 4},
			ChannelG: {Shift: G4444Shift, Bits: 4},
			ChannelB: {Shift: B4444Shift, Bits: 4},
		},
	},
	FormatRGBAF32: {
		BytesPerPixel:   16,
		HasAlpha:        true,
		IsPremultiplied: true,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// IsPremultiplied returns true if color channels are premultiplied.
func (f Format) IsPremultiplied() bool {
	return f.Info().IsPremultiplied
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// Layout returns the position of ch in this format.
func (f Format) Layout(ch Channel) ChannelLayout {
	if ch >= channelCount {
		return ChannelLayout{}
	}
	return f.Info().Layout[ch]
}

// Mask returns the bits ch occupies in this format, in place. Channels the
// format does not store have a zero mask.
func (f Format) Mask(ch Channel) uint32 {
	return f.Layout(ch).Mask()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatBGRA32:
		return "BGRA32"
	case FormatRGBA32:
		return "RGBA32"
	case FormatRGB565:
		return "RGB565"
	case FormatARGB4444:
		return "ARGB4444"
	case FormatRGBAF32:
		return "RGBAF32"
	default:
		return "Unknown"
	}
}

// Extract returns channel ch of packed in the low bits, zero above.
// The upper bits of packed are ignored; extraction always masks.
// Channels the format does not store extract as 0.
func (f Format) Extract(packed uint32, ch Channel) uint32 {
	l := f.Layout(ch)
	return (packed >> l.Shift) & l.Max()
}

// Pack combines channel values into a packed value of this format.
// Each value must fit its channel width; debug builds assert this. Values
// for channels the format does not store are ignored.
//
// Pack does not check premultiplication. Use the typed constructors
// (PackARGB32, PackRGB16, PackARGB4444) on hot paths.
func (f Format) Pack(a, r, g, b uint32) uint32 {
	info := f.Info()
	var packed uint32
	for ch, v := range [channelCount]uint32{a, r, g, b} {
		l := info.Layout[ch]
		if l.Bits == 0 {
			continue
		}
		if debugAssertions {
			assertMax(v, l.Max(), f.String()+" channel "+Channel(ch).String())
		}
		packed |= v << l.Shift
	}
	return packed
}
