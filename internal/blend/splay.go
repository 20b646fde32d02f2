package blend

// splayMask selects the two low bytes of each 16-bit half of a word.
const splayMask = 0x00FF00FF

// Splay32 spreads a packed 32-bit color into two words with a zero byte
// above every channel:
//
//	0xAARRGGBB -> 0x00AA00GG, 0x00RR00BB
//
// The channel names are positional; the layout does not matter as long as
// Unsplay32 is used to repack.
func Splay32(c uint32) (ag, rb uint32) {
	ag = (c >> 8) & splayMask
	rb = c & splayMask
	return ag, rb
}

// Unsplay32 repacks two splayed words whose channels have been scaled by
// 256, keeping the high byte of each 16-bit lane:
//
//	0xAAxxGGxx, 0xRRxxBBxx -> 0xAARRGGBB
func Unsplay32(ag, rb uint32) uint32 {
	const mask = 0xFF00FF00
	return (ag & mask) | ((rb & mask) >> 8)
}

// Splay64 spreads a packed 32-bit color into one 64-bit word:
//
//	0xAARRGGBB -> 0x00AA00GG00RR00BB
//
// Note the lane order is AGRB.
func Splay64(c uint32) uint64 {
	agrb := uint64((c >> 8) & splayMask)
	agrb <<= 32
	agrb |= uint64(c & splayMask)
	return agrb
}

// Unsplay64 is the inverse of Splay64 after a 256 scale:
//
//	0xAAxxGGxxRRxxBBxx -> 0xAARRGGBB
func Unsplay64(agrb uint64) uint32 {
	const mask = 0xFF00FF00
	return uint32((agrb&mask)>>8) | uint32((agrb>>32)&mask)
}

// Interp256x32 interpolates two packed colors with a [0,256] source weight
// using two 32-bit words. Each 16-bit lane holds at most 255*256, so lanes
// never carry into each other.
func Interp256x32(src, dst, scale uint32) uint32 {
	srcAG, srcRB := Splay32(src)
	dstAG, dstRB := Splay32(dst)
	ag := srcAG*scale + (256-scale)*dstAG
	rb := srcRB*scale + (256-scale)*dstRB
	return Unsplay32(ag, rb)
}

// Interp256x64 is Interp256x32 computed in a single 64-bit word.
func Interp256x64(src, dst, scale uint32) uint32 {
	s := uint64(scale)
	return Unsplay64(Splay64(src)*s + (256-s)*Splay64(dst))
}
