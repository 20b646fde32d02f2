package pixfmt

import (
	"errors"
	"fmt"
)

// ErrPrecondition is wrapped by the panic value raised when a debug build
// detects a channel or scale outside its legal range.
//
// Release builds never check; out-of-range input produces unspecified
// (but memory-safe) results.
var ErrPrecondition = errors.New("pixfmt: precondition violated")

func check(ok bool, what string) {
	if debugAssertions && !ok {
		failf("%s", what)
	}
}

func assertByte(x uint32) {
	if debugAssertions && x&^0xFF != 0 {
		failf("%d is not a byte", x)
	}
}

func assertMax(x, limit uint32, what string) {
	if debugAssertions && x > limit {
		failf("%s %d exceeds %d", what, x, limit)
	}
}

func assertWidth(bits uint) {
	if debugAssertions && (bits < 4 || bits > 8) {
		failf("channel width %d outside [4,8]", bits)
	}
}

func failf(format string, args ...any) {
	err := fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
	Logger().Error("pixfmt: assertion failed", "err", err)
	panic(err)
}
