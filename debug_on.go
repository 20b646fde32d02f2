//go:build pixfmt_debug

package pixfmt

const debugAssertions = true
