//go:build !pixfmt_debug

package pixfmt

// debugAssertions gates every precondition check. Build with
// -tags pixfmt_debug to enable them.
const debugAssertions = false
