//go:build !debugassert

package rewriter

// assertAnkhJewelCount is a no-op outside the debugassert build tag,
// mirroring pkg/validate's AssertUnique split.
func assertAnkhJewelCount(item ResolvedItem) error { return nil }
