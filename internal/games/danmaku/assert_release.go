//go:build release

package danmaku

func invariant(bool, string, ...any) {}
