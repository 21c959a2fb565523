//go:build !release

package danmaku

import "fmt"

// invariant panics when cond is false. Release builds compile it to a no-op.
func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("danmaku: invariant violated: "+format, args...))
	}
}
