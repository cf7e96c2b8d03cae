package vec

import "fmt"

// assertf panics with a formatted message when cond is false. It compiles
// away unless the vecdebug build tag is set, matching the unchecked
// contract of the hot-path accessors.
func assertf(cond bool, format string, args ...any) {
	if debugAsserts && !cond {
		panic("vec: " + fmt.Sprintf(format, args...))
	}
}
