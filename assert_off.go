//go:build !vecdebug

package vec

// debugAsserts enables precondition checks on the unchecked access paths.
const debugAsserts = false
