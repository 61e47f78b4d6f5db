// Package debug exposes the build-time debug flag used across kate
// components. Building with the "debug" tag enables internal assertions.
package debug

// Assert panics if the condition is false. It compiles to a no-op unless
// the debug build tag is set.
func Assert(condition bool, message ...string) {
	if Debug && !condition {
		if len(message) > 0 {
			panic(message[0])
		}
		panic("assertion failed")
	}
}
