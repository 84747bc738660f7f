/*
Package compose implements right-to-left function composition.

	h := compose.Compose(f, g, k)

yields a function equivalent to f(g(k(args...))). The rightmost function
receives all the arguments the composite is called with; every function to
its left receives exactly one argument, the result of the previous stage.
Thus the composite inherits the call signature of its rightmost stage.

Compose operates on untyped values and binds arguments at call time. For
statically typed chains, use Compose2, Compose3, ComposeBinary, Chain and
friends.

Composing nothing yields a function returning its first argument, composing a
single value yields that value itself. No value is checked at composition
time: invoking a composite which reaches a non-function stage panics with a
*StageError wrapping ErrNotCallable. Use Apply or Try to get the fault as a
value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compose

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.compose'.
func tracer() tracing.Trace {
	return tracing.Select("fp.compose")
}
