package compose

import (
	"github.com/npillmayer/compose/result"
)

// Call invokes fn with args, following the same rules composites use for
// their stages. fn may be a composite, a single value returned by Compose, or
// any function. If fn cannot be invoked with args, Call panics with a
// *StageError for stage 0.
func Call(fn any, args ...any) any {
	x, err := call(0, fn, args)
	if err != nil {
		tracer().Errorf("%v", err)
		panic(err)
	}
	return x
}

// Apply is like Call, but returns a stage fault as an error instead of
// panicking. Panics raised by the stage functions themselves are not
// intercepted.
func Apply(fn any, args ...any) (x any, err error) {
	defer func() {
		if r := recover(); r != nil {
			serr, ok := r.(*StageError)
			if !ok {
				panic(r)
			}
			x, err = nil, serr
		}
	}()
	return Call(fn, args...), nil
}

// Try is like Apply, but wraps the outcome in a Result.
func Try(fn any, args ...any) result.Result[any] {
	x, err := Apply(fn, args...)
	if err != nil {
		return result.Err[any](err)
	}
	return result.Ok(x)
}
