package compose

import (
	"reflect"
)

// Func is the function type of composites built by Compose from zero or
// from two and more stages.
type Func func(args ...any) any

// Compose composes fns from right to left. The rightmost value is called
// with all the arguments the composite receives, each value to its left is
// called with the single result of its right neighbour. The leftmost result is
// the result of the composite.
//
//	Compose()              → Func returning its first argument (nil if there is none)
//	Compose(f)             → f, unmodified
//	Compose(f, g, h)       → Func(args...) = f(g(h(args...)))
//
// Values are not inspected at composition time. A stage which cannot be
// invoked with its arguments makes the composite panic with a *StageError
// as soon as the chain reaches it.
func Compose(fns ...any) any {
	switch len(fns) {
	case 0:
		return Func(first)
	case 1:
		return fns[0]
	}
	stages := make([]any, len(fns))
	copy(stages, fns)
	tracer().Debugf("compose: composite of %d stages", len(stages))
	return Func(func(args ...any) any {
		last := len(stages) - 1
		x, err := call(last, stages[last], args)
		for i := last - 1; err == nil && i >= 0; i-- {
			x, err = call(i, stages[i], []any{x})
		}
		if err != nil {
			tracer().Errorf("%v\n%s", err, Describe(stages...))
			panic(err)
		}
		return x
	})
}

func first(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// call invokes stage fn with args. Common untyped function shapes are called
// directly, anything else goes through reflection.
func call(stage int, fn any, args []any) (any, *StageError) {
	switch f := fn.(type) {
	case Func:
		if f == nil {
			return nil, stageError(stage, fn, ErrNotCallable, "nil function")
		}
		return f(args...), nil
	case func(...any) any:
		if f == nil {
			return nil, stageError(stage, fn, ErrNotCallable, "nil function")
		}
		return f(args...), nil
	case func(any) any:
		if f == nil {
			return nil, stageError(stage, fn, ErrNotCallable, "nil function")
		}
		if len(args) != 1 {
			return nil, stageError(stage, fn, ErrArity, "want 1 argument, have %d", len(args))
		}
		return f(args[0]), nil
	}
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, stageError(stage, fn, ErrNotCallable, "")
	}
	if v.IsNil() {
		return nil, stageError(stage, fn, ErrNotCallable, "nil function")
	}
	in, err := bind(stage, fn, v.Type(), args)
	if err != nil {
		return nil, err
	}
	out := v.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		return out[0].Interface(), nil
	}
	return nil, stageError(stage, fn, ErrResultCount, "%s returns %d values", v.Type(), len(out))
}

// bind converts args to the parameter list of function type ft.
// nil binds to the zero value of nillable parameter types.
func bind(stage int, fn any, ft reflect.Type, args []any) ([]reflect.Value, *StageError) {
	n := ft.NumIn()
	if ft.IsVariadic() {
		if len(args) < n-1 {
			return nil, stageError(stage, fn, ErrArity, "want at least %d arguments, have %d", n-1, len(args))
		}
	} else if len(args) != n {
		return nil, stageError(stage, fn, ErrArity, "want %d arguments, have %d", n, len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		var pt reflect.Type
		if ft.IsVariadic() && i >= n-1 {
			pt = ft.In(n - 1).Elem()
		} else {
			pt = ft.In(i)
		}
		if a == nil {
			if !nillable(pt) {
				return nil, stageError(stage, fn, ErrArgumentType, "argument #%d: nil for %s", i, pt)
			}
			in[i] = reflect.Zero(pt)
			continue
		}
		av := reflect.ValueOf(a)
		if !av.Type().AssignableTo(pt) {
			return nil, stageError(stage, fn, ErrArgumentType, "argument #%d: %s for %s", i, av.Type(), pt)
		}
		in[i] = av
	}
	return in, nil
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
