package result

/*
{-| A `Result` is the result of a computation that may fail. This is a great
way to manage errors in Elm.

# Type and Constructors
@docs Result

# Mapping
@docs map

# Chaining
@docs andThen, compose

# Handling Errors
@docs withDefault
-}
*/

// Result is the outcome of a computation which either produced a value of
// type T or failed with an error.
type Result[T any] interface {
	Match() Matcher[T]
	Get() (T, error)
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err returns a failed result. A nil err is an error of the caller; Err
// panics in this case.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result.Err: error must not be nil")
	}
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Get unpacks r.
func (r result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Map applies f to the value of an Ok result. Failed results pass through.
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// AndThen chains a computation which may fail after r.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Get()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// Compose returns h = f ∘ g for functions producing results.
// If g fails, f is not called.
func Compose[A, B, C any](f func(B) Result[C], g func(A) Result[B]) func(A) Result[C] {
	return func(a A) Result[C] {
		return AndThen(f, g(a))
	}
}

// --- Matching --------------------------------------------------------------

// Matcher is used to switch over the cases of a result. Matching requires T
// to be comparable at runtime.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
