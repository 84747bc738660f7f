package compose

// Typed composers. Stages are listed left to right as in Compose, and the
// composite takes the parameters of the rightmost stage. A nil stage is
// reported when the chain reaches it, by a panic with a *StageError wrapping
// ErrNotCallable.

// Compose2 returns h = f ∘ g.
func Compose2[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		if g == nil {
			nilStage(1, g)
		}
		b := g(a)
		if f == nil {
			nilStage(0, f)
		}
		return f(b)
	}
}

// Compose3 returns h = f ∘ g ∘ k.
func Compose3[A, B, C, D any](f func(C) D, g func(B) C, k func(A) B) func(A) D {
	return func(a A) D {
		if k == nil {
			nilStage(2, k)
		}
		b := k(a)
		if g == nil {
			nilStage(1, g)
		}
		c := g(b)
		if f == nil {
			nilStage(0, f)
		}
		return f(c)
	}
}

// Compose4 returns h = f ∘ g ∘ k ∘ l.
func Compose4[A, B, C, D, E any](f func(D) E, g func(C) D, k func(B) C, l func(A) B) func(A) E {
	return func(a A) E {
		if l == nil {
			nilStage(3, l)
		}
		b := l(a)
		if k == nil {
			nilStage(2, k)
		}
		c := k(b)
		if g == nil {
			nilStage(1, g)
		}
		d := g(c)
		if f == nil {
			nilStage(0, f)
		}
		return f(d)
	}
}

// ComposeBinary returns h = f ∘ g for a two-argument g.
func ComposeBinary[A1, A2, B, C any](f func(B) C, g func(A1, A2) B) func(A1, A2) C {
	return func(a1 A1, a2 A2) C {
		if g == nil {
			nilStage(1, g)
		}
		b := g(a1, a2)
		if f == nil {
			nilStage(0, f)
		}
		return f(b)
	}
}

// ComposeVariadic returns h = f ∘ g for a variadic g.
func ComposeVariadic[A, B, C any](f func(B) C, g func(...A) B) func(...A) C {
	return func(as ...A) C {
		if g == nil {
			nilStage(1, g)
		}
		b := g(as...)
		if f == nil {
			nilStage(0, f)
		}
		return f(b)
	}
}

// ComposeErr returns h = f ∘ g for functions which may fail.
// h returns the first error encountered, skipping the remaining stages.
func ComposeErr[A, B, C any](f func(B) (C, error), g func(A) (B, error)) func(A) (C, error) {
	return func(a A) (C, error) {
		if g == nil {
			nilStage(1, g)
		}
		b, err := g(a)
		if err != nil {
			var c C
			return c, err
		}
		if f == nil {
			nilStage(0, f)
		}
		return f(b)
	}
}

// Chain composes endomorphisms from right to left.
// With no functions it returns Identity, with one it returns that function.
func Chain[T any](fns ...func(T) T) func(T) T {
	switch len(fns) {
	case 0:
		return Identity[T]
	case 1:
		return fns[0]
	}
	stages := make([]func(T) T, len(fns))
	copy(stages, fns)
	return func(x T) T {
		for i := len(stages) - 1; i >= 0; i-- {
			if stages[i] == nil {
				nilStage(i, stages[i])
			}
			x = stages[i](x)
		}
		return x
	}
}

func nilStage(stage int, fn any) {
	err := stageError(stage, fn, ErrNotCallable, "nil function")
	tracer().Errorf("%v", err)
	panic(err)
}
