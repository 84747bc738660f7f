package compose_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/npillmayer/compose"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose3(t *testing.T) {
	h := compose.Compose3(strings.ToUpper, strconv.Itoa, square)
	if h(12) != "144" {
		t.Errorf("expected h(12) to be 144, is %q", h(12))
	}
	k := compose.Compose3(strconv.Itoa, double, square)
	if k(3) != "18" {
		t.Errorf("expected k(3) to be 18, is %q", k(3))
	}
}

func TestCompose4(t *testing.T) {
	length := func(s string) int { return len(s) }
	h := compose.Compose4(double, length, strconv.Itoa, square)
	if h(100) != 10 {
		t.Errorf("expected h(100) to be 10, is %d", h(100))
	}
}

func TestComposeBinary(t *testing.T) {
	h := compose.ComposeBinary(square, add)
	if h(1, 2) != 9 {
		t.Errorf("expected h(1, 2) to be 9, is %d", h(1, 2))
	}
	join := compose.ComposeBinary(strings.ToUpper, func(a string, n int) string {
		return strings.Repeat(a, n)
	})
	if join("ab", 2) != "ABAB" {
		t.Errorf("expected join(ab, 2) to be ABAB, is %q", join("ab", 2))
	}
}

func TestComposeVariadic(t *testing.T) {
	h := compose.ComposeVariadic(strconv.Itoa, func(xs ...int) int {
		return len(xs)
	})
	if h() != "0" || h(1, 2, 3) != "3" {
		t.Errorf("expected h to count its arguments, is h()=%q, h(1,2,3)=%q", h(), h(1, 2, 3))
	}
}

func TestComposeErr(t *testing.T) {
	calls := 0
	half := func(n int) (int, error) {
		calls++
		if n%2 != 0 {
			return 0, errors.New("odd")
		}
		return n / 2, nil
	}
	h := compose.ComposeErr(half, strconv.Atoi)
	n, err := h("42")
	if err != nil || n != 21 {
		t.Errorf("expected h(42) to be 21, is (%d, %v)", n, err)
	}
	if _, err = h("x"); err == nil {
		t.Error("expected h(x) to fail, didn't")
	}
	if calls != 1 {
		t.Errorf("expected half not to be called after a failing stage, calls = %d", calls)
	}
}

func TestChain(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	if compose.Chain[int]()(7) != 7 {
		t.Error("expected empty chain to be the identity")
	}
	if compose.Chain(inc)(7) != 8 {
		t.Error("expected chain of inc to increment")
	}
	h := compose.Chain(double, square, inc)
	if h(2) != 18 {
		t.Errorf("expected double(square(inc(2))) = 18, is %d", h(2))
	}
	k := compose.Chain(inc, square, double)
	if k(2) != 17 {
		t.Errorf("expected inc(square(double(2))) = 17, is %d", k(2))
	}
}

func TestTypedNilStageIsLazy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.compose")
	defer teardown()
	//
	var missing func(int) int
	var h func(int) int
	require.NotPanics(t, func() {
		h = compose.Compose2(missing, double)
	})
	_, err := compose.Apply(h, 1)
	assert.ErrorIs(t, err, compose.ErrNotCallable)
	var serr *compose.StageError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 0, serr.Stage)

	c := compose.Chain(double, missing, square)
	_, err = compose.Apply(c, 2)
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 1, serr.Stage)
}
