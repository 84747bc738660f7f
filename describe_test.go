package compose_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/compose"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	s := compose.Describe(double, square, "42")
	t.Logf("\n%s", s)
	assert.Contains(t, s, "compose/3")
	assert.Contains(t, s, `[2] "42": not callable`)
	assert.Contains(t, s, "compose_test.square func(int) int")
	i0, i1, i2 := strings.Index(s, "[0]"), strings.Index(s, "[1]"), strings.Index(s, "[2]")
	if !(i2 < i1 && i1 < i0) {
		t.Error("expected stages to be listed in order of application")
	}
}

func TestDescribeEmpty(t *testing.T) {
	s := compose.Describe()
	assert.Contains(t, s, "compose/0")
	assert.Contains(t, s, "identity")
}

func TestDescribeNilFunction(t *testing.T) {
	var f func(int) int
	s := compose.Describe(f, nil)
	assert.Contains(t, s, "[0] nil func(int) int: not callable")
	assert.Contains(t, s, "[1] <nil>: not callable")
}
