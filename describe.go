package compose

import (
	"fmt"
	"reflect"
	"runtime"

	tp "github.com/xlab/treeprint"
)

// Describe renders the composition of fns as a tree, listing the stages in
// the order they are applied (rightmost first). Values which are not
// functions are marked as not callable.
//
//	.
//	└── compose/2
//	    ├── [1] main.square func(int) int
//	    └── [0] main.double func(int) int
func Describe(fns ...any) string {
	p := tp.New()
	branch := p.AddBranch(fmt.Sprintf("compose/%d", len(fns)))
	if len(fns) == 0 {
		branch.AddNode("identity on first argument")
	}
	for i := len(fns) - 1; i >= 0; i-- {
		branch.AddNode(stageLabel(i, fns[i]))
	}
	return p.String()
}

func stageLabel(i int, fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return fmt.Sprintf("[%d] %#v: not callable", i, fn)
	}
	if v.IsNil() {
		return fmt.Sprintf("[%d] nil %s: not callable", i, v.Type())
	}
	name := "func"
	if rf := runtime.FuncForPC(v.Pointer()); rf != nil {
		name = rf.Name()
	}
	return fmt.Sprintf("[%d] %s %s", i, name, v.Type())
}
