package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/flop/modes"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestGlobals(t *testing.T) {
	globals := Globals(map[string]any{
		"n": 42,
		"eval": EvalFunc(func(src string) (any, error) {
			return src, nil
		}),
	})
	thread := &starlark.Thread{Name: "test"}
	ret, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, "test.star", `x = eval("a") + str(n)`, globals)
	if err != nil {
		t.Fatal(err)
	}
	if s, ok := ret["x"].(starlark.String); !ok || string(s) != "a42" {
		t.Fatalf("got %v", ret["x"])
	}
}
