package debugs

import (
	"errors"
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	n := int64(3)

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-7), starlark.MakeInt64(-7)},
		{"list", []any{int64(1), "a", []any{false}}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1),
			starlark.String("a"),
			starlark.NewList([]starlark.Value{starlark.False}),
		})},
		{"names", []string{"add", "fact"}, starlark.NewList([]starlark.Value{
			starlark.String("add"),
			starlark.String("fact"),
		})},
		{"dict", map[string]any{"a": int64(1)}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"string dict", map[string]string{"a": "1"}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.String("1"))
			return d
		}()},
		{"pointer", &n, starlark.MakeInt(3)},
		{"nil pointer", (*int64)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("valuer", func(t *testing.T) {
		actual := toStarlarkValue(testValuer{})
		equal, err := starlark.Equal(actual, starlark.NewList([]starlark.Value{starlark.MakeInt(1)}))
		if err != nil {
			t.Fatal(err)
		}
		if !equal {
			t.Fatalf("got %v", actual)
		}
	})

	t.Run("eval", func(t *testing.T) {
		fn := toStarlarkValue(EvalFunc(func(src string) (any, error) {
			if src == "" {
				return nil, errors.New("empty")
			}
			return int64(len(src)), nil
		}))
		thread := &starlark.Thread{Name: "test"}
		ret, err := starlark.Call(thread, fn, starlark.Tuple{starlark.String("(+ 1 2)")}, nil)
		if err != nil {
			t.Fatal(err)
		}
		if equal, _ := starlark.Equal(ret, starlark.MakeInt(7)); !equal {
			t.Fatalf("got %v", ret)
		}
		if _, err := starlark.Call(thread, fn, starlark.Tuple{starlark.String("")}, nil); err == nil {
			t.Fatal("should error")
		}
	})

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

type testValuer struct{}

func (testValuer) Value() any {
	return []any{1}
}
