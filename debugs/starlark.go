package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// EvalFunc is exposed to starlark as a builtin taking one source string.
type EvalFunc func(src string) (any, error)

type valuer interface {
	Value() any
}

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case starlark.Value:
		return v
	case EvalFunc:
		return evalBuiltin(v)
	case valuer:
		return toStarlarkValue(v.Value())
	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)
	case map[string]any:
		d := starlark.NewDict(len(v))
		for k, val := range v {
			d.SetKey(starlark.String(k), toStarlarkValue(val))
		}
		return d
	}

	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Slice:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)
	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d
	case reflect.Pointer:
		if value.IsNil() {
			return starlark.None
		}
		return toStarlarkValue(value.Elem().Interface())
	case reflect.Func:
		return starlarkutil.MakeFunc("", v)
	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

func evalBuiltin(fn EvalFunc) *starlark.Builtin {
	return starlark.NewBuiltin("eval", func(
		thread *starlark.Thread,
		builtin *starlark.Builtin,
		args starlark.Tuple,
		kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var src string
		if err := starlark.UnpackPositionalArgs(builtin.Name(), args, kwargs, 1, &src); err != nil {
			return nil, err
		}
		ret, err := fn(src)
		if err != nil {
			return nil, err
		}
		return toStarlarkValue(ret), nil
	})
}
