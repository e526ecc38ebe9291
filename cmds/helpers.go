package cmds

// Flag holds a value set by command words.
type Flag[T any] struct {
	Value T
	main  *Command
}

func (f *Flag[T]) Get() T {
	return f.Value
}

// Desc sets the usage description of the word that sets the flag.
func (f *Flag[T]) Desc(desc string) *Flag[T] {
	f.main.Desc(desc)
	return f
}

// Var defines name taking one argument, and name+"." resetting to zero.
func Var[T any](name string) *Flag[T] {
	flag := new(Flag[T])

	flag.main = Func(func(v T) {
		flag.Value = v
	})
	Define(name, flag.main)

	Define(name+".", Func(func() {
		var zero T
		flag.Value = zero
	}))

	return flag
}

// Switch defines name setting true, and "!"+name setting false.
func Switch(name string) *Flag[bool] {
	flag := new(Flag[bool])

	flag.main = Func(func() {
		flag.Value = true
	})
	Define(name, flag.main)

	Define("!"+name, Func(func() {
		flag.Value = false
	}))

	return flag
}

// Collect defines name appending its argument on every use.
func Collect[T any](name string) *Flag[[]T] {
	flag := new(Flag[[]T])
	flag.main = Func(func(v T) {
		flag.Value = append(flag.Value, v)
	})
	Define(name, flag.main)
	return flag
}
