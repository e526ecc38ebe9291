package configs

import (
	"errors"
)

// First decodes the first value at path. A missing value is the zero value;
// any other failure panics.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}
