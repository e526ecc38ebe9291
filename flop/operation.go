package flop

import "math"

type Operation uint8

const (
	Add Operation = iota + 1
	Subtract
	Multiply
	Divide
)

var operations = map[string]Operation{
	"+": Add,
	"-": Subtract,
	"*": Multiply,
	"/": Divide,
}

func ParseOperation(symbol string) (Operation, bool) {
	op, ok := operations[symbol]
	return op, ok
}

// Apply reports ErrOverflow instead of wrapping around.
func (o Operation) Apply(a, b int64) (int64, error) {
	switch o {
	case Add:
		c := a + b
		if (c > a) != (b > 0) {
			return 0, ErrOverflow
		}
		return c, nil
	case Subtract:
		c := a - b
		if (c < a) != (b > 0) {
			return 0, ErrOverflow
		}
		return c, nil
	case Multiply:
		if a == 0 || b == 0 {
			return 0, nil
		}
		c := a * b
		if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, ErrOverflow
		}
		return c, nil
	case Divide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		if a == math.MinInt64 && b == -1 {
			return 0, ErrOverflow
		}
		return a / b, nil
	}
	return 0, ErrUnsupported
}
