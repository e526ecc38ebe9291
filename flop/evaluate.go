package flop

import (
	"errors"
	"io"
	"strconv"
)

// Evaluate runs node against the environment. Definitions are recorded only
// when the whole node evaluated without error.
func (e *Environment) Evaluate(node Node) (Result, error) {
	return e.eval(node, 0)
}

// EvaluateStream evaluates every form in the stream and returns the last result.
func (e *Environment) EvaluateStream(stream TokenStream) (Result, error) {
	parser := NewParser(stream)
	parser.MaxDepth = e.MaxDepth
	result := Void
	for {
		node, err := parser.Next()
		if err == io.EOF {
			return result, nil
		}
		if err != nil {
			return Void, err
		}
		result, err = e.Evaluate(node)
		if err != nil {
			return Void, err
		}
	}
}

func (e *Environment) eval(node Node, depth int) (Result, error) {
	switch node := node.(type) {

	case *Literal:
		return evalLiteral(node)

	case *VariableCall:
		return e.evalVariableCall(node, depth)

	case *VariableDefinition:
		e.DefineVariable(node.Clone().(*VariableDefinition))
		return Void, nil

	case *List:
		items := make([]Result, 0, len(node.Items))
		for _, item := range node.Items {
			res, err := e.eval(item, depth)
			if err != nil {
				return Void, err
			}
			items = append(items, res)
		}
		return Result{
			Kind:  ResultList,
			Items: items,
		}, nil

	case *FunctionDefinition:
		if IsBuiltin(node.Name.Text) {
			return Void, newError(PhaseEval, ErrReservedName, node.Name, "%s is a built-in operator", node.Name.Text)
		}
		e.DefineFunction(node.Clone().(*FunctionDefinition))
		return Void, nil

	case *FunctionCall:
		return e.evalCall(node, depth)

	case *Conditional:
		cond, err := e.eval(node.Condition, depth)
		if err != nil {
			return Void, err
		}
		b, ok := cond.Bool()
		if !ok {
			return Void, newError(PhaseEval, ErrNotBool, node.Condition.Token(), "condition evaluated to %s", cond.typeName())
		}
		if b {
			return e.eval(node.Then, depth)
		}
		return e.eval(node.Else, depth)

	case nil:
		return Void, newError(PhaseEval, ErrUnsupported, nil, "nil node")
	}

	return Void, newError(PhaseEval, ErrUnsupported, node.Token(), "node %T", node)
}

func evalLiteral(lit *Literal) (Result, error) {
	if lit.Value.Kind == TokenInteger {
		if _, err := strconv.ParseInt(lit.Value.Text, 10, 64); err != nil {
			return Void, newError(PhaseEval, ErrInvalidInteger, lit.Value, "%s", lit.Value.Text)
		}
	}
	return literalResult(lit.Value), nil
}

func (e *Environment) enter(at *Token, depth int) error {
	if e.MaxDepth > 0 && depth > e.MaxDepth {
		return newError(PhaseEval, ErrDepthExceeded, at, "more than %d nested calls", e.MaxDepth)
	}
	return nil
}

func (e *Environment) evalVariableCall(call *VariableCall, depth int) (Result, error) {
	binding, ok := e.Variable(call.Name.Text)
	if !ok {
		return Void, newError(PhaseEval, ErrVariableNotDefined, call.Name, "%s", call.Name.Text)
	}
	if binding.value != nil {
		return *binding.value, nil
	}

	value := binding.Definition.Value
	if lit, ok := value.(*Literal); ok {
		res, err := evalLiteral(lit)
		if err != nil {
			return Void, err
		}
		binding.value = &res
		return res, nil
	}

	if err := e.enter(call.Name, depth+1); err != nil {
		return Void, err
	}
	scope := binding.scope
	if scope == nil {
		scope = e
	}
	res, err := scope.Clone().eval(value, depth+1)
	if err != nil {
		return Void, err
	}
	binding.value = &res
	return res, nil
}

func (e *Environment) evalCall(call *FunctionCall, depth int) (Result, error) {
	name := call.Name.Text

	if op, ok := ParseOperation(name); ok {
		return e.evalOperation(op, call, depth)
	}
	if cmp, ok := ParseComparison(name); ok {
		return e.evalComparison(cmp, call, depth)
	}

	fn, ok := e.Function(name)
	if !ok {
		return Void, newError(PhaseEval, ErrUnknownFunction, call.Name, "%s", name)
	}
	if len(call.Arguments) != len(fn.Parameters) {
		return Void, newError(PhaseEval, ErrParameter, call.Name,
			"%s expects %d, got %d", name, len(fn.Parameters), len(call.Arguments))
	}
	if err := e.enter(call.Name, depth+1); err != nil {
		return Void, err
	}

	local := e.CallEnv()
	for i, param := range fn.Parameters {
		local.bind(&VariableDefinition{
			Keyword: call.Name,
			Name:    param,
			Value:   call.Arguments[i].Clone(),
		}, e)
	}

	return local.eval(fn.Body.Clone(), depth+1)
}

func (e *Environment) evalInt(node Node, op *Token, depth int) (int64, error) {
	res, err := e.eval(node, depth)
	if err != nil {
		return 0, err
	}
	n, ok := res.Int()
	if !ok {
		return 0, newError(PhaseEval, ErrNotInteger, node.Token(), "operand of %s is %s", op.Text, res.typeName())
	}
	return n, nil
}

func (e *Environment) evalOperation(op Operation, call *FunctionCall, depth int) (Result, error) {
	if len(call.Arguments) == 0 {
		return Void, newError(PhaseEval, ErrOperands, call.Name, "%s needs at least 1 operand", call.Name.Text)
	}

	acc, err := e.evalInt(call.Arguments[0], call.Name, depth)
	if err != nil {
		return Void, err
	}
	for _, arg := range call.Arguments[1:] {
		n, err := e.evalInt(arg, call.Name, depth)
		if err != nil {
			return Void, err
		}
		prev := acc
		acc, err = op.Apply(acc, n)
		switch {
		case errors.Is(err, ErrDivisionByZero):
			return Void, newError(PhaseEval, ErrDivisionByZero, arg.Token(), "%s", arg)
		case errors.Is(err, ErrOverflow):
			return Void, newError(PhaseEval, ErrOverflow, arg.Token(), "%d %s %d", prev, call.Name.Text, n)
		case err != nil:
			return Void, newError(PhaseEval, err, call.Name, "%s", call.Name.Text)
		}
	}

	return intResult(acc, call.Name), nil
}

// evalComparison chains over a running value that becomes 1 or 0 after each
// pair. Equality keeps going after a failed pair; the others stop there.
func (e *Environment) evalComparison(cmp Comparison, call *FunctionCall, depth int) (Result, error) {
	if len(call.Arguments) < 2 {
		return Void, newError(PhaseEval, ErrOperands, call.Name,
			"%s needs at least 2 operands, got %d", call.Name.Text, len(call.Arguments))
	}

	acc, err := e.evalInt(call.Arguments[0], call.Name, depth)
	if err != nil {
		return Void, err
	}
	for _, arg := range call.Arguments[1:] {
		n, err := e.evalInt(arg, call.Name, depth)
		if err != nil {
			return Void, err
		}
		ok := cmp.Apply(acc, n)
		acc = 0
		if ok {
			acc = 1
		}
		if cmp != Equal && !ok {
			return boolResult(false, call.Name), nil
		}
	}

	return boolResult(acc != 0, call.Name), nil
}
