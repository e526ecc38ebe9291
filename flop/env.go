package flop

import (
	"maps"
	"slices"
)

// table is a copy-on-write map. Sharing it is O(1); the first write after
// sharing copies the entries.
type table[V any] struct {
	entries map[string]V
	shared  bool
}

func (t *table[V]) share() table[V] {
	t.shared = true
	return table[V]{
		entries: t.entries,
		shared:  true,
	}
}

func (t *table[V]) get(name string) (V, bool) {
	v, ok := t.entries[name]
	return v, ok
}

func (t *table[V]) set(name string, value V) {
	if t.entries == nil {
		t.entries = make(map[string]V)
	} else if t.shared {
		t.entries = maps.Clone(t.entries)
	}
	t.shared = false
	t.entries[name] = value
}

func (t *table[V]) names() []string {
	return slices.Sorted(maps.Keys(t.entries))
}

// Binding is a variable as stored in an environment.
type Binding struct {
	Definition *VariableDefinition

	// scope is where Definition.Value is evaluated; nil means the environment doing the lookup.
	scope *Environment
	value *Result
}

type Environment struct {
	functions table[*FunctionDefinition]
	variables table[*Binding]

	MaxDepth int
}

func NewEnvironment() *Environment {
	return &Environment{
		MaxDepth: DefaultMaxDepth,
	}
}

// Clone returns an environment with the same definitions. Later definitions in
// either environment are not visible to the other.
func (e *Environment) Clone() *Environment {
	return &Environment{
		functions: e.functions.share(),
		variables: e.variables.share(),
		MaxDepth:  e.MaxDepth,
	}
}

// CallEnv returns the environment a function body runs in: the same functions, no variables.
func (e *Environment) CallEnv() *Environment {
	return &Environment{
		functions: e.functions.share(),
		MaxDepth:  e.MaxDepth,
	}
}

func (e *Environment) DefineFunction(def *FunctionDefinition) {
	e.functions.set(def.Name.Text, def)
}

func (e *Environment) Function(name string) (*FunctionDefinition, bool) {
	return e.functions.get(name)
}

func (e *Environment) FunctionNames() []string {
	return e.functions.names()
}

func (e *Environment) DefineVariable(def *VariableDefinition) {
	e.variables.set(def.Name.Text, &Binding{
		Definition: def,
	})
}

// bind defines a variable whose value is evaluated lazily in scope.
func (e *Environment) bind(def *VariableDefinition, scope *Environment) {
	e.variables.set(def.Name.Text, &Binding{
		Definition: def,
		scope:      scope,
	})
}

func (e *Environment) Variable(name string) (*Binding, bool) {
	return e.variables.get(name)
}

func (e *Environment) VariableNames() []string {
	return e.variables.names()
}
