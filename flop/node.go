package flop

import (
	"strings"
)

// Node is an expression tree. The set of implementations is closed.
type Node interface {
	Token() *Token
	Clone() Node
	String() string
	node()
}

type Literal struct {
	Value *Token
}

type VariableCall struct {
	Name *Token
}

type VariableDefinition struct {
	Keyword *Token
	Name    *Token
	Value   Node
}

type FunctionCall struct {
	Name      *Token
	Arguments []Node
}

type FunctionDefinition struct {
	Keyword    *Token
	Name       *Token
	Parameters []*Token
	DocString  *Token
	Body       Node
}

type List struct {
	Open  *Token
	Items []Node
}

type Conditional struct {
	Keyword   *Token
	Condition Node
	Then      Node
	Else      Node
}

var (
	_ Node = new(Literal)
	_ Node = new(VariableCall)
	_ Node = new(VariableDefinition)
	_ Node = new(FunctionCall)
	_ Node = new(FunctionDefinition)
	_ Node = new(List)
	_ Node = new(Conditional)
)

func (*Literal) node()            {}
func (*VariableCall) node()       {}
func (*VariableDefinition) node() {}
func (*FunctionCall) node()       {}
func (*FunctionDefinition) node() {}
func (*List) node()               {}
func (*Conditional) node()        {}

func (l *Literal) Token() *Token            { return l.Value }
func (v *VariableCall) Token() *Token       { return v.Name }
func (v *VariableDefinition) Token() *Token { return v.Keyword }
func (f *FunctionCall) Token() *Token       { return f.Name }
func (f *FunctionDefinition) Token() *Token { return f.Keyword }
func (l *List) Token() *Token               { return l.Open }
func (c *Conditional) Token() *Token        { return c.Keyword }

// Tokens are immutable and shared between clones.

func (l *Literal) Clone() Node {
	return &Literal{Value: l.Value}
}

func (v *VariableCall) Clone() Node {
	return &VariableCall{Name: v.Name}
}

func (v *VariableDefinition) Clone() Node {
	return &VariableDefinition{
		Keyword: v.Keyword,
		Name:    v.Name,
		Value:   cloneNode(v.Value),
	}
}

func (f *FunctionCall) Clone() Node {
	return &FunctionCall{
		Name:      f.Name,
		Arguments: cloneNodes(f.Arguments),
	}
}

func (f *FunctionDefinition) Clone() Node {
	params := make([]*Token, len(f.Parameters))
	copy(params, f.Parameters)
	return &FunctionDefinition{
		Keyword:    f.Keyword,
		Name:       f.Name,
		Parameters: params,
		DocString:  f.DocString,
		Body:       cloneNode(f.Body),
	}
}

func (l *List) Clone() Node {
	return &List{
		Open:  l.Open,
		Items: cloneNodes(l.Items),
	}
}

func (c *Conditional) Clone() Node {
	return &Conditional{
		Keyword:   c.Keyword,
		Condition: cloneNode(c.Condition),
		Then:      cloneNode(c.Then),
		Else:      cloneNode(c.Else),
	}
}

func cloneNode(n Node) Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	ret := make([]Node, len(nodes))
	for i, n := range nodes {
		ret[i] = n.Clone()
	}
	return ret
}

// String renders nodes back into source form.

func (l *Literal) String() string {
	return l.Value.String()
}

func (v *VariableCall) String() string {
	return v.Name.Text
}

func (v *VariableDefinition) String() string {
	return "(setq " + v.Name.Text + " " + v.Value.String() + ")"
}

func (f *FunctionCall) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(f.Name.Text)
	for _, arg := range f.Arguments {
		sb.WriteString(" ")
		sb.WriteString(arg.String())
	}
	sb.WriteString(")")
	return sb.String()
}

func (f *FunctionDefinition) String() string {
	var sb strings.Builder
	sb.WriteString("(defn ")
	sb.WriteString(f.Name.Text)
	sb.WriteString(" [")
	for i, param := range f.Parameters {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(param.Text)
	}
	sb.WriteString("]")
	if f.DocString != nil {
		sb.WriteString(" ")
		sb.WriteString(f.DocString.String())
	}
	sb.WriteString(" ")
	sb.WriteString(f.Body.String())
	sb.WriteString(")")
	return sb.String()
}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(item.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func (c *Conditional) String() string {
	return "(if " + c.Condition.String() + " " + c.Then.String() + " " + c.Else.String() + ")"
}
