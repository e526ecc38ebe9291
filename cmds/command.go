package cmds

import (
	"fmt"
	"reflect"
)

// Command is a word on the command line. Func consumes the following words
// as its arguments; Subs become available after it.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

var errorType = reflect.TypeFor[error]()

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// argNames describes the arguments Func takes, for usage.
func (c *Command) argNames() (ret []string) {
	if !c.Func.IsValid() {
		return nil
	}
	fnType := c.Func.Type()
	for i := range fnType.NumIn() {
		t := fnType.In(i)
		if t.Kind() == reflect.Pointer {
			ret = append(ret, "[<"+t.Elem().Kind().String()+">]")
			continue
		}
		ret = append(ret, "<"+t.Kind().String()+">")
	}
	return
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch fnType.NumOut() {
	case 0:
	case 1:
		if fnType.Out(0) != errorType {
			panic(fmt.Errorf("must return error, got %v", fnType.Out(0)))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value, got %d", fnType.NumOut()))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
