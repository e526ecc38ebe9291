package cmds

import (
	"fmt"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestFallback(t *testing.T) {
	executor := NewExecutor()
	var words []string
	executor.Fallback = func(word string) error {
		words = append(words, word)
		return nil
	}
	var n int
	executor.Define("-n", Func(func(i int) {
		n = i
	}))

	if err := executor.Execute([]string{"a.flop", "-n", "3", "b.flop"}); err != nil {
		t.Fatal(err)
	}
	if strings.Join(words, ",") != "a.flop,b.flop" {
		t.Fatalf("got %v", words)
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}

	err := executor.Execute([]string{"-unknown"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -unknown") {
		t.Fatalf("got %v", err)
	}
}

func TestFuncError(t *testing.T) {
	executor := NewExecutor()
	var n int
	executor.Define("-n", Func(func(i int) error {
		if i < 0 {
			return fmt.Errorf("negative: %d", i)
		}
		n = i
		return nil
	}))

	if err := executor.Execute([]string{"-n", "3"}); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}

	err := executor.Execute([]string{"-n", "-1"})
	if err == nil || err.Error() != "-n: negative: -1" {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-n", "x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-n"})
	if err == nil || !strings.Contains(err.Error(), "expecting int argument") {
		t.Fatalf("got %v", err)
	}
}
