package flop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnvironmentClone(t *testing.T) {
	env := NewEnvironment()
	if _, err := run(t, env, `(setq a 1) (defn f [] "doc" (+ 1))`); err != nil {
		t.Fatal(err)
	}

	clone := env.Clone()
	if _, err := run(t, clone, `(setq b 2) (defn g [] "doc" (+ 2))`); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, env, `(setq c 3)`); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"a", "c"}, env.VariableNames()); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"f"}, env.FunctionNames()); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, clone.VariableNames()); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"f", "g"}, clone.FunctionNames()); diff != "" {
		t.Fatal(diff)
	}
}

func TestEnvironmentCallEnv(t *testing.T) {
	env := NewEnvironment()
	env.MaxDepth = 42
	if _, err := run(t, env, `(setq a 1) (defn f [] "doc" (+ 1))`); err != nil {
		t.Fatal(err)
	}
	local := env.CallEnv()
	if len(local.VariableNames()) != 0 {
		t.Fatalf("got %v", local.VariableNames())
	}
	if _, ok := local.Function("f"); !ok {
		t.Fatal("expected f")
	}
	if local.MaxDepth != 42 {
		t.Fatalf("got %d", local.MaxDepth)
	}
}

func TestEnvironmentLastWriteWins(t *testing.T) {
	env := NewEnvironment()
	res, err := run(t, env, `
		(defn f [] "first" (+ 1))
		(defn f [] "second" (+ 2))
		(f)
	`)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := res.Int(); n != 2 {
		t.Fatalf("got %v", res)
	}
	def, ok := env.Function("f")
	if !ok {
		t.Fatal("expected f")
	}
	if def.DocString.Text != "second" {
		t.Fatalf("got %s", def.DocString.Text)
	}
}

func TestTableCopyOnWrite(t *testing.T) {
	var a table[int]
	a.set("x", 1)
	b := a.share()
	b.set("y", 2)
	a.set("z", 3)

	if diff := cmp.Diff([]string{"x", "z"}, a.names()); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"x", "y"}, b.names()); diff != "" {
		t.Fatal(diff)
	}

	// an unshared table writes in place
	c := b.share()
	b.set("w", 4)
	b.set("v", 5)
	if b.shared {
		t.Fatal("expected unshared after write")
	}
	if _, ok := c.get("w"); ok {
		t.Fatal("write leaked into shared copy")
	}
}
