package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

func TestForTest(t *testing.T) {
	dscope.New(ForTest(t)).Call(func(
		testT *testing.T,
		mode Mode,
	) {
		if testT != t {
			t.Fatal("expected the running test")
		}
		if mode != ModeDevelopment {
			t.Fatalf("got %v", mode)
		}
		if mode.Interactive() {
			t.Fatal("expected non-interactive")
		}
		if mode.String() != "development" {
			t.Fatalf("got %s", mode)
		}
	})
}
