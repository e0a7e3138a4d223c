package chain

import (
	"testing"

	"github.com/kestrel-ui/fnkit/pkg/fn"
)

type theme struct {
	Accent string
}

func suffix(tag string) fn.Step[string, theme] {
	return func(v string, _ theme) string { return v + tag }
}

func TestNew_EmptyChainIsIdentity(t *testing.T) {
	t.Parallel()

	c := New[string, theme]()
	if got := c.Run("v", theme{}); got != "v" {
		t.Fatalf("expected identity, got %q", got)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty chain, got %d entries", c.Len())
	}
}

func TestThen_AppliesInOrder(t *testing.T) {
	t.Parallel()

	got := New[string, theme]().
		Then(suffix(".a")).
		Then(suffix(".b")).
		Run("v", theme{})
	if got != "v.a.b" {
		t.Fatalf("expected 'v.a.b', got %q", got)
	}
}

func TestWhen_FalseAppendsSkippedEntry(t *testing.T) {
	t.Parallel()

	c := New[string, theme]().
		Then(suffix(".a")).
		When(false, suffix(".never")).
		When(true, suffix(".b"))

	if got := c.Run("v", theme{}); got != "v.a.b" {
		t.Fatalf("expected disabled step to be skipped, got %q", got)
	}
	// the disabled step still occupies a slot, as a nil entry
	if c.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", c.Len())
	}
}

func TestGroup_RunsAsNestedFlow(t *testing.T) {
	t.Parallel()

	got := New[string, theme]().
		Then(suffix(".a")).
		Group(suffix(".b"), suffix(".c")).
		Then(suffix(".d")).
		Run("v", theme{})
	if got != "v.a.b.c.d" {
		t.Fatalf("expected 'v.a.b.c.d', got %q", got)
	}
}

func TestTee_ObservesEnv(t *testing.T) {
	t.Parallel()

	env := theme{Accent: "teal"}
	var seen theme

	got := New[string, theme]().
		Then(suffix(".a")).
		Tee(func(_ string, e theme) { seen = e }).
		Run("v", env)
	if got != "v.a" {
		t.Fatalf("expected tee to leave value unchanged, got %q", got)
	}
	if seen != env {
		t.Fatalf("expected tee to receive env %+v, got %+v", env, seen)
	}
}

func TestChain_BranchesAreIndependent(t *testing.T) {
	t.Parallel()

	base := New[string, theme]().Then(suffix(".a"))
	left := base.Then(suffix(".left"))
	right := base.Then(suffix(".right"))

	if got := left.Run("v", theme{}); got != "v.a.left" {
		t.Fatalf("left branch gave %q", got)
	}
	if got := right.Run("v", theme{}); got != "v.a.right" {
		t.Fatalf("right branch gave %q", got)
	}
	if got := base.Run("v", theme{}); got != "v.a" {
		t.Fatalf("base chain changed after branching: %q", got)
	}
}

func TestBuild_EquivalentToFlowOverEntries(t *testing.T) {
	t.Parallel()

	c := From[string, theme](suffix(".a"), suffix(".b")).
		Label("last", suffix(".c"))

	built := c.Build()("v", theme{})
	flowed := fn.Flow(c.Entries()...)("v", theme{})
	if built != flowed {
		t.Fatalf("Build gave %q, Flow over Entries gave %q", built, flowed)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	t.Parallel()

	c := New[string, theme]().Then(suffix(".a")).Then(suffix(".b"))
	entries := c.Entries()
	entries[0] = nil

	if got := c.Run("v", theme{}); got != "v.a.b" {
		t.Fatalf("mutating the returned slice changed the chain: %q", got)
	}
}
