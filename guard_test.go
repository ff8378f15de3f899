// guard_test.go — verification of single-layer guard semantics.
package xgxguard

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func target(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "diag.txt")
}

func TestGuard_PassThroughOnSuccess(t *testing.T) {
	t.Parallel()

	path := target(t)
	h := NewHandler("fallback", path)
	tr, err := h.Guard(Categories(CategoryAny))
	if err != nil {
		t.Fatalf("Guard: %v", err)
	}

	g := tr(Func(func(args ...any) (any, error) {
		return args[0], nil
	}))

	res, err := g.Call("payload")
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if res != "payload" {
		t.Fatalf("result: %v", res)
	}
	// Success path must not touch the diagnostic target.
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("diagnostic target written on success")
	}
}

func TestGuard_MatchedFaultHandled(t *testing.T) {
	t.Parallel()

	path := target(t)
	h := NewHandler("zero fallback", path)
	tr, err := h.Guard(Categories(CategoryDivisionByZero))
	if err != nil {
		t.Fatalf("Guard: %v", err)
	}

	g := tr(Func(func(args ...any) (any, error) {
		return nil, DivisionByZero(7)
	}))

	res, err := g.Call()
	if err != nil {
		t.Fatalf("handled call returned error: %v", err)
	}
	if res != "zero fallback" {
		t.Fatalf("result: %v", res)
	}

	b, rerr := os.ReadFile(path)
	if rerr != nil {
		t.Fatalf("diagnostic not written: %v", rerr)
	}
	if len(b) == 0 || !strings.Contains(string(b), "division_by_zero") {
		t.Fatalf("record should name the category:\n%s", b)
	}
}

func TestGuard_UnmatchedFaultPropagates(t *testing.T) {
	t.Parallel()

	path := target(t)
	h := NewHandler("fallback", path)
	tr, err := h.Guard(Categories(CategoryTypeMismatch))
	if err != nil {
		t.Fatalf("Guard: %v", err)
	}

	raised := DivisionByZero(1)
	g := tr(Func(func(args ...any) (any, error) {
		return nil, raised
	}))

	res, err := g.Call()
	if res != nil {
		t.Fatalf("result should be nil on propagation, got %v", res)
	}
	if !errors.Is(err, raised) {
		t.Fatalf("original error must surface unchanged, got %v", err)
	}
	if _, serr := os.Stat(path); !errors.Is(serr, os.ErrNotExist) {
		t.Fatal("diagnostic target written for an unmatched error")
	}
}

func TestGuard_ForeignErrorMatchesInternalAndAny(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain failure")

	t.Run("internal set claims it", func(t *testing.T) {
		path := target(t)
		h := NewHandler("internal fallback", path)
		tr, _ := h.Guard(Categories(CategoryInternal))
		g := tr(Func(func(args ...any) (any, error) { return nil, plain }))

		res, err := g.Call()
		if err != nil || res != "internal fallback" {
			t.Fatalf("res=%v err=%v", res, err)
		}
		b, _ := os.ReadFile(path)
		if !strings.Contains(string(b), "plain failure") {
			t.Fatalf("record should carry the original text:\n%s", b)
		}
	})

	t.Run("wildcard claims it", func(t *testing.T) {
		path := target(t)
		h := NewHandler("any fallback", path)
		tr, _ := h.Guard(Categories(CategoryAny))
		g := tr(Func(func(args ...any) (any, error) { return nil, plain }))

		res, err := g.Call()
		if err != nil || res != "any fallback" {
			t.Fatalf("res=%v err=%v", res, err)
		}
	})
}

func TestGuard_PanicRecoveredAsDefect(t *testing.T) {
	t.Parallel()

	t.Run("claimed by a defect set", func(t *testing.T) {
		path := target(t)
		h := NewHandler("defect fallback", path)
		tr, _ := h.Guard(Categories(CategoryDefect))
		g := tr(Func(func(args ...any) (any, error) {
			panic("boom")
		}))

		res, err := g.Call()
		if err != nil || res != "defect fallback" {
			t.Fatalf("res=%v err=%v", res, err)
		}
		b, _ := os.ReadFile(path)
		if !strings.Contains(string(b), "defect") || !strings.Contains(string(b), "boom") {
			t.Fatalf("record should carry the panic:\n%s", b)
		}
	})

	t.Run("propagates as a defect fault when unmatched", func(t *testing.T) {
		h := NewHandler("fallback", target(t))
		tr, _ := h.Guard(Categories(CategoryTypeMismatch))
		g := tr(Func(func(args ...any) (any, error) {
			panic(errors.New("bug"))
		}))

		_, err := g.Call()
		if !IsDefect(err) {
			t.Fatalf("expected a defect, got %v", err)
		}
	})
}

func TestGuard_DiagnosticWriteFailureChainsBoth(t *testing.T) {
	t.Parallel()

	// Parent directory missing → the write cannot create the target.
	path := filepath.Join(t.TempDir(), "missing", "diag.txt")
	h := NewHandler("fallback", path)
	tr, _ := h.Guard(Categories(CategoryDivisionByZero))

	raised := DivisionByZero(3)
	g := tr(Func(func(args ...any) (any, error) { return nil, raised }))

	res, err := g.Call()
	if err == nil {
		t.Fatal("write failure must propagate")
	}
	if res != nil {
		t.Fatalf("no fallback on write failure, got %v", res)
	}
	// Both branches reachable: the original fault and the filesystem error.
	if !errors.Is(err, raised) {
		t.Fatalf("original fault unreachable: %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("write failure unreachable: %v", err)
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	base := Func(func(args ...any) (any, error) { return "base", nil })

	t.Run("no transformers returns target", func(t *testing.T) {
		if got := Compose(base); got == nil {
			t.Fatal("nil callable")
		} else if res, _ := got.Call(); res != "base" {
			t.Fatalf("res=%v", res)
		}
	})

	t.Run("nil transformers skipped", func(t *testing.T) {
		h := NewHandler("f", target(t))
		tr, _ := h.Guard(Categories(CategoryAny))
		g := Compose(base, nil, tr, nil)
		if _, ok := g.(*Guard); !ok {
			t.Fatalf("expected a single guard layer, got %T", g)
		}
	})

	t.Run("first transformer is innermost", func(t *testing.T) {
		h := NewHandler("f", target(t))
		inner, _ := h.Guard(Categories(CategoryValue))
		outer, _ := h.Guard(Categories(CategoryAny))
		g := Compose(base, inner, outer).(*Guard)
		if !g.Categories().Contains(CategoryAny) {
			t.Fatal("outermost layer should be the last transformer")
		}
		in := g.next.(*Guard)
		if in.Categories().Contains(CategoryAny) || !in.Categories().Contains(CategoryValue) {
			t.Fatal("innermost layer should be the first transformer")
		}
	})
}
