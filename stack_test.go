// stack_test.go — verification of stack capture bounds and skip accounting.
package xgxguard

import (
	"strings"
	"testing"
)

func TestCaptureStack_FirstFrameIsCaller(t *testing.T) {
	t.Parallel()

	stk := captureStackDefault(0)
	if len(stk) == 0 {
		t.Fatal("expected frames")
	}
	if !strings.Contains(stk[0].Function, "TestCaptureStack_FirstFrameIsCaller") {
		t.Fatalf("first frame should be the caller, got %s", stk[0].Function)
	}
	if stk[0].File == "" || stk[0].Line <= 0 {
		t.Fatalf("frame missing location: %+v", stk[0])
	}
}

func TestCaptureStack_SkipAdvancesFrames(t *testing.T) {
	t.Parallel()

	// skip=1 from inside a helper lands on the helper's caller.
	stk := captureViaHelper()
	if len(stk) == 0 {
		t.Fatal("expected frames")
	}
	if strings.Contains(stk[0].Function, "captureViaHelper") {
		t.Fatalf("helper frame should be skipped, got %s", stk[0].Function)
	}
	if !strings.Contains(stk[0].Function, "TestCaptureStack_SkipAdvancesFrames") {
		t.Fatalf("first frame should be this test, got %s", stk[0].Function)
	}
}

//go:noinline
func captureViaHelper() Stack {
	return captureStackDefault(1)
}

func TestCaptureStack_DepthBounded(t *testing.T) {
	t.Parallel()

	stk := deepCapture(defaultMaxDepth * 2)
	if len(stk) == 0 {
		t.Fatal("expected frames")
	}
	if len(stk) > defaultMaxDepth {
		t.Fatalf("depth %d exceeds bound %d", len(stk), defaultMaxDepth)
	}
}

//go:noinline
func deepCapture(n int) Stack {
	if n <= 0 {
		return captureStackDefault(0)
	}
	return deepCapture(n - 1)
}

func TestCaptureStack_NonPositiveDepthUsesDefault(t *testing.T) {
	t.Parallel()

	if stk := captureStack(0, 0); len(stk) == 0 {
		t.Fatal("expected frames with defaulted depth")
	}
}
