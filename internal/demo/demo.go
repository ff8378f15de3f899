// Package demo provides the divide-reduce subject wrapped by the guarddemo
// command and the chain tests: it folds a sequence left-to-right by division
// and raises a distinct fault category per failure mode.
package demo

import (
	"fmt"

	xgxguard "github.com/xgx-io/xgx-guard"
)

// DivReduce folds [a, b, c, ...] into a/b/c/... It expects exactly one
// argument: the sequence to reduce.
//
// Fault taxonomy:
//   - non-sequence input (or wrong arity) → CategoryValue
//   - non-numeric element → CategoryTypeMismatch
//   - zero divisor → CategoryDivisionByZero
//
// DivReduce satisfies xgxguard.Func and is meant to be wrapped by guards; it
// performs no handling of its own.
func DivReduce(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, xgxguard.BadValue(fmt.Sprintf("want exactly one sequence argument, got %d", len(args)))
	}
	seq, ok := args[0].([]any)
	if !ok {
		return nil, xgxguard.BadValue(fmt.Sprintf("cannot iterate over %T", args[0]))
	}
	if len(seq) == 0 {
		return nil, xgxguard.BadValue("cannot reduce an empty sequence")
	}

	acc, err := toFloat(seq[0])
	if err != nil {
		return nil, err
	}
	for _, v := range seq[1:] {
		d, err := toFloat(v)
		if err != nil {
			return nil, err
		}
		if d == 0 {
			return nil, xgxguard.DivisionByZero(acc)
		}
		acc /= d
	}
	return acc, nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, xgxguard.TypeMismatch("number", v)
	}
}

var _ xgxguard.Func = DivReduce
