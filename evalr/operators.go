/*
File    : resl/evalr/operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package evalr

import (
	"strings"

	"github.com/akashmaji946/resl/ast"
	"github.com/akashmaji946/resl/value"
)

// evalBinary implements spec.md §4.4.2's non-short-circuit operators.
// And/Or are handled by visitor.VisitBinary directly, since they need
// to suppress evaluation of the right operand rather than receive an
// already-evaluated one.
func evalBinary(op ast.BinaryOp, left, right value.Value) value.Value {
	switch op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Mod:
		return evalArith(op, left, right)
	case ast.Eq:
		return value.Bool(value.Equal(left, right))
	case ast.Ne:
		return value.Bool(!value.Equal(left, right))
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return evalOrder(op, left, right)
	default:
		return value.Null
	}
}

// evalArith widens Int/Float per spec.md §4.4.2: both Int keeps Int;
// either Float widens the other; Str+Str concatenates; anything else
// yields Null. Division and modulus by zero yield Null for both Int and
// Float operands, in place of Go's integer divide-by-zero panic and its
// float Inf/NaN results.
func evalArith(op ast.BinaryOp, left, right value.Value) value.Value {
	if op == ast.Add {
		if ls, ok := left.(value.Str); ok {
			if rs, ok := right.(value.Str); ok {
				return value.Str(string(ls) + string(rs))
			}
		}
	}

	li, lIsInt := left.(value.Int)
	ri, rIsInt := right.(value.Int)
	if lIsInt && rIsInt {
		return intArith(op, li, ri)
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return value.Null
	}
	return floatArith(op, lf, rf)
}

func asFloat(v value.Value) (value.Float, bool) {
	switch t := v.(type) {
	case value.Int:
		return value.Float(t), true
	case value.Float:
		return t, true
	default:
		return 0, false
	}
}

// intArith implements truncating division and dividend-signed modulus
// for Int (spec.md §4.4.2: "integer / truncates toward zero; % has the
// sign of the dividend"), which matches Go's own / and % for int64, so
// only the divide-by-zero guard needs to be added.
func intArith(op ast.BinaryOp, l, r value.Int) value.Value {
	switch op {
	case ast.Add:
		return l + r
	case ast.Sub:
		return l - r
	case ast.Mul:
		return l * r
	case ast.Div:
		if r == 0 {
			return value.Null
		}
		return l / r
	case ast.Mod:
		if r == 0 {
			return value.Null
		}
		return l % r
	default:
		return value.Null
	}
}

func floatArith(op ast.BinaryOp, l, r value.Float) value.Value {
	switch op {
	case ast.Add:
		return l + r
	case ast.Sub:
		return l - r
	case ast.Mul:
		return l * r
	case ast.Div:
		if r == 0 {
			return value.Null
		}
		return l / r
	case ast.Mod:
		if r == 0 {
			return value.Null
		}
		return value.Float(fmod(float64(l), float64(r)))
	default:
		return value.Null
	}
}

// fmod computes the float remainder with the sign of the dividend, the
// same convention spec.md §4.4.2 mandates for integer %.
func fmod(l, r float64) float64 {
	q := float64(int64(l / r))
	return l - q*r
}

// evalOrder implements `< <= > >=` for Int/Int, Float/Float, mixed
// Int/Float (numeric), and Str/Str (lexicographic); anything else
// yields Null, not false (spec.md §4.4.2).
func evalOrder(op ast.BinaryOp, left, right value.Value) value.Value {
	if ls, ok := left.(value.Str); ok {
		if rs, ok := right.(value.Str); ok {
			return value.Bool(compareOrder(op, strings.Compare(string(ls), string(rs))))
		}
		return value.Null
	}

	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return value.Null
	}
	switch {
	case lf < rf:
		return value.Bool(compareOrder(op, -1))
	case lf > rf:
		return value.Bool(compareOrder(op, 1))
	default:
		return value.Bool(compareOrder(op, 0))
	}
}

func compareOrder(op ast.BinaryOp, cmp int) bool {
	switch op {
	case ast.Lt:
		return cmp < 0
	case ast.Le:
		return cmp <= 0
	case ast.Gt:
		return cmp > 0
	case ast.Ge:
		return cmp >= 0
	default:
		return false
	}
}

// evalIndex implements spec.md §4.4.3's `a[b]`.
func evalIndex(target, key value.Value) value.Value {
	switch t := target.(type) {
	case *value.List:
		i, ok := key.(value.Int)
		if !ok {
			return value.Null
		}
		idx := resolveIndex(int(i), len(t.Elems))
		if idx < 0 || idx >= len(t.Elems) {
			return value.Null
		}
		return t.Elems[idx]
	case *value.Map:
		k, ok := key.(value.Str)
		if !ok {
			return value.Null
		}
		v, present := t.Get(string(k))
		if !present {
			return value.Null
		}
		return v
	case value.Str:
		i, ok := key.(value.Int)
		if !ok {
			return value.Null
		}
		runes := []rune(string(t))
		idx := resolveIndex(int(i), len(runes))
		if idx < 0 || idx >= len(runes) {
			return value.Null
		}
		return value.Str(string(runes[idx]))
	default:
		return value.Null
	}
}

// resolveIndex turns a possibly-negative index into a 0-based offset,
// per spec.md §4.4.3 ("-1 = last").
func resolveIndex(i, length int) int {
	if i < 0 {
		return length + i
	}
	return i
}

// evalSlice implements spec.md §4.4.3's `a[start:end]` for List and Str;
// Map slicing yields Null. start/end are nil when omitted.
func evalSlice(target, start, end value.Value) value.Value {
	switch t := target.(type) {
	case *value.List:
		s, e := resolveBounds(start, end, len(t.Elems))
		return value.NewList(append([]value.Value(nil), t.Elems[s:e]...))
	case value.Str:
		runes := []rune(string(t))
		s, e := resolveBounds(start, end, len(runes))
		return value.Str(string(runes[s:e]))
	default:
		return value.Null
	}
}

// resolveBounds clamps start/end into [0, length] after resolving
// negative offsets, yielding an empty range when start > end after
// clamping (spec.md §4.4.3).
func resolveBounds(start, end value.Value, length int) (int, int) {
	s := 0
	if start != nil {
		if si, ok := start.(value.Int); ok {
			s = resolveIndex(int(si), length)
		}
	}
	e := length
	if end != nil {
		if ei, ok := end.(value.Int); ok {
			e = resolveIndex(int(ei), length)
		}
	}
	s = clamp(s, 0, length)
	e = clamp(e, 0, length)
	if s > e {
		s = e
	}
	return s, e
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
