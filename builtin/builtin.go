/*
File    : resl/builtin/builtin.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtin registers RESL's native functions (spec.md §4.6),
// grounded on the teacher's std package (go-mix's std/builtins.go):
// a Func-typed callback plus a name->callback table built at package
// init. The teacher's CallbackFunc also threads a Runtime so builtins
// can call back into user closures (e.g. a custom sort comparator);
// RESL has no builtin that calls a closure, so Func only carries the
// evaluated argument list and the debug sink - keeping this package
// free of any dependency on evalr (which depends on this package for
// dispatch) or env.
package builtin

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/akashmaji946/resl/value"
)

// Func is the signature every builtin implements: the already-evaluated
// argument list, and the sink `debug` writes to. All builtins are total
// (spec.md §4.6: "wrong-arity or wrong-type calls yield Null ... rather
// than failing").
type Func func(args []value.Value, out io.Writer) value.Value

var registry = map[string]Func{
	"concat":  concat,
	"to_str":  toStr,
	"length":  length,
	"push":    push,
	"insert":  insert,
	"type_of": typeOf,
	"debug":   debug,
}

// Lookup returns the builtin registered under name, if any. A user
// binding of the same name always shadows this table (spec.md §4.5);
// evalr only calls Lookup once it has confirmed name is unbound.
func Lookup(name string) (Func, bool) {
	fn, ok := registry[name]
	return fn, ok
}

func arg(args []value.Value, i int) value.Value {
	if i < 0 || i >= len(args) {
		return value.Null
	}
	return args[i]
}

// concat concatenates only Str arguments, skipping any other kind
// (spec.md §4.6); zero strings yields "".
func concat(args []value.Value, _ io.Writer) value.Value {
	var b []byte
	for _, a := range args {
		if s, ok := a.(value.Str); ok {
			b = append(b, s...)
		}
	}
	return value.Str(b)
}

// toStr produces the canonical textual form of spec.md §4.6; value.Value
// already implements exactly this projection via CanonicalString.
func toStr(args []value.Value, _ io.Writer) value.Value {
	v := arg(args, 0)
	if v == nil {
		return value.Str("null")
	}
	return value.Str(v.CanonicalString())
}

// length returns the Unicode-scalar count for Str, element count for
// List, entry count for Map (spec.md §4.6, §9 open question 1 resolved
// in DESIGN.md as Unicode scalar count); anything else yields Null.
func length(args []value.Value, _ io.Writer) value.Value {
	switch v := arg(args, 0).(type) {
	case value.Str:
		n := 0
		for range string(v) {
			n++
		}
		return value.Int(n)
	case *value.List:
		return value.Int(len(v.Elems))
	case *value.Map:
		return value.Int(len(v.Entries))
	default:
		return value.Null
	}
}

// push appends v to the end of a List, returning a new List; a non-List
// first argument yields Null (spec.md §4.6).
func push(args []value.Value, _ io.Writer) value.Value {
	lst, ok := arg(args, 0).(*value.List)
	if !ok {
		return value.Null
	}
	v := arg(args, 1)
	next := make([]value.Value, len(lst.Elems)+1)
	copy(next, lst.Elems)
	next[len(lst.Elems)] = v
	return value.NewList(next)
}

// insert implements spec.md §4.6 / §9 open questions 2 and 3:
//   - Map: a new map with key bound to v, preserving the key's existing
//     position if already present, appended otherwise.
//   - List: a new list with v inserted before position key (negative
//     indices count from the end; out-of-range clamps to the nearest
//     endpoint).
func insert(args []value.Value, _ io.Writer) value.Value {
	coll := arg(args, 0)
	key := arg(args, 1)
	v := arg(args, 2)

	switch c := coll.(type) {
	case *value.Map:
		k, ok := key.(value.Str)
		if !ok {
			return value.Null
		}
		return c.With(string(k), v)
	case *value.List:
		idx, ok := key.(value.Int)
		if !ok {
			return value.Null
		}
		pos := clampInsertIndex(int(idx), len(c.Elems))
		next := make([]value.Value, 0, len(c.Elems)+1)
		next = append(next, c.Elems[:pos]...)
		next = append(next, v)
		next = append(next, c.Elems[pos:]...)
		return value.NewList(next)
	default:
		return value.Null
	}
}

// clampInsertIndex resolves an insert position against a list of length
// n, per the documented example `insert(numbers, -1, 5)` on [1,3,4]
// yielding [1,3,5,4] read as "insert before the last element" - so -1
// maps to n-1, -2 to n-2, and so on, clamped into [0, n].
func clampInsertIndex(idx, n int) int {
	if idx < 0 {
		idx = n + idx
	}
	if idx < 0 {
		idx = 0
	}
	if idx > n {
		idx = n
	}
	return idx
}

// typeOf returns the type_of built-in's result set (spec.md §4.6).
func typeOf(args []value.Value, _ io.Writer) value.Value {
	v := arg(args, 0)
	if v == nil {
		return value.Str("null")
	}
	return value.Str(value.TypeOf(v))
}

// debugColor marks debug() output the way the teacher's REPL marks its
// own informational lines (go-mix's repl.go: color.New(color.FgCyan)),
// reused here since both are "here is a value, unrelated to the
// program's actual result" annotations.
var debugColor = color.New(color.FgCyan)

// debug writes the canonical form of v followed by a newline to the
// sink (spec.md §6.3) and returns v unchanged. Output is colorized only
// when the sink is itself a terminal - unlike the teacher's REPL, which
// always writes to os.Stdout and lets fatih/color's own init-time isatty
// check decide, an injected io.Writer (a file, a buffer, a pipe) has no
// such global signal, so the terminal check is done against the sink
// itself via go-isatty before colorizing.
func debug(args []value.Value, out io.Writer) value.Value {
	v := arg(args, 0)
	if out != nil {
		line := v.CanonicalString()
		if f, ok := out.(interface{ Fd() uintptr }); ok && isatty.IsTerminal(f.Fd()) {
			debugColor.Fprintln(out, line)
		} else {
			fmt.Fprintln(out, line)
		}
	}
	return v
}
