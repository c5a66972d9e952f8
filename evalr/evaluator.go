/*
File    : resl/evalr/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package evalr implements RESL's tree-walking evaluator (spec.md §4.4):
// `eval(expr, env) -> Value`, total over any AST the parser accepted.
// The Evaluator struct and its injectable debug Writer are grounded on
// the teacher's eval.Evaluator (go-mix's eval/evaluator.go), which
// itself carries a Writer field consumed by a `print`-style builtin;
// here it backs the `debug` builtin of spec.md §4.6/§6.3 instead.
//
// Dispatch uses ast.Visitor rather than the teacher's type switch in
// Eval (go-mix's eval/eval_expressions.go) - RESL's AST is closed and
// small, and implementing ast.Visitor keeps format and evalr from
// duplicating a parallel type switch each time a node kind is added.
package evalr

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"

	"github.com/akashmaji946/resl/ast"
	"github.com/akashmaji946/resl/builtin"
	"github.com/akashmaji946/resl/env"
	"github.com/akashmaji946/resl/value"
)

// Evaluator walks an AST against an Env, producing a Value. It carries
// no other mutable state: every recursive call threads its own Env
// explicitly, so an Evaluator is safe to reuse across independent Eval
// calls (spec.md §5: distinct invocations are independent).
type Evaluator struct {
	// Debug is the sink `debug(v)` writes to (spec.md §6.3). Defaults to
	// os.Stdout; an embedder may inject any io.Writer.
	Debug io.Writer
}

// New creates an Evaluator whose debug sink defaults to standard output,
// wrapped with go-colorable so the ANSI codes builtin.debug's isatty
// check emits render correctly on a Windows console too (the same
// combination go-mix's REPL gets for free by routing everything through
// fatih/color's own os.Stdout, which wraps itself this way at init).
func New() *Evaluator {
	return &Evaluator{Debug: colorable.NewColorable(os.Stdout)}
}

// SetDebugWriter overrides the debug sink.
func (e *Evaluator) SetDebugWriter(w io.Writer) {
	e.Debug = w
}

// Eval evaluates n in env e, returning its Value. It never panics or
// returns an error for a well-formed AST (spec.md §4.4: "total function,
// never raises after parsing succeeds").
func (e *Evaluator) Eval(n ast.Node, en *env.Env) value.Value {
	v := visitor{e: e, env: en}
	return n.Accept(v).(value.Value)
}

// visitor adapts a (*Evaluator, *env.Env) pair to ast.Visitor. A fresh
// visitor is built per recursive descent into a child Env rather than
// mutating a shared one in place, which keeps Eval reentrant and avoids
// an extra field to save/restore around every nested call - unlike the
// teacher's Evaluator, which swaps e.Scp in place and always restores it
// (go-mix's evalForeachLoop), RESL's Eval never leaves a stale Env
// behind because each nested Eval call owns its own visitor value.
type visitor struct {
	e   *Evaluator
	env *env.Env
}

func (v visitor) eval(n ast.Node) value.Value {
	return v.e.Eval(n, v.env)
}

func (v visitor) withEnv(en *env.Env) visitor {
	return visitor{e: v.e, env: en}
}

func (v visitor) VisitLitNull(*ast.LitNull) any { return value.Null }

func (v visitor) VisitLitBool(n *ast.LitBool) any { return value.Bool(n.Value) }

func (v visitor) VisitLitInt(n *ast.LitInt) any { return value.Int(n.Value) }

func (v visitor) VisitLitFloat(n *ast.LitFloat) any { return value.Float(n.Value) }

func (v visitor) VisitLitStr(n *ast.LitStr) any { return value.Str(n.Value) }

// VisitIdent resolves a name against the Env chain, yielding Null on a
// miss (spec.md §4.5). A bare reference to a builtin's name (not a call)
// is just another unresolved identifier - builtins only dispatch from
// Call's callee position (spec.md §4.4.6) - so no registry lookup
// happens here.
func (v visitor) VisitIdent(n *ast.Ident) any {
	return v.env.Lookup(n.Name)
}

func (v visitor) VisitList(n *ast.List) any {
	elems := make([]value.Value, len(n.Elems))
	for i, el := range n.Elems {
		elems[i] = v.eval(el)
	}
	return value.NewList(elems)
}

// VisitMap evaluates each key/value pair left-to-right (spec.md §5).
// A key that does not evaluate to a Str is skipped silently rather than
// raising (spec.md §9 open question 5, resolved in DESIGN.md).
func (v visitor) VisitMap(n *ast.Map) any {
	var entries []value.MapEntry
	for _, entry := range n.Entries {
		keyVal := v.eval(entry.Key)
		key, ok := keyVal.(value.Str)
		if !ok {
			continue
		}
		entries = append(entries, value.MapEntry{Key: string(key), Value: v.eval(entry.Value)})
	}
	return value.NewMap(entries)
}

func (v visitor) VisitUnary(n *ast.Unary) any {
	operand := v.eval(n.Operand)
	switch n.Op {
	case ast.Neg:
		switch o := operand.(type) {
		case value.Int:
			return -o
		case value.Float:
			return -o
		default:
			return value.Null
		}
	case ast.Not:
		return value.Bool(!value.Truthy(operand))
	default:
		return value.Null
	}
}

func (v visitor) VisitBinary(n *ast.Binary) any {
	switch n.Op {
	case ast.And:
		left := v.eval(n.Left)
		if !value.Truthy(left) {
			return left
		}
		return v.eval(n.Right)
	case ast.Or:
		left := v.eval(n.Left)
		if value.Truthy(left) {
			return left
		}
		return v.eval(n.Right)
	}

	left := v.eval(n.Left)
	right := v.eval(n.Right)
	return evalBinary(n.Op, left, right)
}

func (v visitor) VisitIndex(n *ast.Index) any {
	target := v.eval(n.Target)
	key := v.eval(n.Key)
	return evalIndex(target, key)
}

func (v visitor) VisitSlice(n *ast.Slice) any {
	target := v.eval(n.Target)
	var start, end value.Value
	if n.Start != nil {
		start = v.eval(n.Start)
	}
	if n.End != nil {
		end = v.eval(n.End)
	}
	return evalSlice(target, start, end)
}

func (v visitor) VisitCall(n *ast.Call) any {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		args[i] = v.eval(a)
	}

	// Resolve the callee: an Ident with no user binding at all (not
	// merely one resolving to Null - v.env.Has, not a Lookup/Null
	// comparison, since a name explicitly bound to Null must still shadow
	// a builtin of the same name) that names a builtin dispatches
	// natively; everything else evaluates normally and, if a Fn, is
	// invoked as a closure (spec.md §4.4.6, §4.5).
	if id, ok := n.Callee.(*ast.Ident); ok {
		if !v.env.Has(id.Name) {
			if fn, ok := builtin.Lookup(id.Name); ok {
				return fn(args, v.e.Debug)
			}
		}
	}

	callee := v.eval(n.Callee)
	fn, ok := callee.(*value.Fn)
	if !ok {
		return value.Null
	}
	return v.e.callClosure(fn, args)
}

// callClosure binds args to fn's parameters in a fresh child of fn's
// captured Env and evaluates its body there (spec.md §4.4.1, §4.4.6).
// Extra args are discarded; missing params bind to Null.
func (e *Evaluator) callClosure(fn *value.Fn, args []value.Value) value.Value {
	captured, _ := fn.Env.(*env.Env)
	callEnv := captured.Child()
	for i, name := range fn.Params {
		if i < len(args) {
			callEnv.Bind(name, args[i])
		} else {
			callEnv.Bind(name, value.Null)
		}
	}
	body, _ := fn.Body.(ast.Node)
	return e.Eval(body, callEnv)
}

func (v visitor) VisitLambda(n *ast.Lambda) any {
	return &value.Fn{Params: n.Params, Body: n.Body, Env: v.env}
}

func (v visitor) VisitCond(n *ast.Cond) any {
	if value.Truthy(v.eval(n.Cond)) {
		return v.eval(n.Then)
	}
	return v.eval(n.Else)
}

// VisitForEach implements the `>` comprehension (spec.md §4.4.4). A
// shared loopEnv mirrors the teacher's per-loop scope (go-mix's
// evalForeachLoop creates one scope.NewScope for the whole loop, then a
// fresh child per iteration); here the per-iteration child is built
// directly off the source Env rather than off a standing loopEnv, since
// RESL's comprehension never needs to see bindings introduced mid-loop
// by earlier iterations (each iteration is independent, spec.md §4.4.4).
func (v visitor) VisitForEach(n *ast.ForEach) any {
	src := v.eval(n.Src)
	switch s := src.(type) {
	case *value.List:
		out := make([]value.Value, len(s.Elems))
		for i, elem := range s.Elems {
			iterEnv := v.env.Child()
			iterEnv.Bind(n.NameA, value.Int(i))
			iterEnv.Bind(n.NameB, elem)
			out[i] = v.withEnv(iterEnv).eval(n.Body)
		}
		return value.NewList(out)
	case *value.Map:
		out := make([]value.Value, len(s.Entries))
		for i, entry := range s.Entries {
			iterEnv := v.env.Child()
			iterEnv.Bind(n.NameA, value.Str(entry.Key))
			iterEnv.Bind(n.NameB, entry.Value)
			out[i] = v.withEnv(iterEnv).eval(n.Body)
		}
		return value.NewList(out)
	default:
		return value.Null
	}
}

// VisitBlock implements spec.md §4.4.1: a fresh child Env, bindings
// evaluated and inserted one at a time so later bindings and the tail
// see earlier ones, then the tail evaluated in the innermost Env. A
// name bound a second time in the same block goes into a new child Env
// that shadows the first binding, so a closure created before the
// rebind keeps seeing the value that was visible when it was created.
func (v visitor) VisitBlock(n *ast.Block) any {
	blockEnv := v.env.Child()
	bound := make(map[string]bool, len(n.Binds))
	for _, b := range n.Binds {
		val := v.withEnv(blockEnv).eval(b.Value)
		if bound[b.Name] {
			blockEnv = blockEnv.Child()
		}
		bound[b.Name] = true
		blockEnv.Bind(b.Name, val)
	}
	return v.withEnv(blockEnv).eval(n.Tail)
}
