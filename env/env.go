/*
File    : resl/env/env.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package env implements RESL's lexical scope chain (spec.md §3.3): each
// Env has an optional parent and an append-only mapping from name to
// value. It is grounded on the teacher's scope.Scope (go-mix's
// scope/scope.go) - a Variables map plus a Parent pointer, a parent-ward
// LookUp, a current-scope-only Bind - but drops everything the teacher's
// Scope carries for its imperative language (Consts, LetVars, LetTypes,
// Assign-into-ancestor, Copy) since RESL has no mutation and no
// redeclaration keywords: every RESL binding is the same append-only
// kind, and Bind only ever writes into the Env it is called on, never
// an ancestor's.
package env

import "github.com/akashmaji946/resl/value"

// Env is one frame of the scope chain.
type Env struct {
	vars   map[string]value.Value
	parent *Env
}

// New creates a root Env with no parent.
func New() *Env {
	return &Env{vars: make(map[string]value.Value)}
}

// Child creates a new Env whose parent is e. Block entry and function
// calls each open a child (spec.md §3.3, §4.4.1, §4.4.6).
func (e *Env) Child() *Env {
	return &Env{vars: make(map[string]value.Value), parent: e}
}

// Lookup resolves name against this Env and, failing that, each
// ancestor in turn, implementing the scope chain's inner-to-outer
// search order (spec.md §3.3).
//
// Parameters:
//   - name: the identifier being referenced.
//
// Returns:
//   - value.Value: the bound value from the nearest enclosing Env that
//     has one, or value.Null if no Env in the chain binds name. A name
//     unresolved anywhere in the chain yields Null rather than an error
//     or a (value, bool) pair - callers never need to branch on absence
//     (spec.md §4.5: unresolved references are total, not exceptional).
//     Has exists for the one caller that must tell that case apart from
//     a name explicitly bound to Null.
func (e *Env) Lookup(name string) value.Value {
	for cur := e; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v
		}
	}
	return value.Null
}

// Has reports whether name is bound anywhere in the chain, distinct from
// Lookup returning Null - a name explicitly bound to Null (spec.md §4.5:
// any Value, including Null, can be bound) must still read as present,
// which comparing Lookup's result against value.Null cannot tell apart
// from an unresolved name. Callers that need to decide whether a name is
// a user binding at all (e.g. whether a builtin name is shadowed,
// spec.md §4.4.6) must use Has, not a Lookup/Null comparison.
func (e *Env) Has(name string) bool {
	for cur := e; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			return true
		}
	}
	return false
}

// Bind attaches name to val in this Env only (spec.md §3.3: "new
// bindings always attach to the innermost scope"). Re-binding a name
// already present in this same Env overwrites its slot in place; it
// never touches a binding of the same name in an ancestor Env, which
// instead becomes shadowed for lookups rooted here.
func (e *Env) Bind(name string, val value.Value) {
	e.vars[name] = val
}
