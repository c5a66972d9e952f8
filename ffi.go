/*
File    : resl/ffi.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resl

import "github.com/akashmaji946/resl/value"

// Marshaled is the tagged-record projection of a Value for callers
// outside this module's type system (spec.md §6.1: "a tagged record
// with a tag field and a payload union"). Exactly one payload field is
// meaningful per Tag; the rest are left zero. List/Map children are
// themselves Marshaled records rather than opaque handles, since this
// module has no separate heap-allocator boundary to cross - a true C-ABI
// binding built on top of this package would walk a Marshaled tree once
// to produce its own flat, pointer-stable layout.
type Marshaled struct {
	Tag   value.Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	List  []*Marshaled
	Map   []MarshaledEntry
}

// MarshaledEntry is one key-value pair of a marshaled Map, in the
// source Map's insertion order.
type MarshaledEntry struct {
	Key   string
	Value *Marshaled
}

// Marshal projects v into a Marshaled tree. Fn values marshal to a bare
// Tag with no payload - spec.md §3.1 treats Fn as opaque to everything
// outside the evaluator, so no foreign caller needs more than to know
// one was produced.
func Marshal(v value.Value) *Marshaled {
	switch t := v.(type) {
	case value.Bool:
		return &Marshaled{Tag: value.KindBool, Bool: bool(t)}
	case value.Int:
		return &Marshaled{Tag: value.KindInt, Int: int64(t)}
	case value.Float:
		return &Marshaled{Tag: value.KindFloat, Float: float64(t)}
	case value.Str:
		return &Marshaled{Tag: value.KindStr, Str: string(t)}
	case *value.List:
		elems := make([]*Marshaled, len(t.Elems))
		for i, e := range t.Elems {
			elems[i] = Marshal(e)
		}
		return &Marshaled{Tag: value.KindList, List: elems}
	case *value.Map:
		entries := make([]MarshaledEntry, len(t.Entries))
		for i, e := range t.Entries {
			entries[i] = MarshaledEntry{Key: e.Key, Value: Marshal(e.Value)}
		}
		return &Marshaled{Tag: value.KindMap, Map: entries}
	case *value.Fn:
		return &Marshaled{Tag: value.KindFn}
	default:
		return &Marshaled{Tag: value.KindNull}
	}
}

// Dispose releases m and everything it owns. Go's garbage collector
// already reclaims this memory once it is unreachable; Dispose exists
// so the embedding contract matches the one a non-GC'd host (spec.md
// §6.1: "the caller must dispose each returned value exactly once")
// must honor, and so a future cgo/FFI boundary built on this package has
// a single place to free any non-Go-managed resources it layers on top.
// Calling Dispose on a value is safe exactly once; calling it again, or
// on a value the caller did not receive from this package, is the
// caller's bug to avoid, not this function's to detect.
func Dispose(m *Marshaled) {
	if m == nil {
		return
	}
	for _, e := range m.List {
		Dispose(e)
	}
	for _, e := range m.Map {
		Dispose(e.Value)
	}
}
