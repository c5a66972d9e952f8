/*
File    : resl/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value defines the immutable tagged-sum runtime value of RESL
// (spec.md §3.1): Null, Bool, Int, Float, Str, List, Map, Fn. It mirrors
// the shape of the teacher's objects.GoMixObject hierarchy (go-mix's
// objects/objects.go) - one concrete type per tag, a common interface for
// type identification and textual form - but drops every tag the
// teacher carries that RESL has no use for (Error, ReturnValue, Range,
// Set, Tuple, Break, Continue), since RESL's evaluator never raises and
// has no loop-control flow to signal.
package value

import (
	"strconv"
	"strings"
)

// Kind identifies the tag of a Value, used by type_of and by operator
// dispatch that needs to branch on runtime type.
type Kind string

const (
	KindNull  Kind = "null"
	KindBool  Kind = "boolean"
	KindInt   Kind = "integer"
	KindFloat Kind = "float"
	KindStr   Kind = "string"
	KindList  Kind = "list"
	KindMap   Kind = "map"
	KindFn    Kind = "function"
)

// Value is the interface every RESL runtime value implements. Unlike the
// teacher's GoMixObject, there is no ToObject debug-inspection method -
// RESL has exactly one textual projection, to_str's canonical form
// (spec.md §4.6), produced by CanonicalString.
type Value interface {
	Kind() Kind
	// CanonicalString returns the to_str projection of the value
	// (spec.md §4.6): the form built-ins and the debug sink use.
	CanonicalString() string
}

// Null is RESL's singleton absent value. Every instance compares equal
// to every other instance (spec.md §3.1: "identity under equality with
// itself only").
type nullValue struct{}

func (nullValue) Kind() Kind               { return KindNull }
func (nullValue) CanonicalString() string { return "null" }

// Null is the single Null value; evaluator code compares against this
// directly rather than type-asserting.
var Null Value = nullValue{}

// Bool wraps a boolean.
type Bool bool

func (b Bool) Kind() Kind               { return KindBool }
func (b Bool) CanonicalString() string { return strconv.FormatBool(bool(b)) }

// Int wraps a 64-bit signed integer.
type Int int64

func (i Int) Kind() Kind               { return KindInt }
func (i Int) CanonicalString() string { return strconv.FormatInt(int64(i), 10) }

// Float wraps an IEEE-754 double. CanonicalString produces the shortest
// round-trippable decimal with a mandatory decimal point (spec.md §4.6,
// §9 open question 4: "pick a shortest round-trip representation and
// freeze it"). FormatFloat does the actual work; it is shared with
// package format so a value's to_str projection and its source-text
// rendering never disagree.
type Float float64

func (f Float) Kind() Kind { return KindFloat }

func (f Float) CanonicalString() string { return FormatFloat(float64(f)) }

// FormatFloat renders f as decimal text with a mandatory "." and no
// exponent: the lexer (spec.md §4.1) only ever produces FLOAT tokens
// from a digit run, a ".", and another digit run, so anything format
// emits must stay within that shape to remain re-parseable. 'f' with
// precision -1 is Go's shortest-round-trip formatter restricted to
// fixed-point notation; a trailing ".0" is appended when the result has
// no fractional part, since to_str and format both require the "." to
// always be present to keep Float output distinguishable from Int.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Str wraps UTF-8 text.
type Str string

func (s Str) Kind() Kind               { return KindStr }
func (s Str) CanonicalString() string { return string(s) }

// List is an ordered, immutable sequence of values (spec.md §3.1).
// Operations that "modify" a list (push, insert, ForEach) always build
// and return a new List; Elems is never mutated after construction.
type List struct {
	Elems []Value
}

func NewList(elems []Value) *List { return &List{Elems: elems} }

func (l *List) Kind() Kind { return KindList }

func (l *List) CanonicalString() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.Elems {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(elemCanonical(e))
	}
	b.WriteByte(']')
	return b.String()
}

// MapEntry is one key-value pair of a Map, in insertion order.
type MapEntry struct {
	Key   string
	Value Value
}

// Map is an insertion-ordered, immutable mapping from string keys to
// values (spec.md §3.1). Like List, every "mutating" built-in returns a
// new Map; Entries is never mutated after construction. index is an
// auxiliary lookup table built alongside Entries so Index/Assign-style
// lookups do not need a linear scan.
type Map struct {
	Entries []MapEntry
	index   map[string]int
}

// NewMap builds a Map from ordered entries, applying "last write wins"
// for duplicate keys encountered in literal or built-in construction
// (spec.md §3.1) while preserving the position of the first occurrence
// (spec.md §9 open question 3: push/insert onto an existing key
// preserves its original position rather than moving it to the end).
//
// Parameters:
//   - entries: key-value pairs in the order they should be considered,
//     e.g. the order they appear in a map literal or are passed to a
//     built-in that constructs a Map.
//
// Returns:
//   - *Map: an insertion-ordered Map with one entry per distinct key; a
//     later entry for a key already seen overwrites that key's value in
//     place rather than appending a second entry.
func NewMap(entries []MapEntry) *Map {
	m := &Map{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		m.put(e.Key, e.Value)
	}
	return m
}

func (m *Map) put(key string, val Value) {
	if i, ok := m.index[key]; ok {
		m.Entries[i].Value = val
		return
	}
	m.index[key] = len(m.Entries)
	m.Entries = append(m.Entries, MapEntry{Key: key, Value: val})
}

// Get returns the value bound to key, and whether key is present.
func (m *Map) Get(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.Entries[i].Value, true
}

// With returns a new Map with key bound to val, preserving key's
// original position if it was already present (spec.md §9 open
// question 3), otherwise appending it.
func (m *Map) With(key string, val Value) *Map {
	next := make([]MapEntry, len(m.Entries))
	copy(next, m.Entries)
	nm := &Map{Entries: next, index: make(map[string]int, len(m.index))}
	for k, v := range m.index {
		nm.index[k] = v
	}
	nm.put(key, val)
	return nm
}

func (m *Map) Kind() Kind { return KindMap }

func (m *Map) CanonicalString() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range m.Entries {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(QuoteString(e.Key))
		b.WriteByte(':')
		b.WriteString(elemCanonical(e.Value))
	}
	b.WriteByte(']')
	return b.String()
}

// elemCanonical renders v the way it must appear nested inside a List or
// Map's own CanonicalString: every other Kind's CanonicalString is
// already the correct nested form (List/Map recurse back through this
// same function for their own elements), but a bare Str's
// CanonicalString is its unquoted text - the right form for a top-level
// to_str(someStr), but not for a Str sitting inside a collection, which
// needs to be distinguishable from a bare identifier-like token when the
// whole collection is read back. Quoting it here is what keeps this
// projection identical to format.Value's (format/value.go), which also
// quotes nested strings via QuoteString.
func elemCanonical(v Value) string {
	if s, ok := v.(Str); ok {
		return QuoteString(string(s))
	}
	return v.CanonicalString()
}

// QuoteString re-quotes s using exactly the escapes the lexer
// understands (spec.md §4.1: `\" \\ \n \t \r`); any other byte/rune
// passes through unescaped, since the lexer copies it into a string
// literal verbatim and has no other recognized escape. This is RESL's
// own quoting, not Go's: package format's literal/source-text printer
// reuses this exact function so a quoted string never differs between
// to_str's compact projection and format's source-text rendering.
func QuoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Fn is a closure: parameter names, a body AST node, and a reference to
// the environment captured at the point the Lambda was evaluated
// (spec.md §3.1). Body and Env are declared as `any` here rather than
// ast.Node and *env.Env to avoid an import cycle - package env depends
// on package value, so value cannot import env back; package evalr,
// which depends on both, builds Fn values and is the only caller that
// type-asserts Env back to *env.Env.
type Fn struct {
	Params []string
	Body   any
	Env    any
}

func (f *Fn) Kind() Kind               { return KindFn }
func (f *Fn) CanonicalString() string { return "<fn>" }

// Equal implements spec.md §4.4.2's `==`/`!=`: defined between any two
// values; different tags compare non-equal except for the Int/Float
// cross-type numeric case. Fn is never equal to anything, including
// another Fn (spec.md §3.1: "not equal to any non-Fn; no structural
// equality required").
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nullValue:
		_, ok := b.(nullValue)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Int:
		switch bv := b.(type) {
		case Int:
			return av == bv
		case Float:
			return Float(av) == bv
		}
		return false
	case Float:
		switch bv := b.(type) {
		case Int:
			return av == Float(bv)
		case Float:
			return av == bv
		}
		return false
	case Str:
		bv, ok := b.(Str)
		return ok && av == bv
	case *List:
		bv, ok := b.(*List)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case *Map:
		bv, ok := b.(*Map)
		if !ok || len(av.Entries) != len(bv.Entries) {
			return false
		}
		for _, e := range av.Entries {
			other, present := bv.Get(e.Key)
			if !present || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Truthy centralizes the truthiness table of spec.md §4.4.2 so every
// operator and built-in that branches on it agrees (spec.md §9:
// "centralize; every operator/built-in that consults truthiness must
// use the same helper").
func Truthy(v Value) bool {
	switch t := v.(type) {
	case nullValue:
		return false
	case Bool:
		return bool(t)
	case Int:
		return t != 0
	case Float:
		return t != 0
	case Str:
		return t != ""
	case *List, *Map, *Fn:
		return true
	default:
		return false
	}
}

// TypeOf returns the type_of built-in's result (spec.md §4.6).
func TypeOf(v Value) string {
	return string(v.Kind())
}
