/*
File    : resl/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalString(t *testing.T) {
	tests := []struct {
		Name     string
		Value    Value
		Expected string
	}{
		{"null", Null, "null"},
		{"true", Bool(true), "true"},
		{"int", Int(30), "30"},
		{"float_integral", Float(5), "5.0"},
		{"float_fraction", Float(3.5), "3.5"},
		{"str", Str("hello"), "hello"},
		{"empty_list", NewList(nil), "[]"},
		{"list", NewList([]Value{Int(1), Int(2)}), "[1,2]"},
		{"fn", &Fn{}, "<fn>"},
	}
	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, tc.Value.CanonicalString())
		})
	}
}

func TestCanonicalString_ListQuotesNestedStrings(t *testing.T) {
	got := NewList([]Value{Str("a"), Str("b")}).CanonicalString()
	assert.Equal(t, `["a","b"]`, got)
}

func TestCanonicalString_MapQuotesNestedStringsAndKeys(t *testing.T) {
	got := NewMap([]MapEntry{{Key: "k", Value: Str("v")}}).CanonicalString()
	assert.Equal(t, `["k":"v"]`, got)
}

func TestCanonicalString_NestedCollectionsQuoteThroughout(t *testing.T) {
	inner := NewList([]Value{Str("x"), Int(1)})
	got := NewList([]Value{inner, Str("y")}).CanonicalString()
	assert.Equal(t, `[["x",1],"y"]`, got)
}

func TestQuoteString_EscapesLexerRecognizedSequences(t *testing.T) {
	assert.Equal(t, `"a\nb"`, QuoteString("a\nb"))
	assert.Equal(t, `"a\"b"`, QuoteString(`a"b`))
	assert.Equal(t, `"a\\b"`, QuoteString(`a\b`))
}

func TestMap_LastWriteWinsPreservesPosition(t *testing.T) {
	m := NewMap([]MapEntry{
		{Key: "a", Value: Int(1)},
		{Key: "b", Value: Int(2)},
		{Key: "a", Value: Int(3)},
	})
	assert.Len(t, m.Entries, 2)
	assert.Equal(t, "a", m.Entries[0].Key)
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, Int(3), v)
}

func TestMap_With_PreservesOriginalPosition(t *testing.T) {
	m := NewMap([]MapEntry{{Key: "a", Value: Int(1)}, {Key: "b", Value: Int(2)}})
	next := m.With("a", Int(99))
	assert.Equal(t, "a", next.Entries[0].Key)
	v, _ := next.Get("a")
	assert.Equal(t, Int(99), v)
	// original map is untouched
	orig, _ := m.Get("a")
	assert.Equal(t, Int(1), orig)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Int(3), Float(3.0)))
	assert.True(t, Equal(Null, Null))
	assert.False(t, Equal(Int(3), Str("3")))
	assert.True(t, Equal(NewList([]Value{Int(1)}), NewList([]Value{Int(1)})))
	assert.False(t, Equal(&Fn{}, &Fn{}))
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Null))
	assert.False(t, Truthy(Int(0)))
	assert.True(t, Truthy(Int(1)))
	assert.False(t, Truthy(Str("")))
	assert.True(t, Truthy(Str("x")))
	assert.True(t, Truthy(NewList(nil)))
	assert.True(t, Truthy(NewMap(nil)))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "integer", TypeOf(Int(1)))
	assert.Equal(t, "null", TypeOf(Null))
	assert.Equal(t, "function", TypeOf(&Fn{}))
}
