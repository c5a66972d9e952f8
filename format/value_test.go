/*
File    : resl/format/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/resl/value"
)

func TestValue_Scalars(t *testing.T) {
	assert.Equal(t, "null", Value(value.Null, false))
	assert.Equal(t, "true", Value(value.Bool(true), false))
	assert.Equal(t, "30", Value(value.Int(30), false))
	assert.Equal(t, "5.0", Value(value.Float(5), false))
	assert.Equal(t, `"hi"`, Value(value.Str("hi"), false))
	assert.Equal(t, "<fn>", Value(&value.Fn{}, false))
}

func TestValue_NilInterfaceIsNull(t *testing.T) {
	var v value.Value
	assert.Equal(t, "null", Value(v, false))
}

func TestValue_CompactList(t *testing.T) {
	lst := value.NewList([]value.Value{value.Int(1), value.Int(2), value.Int(3)})
	assert.Equal(t, "[1,2,3]", Value(lst, false))
}

func TestValue_CompactMapPreservesOrder(t *testing.T) {
	m := value.NewMap([]value.MapEntry{{Key: "b", Value: value.Int(2)}, {Key: "a", Value: value.Int(1)}})
	assert.Equal(t, `["b":2,"a":1]`, Value(m, false))
}

func TestValue_PrettyMultiEntryListOnePerLine(t *testing.T) {
	lst := value.NewList([]value.Value{value.Int(1), value.Int(2)})
	out := Value(lst, true)
	assert.Contains(t, out, "\n")
	assert.Equal(t, byte('\n'), out[len(out)-1])
}

func TestValue_NestedListsAndMaps(t *testing.T) {
	inner := value.NewList([]value.Value{value.Int(1), value.Int(2)})
	m := value.NewMap([]value.MapEntry{{Key: "xs", Value: inner}})
	assert.Equal(t, `["xs":[1,2]]`, Value(m, false))
}

func TestValue_EmptyListAndMap(t *testing.T) {
	assert.Equal(t, "[]", Value(value.NewList(nil), false))
	assert.Equal(t, "[]", Value(value.NewMap(nil), false))
}

// TestValue_ListAndMapAgreeWithCanonicalString guards against
// format.Value and value.Value.CanonicalString drifting apart on
// compact rendering of collections containing strings - both must quote
// a nested Str the same way (spec.md §4.6: to_str on List/Map uses "the
// formatter's compact form"). A bare top-level Str is exempt: to_str on
// a Str returns its raw text, while format.Value always renders
// re-parseable source syntax, so the two intentionally disagree there.
func TestValue_ListAndMapAgreeWithCanonicalString(t *testing.T) {
	cases := []value.Value{
		value.NewList([]value.Value{value.Str("a"), value.Int(1), value.Bool(true)}),
		value.NewMap([]value.MapEntry{{Key: "k", Value: value.Str("v")}}),
		value.NewList([]value.Value{value.NewList([]value.Value{value.Str("x")}), value.Str("y")}),
	}
	for _, v := range cases {
		assert.Equal(t, v.CanonicalString(), Value(v, false))
	}
}
