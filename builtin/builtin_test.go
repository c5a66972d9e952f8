/*
File    : resl/builtin/builtin_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/resl/value"
)

func call(t *testing.T, name string, out *bytes.Buffer, args ...value.Value) value.Value {
	t.Helper()
	fn, ok := Lookup(name)
	if !ok {
		t.Fatalf("no builtin registered under %q", name)
	}
	var w bytes.Buffer
	if out == nil {
		out = &w
	}
	return fn(args, out)
}

func TestLookup_UnknownNameNotFound(t *testing.T) {
	_, ok := Lookup("does_not_exist")
	assert.False(t, ok)
}

func TestConcat(t *testing.T) {
	got := call(t, "concat", nil, value.Str("foo"), value.Str("bar"))
	assert.Equal(t, value.Str("foobar"), got)
}

func TestConcat_SkipsNonStringArgs(t *testing.T) {
	got := call(t, "concat", nil, value.Str("a"), value.Int(1), value.Str("b"))
	assert.Equal(t, value.Str("ab"), got)
}

func TestConcat_NoArgsIsEmptyString(t *testing.T) {
	got := call(t, "concat", nil)
	assert.Equal(t, value.Str(""), got)
}

func TestToStr(t *testing.T) {
	assert.Equal(t, value.Str("30"), call(t, "to_str", nil, value.Int(30)))
	assert.Equal(t, value.Str("5.0"), call(t, "to_str", nil, value.Float(5)))
	assert.Equal(t, value.Str("null"), call(t, "to_str", nil, value.Null))
}

func TestToStr_MissingArgIsNullString(t *testing.T) {
	assert.Equal(t, value.Str("null"), call(t, "to_str", nil))
}

func TestToStr_ListQuotesNestedStrings(t *testing.T) {
	lst := value.NewList([]value.Value{value.Str("a"), value.Str("b")})
	assert.Equal(t, value.Str(`["a","b"]`), call(t, "to_str", nil, lst))
}

func TestLength(t *testing.T) {
	assert.Equal(t, value.Int(3), call(t, "length", nil, value.Str("abc")))
	assert.Equal(t, value.Int(2), call(t, "length", nil, value.NewList([]value.Value{value.Int(1), value.Int(2)})))
	assert.Equal(t, value.Null, call(t, "length", nil, value.Int(5)))
}

func TestLength_UnicodeScalarCount(t *testing.T) {
	assert.Equal(t, value.Int(1), call(t, "length", nil, value.Str("é")))
}

func TestPush(t *testing.T) {
	lst := value.NewList([]value.Value{value.Int(1), value.Int(2)})
	got := call(t, "push", nil, lst, value.Int(3))
	result, ok := got.(*value.List)
	assert.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2), value.Int(3)}, result.Elems)
	// original untouched
	assert.Len(t, lst.Elems, 2)
}

func TestPush_NonListIsNull(t *testing.T) {
	assert.Equal(t, value.Null, call(t, "push", nil, value.Int(1), value.Int(2)))
}

func TestInsert_ListPositiveIndex(t *testing.T) {
	lst := value.NewList([]value.Value{value.Int(1), value.Int(3)})
	got := call(t, "insert", nil, lst, value.Int(1), value.Int(2))
	result, ok := got.(*value.List)
	assert.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(1), value.Int(2), value.Int(3)}, result.Elems)
}

func TestInsert_ListNegativeIndex(t *testing.T) {
	lst := value.NewList([]value.Value{value.Int(1), value.Int(3), value.Int(4)})
	got := call(t, "insert", nil, lst, value.Int(-1), value.Int(5))
	result, ok := got.(*value.List)
	assert.True(t, ok)
	assert.Equal(t, []value.Value{value.Int(1), value.Int(3), value.Int(5), value.Int(4)}, result.Elems)
}

func TestInsert_MapNewKeyAppends(t *testing.T) {
	m := value.NewMap([]value.MapEntry{{Key: "a", Value: value.Int(1)}})
	got := call(t, "insert", nil, m, value.Str("b"), value.Int(2))
	result, ok := got.(*value.Map)
	assert.True(t, ok)
	assert.Len(t, result.Entries, 2)
	assert.Equal(t, "b", result.Entries[1].Key)
}

func TestInsert_MapExistingKeyPreservesPosition(t *testing.T) {
	m := value.NewMap([]value.MapEntry{{Key: "a", Value: value.Int(1)}, {Key: "b", Value: value.Int(2)}})
	got := call(t, "insert", nil, m, value.Str("a"), value.Int(99))
	result, ok := got.(*value.Map)
	assert.True(t, ok)
	assert.Equal(t, "a", result.Entries[0].Key)
	v, _ := result.Get("a")
	assert.Equal(t, value.Int(99), v)
}

func TestInsert_WrongCollectionIsNull(t *testing.T) {
	assert.Equal(t, value.Null, call(t, "insert", nil, value.Int(1), value.Int(0), value.Int(2)))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, value.Str("integer"), call(t, "type_of", nil, value.Int(1)))
	assert.Equal(t, value.Str("null"), call(t, "type_of", nil, value.Null))
	assert.Equal(t, value.Str("function"), call(t, "type_of", nil, &value.Fn{}))
}

func TestDebug_WritesCanonicalFormAndReturnsValue(t *testing.T) {
	var buf bytes.Buffer
	got := call(t, "debug", &buf, value.Int(42))
	assert.Equal(t, value.Int(42), got)
	assert.Equal(t, "42\n", buf.String())
}
