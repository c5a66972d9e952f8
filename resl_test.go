/*
File    : resl/resl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/resl/value"
)

func TestFormat_RoundTripsCompact(t *testing.T) {
	out, err := Format("(1+2)*3", false)
	assert.Nil(t, err)
	assert.Equal(t, "(1+2)*3", out)
}

func TestFormat_ParseErrorPropagates(t *testing.T) {
	out, err := Format("1 +", false)
	assert.Empty(t, out)
	assert.NotNil(t, err)
}

func TestEvaluate_Basic(t *testing.T) {
	v, err := Evaluate("(10 + 5) * 2")
	assert.Nil(t, err)
	assert.Equal(t, value.Int(30), v)
}

func TestEvaluate_ParseErrorPropagates(t *testing.T) {
	v, err := Evaluate(`"unterminated`)
	assert.Nil(t, v)
	assert.NotNil(t, err)
}

func TestEvaluateAndFormat_RendersResultNotSource(t *testing.T) {
	out, err := EvaluateAndFormat("1 + 2", false)
	assert.Nil(t, err)
	assert.Equal(t, "3", out)
}

func TestEvaluateAndFormat_ListResult(t *testing.T) {
	out, err := EvaluateAndFormat("[1,2,3] > (i,x) : x*2", false)
	assert.Nil(t, err)
	assert.Equal(t, "[2,4,6]", out)
}

func TestParse_ExposesAST(t *testing.T) {
	n, err := Parse("1 + 2")
	assert.Nil(t, err)
	assert.NotNil(t, n)
}

func TestMarshal_Scalars(t *testing.T) {
	assert.Equal(t, &Marshaled{Tag: value.KindInt, Int: 30}, Marshal(value.Int(30)))
	assert.Equal(t, &Marshaled{Tag: value.KindBool, Bool: true}, Marshal(value.Bool(true)))
	assert.Equal(t, &Marshaled{Tag: value.KindNull}, Marshal(value.Null))
}

func TestMarshal_List(t *testing.T) {
	lst := value.NewList([]value.Value{value.Int(1), value.Int(2)})
	m := Marshal(lst)
	assert.Equal(t, value.KindList, m.Tag)
	assert.Len(t, m.List, 2)
	assert.Equal(t, int64(1), m.List[0].Int)
}

func TestMarshal_MapPreservesOrder(t *testing.T) {
	mv := value.NewMap([]value.MapEntry{{Key: "b", Value: value.Int(2)}, {Key: "a", Value: value.Int(1)}})
	m := Marshal(mv)
	assert.Equal(t, "b", m.Map[0].Key)
	assert.Equal(t, "a", m.Map[1].Key)
}

func TestMarshal_FnIsBareTag(t *testing.T) {
	m := Marshal(&value.Fn{})
	assert.Equal(t, value.KindFn, m.Tag)
}

func TestDispose_NilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { Dispose(nil) })
}

func TestDispose_RecursesThroughNestedStructures(t *testing.T) {
	lst := value.NewList([]value.Value{value.Int(1), value.NewList([]value.Value{value.Int(2)})})
	m := Marshal(lst)
	assert.NotPanics(t, func() { Dispose(m) })
}
