/*
File    : resl/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the abstract syntax tree produced by package
// parser, per spec.md §3.2. Every node carries its source Span so the
// formatter and evaluator never need to re-derive position information,
// and so diagnostics built downstream of parsing can still point at the
// original text.
//
// Nodes are plain structs, not an arena of indices (spec.md §9 allows
// either); a hand-written AST is small enough here that pointer-chasing
// cost is not a concern, and it keeps each node's shape easy to read.
package ast

import "github.com/akashmaji946/resl/span"

// Node is the interface every AST node implements.
type Node interface {
	Span() span.Span
	Accept(v Visitor) any
}

// Visitor implements the visitor pattern over the AST, following the
// teacher's own NodeVisitor design (parser/node.go in go-mix). format
// and evalr each provide a Visitor implementation instead of a giant
// type switch, so adding a node type only requires touching one place
// per consumer.
type Visitor interface {
	VisitLitNull(*LitNull) any
	VisitLitBool(*LitBool) any
	VisitLitInt(*LitInt) any
	VisitLitFloat(*LitFloat) any
	VisitLitStr(*LitStr) any
	VisitIdent(*Ident) any
	VisitList(*List) any
	VisitMap(*Map) any
	VisitUnary(*Unary) any
	VisitBinary(*Binary) any
	VisitIndex(*Index) any
	VisitSlice(*Slice) any
	VisitCall(*Call) any
	VisitLambda(*Lambda) any
	VisitCond(*Cond) any
	VisitForEach(*ForEach) any
	VisitBlock(*Block) any
}

type base struct{ Sp span.Span }

func (b base) Span() span.Span { return b.Sp }

// UnaryOp enumerates the unary operators of spec.md §3.2.
type UnaryOp int

const (
	Neg UnaryOp = iota
	Not
)

// BinaryOp enumerates the binary operators of spec.md §3.2.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Ne
	Lt
	Le
	Gt
	Ge
	And
	Or
)

// LitNull is the `null` literal.
type LitNull struct{ base }

func (n *LitNull) Accept(v Visitor) any { return v.VisitLitNull(n) }

// LitBool is a `true`/`false` literal.
type LitBool struct {
	base
	Value bool
}

func (n *LitBool) Accept(v Visitor) any { return v.VisitLitBool(n) }

// LitInt is an integer literal.
type LitInt struct {
	base
	Value int64
}

func (n *LitInt) Accept(v Visitor) any { return v.VisitLitInt(n) }

// LitFloat is a floating-point literal.
type LitFloat struct {
	base
	Value float64
}

func (n *LitFloat) Accept(v Visitor) any { return v.VisitLitFloat(n) }

// LitStr is a string literal, already unescaped by the lexer.
type LitStr struct {
	base
	Value string
}

func (n *LitStr) Accept(v Visitor) any { return v.VisitLitStr(n) }

// Ident is a variable reference.
type Ident struct {
	base
	Name string
}

func (n *Ident) Accept(v Visitor) any { return v.VisitIdent(n) }

// List is a list literal `[e1, e2, ...]`.
type List struct {
	base
	Elems []Node
}

func (n *List) Accept(v Visitor) any { return v.VisitList(n) }

// MapEntry is one `key: value` pair of a Map literal. Key may be any
// expression; spec.md §4.4 requires it to evaluate to a Str at runtime,
// skipping the entry (not erroring) when it doesn't - see spec.md §9 open
// question 5.
type MapEntry struct {
	Key   Node
	Value Node
}

// Map is a map literal `[k1: v1, k2: v2, ...]`.
type Map struct {
	base
	Entries []MapEntry
}

func (n *Map) Accept(v Visitor) any { return v.VisitMap(n) }

// Unary is `-x` or `!x`.
type Unary struct {
	base
	Op      UnaryOp
	Operand Node
}

func (n *Unary) Accept(v Visitor) any { return v.VisitUnary(n) }

// Binary is any of the two-operand operators in spec.md §3.2.
type Binary struct {
	base
	Op          BinaryOp
	Left, Right Node
}

func (n *Binary) Accept(v Visitor) any { return v.VisitBinary(n) }

// Index is `a[b]`.
type Index struct {
	base
	Target, Key Node
}

func (n *Index) Accept(v Visitor) any { return v.VisitIndex(n) }

// Slice is `a[start:end]`; Start and End are nil when omitted.
type Slice struct {
	base
	Target     Node
	Start, End Node
}

func (n *Slice) Accept(v Visitor) any { return v.VisitSlice(n) }

// Call is a function call of a named or expression callee.
type Call struct {
	base
	Callee Node
	Args   []Node
}

func (n *Call) Accept(v Visitor) any { return v.VisitCall(n) }

// Lambda is `|p1, p2| body`.
type Lambda struct {
	base
	Params []string
	Body   Node
}

func (n *Lambda) Accept(v Visitor) any { return v.VisitLambda(n) }

// Cond is the ternary `? c : t | e`.
type Cond struct {
	base
	Cond, Then, Else Node
}

func (n *Cond) Accept(v Visitor) any { return v.VisitCond(n) }

// ForEach is the `>` comprehension operator: `src > (a, b) : body`.
type ForEach struct {
	base
	Src        Node
	NameA      string
	NameB      string
	Body       Node
}

func (n *ForEach) Accept(v Visitor) any { return v.VisitForEach(n) }

// Bind is one binding statement inside a Block: `name = expr;`.
type Bind struct {
	Name  string
	Value Node
}

// Block is `{ bind1; bind2; ...; tail }`.
type Block struct {
	base
	Binds []Bind
	Tail  Node
}

func (n *Block) Accept(v Visitor) any { return v.VisitBlock(n) }

// Constructors. package parser builds every node through these instead
// of struct literals, since the embedded `base` span field is
// unexported by design - a Span is set once at construction and never
// mutated afterward (spec.md §3.2: "all [...] carry a source span").

func NewLitNull(sp span.Span) *LitNull { return &LitNull{base{sp}} }

func NewLitBool(sp span.Span, v bool) *LitBool { return &LitBool{base{sp}, v} }

func NewLitInt(sp span.Span, v int64) *LitInt { return &LitInt{base{sp}, v} }

func NewLitFloat(sp span.Span, v float64) *LitFloat { return &LitFloat{base{sp}, v} }

func NewLitStr(sp span.Span, v string) *LitStr { return &LitStr{base{sp}, v} }

func NewIdent(sp span.Span, name string) *Ident { return &Ident{base{sp}, name} }

func NewList(sp span.Span, elems []Node) *List { return &List{base{sp}, elems} }

func NewMap(sp span.Span, entries []MapEntry) *Map { return &Map{base{sp}, entries} }

func NewUnary(sp span.Span, op UnaryOp, operand Node) *Unary {
	return &Unary{base{sp}, op, operand}
}

func NewBinary(sp span.Span, op BinaryOp, left, right Node) *Binary {
	return &Binary{base{sp}, op, left, right}
}

func NewIndex(sp span.Span, target, key Node) *Index { return &Index{base{sp}, target, key} }

func NewSlice(sp span.Span, target, start, end Node) *Slice {
	return &Slice{base{sp}, target, start, end}
}

func NewCall(sp span.Span, callee Node, args []Node) *Call {
	return &Call{base{sp}, callee, args}
}

func NewLambda(sp span.Span, params []string, body Node) *Lambda {
	return &Lambda{base{sp}, params, body}
}

func NewCond(sp span.Span, cond, then, els Node) *Cond {
	return &Cond{base{sp}, cond, then, els}
}

func NewForEach(sp span.Span, src Node, nameA, nameB string, body Node) *ForEach {
	return &ForEach{base{sp}, src, nameA, nameB, body}
}

func NewBlock(sp span.Span, binds []Bind, tail Node) *Block {
	return &Block{base{sp}, binds, tail}
}
