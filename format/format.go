/*
File    : resl/format/format.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package format renders an AST back to RESL source text (spec.md
// §4.3), in compact or pretty mode. It implements ast.Visitor the same
// way package evalr does, each Visit method writing its own fragment
// and recursing into children through printChild, which decides whether
// a child needs parenthesizing to reparse into the same tree.
//
// The walk-and-print-with-an-indent-counter shape is grounded on the
// teacher's PrintingVisitor (go-mix's print_visitor.go): a buffer plus
// an indent level incremented/decremented around recursive Accept
// calls. The teacher's visitor exists only for debug tracing and never
// has to worry about re-parseability; format's extra responsibility -
// adding parentheses exactly where precedence would otherwise change
// the parsed tree, and never otherwise - has no teacher analogue and is
// built from the grammar in spec.md §4.2 directly.
package format

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/resl/ast"
	"github.com/akashmaji946/resl/value"
)

// Format renders n as RESL source text. Re-parsing the result yields a
// structurally equivalent AST (spec.md §4.3); pretty output ends with a
// single trailing newline, compact output does not.
func Format(n ast.Node, pretty bool) string {
	p := &printer{pretty: pretty}
	n.Accept(p)
	out := p.buf.String()
	if pretty {
		out += "\n"
	}
	return out
}

type printer struct {
	buf      strings.Builder
	pretty   bool
	indent   int
	lastByte byte
}

// raw writes s verbatim: used for structural punctuation (braces,
// brackets, commas, newlines, indentation) that can never collide with
// an adjacent operator token.
func (p *printer) raw(s string) {
	if s == "" {
		return
	}
	p.buf.WriteString(s)
	p.lastByte = s[len(s)-1]
}

// emit writes s, inserting a single space first if the boundary between
// the previously written byte and s's first byte could otherwise be
// re-lexed as a different (wider) token - e.g. two adjacent "-" forming
// what reads like a run of minus signs, or "=" immediately followed by
// another "=" forming "==". This is the mechanism behind spec.md §4.3's
// "one space around binary operators only where ambiguity would
// otherwise arise".
func (p *printer) emit(s string) {
	if s == "" {
		return
	}
	if p.buf.Len() > 0 && needsSeparator(p.lastByte, s[0]) {
		p.buf.WriteByte(' ')
	}
	p.buf.WriteString(s)
	p.lastByte = s[len(s)-1]
}

func isOpSymbol(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '&', '|':
		return true
	default:
		return false
	}
}

func needsSeparator(a, b byte) bool {
	return isOpSymbol(a) && isOpSymbol(b)
}

func (p *printer) writeIndent() {
	if p.indent > 0 {
		p.raw(strings.Repeat("    ", p.indent))
	}
}

// rank assigns a precedence level to n for paren-insertion purposes
// (higher binds tighter). Cond, ForEach and Lambda return -1: each ends
// in a body that greedily consumes a full "expr" (spec.md §4.2's
// cond/forExpr/lambda productions), so outside of a slot that itself
// accepts a bare "expr", they always need parens to keep from swallowing
// whatever follows them in the source.
func rank(n ast.Node) int {
	switch t := n.(type) {
	case *ast.Cond, *ast.ForEach, *ast.Lambda:
		return -1
	case *ast.Binary:
		switch t.Op {
		case ast.Or:
			return 1
		case ast.And:
			return 2
		case ast.Eq, ast.Ne:
			return 3
		case ast.Lt, ast.Le, ast.Gt, ast.Ge:
			return 4
		case ast.Add, ast.Sub:
			return 5
		case ast.Mul, ast.Div, ast.Mod:
			return 6
		}
		return 6
	case *ast.Unary:
		return 8
	case *ast.Index, *ast.Slice, *ast.Call:
		return 9
	default:
		return 10 // literals, Ident, List, Map, Block
	}
}

// printChild prints n, the child of some enclosing construct. exprSlot
// is true when the grammar position accepts a bare "expr" (block tail,
// bind value, list/map entry, call argument, lambda body, cond/forEach
// branches, top level) - no parens are ever needed there. Otherwise n is
// wrapped in parens when its own rank is too low for minRank, which
// would otherwise change how the reprinted text parses.
func (p *printer) printChild(n ast.Node, minRank int, exprSlot bool) {
	r := rank(n)
	wrap := !exprSlot && (r < 0 || r < minRank)
	if wrap {
		p.raw("(")
	}
	n.Accept(p)
	if wrap {
		p.raw(")")
	}
}

func (p *printer) VisitLitNull(*ast.LitNull) any {
	p.emit("null")
	return nil
}

func (p *printer) VisitLitBool(n *ast.LitBool) any {
	p.emit(strconv.FormatBool(n.Value))
	return nil
}

func (p *printer) VisitLitInt(n *ast.LitInt) any {
	p.emit(strconv.FormatInt(n.Value, 10))
	return nil
}

func (p *printer) VisitLitFloat(n *ast.LitFloat) any {
	p.emit(value.FormatFloat(n.Value))
	return nil
}

func (p *printer) VisitLitStr(n *ast.LitStr) any {
	p.raw(escapeStr(n.Value))
	return nil
}

// escapeStr quotes s for source-text output. Delegates to
// value.QuoteString so a quoted string is byte-for-byte identical
// whether it came from re-printing a parsed LitStr here or from
// rendering a runtime Str nested in a List/Map (value.elemCanonical,
// format/value.go's printValue) - one escaping rule, not three.
func escapeStr(s string) string {
	return value.QuoteString(s)
}

func (p *printer) VisitIdent(n *ast.Ident) any {
	p.emit(n.Name)
	return nil
}

func (p *printer) VisitList(n *ast.List) any {
	p.raw("[")
	if p.pretty && p.listNeedsLines(n.Elems) {
		p.indent++
		p.raw("\n")
		for i, e := range n.Elems {
			p.writeIndent()
			p.printChild(e, 0, true)
			if i < len(n.Elems)-1 {
				p.raw(",")
			}
			p.raw("\n")
		}
		p.indent--
		p.writeIndent()
	} else {
		for i, e := range n.Elems {
			if i > 0 {
				p.raw(",")
			}
			p.printChild(e, 0, true)
		}
	}
	p.raw("]")
	return nil
}

func (p *printer) VisitMap(n *ast.Map) any {
	p.raw("[")
	multiline := p.pretty && p.mapNeedsLines(n.Entries)
	if multiline {
		p.indent++
		p.raw("\n")
	}
	for i, e := range n.Entries {
		if multiline {
			p.writeIndent()
		} else if i > 0 {
			p.raw(",")
		}
		p.printChild(e.Key, 0, true)
		p.raw(":")
		p.printChild(e.Value, 0, true)
		if multiline {
			if i < len(n.Entries)-1 {
				p.raw(",")
			}
			p.raw("\n")
		}
	}
	if multiline {
		p.indent--
		p.writeIndent()
	}
	p.raw("]")
	return nil
}

// listNeedsLines/mapNeedsLines implement spec.md §4.3's pretty-mode
// rule: "list/map entries placed one per line when the containing
// literal has >= 2 entries or any entry spans multiple lines".
func (p *printer) listNeedsLines(elems []ast.Node) bool {
	if len(elems) >= 2 {
		return true
	}
	for _, e := range elems {
		if p.spansMultipleLines(e) {
			return true
		}
	}
	return false
}

func (p *printer) mapNeedsLines(entries []ast.MapEntry) bool {
	if len(entries) >= 2 {
		return true
	}
	for _, e := range entries {
		if p.spansMultipleLines(e.Key) || p.spansMultipleLines(e.Value) {
			return true
		}
	}
	return false
}

func (p *printer) spansMultipleLines(n ast.Node) bool {
	switch t := n.(type) {
	case *ast.Block:
		return true
	case *ast.List:
		return p.listNeedsLines(t.Elems)
	case *ast.Map:
		return p.mapNeedsLines(t.Entries)
	case *ast.Lambda:
		return p.spansMultipleLines(t.Body)
	default:
		return false
	}
}

func (p *printer) VisitUnary(n *ast.Unary) any {
	switch n.Op {
	case ast.Neg:
		p.emit("-")
	case ast.Not:
		p.emit("!")
	}
	p.printChild(n.Operand, 8, false)
	return nil
}

var binarySymbol = map[ast.BinaryOp]string{
	ast.Add: "+", ast.Sub: "-", ast.Mul: "*", ast.Div: "/", ast.Mod: "%",
	ast.Eq: "==", ast.Ne: "!=", ast.Lt: "<", ast.Le: "<=", ast.Gt: ">", ast.Ge: ">=",
	ast.And: "&&", ast.Or: "||",
}

func (p *printer) VisitBinary(n *ast.Binary) any {
	r := rank(n)
	p.printChild(n.Left, r, false)
	sym := binarySymbol[n.Op]
	if p.pretty {
		p.raw(" ")
		p.raw(sym)
		p.raw(" ")
	} else {
		p.emit(sym)
	}
	p.printChild(n.Right, r+1, false)
	return nil
}

func (p *printer) VisitIndex(n *ast.Index) any {
	p.printChild(n.Target, 9, false)
	p.raw("[")
	p.printChild(n.Key, 0, true)
	p.raw("]")
	return nil
}

func (p *printer) VisitSlice(n *ast.Slice) any {
	p.printChild(n.Target, 9, false)
	p.raw("[")
	if n.Start != nil {
		p.printChild(n.Start, 0, true)
	}
	p.raw(":")
	if n.End != nil {
		p.printChild(n.End, 0, true)
	}
	p.raw("]")
	return nil
}

func (p *printer) VisitCall(n *ast.Call) any {
	p.printChild(n.Callee, 9, false)
	p.raw("(")
	for i, a := range n.Args {
		if i > 0 {
			p.raw(",")
		}
		p.printChild(a, 0, true)
	}
	p.raw(")")
	return nil
}

func (p *printer) VisitLambda(n *ast.Lambda) any {
	sep := ","
	if p.pretty {
		sep = ", "
	}
	p.emit("|")
	p.raw(strings.Join(n.Params, sep))
	p.emit("|")
	p.printChild(n.Body, 0, true)
	return nil
}

func (p *printer) VisitCond(n *ast.Cond) any {
	p.emit("?")
	p.printChild(n.Cond, 0, true)
	p.raw(":")
	p.printChild(n.Then, 0, true)
	p.emit("|")
	p.printChild(n.Else, 0, true)
	return nil
}

func (p *printer) VisitForEach(n *ast.ForEach) any {
	p.printChild(n.Src, 8, false)
	p.raw(">(")
	p.raw(n.NameA)
	p.raw(",")
	p.raw(n.NameB)
	p.raw("):")
	p.printChild(n.Body, 0, true)
	return nil
}

func (p *printer) VisitBlock(n *ast.Block) any {
	p.raw("{")
	if p.pretty {
		p.raw("\n")
		p.indent++
		for _, b := range n.Binds {
			p.writeIndent()
			p.raw(b.Name)
			p.raw(" = ")
			p.printChild(b.Value, 0, true)
			p.raw(";\n")
		}
		p.writeIndent()
		p.printChild(n.Tail, 0, true)
		p.raw("\n")
		p.indent--
		p.writeIndent()
	} else {
		for _, b := range n.Binds {
			p.raw(b.Name)
			p.raw("=")
			p.printChild(b.Value, 0, true)
			p.raw(";")
		}
		p.printChild(n.Tail, 0, true)
	}
	p.raw("}")
	return nil
}
