/*
File    : resl/parser/grammar.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/resl/ast"
	"github.com/akashmaji946/resl/span"
	"github.com/akashmaji946/resl/token"
)

// parseExpr = cond (spec.md §4.2).
func (p *Parser) parseExpr() ast.Node {
	return p.parseCond()
}

// parseCond implements: cond = "?" expr ":" expr "|" expr | orExpr.
// The else-branch recursion (rather than looping) is what makes the
// ternary right-associative, enabling the chained-else idiom spec.md
// §4.2 calls out explicitly.
func (p *Parser) parseCond() ast.Node {
	if p.failed() {
		return nil
	}
	if p.cur().Kind != token.QMARK {
		return p.parseOr()
	}
	start := p.cur().Span
	p.advance()
	cond := p.parseExpr()
	p.expect(token.COLON)
	then := p.parseExpr()
	p.expect(token.PIPE)
	els := p.parseExpr()
	if p.failed() {
		return nil
	}
	return ast.NewCond(span.Merge(start, els.Span()), cond, then, els)
}

func (p *Parser) parseOr() ast.Node {
	left := p.parseAnd()
	for !p.failed() && p.cur().Kind == token.OROR {
		p.advance()
		right := p.parseAnd()
		if p.failed() {
			return nil
		}
		left = ast.NewBinary(span.Merge(left.Span(), right.Span()), ast.Or, left, right)
	}
	return left
}

func (p *Parser) parseAnd() ast.Node {
	left := p.parseEq()
	for !p.failed() && p.cur().Kind == token.ANDAND {
		p.advance()
		right := p.parseEq()
		if p.failed() {
			return nil
		}
		left = ast.NewBinary(span.Merge(left.Span(), right.Span()), ast.And, left, right)
	}
	return left
}

func (p *Parser) parseEq() ast.Node {
	left := p.parseRel()
	for !p.failed() {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case token.EQ:
			op = ast.Eq
		case token.NEQ:
			op = ast.Ne
		default:
			return left
		}
		p.advance()
		right := p.parseRel()
		if p.failed() {
			return nil
		}
		left = ast.NewBinary(span.Merge(left.Span(), right.Span()), op, left, right)
	}
	return left
}

func (p *Parser) parseRel() ast.Node {
	left := p.parseAdd()
	for !p.failed() {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case token.LT:
			op = ast.Lt
		case token.LEQ:
			op = ast.Le
		case token.GT:
			op = ast.Gt
		case token.GEQ:
			op = ast.Ge
		default:
			return left
		}
		p.advance()
		right := p.parseAdd()
		if p.failed() {
			return nil
		}
		left = ast.NewBinary(span.Merge(left.Span(), right.Span()), op, left, right)
	}
	return left
}

func (p *Parser) parseAdd() ast.Node {
	left := p.parseMul()
	for !p.failed() {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case token.PLUS:
			op = ast.Add
		case token.MINUS:
			op = ast.Sub
		default:
			return left
		}
		p.advance()
		right := p.parseMul()
		if p.failed() {
			return nil
		}
		left = ast.NewBinary(span.Merge(left.Span(), right.Span()), op, left, right)
	}
	return left
}

func (p *Parser) parseMul() ast.Node {
	left := p.parseForEach()
	for !p.failed() {
		var op ast.BinaryOp
		switch p.cur().Kind {
		case token.STAR:
			op = ast.Mul
		case token.SLASH:
			op = ast.Div
		case token.PERCENT:
			op = ast.Mod
		default:
			return left
		}
		p.advance()
		right := p.parseForEach()
		if p.failed() {
			return nil
		}
		left = ast.NewBinary(span.Merge(left.Span(), right.Span()), op, left, right)
	}
	return left
}

// parseForEach implements: forExpr = unary (">" "(" IDENT "," IDENT ")"
// ":" expr)?. Plain comparison `a > b` also starts with a GT token right
// after a unary operand, so the three tokens following GT are checked
// before committing to the comprehension reading - see looksLikeForEach.
func (p *Parser) parseForEach() ast.Node {
	src := p.parseUnary()
	if p.failed() {
		return nil
	}
	if p.cur().Kind != token.GT || !p.looksLikeForEach() {
		return src
	}
	p.advance() // consume ">"
	p.expect(token.LPAREN)
	nameA := p.expectIdent()
	p.expect(token.COMMA)
	nameB := p.expectIdent()
	p.expect(token.RPAREN)
	p.expect(token.COLON)
	body := p.parseExpr()
	if p.failed() {
		return nil
	}
	return ast.NewForEach(span.Merge(src.Span(), body.Span()), src, nameA, nameB, body)
}

// looksLikeForEach peeks past the current GT token without consuming
// anything: the comprehension reading requires "(" IDENT "," to follow,
// which an ordinary parenthesized comparison operand like `a > (b + c)`
// never does (a bare expression inside parens has no top-level comma).
func (p *Parser) looksLikeForEach() bool {
	return p.peekAt(1).Kind == token.LPAREN &&
		p.peekAt(2).Kind == token.IDENT &&
		p.peekAt(3).Kind == token.COMMA
}

func (p *Parser) expectIdent() string {
	tok := p.expect(token.IDENT)
	return tok.Literal
}

// parseUnary implements: unary = ("-" | "!") unary | postfix.
func (p *Parser) parseUnary() ast.Node {
	if p.failed() {
		return nil
	}
	start := p.cur().Span
	switch p.cur().Kind {
	case token.MINUS:
		p.advance()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnary(span.Merge(start, operand.Span()), ast.Neg, operand)
	case token.BANG:
		p.advance()
		operand := p.parseUnary()
		if p.failed() {
			return nil
		}
		return ast.NewUnary(span.Merge(start, operand.Span()), ast.Not, operand)
	default:
		return p.parsePostfix()
	}
}

// parsePostfix implements:
//
//	postfix = primary ( "[" expr "]"
//	                  | "[" expr? ":" expr? "]"
//	                  | "(" argList? ")" )*
func (p *Parser) parsePostfix() ast.Node {
	node := p.parsePrimary()
	for !p.failed() {
		switch p.cur().Kind {
		case token.LBRACKET:
			node = p.parseIndexOrSlice(node)
		case token.LPAREN:
			node = p.parseCall(node)
		default:
			return node
		}
	}
	return nil
}

func (p *Parser) parseIndexOrSlice(target ast.Node) ast.Node {
	start := target.Span()
	p.advance() // consume "["

	if p.cur().Kind == token.COLON {
		p.advance()
		var end ast.Node
		if p.cur().Kind != token.RBRACKET {
			end = p.parseExpr()
		}
		closeTok := p.expect(token.RBRACKET)
		if p.failed() {
			return nil
		}
		return ast.NewSlice(span.Merge(start, closeTok.Span), target, nil, end)
	}

	first := p.parseExpr()
	if p.failed() {
		return nil
	}
	if p.cur().Kind == token.COLON {
		p.advance()
		var end ast.Node
		if p.cur().Kind != token.RBRACKET {
			end = p.parseExpr()
		}
		closeTok := p.expect(token.RBRACKET)
		if p.failed() {
			return nil
		}
		return ast.NewSlice(span.Merge(start, closeTok.Span), target, first, end)
	}

	closeTok := p.expect(token.RBRACKET)
	if p.failed() {
		return nil
	}
	return ast.NewIndex(span.Merge(start, closeTok.Span), target, first)
}

func (p *Parser) parseCall(callee ast.Node) ast.Node {
	start := callee.Span()
	p.advance() // consume "("
	var args []ast.Node
	if p.cur().Kind != token.RPAREN {
		args = append(args, p.parseExpr())
		for !p.failed() && p.cur().Kind == token.COMMA {
			p.advance()
			args = append(args, p.parseExpr())
		}
	}
	closeTok := p.expect(token.RPAREN)
	if p.failed() {
		return nil
	}
	return ast.NewCall(span.Merge(start, closeTok.Span), callee, args)
}

// parsePrimary implements:
//
//	primary = LITERAL | IDENT | "(" expr ")" | list | map | lambda | block
func (p *Parser) parsePrimary() ast.Node {
	if p.failed() {
		return nil
	}
	tok := p.cur()
	switch tok.Kind {
	case token.NULL:
		p.advance()
		return ast.NewLitNull(tok.Span)
	case token.TRUE:
		p.advance()
		return ast.NewLitBool(tok.Span, true)
	case token.FALSE:
		p.advance()
		return ast.NewLitBool(tok.Span, false)
	case token.INT:
		p.advance()
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.fail(tok.Span, "malformed integer literal %q", tok.Literal)
			return nil
		}
		return ast.NewLitInt(tok.Span, v)
	case token.FLOAT:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.fail(tok.Span, "malformed float literal %q", tok.Literal)
			return nil
		}
		return ast.NewLitFloat(tok.Span, v)
	case token.STRING:
		p.advance()
		return ast.NewLitStr(tok.Span, tok.Literal)
	case token.IDENT:
		p.advance()
		return ast.NewIdent(tok.Span, tok.Literal)
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expect(token.RPAREN)
		return inner
	case token.LBRACKET:
		return p.parseListOrMap()
	case token.PIPE:
		return p.parseLambda()
	case token.LBRACE:
		return p.parseBlock()
	default:
		p.fail(tok.Span, "expected an expression, found %s", tok)
		return nil
	}
}

// parseListOrMap disambiguates list vs. map per spec.md §4.2: peek after
// the first element; a COLON means the whole literal is a map, anything
// else (including an immediate "]") means a list.
func (p *Parser) parseListOrMap() ast.Node {
	start := p.cur().Span
	p.advance() // consume "["

	if p.cur().Kind == token.RBRACKET {
		closeTok := p.cur()
		p.advance()
		return ast.NewList(span.Merge(start, closeTok.Span), nil)
	}

	first := p.parseExpr()
	if p.failed() {
		return nil
	}

	if p.cur().Kind == token.COLON {
		return p.parseMapTail(start, first)
	}
	return p.parseListTail(start, first)
}

func (p *Parser) parseListTail(start span.Span, first ast.Node) ast.Node {
	elems := []ast.Node{first}
	for !p.failed() && p.cur().Kind == token.COMMA {
		p.advance()
		elems = append(elems, p.parseExpr())
	}
	closeTok := p.expect(token.RBRACKET)
	if p.failed() {
		return nil
	}
	return ast.NewList(span.Merge(start, closeTok.Span), elems)
}

func (p *Parser) parseMapTail(start span.Span, firstKey ast.Node) ast.Node {
	p.advance() // consume ":"
	firstVal := p.parseExpr()
	if p.failed() {
		return nil
	}
	entries := []ast.MapEntry{{Key: firstKey, Value: firstVal}}
	for !p.failed() && p.cur().Kind == token.COMMA {
		p.advance()
		key := p.parseExpr()
		p.expect(token.COLON)
		val := p.parseExpr()
		if p.failed() {
			return nil
		}
		entries = append(entries, ast.MapEntry{Key: key, Value: val})
	}
	closeTok := p.expect(token.RBRACKET)
	if p.failed() {
		return nil
	}
	return ast.NewMap(span.Merge(start, closeTok.Span), entries)
}

// parseLambda implements: lambda = "|" (IDENT ("," IDENT)*)? "|" expr.
func (p *Parser) parseLambda() ast.Node {
	start := p.cur().Span
	p.advance() // consume opening "|"

	var params []string
	if p.cur().Kind != token.PIPE {
		params = append(params, p.expectIdent())
		for !p.failed() && p.cur().Kind == token.COMMA {
			p.advance()
			params = append(params, p.expectIdent())
		}
	}
	p.expect(token.PIPE)
	body := p.parseExpr()
	if p.failed() {
		return nil
	}
	return ast.NewLambda(span.Merge(start, body.Span()), params, body)
}

// parseBlock implements: block = "{" (IDENT "=" expr ";")+ expr "}".
// At least one binding is required before the tail expression, per the
// grammar; a block with no bindings is a parse error.
func (p *Parser) parseBlock() ast.Node {
	start := p.cur().Span
	p.advance() // consume "{"

	var binds []ast.Bind
	for p.cur().Kind == token.IDENT && p.peekAt(1).Kind == token.ASSIGN {
		name := p.cur().Literal
		p.advance()
		p.advance() // consume "="
		value := p.parseExpr()
		if p.failed() {
			return nil
		}
		p.expect(token.SEMI)
		binds = append(binds, ast.Bind{Name: name, Value: value})
	}
	if len(binds) == 0 {
		p.fail(p.cur().Span, "block requires at least one binding before its tail expression")
		return nil
	}
	tail := p.parseExpr()
	closeTok := p.expect(token.RBRACE)
	if p.failed() {
		return nil
	}
	return ast.NewBlock(span.Merge(start, closeTok.Span), binds, tail)
}
