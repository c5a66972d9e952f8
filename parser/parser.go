/*
File    : resl/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a RESL token stream into an ast.Node, following
// the grammar in spec.md §4.2. It is single-pass, recursive-descent,
// with a precedence-climbing chain of functions standing in for the
// teacher's token-type-keyed Pratt tables (go-mix's
// parser/parser_precedence.go) - the spec's grammar has a small, fixed
// set of levels rather than an open, extensible operator set, so one
// function per level reads more directly off the EBNF than a table
// would. It does not attempt error recovery: the first error halts
// parsing, per spec.md §4.2/§7.
package parser

import (
	"fmt"

	"github.com/akashmaji946/resl/ast"
	"github.com/akashmaji946/resl/lexer"
	"github.com/akashmaji946/resl/span"
	"github.com/akashmaji946/resl/token"
)

// Parser holds lexing state plus a small lookahead queue. The queue
// (rather than the teacher's fixed two-token cur/next pair) exists
// because disambiguating the `>` comprehension operator from ordinary
// `>` comparison needs to peek past the operator at the token that
// follows "(" - see parseForEach and looksLikeForEach in grammar.go.
type Parser struct {
	lex *lexer.Lexer
	buf []token.Token
	src string
	err *ParseError
}

// New creates a Parser over src.
func New(src string) *Parser {
	return &Parser{lex: lexer.New(src), src: src}
}

// Parse parses a full program: a single top-level expression followed
// by EOF (spec.md §4.2, "program = expr EOF"). It returns the parsed
// AST, or a ParseError describing the first failure.
func Parse(src string) (ast.Node, *ParseError) {
	p := New(src)
	node := p.parseExpr()
	if p.err != nil {
		return nil, p.err
	}
	if p.cur().Kind != token.EOF {
		p.fail(p.cur().Span, "unexpected trailing input after expression, found %s", p.cur())
		return nil, p.err
	}
	return node, nil
}

func (p *Parser) fill(n int) {
	for len(p.buf) <= n {
		if p.err != nil {
			p.buf = append(p.buf, token.Token{Kind: token.EOF, Span: p.lastSpan()})
			continue
		}
		tok, err := p.lex.Next()
		if err != nil {
			if lexErr, ok := err.(*lexer.Error); ok {
				p.err = &ParseError{Kind: Lex, Message: lexErr.Message, Span: lexErr.Span, src: p.src}
			}
			p.buf = append(p.buf, token.Token{Kind: token.EOF, Span: p.lastSpan()})
			continue
		}
		p.buf = append(p.buf, tok)
	}
}

func (p *Parser) lastSpan() span.Span {
	if len(p.buf) > 0 {
		return p.buf[len(p.buf)-1].Span
	}
	return span.New(0, 0)
}

func (p *Parser) cur() token.Token {
	p.fill(0)
	return p.buf[0]
}

func (p *Parser) peekAt(n int) token.Token {
	p.fill(n)
	return p.buf[n]
}

func (p *Parser) advance() {
	p.fill(0)
	p.buf = p.buf[1:]
}

// fail records the first parse error. Subsequent calls are no-ops -
// the parser never overwrites the first failure (spec.md §7: "the
// first error encountered halts parsing").
func (p *Parser) fail(sp span.Span, format string, args ...any) {
	if p.err != nil {
		return
	}
	p.err = &ParseError{Kind: Syntax, Message: fmt.Sprintf(format, args...), Span: sp, src: p.src}
}

// failed reports whether the parser has already recorded an error.
// Every recursive parse function checks this before doing further work
// so a single failure cannot cascade into confusing secondary ones.
func (p *Parser) failed() bool { return p.err != nil }

func (p *Parser) expect(kind token.Type) token.Token {
	tok := p.cur()
	if tok.Kind != kind {
		p.fail(tok.Span, "expected %s, found %s", kind, tok)
		return tok
	}
	p.advance()
	return tok
}
