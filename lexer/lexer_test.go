/*
File    : resl/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/resl/token"
)

type tokenCase struct {
	Input    string
	Expected []token.Type
}

func kinds(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	l := New(src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		assert.NoError(t, err)
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestNext_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			Input:    `{ } [ ] ( ) , : ;`,
			Expected: []token.Type{token.LBRACE, token.RBRACE, token.LBRACKET, token.RBRACKET, token.LPAREN, token.RPAREN, token.COMMA, token.COLON, token.SEMI, token.EOF},
		},
		{
			Input:    `| || ? + - * / %`,
			Expected: []token.Type{token.PIPE, token.OROR, token.QMARK, token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT, token.EOF},
		},
		{
			Input:    `== != <= >= && = < >`,
			Expected: []token.Type{token.EQ, token.NEQ, token.LEQ, token.GEQ, token.ANDAND, token.ASSIGN, token.LT, token.GT, token.EOF},
		},
	}
	for _, tc := range tests {
		toks := lexAll(t, tc.Input)
		assert.Equal(t, tc.Expected, kinds(toks))
	}
}

func TestNext_OrVsPipe(t *testing.T) {
	toks := lexAll(t, `|x,y| a || b`)
	assert.Equal(t, []token.Type{
		token.PIPE, token.IDENT, token.COMMA, token.IDENT, token.PIPE,
		token.IDENT, token.OROR, token.IDENT, token.EOF,
	}, kinds(toks))
}

func TestNext_NumberLiterals(t *testing.T) {
	toks := lexAll(t, `42 3.14 0 0.5`)
	assert.Equal(t, []token.Type{token.INT, token.FLOAT, token.INT, token.FLOAT, token.EOF}, kinds(toks))
	assert.Equal(t, "42", toks[0].Literal)
	assert.Equal(t, "3.14", toks[1].Literal)
}

func TestNext_KeywordsAndIdents(t *testing.T) {
	toks := lexAll(t, `true false null truex`)
	assert.Equal(t, []token.Type{token.TRUE, token.FALSE, token.NULL, token.IDENT, token.EOF}, kinds(toks))
	assert.Equal(t, "truex", toks[3].Literal)
}

func TestNext_StringLiteral(t *testing.T) {
	toks := lexAll(t, `"hello\nworld" "a\"b"`)
	assert.Equal(t, []token.Type{token.STRING, token.STRING, token.EOF}, kinds(toks))
	assert.Equal(t, "hello\nworld", toks[0].Literal)
	assert.Equal(t, `a"b`, toks[1].Literal)
}

func TestNext_UnterminatedString(t *testing.T) {
	l := New(`"abc`)
	_, err := l.Next()
	assert.Error(t, err)
	lexErr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Contains(t, lexErr.Message, "unterminated")
}

func TestNext_UnknownEscape(t *testing.T) {
	l := New(`"a\qb"`)
	_, err := l.Next()
	assert.Error(t, err)
}

func TestNext_UnexpectedCharacter(t *testing.T) {
	l := New("@")
	_, err := l.Next()
	assert.Error(t, err)
}

func TestNext_SingleAmpersandIsError(t *testing.T) {
	l := New("&")
	_, err := l.Next()
	assert.Error(t, err)
}

func TestNext_SpansTrackOffsets(t *testing.T) {
	toks := lexAll(t, `12 + 3`)
	assert.Equal(t, 0, toks[0].Span.Start)
	assert.Equal(t, 2, toks[0].Span.End)
	assert.Equal(t, 3, toks[1].Span.Start)
}
