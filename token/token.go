/*
File    : resl/token/token.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package token defines the lexical token set of RESL, as enumerated in
// spec.md §4.1.
package token

import "github.com/akashmaji946/resl/span"

// Type identifies the lexical category of a Token.
type Type string

// Token kinds. Names mirror spec.md §4.1 exactly.
const (
	LBRACE   Type = "LBRACE"
	RBRACE   Type = "RBRACE"
	LBRACKET Type = "LBRACKET"
	RBRACKET Type = "RBRACKET"
	LPAREN   Type = "LPAREN"
	RPAREN   Type = "RPAREN"
	COMMA    Type = "COMMA"
	COLON    Type = "COLON"
	SEMI     Type = "SEMI"
	PIPE     Type = "PIPE"
	QMARK    Type = "QMARK"

	GT   Type = "GT"
	LT   Type = "LT"
	EQ   Type = "EQ"
	NEQ  Type = "NEQ"
	LEQ  Type = "LEQ"
	GEQ  Type = "GEQ"
	PLUS Type = "PLUS"

	MINUS  Type = "MINUS"
	STAR   Type = "STAR"
	SLASH  Type = "SLASH"
	PERCENT Type = "PERCENT"
	BANG   Type = "BANG"
	ANDAND Type = "ANDAND"
	OROR   Type = "OROR"
	ASSIGN Type = "ASSIGN"

	IDENT  Type = "IDENT"
	INT    Type = "INT"
	FLOAT  Type = "FLOAT"
	STRING Type = "STRING"
	TRUE   Type = "TRUE"
	FALSE  Type = "FALSE"
	NULL   Type = "NULL"
	EOF    Type = "EOF"
)

// Token is a single lexical unit: its kind, its span in the source, and
// (for IDENT/INT/FLOAT/STRING) the literal text it was scanned from.
type Token struct {
	Kind    Type
	Literal string
	Span    span.Span
}

// keywords maps reserved words to their token kind. Anything not in this
// table that looks like an identifier lexes as IDENT.
var keywords = map[string]Type{
	"true":  TRUE,
	"false": FALSE,
	"null":  NULL,
}

// LookupIdent classifies an identifier-shaped lexeme as a keyword token
// kind, or as IDENT if it is not reserved.
func LookupIdent(ident string) Type {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return IDENT
}

// String returns a short human-readable form of the token, used in parser
// error messages ("expected RBRACE, found COMMA(,)").
func (t Token) String() string {
	if t.Literal != "" {
		return string(t.Kind) + "(" + t.Literal + ")"
	}
	return string(t.Kind)
}
