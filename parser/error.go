/*
File    : resl/parser/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/resl/span"
)

// ErrorKind distinguishes the two failure sources spec.md §7 names. Both
// surface through the same ParseError type and the same error channel -
// a caller never needs to branch on Kind to handle a failure, it is
// recorded for diagnostics only.
type ErrorKind int

const (
	// Lex marks a failure the lexer detected: an invalid character, an
	// unterminated string, an unknown escape sequence.
	Lex ErrorKind = iota
	// Syntax marks a structural failure the parser detected: an
	// unexpected token, a malformed block, an ambiguous collection.
	Syntax
)

func (k ErrorKind) String() string {
	if k == Lex {
		return "lex"
	}
	return "parse"
}

// ParseError is the sole failure channel for the RESL front end
// (spec.md §7). It carries a Kind, a human-readable Message, the Span
// of the offending text, and the source it was parsed from so Render
// can produce a caret-annotated snippet on demand.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Span    span.Span
	src     string
}

func (e *ParseError) Error() string {
	pos := span.Locate(e.src, e.Span.Start)
	return fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, e.Message)
}

// Render returns the error message followed by a caret-annotated
// snippet of the source around Span, suitable for display in a
// terminal or log.
func (e *ParseError) Render() string {
	return e.Error() + "\n" + span.Snippet(e.src, e.Span)
}
