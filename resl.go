/*
File    : resl/resl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resl is the embedding surface of the RESL language core
// (spec.md §6.1): three entry points - Format, Evaluate, and
// EvaluateAndFormat - plus a marshaled Value representation for callers
// outside this module's type system (FFI bindings, a future CLI, import
// adapters). Everything downstream of parsing is a pure function of its
// input (spec.md §6.4: "no persisted state").
package resl

import (
	"github.com/akashmaji946/resl/ast"
	"github.com/akashmaji946/resl/env"
	"github.com/akashmaji946/resl/evalr"
	"github.com/akashmaji946/resl/format"
	"github.com/akashmaji946/resl/parser"
	"github.com/akashmaji946/resl/value"
)

// Format parses input and renders it back to source text in compact
// (pretty=false) or pretty (pretty=true) form (spec.md §6.1 op 1).
func Format(input string, pretty bool) (string, *parser.ParseError) {
	n, err := parser.Parse(input)
	if err != nil {
		return "", err
	}
	return format.Format(n, pretty), nil
}

// Evaluate parses and evaluates input to a final Value (spec.md §6.1 op
// 2). Evaluation itself cannot fail once parsing succeeds (spec.md
// §4.7); only a ParseError can prevent a result.
func Evaluate(input string) (value.Value, *parser.ParseError) {
	n, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}
	return evalr.New().Eval(n, env.New()), nil
}

// EvaluateAndFormat parses, evaluates, and renders the resulting Value
// as RESL literal syntax (spec.md §6.1 op 3) - the composition CLIs use
// to print a program's result rather than its source.
func EvaluateAndFormat(input string, pretty bool) (string, *parser.ParseError) {
	n, err := parser.Parse(input)
	if err != nil {
		return "", err
	}
	v := evalr.New().Eval(n, env.New())
	return format.Value(v, pretty), nil
}

// Parse exposes the parser directly for callers that want the AST
// itself (e.g. to drive both Format and Evaluate over one parse without
// paying for it twice).
func Parse(input string) (ast.Node, *parser.ParseError) {
	return parser.Parse(input)
}
