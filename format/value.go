/*
File    : resl/format/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package format

import "github.com/akashmaji946/resl/value"

// Value renders v as RESL literal syntax in compact or pretty mode,
// backing the evaluate_and_format embedding op (spec.md §6.1 op 3):
// evaluate first, then format the resulting Value tree, using the same
// two-mode line-breaking rules §4.3 defines for List/Map source
// literals. Unlike a parsed List/Map literal, a value's entries are
// already fully reduced, so there are no child ASTs to reparenthesize -
// this is a strict subset of the AST printer's job.
func Value(v value.Value, pretty bool) string {
	p := &printer{pretty: pretty}
	p.printValue(v)
	out := p.buf.String()
	if pretty {
		out += "\n"
	}
	return out
}

func (p *printer) printValue(v value.Value) {
	if v == nil || v.Kind() == value.KindNull {
		p.emit("null")
		return
	}
	switch t := v.(type) {
	case value.Bool:
		if t {
			p.emit("true")
		} else {
			p.emit("false")
		}
	case value.Int:
		p.emit(t.CanonicalString())
	case value.Float:
		p.emit(t.CanonicalString())
	case value.Str:
		p.raw(escapeStr(string(t)))
	case *value.List:
		p.printListValue(t)
	case *value.Map:
		p.printMapValue(t)
	case *value.Fn:
		p.emit("<fn>")
	default:
		p.emit("null")
	}
}

func (p *printer) valueSpansMultipleLines(v value.Value) bool {
	switch t := v.(type) {
	case *value.List:
		return p.listValueNeedsLines(t.Elems)
	case *value.Map:
		return p.mapValueNeedsLines(t.Entries)
	default:
		return false
	}
}

func (p *printer) listValueNeedsLines(elems []value.Value) bool {
	if len(elems) >= 2 {
		return true
	}
	for _, e := range elems {
		if p.valueSpansMultipleLines(e) {
			return true
		}
	}
	return false
}

func (p *printer) mapValueNeedsLines(entries []value.MapEntry) bool {
	if len(entries) >= 2 {
		return true
	}
	for _, e := range entries {
		if p.valueSpansMultipleLines(e.Value) {
			return true
		}
	}
	return false
}

func (p *printer) printListValue(l *value.List) {
	p.raw("[")
	if p.pretty && p.listValueNeedsLines(l.Elems) {
		p.indent++
		p.raw("\n")
		for i, e := range l.Elems {
			p.writeIndent()
			p.printValue(e)
			if i < len(l.Elems)-1 {
				p.raw(",")
			}
			p.raw("\n")
		}
		p.indent--
		p.writeIndent()
	} else {
		for i, e := range l.Elems {
			if i > 0 {
				p.raw(",")
			}
			p.printValue(e)
		}
	}
	p.raw("]")
}

func (p *printer) printMapValue(m *value.Map) {
	p.raw("[")
	multiline := p.pretty && p.mapValueNeedsLines(m.Entries)
	if multiline {
		p.indent++
		p.raw("\n")
	}
	for i, e := range m.Entries {
		if multiline {
			p.writeIndent()
		} else if i > 0 {
			p.raw(",")
		}
		p.raw(escapeStr(e.Key))
		p.raw(":")
		p.printValue(e.Value)
		if multiline {
			if i < len(m.Entries)-1 {
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
}
