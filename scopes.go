package repr

import (
	"fmt"
	"reflect"
)

// scope is the shared bookkeeping of the four structural sub-formatters:
// which Printer it drives, the depth outside the scope, and whether any
// item has been written yet.
type scope struct {
	p     *Printer
	outer int
	wrote bool
}

// enterScope swaps in a fresh buffer, bumps the depth, and emits the
// optional name plus the opening delimiter into the new buffer. The
// previous buffer is returned for leaveScope.
func (p *Printer) enterScope(name, open string) (parent *buffer, s scope) {
	parent = p.buf
	p.buf = &buffer{}
	s = scope{p: p, outer: p.depth}
	p.depth++
	if name != "" {
		p.WriteStyled(StyleTypeName, name)
	}
	p.buf.push(textFrag(open))
	return parent, s
}

// leaveScope emits the trailing soft break (only when items were
// written, so the closing delimiter aligns with the opening line in
// multi-line mode), closes the delimiter, restores the parent buffer,
// and embeds the finished scope as a nested fragment.
func (p *Printer) leaveScope(parent *buffer, s *scope, close string) {
	if s.wrote {
		p.buf.push(softBreak{text: " ", indent: s.outer})
	}
	p.buf.push(textFrag(close))
	p.depth--
	child := p.buf
	p.buf = parent
	parent.push(nestedFrag{buf: child})
}

// item runs the separator protocol before each element: a comma for
// every element but the first, then a soft break that collapses to a
// space or expands to an indented newline.
func (s *scope) item() {
	if s.wrote {
		s.p.buf.push(textFrag(","))
	}
	s.p.buf.push(softBreak{text: " ", indent: s.p.depth})
	s.wrote = true
}

// Struct opens a struct-shaped scope and invokes fn to emit its fields.
// name renders before the opening brace; pass "" for anonymous shapes.
func (p *Printer) Struct(name string, fn func(*StructWriter)) {
	parent, s := p.enterScope(name, "{")
	w := &StructWriter{s: s}
	fn(w)
	p.leaveScope(parent, &w.s, "}")
}

// List opens a list-shaped scope and invokes fn to emit its entries.
func (p *Printer) List(name string, fn func(*ListWriter)) {
	parent, s := p.enterScope(name, "[")
	w := &ListWriter{s: s}
	fn(w)
	p.leaveScope(parent, &w.s, "]")
}

// Set opens a set-shaped scope and invokes fn to emit its entries.
func (p *Printer) Set(name string, fn func(*SetWriter)) {
	parent, s := p.enterScope(name, "{")
	w := &SetWriter{s: s}
	fn(w)
	p.leaveScope(parent, &w.s, "}")
}

// Map opens a map-shaped scope and invokes fn to emit its entries.
func (p *Printer) Map(name string, fn func(*MapWriter)) {
	parent, s := p.enterScope(name, "{")
	w := &MapWriter{s: s}
	fn(w)
	p.leaveScope(parent, &w.s, "}")
}

// StructWriter emits the fields of one struct-shaped scope.
type StructWriter struct {
	s scope
}

// Field writes one key/value pair. Keys that are not valid bare keys
// are quoted.
func (w *StructWriter) Field(key string, v any) {
	w.fieldValue(key, reflect.ValueOf(v))
}

func (w *StructWriter) fieldValue(key string, rv reflect.Value) {
	w.s.item()
	writeStructKey(w.s.p, key)
	w.s.p.Write(": ")
	w.s.p.formatValue(rv)
}

// fieldError renders an inline hint in place of a field whose read
// panicked.
func (w *StructWriter) fieldError(key string, r any) {
	w.s.item()
	writeStructKey(w.s.p, key)
	w.s.p.Write(": ")
	w.s.p.WriteStyled(StyleHint, fmt.Sprintf("<panic when accessing %s: %v>", key, r))
}

func writeStructKey(p *Printer, key string) {
	if isBareKey(key) {
		p.WriteStyled(StyleKey, key)
		return
	}
	p.WriteStyled(StyleKey, quoteString(key, 0))
}

// ListWriter emits the entries of one list-shaped scope.
type ListWriter struct {
	s scope
}

// Entry writes one list element.
func (w *ListWriter) Entry(v any) {
	w.entryValue(reflect.ValueOf(v))
}

func (w *ListWriter) entryValue(rv reflect.Value) {
	w.s.item()
	w.s.p.formatValue(rv)
}

// SetWriter emits the entries of one set-shaped scope.
type SetWriter struct {
	s scope
}

// Entry writes one set element.
func (w *SetWriter) Entry(v any) {
	w.entryValue(reflect.ValueOf(v))
}

func (w *SetWriter) entryValue(rv reflect.Value) {
	w.s.item()
	w.s.p.formatValue(rv)
}

// MapWriter emits the entries of one map-shaped scope.
type MapWriter struct {
	s scope
}

// Entry writes one key/value pair separated by "=>".
func (w *MapWriter) Entry(k, v any) {
	w.entryValue(reflect.ValueOf(k), reflect.ValueOf(v))
}

func (w *MapWriter) entryValue(k, v reflect.Value) {
	w.s.item()
	w.s.p.formatValue(k)
	w.s.p.Write(" => ")
	w.s.p.formatValue(v)
}
