package repr

import (
	"fmt"
	"reflect"
)

// maxUnwrap bounds the Unwrap hook loop so a hook that never reports
// done cannot hang the walk.
const maxUnwrap = 32

// Printer is one formatting session. It owns the active buffer, the
// depth counter, and the reference tracker, and is discarded after
// producing its output. A Printer is not safe for concurrent use;
// concurrent sessions each need their own Printer.
type Printer struct {
	opts          Options
	maxComplexity int
	style         Styler
	buf           *buffer
	depth         int
	refs          *refTracker
	out           string
	done          bool
}

// New returns a Printer configured by opts. Callers compose custom
// renderings by driving [Printer.Format], [Printer.Write], and the
// scope methods directly, then finishing with [Printer.String]. Most
// uses go through [String], [Pretty], or [Format] instead.
func New(opts Options) (*Printer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	style := opts.Style
	if style == nil {
		style = NoStyle
	}
	return &Printer{
		opts:          opts,
		maxComplexity: opts.maxComplexity(),
		style:         style,
		buf:           &buffer{},
		depth:         opts.Depth,
		refs:          newRefTracker(),
	}, nil
}

// Write appends literal text to the current buffer. Embedded newlines
// become hard breaks at the current depth.
func (p *Printer) Write(s string) {
	p.buf.text(s, p.depth)
}

// WriteStyled appends literal text wrapped in the given style tag.
func (p *Printer) WriteStyled(st Style, s string) {
	scratch := &buffer{}
	scratch.text(s, p.depth)
	p.buf.push(styledFrag{style: st, inner: scratch.frags})
}

// Newline appends an unconditional line break at the current depth.
// Under compact rendering it collapses to nothing.
func (p *Printer) Newline() {
	p.buf.push(hardBreak{indent: p.depth})
}

// Format writes the representation of v to the current buffer.
func (p *Printer) Format(v any) {
	p.formatValue(reflect.ValueOf(v))
}

// String flushes the root buffer and returns the session's output. The
// result is computed once and cached; a Printer formats one value graph
// and must not be written to after String.
func (p *Printer) String() string {
	if !p.done {
		p.done = true
		res := p.buf.flush(flushOptions{
			depth:         p.opts.Depth,
			indent:        p.opts.Indent,
			maxComplexity: p.maxComplexity,
			pretty:        p.opts.Pretty,
			style:         p.style,
		})
		p.out = res.text
	}
	return p.out
}

// formatValue dispatches one value: nil short-circuits, identity-bearing
// values run cycle detection, then a custom representation capability is
// consulted, and only then the per-kind defaults.
func (p *Printer) formatValue(v reflect.Value) {
	if !v.IsValid() {
		p.WriteStyled(StyleNil, "nil")
		return
	}
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			p.WriteStyled(StyleNil, "nil")
			return
		}
		v = v.Elem()
	}

	if p.opts.Unwrap != nil {
		var ok bool
		if v, ok = p.unwrap(v); !ok {
			return
		}
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if v.IsNil() {
			p.WriteStyled(StyleNil, "nil")
			return
		}
	}

	if k, ok := refIdentity(v); ok {
		e, seen := p.refs.visit(k)
		if seen {
			p.WriteStyled(StyleRef, fmt.Sprintf("#%d#", e.num))
			return
		}
		// Rendered at flush time: by then the count is final, so the
		// marker appears only when the value really was re-encountered.
		p.buf.push(deferredFrag(func() []fragment {
			if e.count == 0 {
				return nil
			}
			marker := textFrag(fmt.Sprintf("#%d = ", e.num))
			return []fragment{styledFrag{style: StyleRef, inner: []fragment{marker}}}
		}))
	}

	// Capability lookup is the introspection guard point: a failure here
	// renders a hint and skips the value. The representer call itself is
	// outside the guard, so representer failures propagate to the caller.
	var rep func()
	if v.CanInterface() {
		if p.guard("formatting", func() {
			iv := v.Interface()
			if r, ok := iv.(Representer); ok {
				rep = func() { r.Represent(p) }
				return
			}
			if fn, ok := lookupRepresenter(v.Type()); ok {
				rep = func() { fn(p, v) }
			}
		}) {
			return
		}
	}
	if rep != nil {
		rep()
		return
	}

	p.formatDefault(v)
}

// unwrap applies the Unwrap hook, noting a hint per peeled layer. The
// returned value is the innermost one; ok is false when the hook chain
// bottomed out in nil (already rendered).
func (p *Printer) unwrap(v reflect.Value) (reflect.Value, bool) {
	for range maxUnwrap {
		if !v.CanInterface() {
			break
		}
		inner, ok := p.opts.Unwrap(v.Interface())
		if !ok {
			break
		}
		p.WriteStyled(StyleHint, "<wrapped>")
		p.Write(" ")
		v = reflect.ValueOf(inner)
		if !v.IsValid() {
			p.WriteStyled(StyleNil, "nil")
			return v, false
		}
	}
	return v, true
}

// guard runs fn, converting a panic into an inline styled hint so
// hostile metadata cannot abort the whole pass. It reports whether fn
// panicked.
func (p *Printer) guard(context string, fn func()) (panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			p.WriteStyled(StyleHint, fmt.Sprintf("<panic when %s: %v>", context, r))
			panicked = true
		}
	}()
	fn()
	return false
}
