package repr

import "strings"

// buffer is an ordered, append-only fragment sequence for one formatting
// scope. Buffers are single-use: flush consumes them exactly once,
// recursively flushing nested buffers bottom-up.
type buffer struct {
	frags []fragment
}

func (b *buffer) push(f fragment) {
	b.frags = append(b.frags, f)
}

// text appends literal content, converting embedded newlines into hard
// breaks at the given depth so multi-line literals still respond to the
// ambient indentation.
func (b *buffer) text(s string, depth int) {
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			break
		}
		if i > 0 {
			b.push(textFrag(s[:i]))
		}
		b.push(hardBreak{indent: depth})
		s = s[i+1:]
	}
	if s != "" {
		b.push(textFrag(s))
	}
}

// flushOptions carry the resolved engine configuration down the flush
// recursion. maxComplexity <= 0 disables the threshold.
type flushOptions struct {
	depth         int
	indent        string
	maxComplexity int
	pretty        bool
	style         Styler
}

func (o flushOptions) nested() flushOptions {
	o.depth++
	return o
}

// flushResult is the resolved form of one buffer: its final text, its
// structural complexity (1 + sum of nested buffer complexities), and
// whether it rendered multi-line.
type flushResult struct {
	text       string
	complexity int
	multiline  bool
}

// piece is one element of the flattened fragment walk: literal text, or
// a break placeholder awaiting the layout decision. alt is the break's
// single-line substitute, empty for hard breaks.
type piece struct {
	text   string
	brk    bool
	alt    string
	indent int
}

// flush resolves the buffer bottom-up. The walk flattens fragments into
// pieces while accumulating complexity and the multiline flag; only
// after the walk completes can breaks be rendered, since the layout
// decision depends on the whole subtree.
func (b *buffer) flush(opts flushOptions) flushResult {
	var (
		pieces    []piece
		nested    int
		multiline bool
	)
	var walk func(frags []fragment)
	walk = func(frags []fragment) {
		for _, f := range frags {
			switch f := f.(type) {
			case textFrag:
				s := string(f)
				for {
					i := strings.IndexByte(s, '\n')
					if i < 0 {
						break
					}
					if i > 0 {
						pieces = append(pieces, piece{text: s[:i]})
					}
					multiline = true
					pieces = append(pieces, piece{brk: true, indent: opts.depth})
					s = s[i+1:]
				}
				if s != "" {
					pieces = append(pieces, piece{text: s})
				}
			case hardBreak:
				multiline = true
				pieces = append(pieces, piece{brk: true, indent: f.indent})
			case softBreak:
				pieces = append(pieces, piece{brk: true, alt: f.text, indent: f.indent})
			case styledFrag:
				enter, exit := opts.style(f.style)
				if enter != "" {
					pieces = append(pieces, piece{text: enter})
				}
				walk(f.inner)
				if exit != "" {
					pieces = append(pieces, piece{text: exit})
				}
			case deferredFrag:
				walk(f())
			case nestedFrag:
				child := f.buf.flush(opts.nested())
				if child.text != "" {
					pieces = append(pieces, piece{text: child.text})
				}
				nested += child.complexity
				multiline = multiline || child.multiline
			}
		}
	}
	walk(b.frags)

	complexity := 1 + nested
	if opts.maxComplexity > 0 && complexity >= opts.maxComplexity {
		multiline = true
	}

	var sb strings.Builder
	for _, p := range pieces {
		switch {
		case !p.brk:
			sb.WriteString(p.text)
		case multiline && opts.pretty:
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(opts.indent, p.indent))
		default:
			sb.WriteString(p.alt)
		}
	}
	return flushResult{text: sb.String(), complexity: complexity, multiline: multiline}
}
