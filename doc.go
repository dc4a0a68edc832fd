// Package repr renders arbitrary Go values as deterministic,
// human-readable text, optionally pretty-printed across multiple lines.
//
// The central entry points are [String], [Pretty], [Format], and
// [Write]. Any value works, including cyclic object graphs: repeated
// identities are expanded once and referenced with #n markers
// afterwards, so formatting always terminates.
//
//	repr.String(map[string]int{"a": 1})   // { a: 1 }
//	repr.Pretty(deeplyNested)             // multi-line, indented
//
// # Layout
//
// Rendering is buffered and layout-deferred: the value walk emits
// fragments (text, breaks, styled spans, nested buffers) and a flush
// pass decides single-line versus multi-line per subtree, based on its
// structural complexity. A subtree renders multi-line when it contains
// an unconditional break or when its complexity reaches
// [Options.MaxComplexity]; with [Options.Pretty] unset, output is
// forced onto a single line. Complexity counts nested composite scopes,
// not characters, so a large flat object stays on one line while a
// deeply structured one expands.
//
// # Cycles and shared values
//
// Pointers, maps, and non-empty slices are tracked by identity during a
// session. The first re-encounter assigns a reference number: the
// expanded occurrence is prefixed with "#n = " and every later
// occurrence renders as "#n#". Values visited once carry no markers.
//
//	type node struct {
//		Name string
//		Next *node
//	}
//	// a -> b -> a
//	repr.String(a) // #1 = &node{ Name: "a", Next: &node{ Name: "b", Next: #1# } }
//
// # Default rendering
//
// Structs render as name{ field: value } with fields in declaration
// order, unexported fields included. String-keyed maps render
// struct-shaped with keys sorted (numeric-looking keys first in
// ascending order, then lexical); other maps use { k => v } entries;
// maps to struct{} render as sets. Slices and arrays render as
// [ elem, ... ]. Strings are quoted with control characters escaped.
// Funcs and channels render as bracketed hints. nil renders as nil.
//
// # Custom representations
//
// A type takes over its own rendering by implementing [Representer];
// for types outside the caller's control, [Register] installs a
// representation function in a process-wide registry. time.Time and
// time.Duration are pre-registered.
//
//	repr.Register(func(p *repr.Printer, id UserID) {
//		p.WriteStyled(repr.StyleNumber, id.Short())
//	})
//
// Representers drive the engine directly: [Printer.Write],
// [Printer.Format], and the scope methods [Printer.Struct],
// [Printer.List], [Printer.Set], and [Printer.Map] compose nested
// output with the same layout rules as the defaults.
//
// # Styling
//
// Output spans carry semantic [Style] tags resolved through a [Styler]:
// [NoStyle] (the default), [ANSIStyle] for terminal colors, or
// [AutoStyle] which picks per destination. Styling never affects
// layout.
//
// # Options
//
// [Options] controls rendering: [Options.Pretty], [Options.Indent],
// [Options.Depth], [Options.MaxDepth] (elision of deep subtrees),
// [Options.MaxComplexity], [Options.MaxString] (display-width string
// truncation), [Options.Style], and [Options.Unwrap]. Invalid values
// surface as [ErrInvalidOption] from [Format], [Write], or [New].
//
// # Streaming and logging
//
// [WriteIter] and [WriteChan] format a stream of values one line each.
// [Console] and the package-level [Log] join strings and formatted
// values for debugging output:
//
//	repr.Log("state:", srv.State())
//
// # Errors
//
// Formatting is best-effort: a panic while reading a struct field
// renders as an inline hint and sibling fields continue; a panic while
// resolving a value's capability renders as a hint and skips the value.
// Panics raised inside a custom representer are not absorbed and
// propagate to the caller.
package repr
