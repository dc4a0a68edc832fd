package repr

// A fragment is a deferred unit of output. Fragments describe possible
// renderings; nothing is committed to text until the owning buffer is
// flushed, because the single-line vs. multi-line decision depends on
// content that may not have been visited yet.
type fragment interface {
	fragment()
}

// textFrag is literal content with no layout freedom.
type textFrag string

// hardBreak is an unconditional line break at the given indent level.
// Any hardBreak reached during a flush forces that buffer to multi-line
// mode.
type hardBreak struct {
	indent int
}

// softBreak renders as text when the enclosing buffer stays single-line,
// or as a newline plus indentation when it goes multi-line.
type softBreak struct {
	text   string
	indent int
}

// styledFrag wraps inner fragments with enter/exit markup resolved
// through the style processor at flush time. Markup never participates
// in the layout decision.
type styledFrag struct {
	style Style
	inner []fragment
}

// deferredFrag produces fragments lazily during flush. Used for content
// whose final text depends on state only settled once the walk is
// complete, such as reference numbers.
type deferredFrag func() []fragment

// nestedFrag embeds an independently flushed child buffer.
type nestedFrag struct {
	buf *buffer
}

func (textFrag) fragment()     {}
func (hardBreak) fragment()    {}
func (softBreak) fragment()    {}
func (styledFrag) fragment()   {}
func (deferredFrag) fragment() {}
func (nestedFrag) fragment()   {}
