package repr

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Test types: identity fixtures ---

type keyNode struct {
	Next *keyNode
}

// ============================================================
// Buffer and flush
// ============================================================

func flushOpts(pretty bool, maxComplexity int) flushOptions {
	return flushOptions{indent: "  ", maxComplexity: maxComplexity, pretty: pretty, style: NoStyle}
}

func TestBufferFlushSingleLine(t *testing.T) {
	t.Parallel()
	b := &buffer{}
	b.push(textFrag("{"))
	b.push(softBreak{text: " ", indent: 1})
	b.push(textFrag("a: 1"))
	b.push(softBreak{text: " ", indent: 0})
	b.push(textFrag("}"))

	res := b.flush(flushOpts(true, 3))
	assert.Equal(t, "{ a: 1 }", res.text)
	assert.Equal(t, 1, res.complexity)
	assert.False(t, res.multiline)
}

func TestBufferFlushThresholdBreaks(t *testing.T) {
	t.Parallel()
	b := &buffer{}
	b.push(textFrag("{"))
	b.push(softBreak{text: " ", indent: 1})
	b.push(textFrag("a: 1"))
	b.push(softBreak{text: " ", indent: 0})
	b.push(textFrag("}"))

	res := b.flush(flushOpts(true, 1))
	assert.Equal(t, "{\n  a: 1\n}", res.text)
	assert.True(t, res.multiline)
}

func TestBufferFlushCompactIgnoresBreaks(t *testing.T) {
	t.Parallel()
	b := &buffer{}
	b.push(textFrag("{"))
	b.push(softBreak{text: " ", indent: 1})
	b.push(textFrag("a: 1"))
	b.push(softBreak{text: " ", indent: 0})
	b.push(textFrag("}"))

	res := b.flush(flushOpts(false, 1))
	assert.Equal(t, "{ a: 1 }", res.text)
	assert.True(t, res.multiline)
}

func TestBufferFlushHardBreak(t *testing.T) {
	t.Parallel()
	pretty := &buffer{}
	pretty.push(textFrag("a"))
	pretty.push(hardBreak{indent: 1})
	pretty.push(textFrag("b"))

	res := pretty.flush(flushOpts(true, 0))
	assert.Equal(t, "a\n  b", res.text)
	assert.True(t, res.multiline)

	// A hard break has no single-line substitute: compact rendering
	// drops it entirely.
	compact := &buffer{}
	compact.push(textFrag("a"))
	compact.push(hardBreak{indent: 1})
	compact.push(textFrag("b"))

	res = compact.flush(flushOpts(false, 0))
	assert.Equal(t, "ab", res.text)
	assert.True(t, res.multiline)
}

func TestBufferComplexityAccumulates(t *testing.T) {
	t.Parallel()
	leaf1 := &buffer{}
	leaf1.push(textFrag("1"))
	leaf2 := &buffer{}
	leaf2.push(textFrag("2"))

	parent := &buffer{}
	parent.push(nestedFrag{buf: leaf1})
	parent.push(textFrag(","))
	parent.push(nestedFrag{buf: leaf2})

	res := parent.flush(flushOpts(true, 0))
	assert.Equal(t, "1,2", res.text)
	assert.Equal(t, 3, res.complexity)
	assert.False(t, res.multiline)
}

func TestBufferChildMultilinePropagates(t *testing.T) {
	t.Parallel()
	child := &buffer{}
	child.push(textFrag("a"))
	child.push(hardBreak{indent: 0})
	child.push(textFrag("b"))

	parent := &buffer{}
	parent.push(textFrag("["))
	parent.push(softBreak{text: " ", indent: 1})
	parent.push(nestedFrag{buf: child})
	parent.push(softBreak{text: " ", indent: 0})
	parent.push(textFrag("]"))

	res := parent.flush(flushOpts(true, 0))
	assert.Equal(t, "[\n  a\nb\n]", res.text)
	assert.True(t, res.multiline)
}

func TestBufferDeferredResolvesAtFlush(t *testing.T) {
	t.Parallel()
	show := false
	b := &buffer{}
	b.push(deferredFrag(func() []fragment {
		if !show {
			return nil
		}
		return []fragment{textFrag("#1 = ")}
	}))
	b.push(textFrag("x"))
	show = true

	res := b.flush(flushOpts(false, 0))
	assert.Equal(t, "#1 = x", res.text)
}

func TestBufferDeferredEmpty(t *testing.T) {
	t.Parallel()
	b := &buffer{}
	b.push(deferredFrag(func() []fragment { return nil }))
	b.push(textFrag("x"))

	res := b.flush(flushOpts(false, 0))
	assert.Equal(t, "x", res.text)
	assert.Equal(t, 1, res.complexity)
}

func TestBufferDeferredCountsNested(t *testing.T) {
	t.Parallel()
	leaf := &buffer{}
	leaf.push(textFrag("y"))

	b := &buffer{}
	b.push(deferredFrag(func() []fragment {
		return []fragment{textFrag("x"), nestedFrag{buf: leaf}}
	}))

	res := b.flush(flushOpts(false, 0))
	assert.Equal(t, "xy", res.text)
	assert.Equal(t, 2, res.complexity)
}

func TestBufferStyledMarkup(t *testing.T) {
	t.Parallel()
	marks := func(Style) (string, string) { return "<", ">" }

	b := &buffer{}
	b.push(styledFrag{style: StyleKey, inner: []fragment{textFrag("k")}})
	res := b.flush(flushOptions{indent: "  ", style: marks})
	assert.Equal(t, "<k>", res.text)
	assert.Equal(t, 1, res.complexity)
	assert.False(t, res.multiline)
}

func TestBufferTextSplitsNewlines(t *testing.T) {
	t.Parallel()
	b := &buffer{}
	b.text("a\nb", 2)

	require.Len(t, b.frags, 3)
	assert.Equal(t, textFrag("a"), b.frags[0])
	assert.Equal(t, hardBreak{indent: 2}, b.frags[1])
	assert.Equal(t, textFrag("b"), b.frags[2])

	res := b.flush(flushOpts(true, 0))
	assert.Equal(t, "a\n    b", res.text)
}

func TestFlushSplitsEmbeddedNewlines(t *testing.T) {
	t.Parallel()
	b := &buffer{}
	b.push(textFrag("a\nb"))

	res := b.flush(flushOpts(true, 0))
	assert.Equal(t, "a\nb", res.text)
	assert.True(t, res.multiline)
}

// ============================================================
// Reference tracking
// ============================================================

func TestRefTrackerNumbersByReEncounter(t *testing.T) {
	t.Parallel()
	tr := newRefTracker()
	x, y := 1, 2
	kx, ok := refIdentity(reflect.ValueOf(&x))
	require.True(t, ok)
	ky, ok := refIdentity(reflect.ValueOf(&y))
	require.True(t, ok)

	_, seen := tr.visit(kx)
	assert.False(t, seen)
	_, seen = tr.visit(ky)
	assert.False(t, seen)

	// y is re-encountered first, so it takes number 1.
	ey, seen := tr.visit(ky)
	assert.True(t, seen)
	assert.Equal(t, 1, ey.num)
	ex, seen := tr.visit(kx)
	assert.True(t, seen)
	assert.Equal(t, 2, ex.num)

	// Further visits bump the count but keep the number.
	ey2, _ := tr.visit(ky)
	assert.Equal(t, 1, ey2.num)
	assert.Equal(t, 2, ey2.count)
}

func TestRefIdentity(t *testing.T) {
	t.Parallel()
	x := 1
	m := map[string]int{"a": 1}
	s := []int{1, 2}
	var nilPtr *int
	var nilMap map[string]int
	var nilSlice []int

	tests := map[string]struct {
		input any
		want  bool
	}{
		"scalar":               {input: x, want: false},
		"pointer":              {input: &x, want: true},
		"nil pointer":          {input: nilPtr, want: false},
		"zero size ptr":        {input: &struct{}{}, want: false},
		"map":                  {input: m, want: true},
		"nil map":              {input: nilMap, want: false},
		"slice":                {input: s, want: true},
		"nil slice":            {input: nilSlice, want: false},
		"empty slice":          {input: []int{}, want: false},
		"zero size elem slice": {input: []struct{}{{}}, want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, ok := refIdentity(reflect.ValueOf(tt.input))
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestRefIdentitySlicesDifferByLength(t *testing.T) {
	t.Parallel()
	base := []int{1, 2, 3}
	ka, ok := refIdentity(reflect.ValueOf(base[:2]))
	require.True(t, ok)
	kb, ok := refIdentity(reflect.ValueOf(base[:3]))
	require.True(t, ok)
	assert.NotEqual(t, ka, kb)
}

// ============================================================
// Quoting and keys
// ============================================================

func TestQuoteString(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		max   int
		want  string
	}{
		"plain":      {input: "abc", want: `"abc"`},
		"escapes":    {input: "a\"b\\c", want: `"a\"b\\c"`},
		"controls":   {input: "\x00\n\r\v\t\b\f", want: `"\0\n\r\v\t\b\f"`},
		"truncated":  {input: "abcdefghij", max: 5, want: `"ab..."`},
		"wide runes": {input: "你好世界", max: 5, want: `"你..."`},
		"fits":       {input: "abc", max: 5, want: `"abc"`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, quoteString(tt.input, tt.max))
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  bool
	}{
		"simple":        {input: "valid_id", want: true},
		"underscore":    {input: "_x", want: true},
		"unicode":       {input: "héllo", want: true},
		"digit tail":    {input: "a1", want: true},
		"empty":         {input: "", want: false},
		"leading digit": {input: "1a", want: false},
		"dash":          {input: "foo-bar", want: false},
		"space":         {input: "a b", want: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isIdentifier(tt.input))
		})
	}
}

func TestNumericKey(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input  string
		want   uint64
		wantOK bool
	}{
		"zero":          {input: "0", want: 0, wantOK: true},
		"canonical":     {input: "42", want: 42, wantOK: true},
		"leading zero":  {input: "042", wantOK: false},
		"negative":      {input: "-1", wantOK: false},
		"float":         {input: "1.5", wantOK: false},
		"empty":         {input: "", wantOK: false},
		"alphanumeric":  {input: "4a", wantOK: false},
		"plus prefixed": {input: "+1", wantOK: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			n, ok := numericKey(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, n)
			}
		})
	}
}

func TestIsBareKey(t *testing.T) {
	t.Parallel()
	assert.True(t, isBareKey("valid_id"))
	assert.True(t, isBareKey("2"))
	assert.False(t, isBareKey("foo-bar"))
	assert.False(t, isBareKey("02"))
	assert.False(t, isBareKey(""))
}

// ============================================================
// Leaf helpers
// ============================================================

func TestFormatFloat(t *testing.T) {
	t.Parallel()
	negZero := math.Copysign(0, -1)
	tests := map[string]struct {
		input float64
		bits  int
		want  string
	}{
		"integral":      {input: 1, bits: 64, want: "1.0"},
		"fraction":      {input: 0.5, bits: 64, want: "0.5"},
		"exponent":      {input: 1e21, bits: 64, want: "1e+21"},
		"negative zero": {input: negZero, bits: 64, want: "-0.0"},
		"nan":           {input: math.NaN(), bits: 64, want: "NaN"},
		"positive inf":  {input: math.Inf(1), bits: 64, want: "+Inf"},
		"negative inf":  {input: math.Inf(-1), bits: 64, want: "-Inf"},
		"float32":       {input: float64(float32(0.1)), bits: 32, want: "0.1"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatFloat(tt.input, tt.bits))
		})
	}
}

func TestFuncHint(t *testing.T) {
	t.Parallel()
	got := funcHint(reflect.ValueOf(newRefTracker))
	assert.Contains(t, got, "newRefTracker")
	assert.True(t, strings.HasPrefix(got, "<func "))
	assert.True(t, strings.HasSuffix(got, ">"))
}

func TestIsSetElem(t *testing.T) {
	t.Parallel()
	assert.True(t, isSetElem(reflect.TypeOf(struct{}{})))
	assert.False(t, isSetElem(reflect.TypeOf(struct{ A int }{})))
	assert.False(t, isSetElem(reflect.TypeOf(0)))
}

// ============================================================
// Printer internals
// ============================================================

func TestGuardConvertsPanic(t *testing.T) {
	t.Parallel()
	p, err := New(Options{})
	require.NoError(t, err)

	panicked := p.guard("formatting", func() { panic("boom") })
	assert.True(t, panicked)
	assert.Equal(t, "<panic when formatting: boom>", p.String())
}

func TestGuardPassesThrough(t *testing.T) {
	t.Parallel()
	p, err := New(Options{})
	require.NoError(t, err)

	ran := false
	panicked := p.guard("formatting", func() { ran = true })
	assert.False(t, panicked)
	assert.True(t, ran)
	assert.Empty(t, p.String())
}

func TestElided(t *testing.T) {
	t.Parallel()
	p, err := New(Options{MaxDepth: 1})
	require.NoError(t, err)
	assert.False(t, p.elided())
	p.depth = 1
	assert.False(t, p.elided())
	p.depth = 2
	assert.True(t, p.elided())

	unlimited, err := New(Options{})
	require.NoError(t, err)
	unlimited.depth = 100
	assert.False(t, unlimited.elided())
}

func TestMaxComplexityResolution(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts Options
		want int
	}{
		"compact default": {opts: Options{}, want: 0},
		"pretty default":  {opts: Options{Pretty: true}, want: DefaultMaxComplexity},
		"explicit":        {opts: Options{Pretty: true, MaxComplexity: 5}, want: 5},
		"unlimited":       {opts: Options{Pretty: true, MaxComplexity: Unlimited}, want: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.opts.maxComplexity())
		})
	}
}

func TestValidateNamesField(t *testing.T) {
	t.Parallel()
	assert.ErrorContains(t, Options{Depth: -1}.validate(), "Depth")
	assert.ErrorContains(t, Options{MaxDepth: -1}.validate(), "MaxDepth")
	assert.ErrorContains(t, Options{MaxComplexity: -2}.validate(), "MaxComplexity")
	assert.ErrorContains(t, Options{MaxString: -1}.validate(), "MaxString")
}

func TestSortedMapEntries(t *testing.T) {
	t.Parallel()
	m := map[any]int{"b": 0, "2": 0, 1: 0, 2.5: 0, true: 0, "a": 0}
	entries := sortedMapEntries(reflect.ValueOf(m))

	got := make([]string, len(entries))
	for i, e := range entries {
		got[i] = scratchText(e.key)
	}
	want := []string{"1", "2.5", `"2"`, `"a"`, `"b"`, "true"}
	assert.Equal(t, want, got)
}

func TestSortedMapEntriesKeepsNaNKeys(t *testing.T) {
	t.Parallel()
	m := map[float64]string{}
	m[math.NaN()] = "x"
	m[math.NaN()] = "y"

	// NaN never equals itself, so each insertion lands in its own entry
	// and no lookup could ever find either again.
	entries := sortedMapEntries(reflect.ValueOf(m))
	require.Len(t, entries, 2)
	assert.Equal(t, "x", entries[0].val.String())
	assert.Equal(t, "y", entries[1].val.String())
}

func TestCompareKeysExactIntegers(t *testing.T) {
	t.Parallel()
	lo := rankKey(reflect.ValueOf(uint64(1 << 62)))
	hi := rankKey(reflect.ValueOf(uint64(1<<62 + 1)))
	require.Equal(t, lo.num, hi.num)
	assert.Equal(t, -1, compareKeys(lo, hi))
	assert.Equal(t, 1, compareKeys(hi, lo))

	neg := rankKey(reflect.ValueOf(int64(-1 << 62)))
	lower := rankKey(reflect.ValueOf(int64(-1<<62 - 1)))
	require.Equal(t, neg.num, lower.num)
	assert.Equal(t, -1, compareKeys(lower, neg))
}

func TestCompareKeysNaNFirst(t *testing.T) {
	t.Parallel()
	nan := rankKey(reflect.ValueOf(math.NaN()))
	one := rankKey(reflect.ValueOf(1.0))
	assert.Equal(t, -1, compareKeys(nan, one))
	assert.Equal(t, 1, compareKeys(one, nan))
	assert.Equal(t, 0, compareKeys(nan, nan))
}

func TestCompareKeysPointerTiebreak(t *testing.T) {
	t.Parallel()
	x, y := 1, 1
	a := rankKey(reflect.ValueOf(&x))
	b := rankKey(reflect.ValueOf(&y))

	// Both render as &1, so only identity separates them.
	require.Equal(t, a.str, b.str)
	assert.NotZero(t, a.id)
	assert.NotEqual(t, a.id, b.id)
	assert.NotEqual(t, 0, compareKeys(a, b))
	assert.Equal(t, -compareKeys(b, a), compareKeys(a, b))
}

func TestScratchTextTerminatesOnCycles(t *testing.T) {
	t.Parallel()
	n := &keyNode{}
	n.Next = n
	got := scratchText(reflect.ValueOf(n))
	assert.Equal(t, "#1 = &keyNode{ Next: #1# }", got)
}

func TestWriteStyledSplitsNewlines(t *testing.T) {
	t.Parallel()
	p, err := New(Options{Pretty: true})
	require.NoError(t, err)
	p.WriteStyled(StyleHint, "x\ny")
	assert.Equal(t, "x\ny", p.String())
}
