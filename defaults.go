package repr

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"runtime"
	"slices"
	"strconv"
	"strings"
)

// formatDefault renders a value that declared no custom representation.
func (p *Printer) formatDefault(v reflect.Value) {
	switch v.Kind() {
	case reflect.Bool:
		p.WriteStyled(StyleBool, strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		p.WriteStyled(StyleNumber, strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		p.WriteStyled(StyleNumber, strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		p.WriteStyled(StyleNumber, formatFloat(v.Float(), 32))
	case reflect.Float64:
		p.WriteStyled(StyleNumber, formatFloat(v.Float(), 64))
	case reflect.Complex64:
		p.WriteStyled(StyleNumber, strconv.FormatComplex(v.Complex(), 'g', -1, 64))
	case reflect.Complex128:
		p.WriteStyled(StyleNumber, strconv.FormatComplex(v.Complex(), 'g', -1, 128))
	case reflect.String:
		p.WriteStyled(StyleString, quoteString(v.String(), p.opts.MaxString))
	case reflect.Pointer:
		p.Write("&")
		p.formatValue(v.Elem())
	case reflect.Struct:
		p.formatStruct(v)
	case reflect.Map:
		p.formatMap(v)
	case reflect.Slice, reflect.Array:
		p.formatList(v)
	case reflect.Func:
		p.WriteStyled(StyleHint, funcHint(v))
	case reflect.Chan:
		p.WriteStyled(StyleHint, "<"+v.Type().String()+">")
	case reflect.UnsafePointer:
		p.WriteStyled(StyleHint, fmt.Sprintf("<unsafe.Pointer %#x>", v.Pointer()))
	default:
		p.WriteStyled(StyleHint, "<"+v.Type().String()+">")
	}
}

// elided reports whether composites at the current depth are replaced by
// a placeholder. The placeholder is plain styled text, so an elided
// subtree contributes nothing to complexity.
func (p *Printer) elided() bool {
	return p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth
}

func (p *Printer) writeElision() {
	p.WriteStyled(StyleHint, "...")
}

func (p *Printer) formatStruct(v reflect.Value) {
	if p.elided() {
		p.writeElision()
		return
	}
	t := v.Type()
	p.Struct(t.Name(), func(w *StructWriter) {
		for i := range t.NumField() {
			name := t.Field(i).Name
			fv, rerr := readField(v, i)
			if rerr != nil {
				w.fieldError(name, rerr)
				continue
			}
			w.fieldValue(name, fv)
		}
	})
}

func (p *Printer) formatMap(v reflect.Value) {
	if p.elided() {
		p.writeElision()
		return
	}
	t := v.Type()
	name := t.Name()
	entries := sortedMapEntries(v)
	switch {
	case isSetElem(t.Elem()):
		p.Set(name, func(w *SetWriter) {
			for _, e := range entries {
				w.entryValue(e.key)
			}
		})
	case t.Key().Kind() == reflect.String:
		p.Struct(name, func(w *StructWriter) {
			for _, e := range entries {
				w.fieldValue(e.key.String(), e.val)
			}
		})
	default:
		p.Map(name, func(w *MapWriter) {
			for _, e := range entries {
				w.entryValue(e.key, e.val)
			}
		})
	}
}

// isSetElem reports whether a map with this element type renders as a
// set: empty struct values carry no information.
func isSetElem(t reflect.Type) bool {
	return t.Kind() == reflect.Struct && t.NumField() == 0
}

func (p *Printer) formatList(v reflect.Value) {
	if p.elided() {
		p.writeElision()
		return
	}
	p.List(v.Type().Name(), func(w *ListWriter) {
		for i := range v.Len() {
			w.entryValue(v.Index(i))
		}
	})
}

// --- Key ordering ---

// Key classes order heterogeneous map keys deterministically: numeric
// kinds first, then canonical numeric strings, then remaining strings,
// then everything else by rendered form.
const (
	keyNumeric = iota
	keyNumericString
	keyString
	keyOther
)

// rankedKey carries everything key comparison needs. num is a coarse
// float projection of numeric keys; inum and unum keep the exact
// integer, so keys that collapse to the same float still order exactly.
// id breaks ties between reference keys whose rendered forms coincide.
type rankedKey struct {
	class int
	num   float64
	inum  int64
	unum  uint64
	str   string
	id    uintptr
}

// mapEntry is one key/value pair read during map iteration. Reads are
// eager because a NaN key can never be looked up again; the value has
// to travel with the key from iteration to rendering.
type mapEntry struct {
	key  reflect.Value
	val  reflect.Value
	rank rankedKey
}

// sortedMapEntries reads v's entries and orders them: numeric keys
// ascending with NaN first, numeric-looking string keys ascending by
// value, remaining strings in lexical order, all other key types last
// ordered by their rendered representation. Entries still tied after
// that are ordered by their rendered values, so repeated NaN keys come
// out the same way every time.
func sortedMapEntries(v reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, v.Len())
	it := v.MapRange()
	for it.Next() {
		k := it.Key()
		entries = append(entries, mapEntry{key: k, val: it.Value(), rank: rankKey(k)})
	}
	slices.SortStableFunc(entries, func(a, b mapEntry) int {
		if c := compareKeys(a.rank, b.rank); c != 0 {
			return c
		}
		return cmp.Compare(scratchText(a.val), scratchText(b.val))
	})
	return entries
}

func compareKeys(a, b rankedKey) int {
	if c := cmp.Compare(a.class, b.class); c != 0 {
		return c
	}
	switch a.class {
	case keyNumeric:
		if c := cmp.Compare(a.num, b.num); c != 0 {
			return c
		}
		if c := cmp.Compare(a.inum, b.inum); c != 0 {
			return c
		}
		return cmp.Compare(a.unum, b.unum)
	case keyNumericString:
		return cmp.Compare(a.unum, b.unum)
	default:
		if c := cmp.Compare(a.str, b.str); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	}
}

func rankKey(k reflect.Value) rankedKey {
	d := k
	for d.Kind() == reflect.Interface && !d.IsNil() {
		d = d.Elem()
	}
	switch d.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := d.Int()
		return rankedKey{class: keyNumeric, num: float64(n), inum: n}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := d.Uint()
		return rankedKey{class: keyNumeric, num: float64(n), unum: n}
	case reflect.Float32, reflect.Float64:
		return rankedKey{class: keyNumeric, num: d.Float()}
	case reflect.String:
		s := d.String()
		if n, ok := numericKey(s); ok {
			return rankedKey{class: keyNumericString, unum: n}
		}
		return rankedKey{class: keyString, str: s}
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return rankedKey{class: keyOther, str: scratchText(k), id: d.Pointer()}
	default:
		return rankedKey{class: keyOther, str: scratchText(k)}
	}
}

// scratchText renders a value through a throwaway compact session, used
// to order keys with no natural comparison and to break entry ties by
// value.
func scratchText(v reflect.Value) string {
	p, err := New(Options{})
	if err != nil {
		return ""
	}
	p.formatValue(v)
	return p.String()
}

// --- Leaf rendering helpers ---

// formatFloat renders the shortest round-trip form, keeping a ".0"
// suffix on integral finite values so floats stay distinguishable from
// ints.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func funcHint(v reflect.Value) string {
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
		if name := fn.Name(); name != "" {
			return "<func " + name + ">"
		}
	}
	return "<func>"
}

// --- Guarded member reads ---

// readField reads struct field i, converting a panic from a hostile
// access into a value the caller renders as an inline hint.
func readField(v reflect.Value, i int) (fv reflect.Value, rerr any) {
	defer func() {
		if r := recover(); r != nil {
			rerr = r
		}
	}()
	return v.Field(i), nil
}
