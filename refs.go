package repr

import "reflect"

// refKey identifies a value by runtime identity. typ disambiguates
// distinct values sharing an address (a struct and its first field);
// len disambiguates slices sharing a backing array.
type refKey struct {
	addr uintptr
	typ  reflect.Type
	len  int
}

// refEntry records how often one identity was encountered in a session.
// num stays zero until the first re-encounter, when it is assigned from
// the session counter; identities visited exactly once never receive a
// number and render no marker.
type refEntry struct {
	count int
	num   int
}

// refTracker holds the per-session identity map and reference counter.
// One tracker per Printer; nothing here is shared across sessions.
type refTracker struct {
	entries map[refKey]*refEntry
	next    int
}

func newRefTracker() *refTracker {
	return &refTracker{entries: make(map[refKey]*refEntry)}
}

// refIdentity reports the identity of v, or ok=false when v has no
// usable identity. Pointers to zero-size types share addresses and
// cannot hold cycles, so they are excluded; likewise empty slices and
// slices of zero-size elements, which share the runtime zero base even
// when non-empty.
func refIdentity(v reflect.Value) (refKey, bool) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() || v.Type().Elem().Size() == 0 {
			return refKey{}, false
		}
		return refKey{addr: v.Pointer(), typ: v.Type()}, true
	case reflect.Map:
		if v.IsNil() {
			return refKey{}, false
		}
		return refKey{addr: v.Pointer(), typ: v.Type()}, true
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 || v.Type().Elem().Size() == 0 {
			return refKey{}, false
		}
		return refKey{addr: v.Pointer(), typ: v.Type(), len: v.Len()}, true
	default:
		return refKey{}, false
	}
}

// visit registers k on its first visit and returns seen=false; on later
// visits it increments the count, lazily assigns the reference number,
// and returns seen=true.
func (t *refTracker) visit(k refKey) (e *refEntry, seen bool) {
	if e = t.entries[k]; e != nil {
		e.count++
		if e.num == 0 {
			t.next++
			e.num = t.next
		}
		return e, true
	}
	e = &refEntry{}
	t.entries[k] = e
	return e, false
}
