package repr

import (
	"reflect"
	"sync"
	"time"
)

// Representer lets a type take over its own rendering. Represent drives
// all further writes for the value through the supplied Printer; a
// failure inside it propagates to the caller.
type Representer interface {
	Represent(p *Printer)
}

// representers is the process-wide capability registry: append-mostly,
// typically populated at init time, safe for concurrent sessions.
var representers = struct {
	sync.RWMutex
	m map[reflect.Type]func(*Printer, reflect.Value)
}{m: make(map[reflect.Type]func(*Printer, reflect.Value))}

// Register installs a representation function for values of exactly
// type T, overriding default structural rendering. It is the path for
// types the caller does not own; types under the caller's control can
// implement [Representer] instead, which wins over the registry.
func Register[T any](fn func(p *Printer, v T)) {
	t := reflect.TypeFor[T]()
	representers.Lock()
	defer representers.Unlock()
	representers.m[t] = func(p *Printer, rv reflect.Value) {
		fn(p, rv.Interface().(T))
	}
}

func lookupRepresenter(t reflect.Type) (func(*Printer, reflect.Value), bool) {
	representers.RLock()
	defer representers.RUnlock()
	fn, ok := representers.m[t]
	return fn, ok
}

func init() {
	Register(func(p *Printer, t time.Time) {
		p.WriteStyled(StyleTime, t.Format(time.RFC3339Nano))
	})
	Register(func(p *Printer, d time.Duration) {
		p.WriteStyled(StyleTime, d.String())
	})
}
