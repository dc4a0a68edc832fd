package repr

import (
	"io"
	"iter"
)

// WriteIter formats values from an iterator and writes each on its own
// line as it arrives. Every value is an independent formatting session,
// so reference numbering restarts per value.
func WriteIter[T any](w io.Writer, opts Options, seq iter.Seq[T]) error {
	if err := opts.validate(); err != nil {
		return err
	}
	var werr error
	seq(func(v T) bool {
		s, err := Format(v, opts)
		if err != nil {
			werr = err
			return false
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			werr = err
			return false
		}
		return true
	})
	return werr
}

// WriteChan formats values from a channel and writes each on its own
// line. It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, opts Options, ch <-chan T) error {
	return WriteIter(w, opts, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}
