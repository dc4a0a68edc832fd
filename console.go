package repr

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Console joins logging arguments the way a debugging console does:
// string arguments pass through verbatim, everything else is formatted
// through the engine. Writes are serialized, so one Console may be
// shared across goroutines.
type Console struct {
	mu   sync.Mutex
	w    io.Writer
	opts Options
}

// NewConsole returns a Console writing to w with pretty rendering and a
// style processor appropriate for w: ANSI sequences when w is a
// terminal, plain text otherwise.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, opts: Options{Pretty: true, Style: AutoStyle(w)}}
}

// Log writes the arguments separated by spaces and terminated by a
// newline.
func (c *Console) Log(args ...any) {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if s, ok := a.(string); ok {
			parts = append(parts, s)
			continue
		}
		s, err := Format(a, c.opts)
		if err != nil {
			s = fmt.Sprint(a)
		}
		parts = append(parts, s)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.w, strings.Join(parts, " "))
}

var std = NewConsole(os.Stdout)

// Log writes the arguments to standard output through the default
// console.
func Log(args ...any) {
	std.Log(args...)
}
