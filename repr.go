package repr

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidOption = errors.New("invalid option")
)

const (
	// DefaultIndent is the indentation unit applied per depth level.
	DefaultIndent = "  "

	// DefaultMaxComplexity is the multi-line threshold used when Pretty
	// is set and MaxComplexity is zero.
	DefaultMaxComplexity = 3

	// Unlimited disables the complexity threshold when assigned to
	// MaxComplexity.
	Unlimited = -1
)

// Options configures one formatting session. The zero value renders
// compact single-line output with no styling.
type Options struct {
	// Pretty enables multi-line rendering. When false, output is forced
	// onto a single line regardless of breaks or complexity.
	Pretty bool

	// Indent is the unit repeated per depth level. Empty means
	// [DefaultIndent].
	Indent string

	// Depth is the starting indentation and elision counter.
	Depth int

	// MaxDepth elides values nested deeper than this many levels with a
	// "..." placeholder. Zero means no limit.
	MaxDepth int

	// MaxComplexity is the structural complexity at or above which a
	// subtree renders multi-line. Zero means [DefaultMaxComplexity] when
	// Pretty is set and no threshold otherwise; [Unlimited] disables the
	// threshold explicitly.
	MaxComplexity int

	// MaxString truncates string content wider than this many display
	// columns with a trailing "...". Zero means no limit.
	MaxString int

	// Style resolves semantic style tags to enter/exit markup. Nil
	// means [NoStyle].
	Style Styler

	// Unwrap reports transparent wrapper values: when it returns ok,
	// the engine notes a wrapped-value hint and formats the inner value
	// instead, re-running cycle detection on it. The hook must
	// eventually report false along any chain.
	Unwrap func(v any) (inner any, ok bool)
}

func (o Options) validate() error {
	if o.Depth < 0 {
		return fmt.Errorf("%w: Depth must be >= 0, got %d", ErrInvalidOption, o.Depth)
	}
	if o.MaxDepth < 0 {
		return fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrInvalidOption, o.MaxDepth)
	}
	if o.MaxComplexity < Unlimited {
		return fmt.Errorf("%w: MaxComplexity must be >= %d, got %d", ErrInvalidOption, Unlimited, o.MaxComplexity)
	}
	if o.MaxString < 0 {
		return fmt.Errorf("%w: MaxString must be >= 0, got %d", ErrInvalidOption, o.MaxString)
	}
	return nil
}

// maxComplexity resolves the configured threshold: 0 when no threshold
// applies, the positive limit otherwise.
func (o Options) maxComplexity() int {
	switch {
	case o.MaxComplexity == Unlimited:
		return 0
	case o.MaxComplexity == 0 && o.Pretty:
		return DefaultMaxComplexity
	default:
		return o.MaxComplexity
	}
}

// String formats v with default options: compact, single-line,
// unstyled.
func String(v any) string {
	p, _ := New(Options{})
	p.Format(v)
	return p.String()
}

// Pretty formats v across multiple lines where structural complexity
// warrants it.
func Pretty(v any) string {
	p, _ := New(Options{Pretty: true})
	p.Format(v)
	return p.String()
}

// Format formats v with the given options.
func Format(v any, opts Options) (string, error) {
	p, err := New(opts)
	if err != nil {
		return "", err
	}
	p.Format(v)
	return p.String(), nil
}

// Write formats v with the given options and writes the result to w.
func Write(w io.Writer, v any, opts Options) error {
	s, err := Format(v, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
