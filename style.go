package repr

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Style is a semantic tag attached to spans of output. The style
// processor maps tags to enter/exit markup at flush time; the engine
// itself never hardcodes escape sequences.
type Style uint8

const (
	StyleNone Style = iota
	StyleNil
	StyleBool
	StyleNumber
	StyleString
	StyleTime
	StyleKey
	StyleTypeName
	StyleHint
	StyleRef
)

// Styler maps a style tag to a pair of enter/exit markup strings.
// Markup wraps the styled span in the final output and never affects
// layout decisions.
type Styler func(Style) (enter, exit string)

// NoStyle emits no markup. It is the default style processor.
func NoStyle(Style) (string, string) { return "", "" }

var ansiColors = map[Style]termenv.Color{
	StyleNil:      termenv.ANSIBrightBlack,
	StyleBool:     termenv.ANSIYellow,
	StyleNumber:   termenv.ANSICyan,
	StyleString:   termenv.ANSIGreen,
	StyleTime:     termenv.ANSIMagenta,
	StyleKey:      termenv.ANSIBlue,
	StyleTypeName: termenv.ANSIBrightBlue,
	StyleHint:     termenv.ANSIBrightBlack,
	StyleRef:      termenv.ANSIBrightMagenta,
}

var ansiReset = termenv.CSI + termenv.ResetSeq + "m"

// ANSIStyle maps style tags to ANSI terminal color sequences.
func ANSIStyle(s Style) (string, string) {
	c, ok := ansiColors[s]
	if !ok {
		return "", ""
	}
	return termenv.CSI + c.Sequence(false) + "m", ansiReset
}

// AutoStyle returns ANSIStyle when w is a terminal and the environment
// does not disable color (NO_COLOR and friends), NoStyle otherwise.
func AutoStyle(w io.Writer) Styler {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) && !termenv.EnvNoColor() {
		return ANSIStyle
	}
	return NoStyle
}
