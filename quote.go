package repr

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// quoteString renders s inside double quotes, escaping the backslash,
// the quote itself, and the control characters \0 \n \r \v \t \b \f.
// When max > 0, content wider than max display columns is truncated with
// a trailing "..." before quoting; widths are display widths, so wide
// runes count double.
func quoteString(s string, max int) string {
	if max > 0 && runewidth.StringWidth(s) > max {
		s = runewidth.Truncate(s, max, "...")
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case 0:
			sb.WriteString(`\0`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\v':
			sb.WriteString(`\v`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// isIdentifier reports whether s is a letter or underscore followed by
// letters, digits, or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// numericKey reports the value of s when it is a canonical non-negative
// integer spelling ("2" yes, "02" no). Such keys sort numerically and
// render bare.
func numericKey(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || strconv.FormatUint(n, 10) != s {
		return 0, false
	}
	return n, true
}

// isBareKey reports whether a struct-shaped key renders without quotes:
// valid identifiers and canonical numeric keys do.
func isBareKey(s string) bool {
	if isIdentifier(s) {
		return true
	}
	_, ok := numericKey(s)
	return ok
}
