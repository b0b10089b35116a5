// Package cputil provides code-point-indexed string primitives shared by the
// position mapper, the visual layouter, and the edit engine.
//
// Every index in this package counts Unicode code points, never bytes and
// never UTF-16 units.
package cputil

import (
	"regexp"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// CodePoints returns s split into single-code-point strings, in order.
func CodePoints(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Len returns the number of code points in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Slice returns the code-point substring [start, end) of s. Both bounds are
// clamped to [0, Len(s)]; end defaults to Len(s) when negative.
func Slice(s string, start int, end int) string {
	n := Len(s)
	if end < 0 {
		end = n
	}
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if end < start {
		end = start
	}
	if start == 0 && end == n {
		return s
	}

	i := 0
	startByte, endByte := -1, -1
	for byteIdx := range s {
		if i == start {
			startByte = byteIdx
		}
		if i == end {
			endByte = byteIdx
		}
		i++
	}
	if startByte == -1 {
		startByte = len(s)
	}
	if endByte == -1 {
		endByte = len(s)
	}
	return s[startByte:endByte]
}

// VisualWidth returns the sum of per-code-point terminal cell widths: 2 for
// East-Asian-wide code points, 0 for combining/zero-width code points, 1 for
// printable ASCII and most other code points.
func VisualWidth(s string) int {
	total := 0
	for _, r := range s {
		total += RuneWidth(r)
	}
	return total
}

// RuneWidth returns the terminal cell width of a single code point.
func RuneWidth(r rune) int {
	w := runewidth.RuneWidth(r)
	if w > 0 {
		return w
	}
	// go-runewidth reports 0 for some marks that uniseg's width table still
	// assigns a cell to; take the larger of the two so a code point is never
	// silently invisible in the wrap accounting.
	if fallback := uniseg.StringWidth(string(r)); fallback > w {
		return fallback
	}
	return w
}

var ansiEscape = regexp.MustCompile("\x1b(?:\\[[0-9;?]*[ -/]*[@-~]|\\][^\x07\x1b]*(?:\x07|\x1b\\\\)|[@-_])")

// StripUnsafe removes ANSI escape sequences, then removes any code point
// that is 0x7F or a C0 control character other than \n and \r. Newlines and
// carriage returns are preserved; normalizing them to \n is the caller's
// job. Multi-unit sequences that do not decode to a single valid code point
// are dropped.
func StripUnsafe(s string) string {
	s = ansiEscape.ReplaceAllString(s, "")

	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == utf8.RuneError {
			continue
		}
		if r == 0x7F {
			continue
		}
		if r <= 0x1F && r != 0x0A && r != 0x0D {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
