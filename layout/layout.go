// Package layout computes the word-wrapped visual view of a logical buffer
// against a fixed-width viewport: the wrapped visual lines, the visual
// cursor, and the bidirectional logical<->visual maps.
package layout

import (
	"caretline/internal/cputil"
	"caretline/position"
)

// VisualPos is a position in the wrapped, on-screen view: Row indexes
// visual lines, Col indexes code points within that visual line's chunk.
type VisualPos struct {
	Row int
	Col int
}

// Chunk is a contiguous run of a logical line assigned to one visual line,
// addressed by code-point index into the logical line.
type Chunk struct {
	StartCol int // code-point index into the logical line
	Len      int // code-point length of the chunk
	Text     string
}

// LogicalToVisualEntry locates one chunk of a logical row in visual space.
type LogicalToVisualEntry struct {
	VisualRow  int
	ChunkStart int
}

// VisualToLogicalEntry maps a visual row back to its logical row and the
// code-point column at which that visual row's chunk begins.
type VisualToLogicalEntry struct {
	LogicalRow int
	ChunkStart int
}

// Layout is the full derived visual view for one (lines, cursor, width)
// triple. It is never mutated in place; recompute with Compute on any
// change to lines, cursor, or viewport width.
type Layout struct {
	VisualLines     []string
	Cursor          VisualPos
	LogicalToVisual [][]LogicalToVisualEntry // indexed by logical row; entries in chunk order
	VisualToLogical []VisualToLogicalEntry   // indexed by visual row
}

// Compute derives a Layout from logical lines, a logical cursor position,
// and a viewport character width (clamped to >= 1).
func Compute(lines []string, cursor position.Pos, width int) Layout {
	if width < 1 {
		width = 1
	}

	var lay Layout
	lay.LogicalToVisual = make([][]LogicalToVisualEntry, len(lines))

	for row, line := range lines {
		chunks := wrapLine(line, width)

		entries := make([]LogicalToVisualEntry, 0, len(chunks))
		for _, c := range chunks {
			visualRow := len(lay.VisualLines)
			lay.VisualLines = append(lay.VisualLines, c.Text)
			lay.VisualToLogical = append(lay.VisualToLogical, VisualToLogicalEntry{
				LogicalRow: row,
				ChunkStart: c.StartCol,
			})
			entries = append(entries, LogicalToVisualEntry{VisualRow: visualRow, ChunkStart: c.StartCol})
		}
		lay.LogicalToVisual[row] = entries
	}

	if len(lay.VisualLines) == 0 {
		lay.VisualLines = []string{""}
		lay.VisualToLogical = []VisualToLogicalEntry{{LogicalRow: 0, ChunkStart: 0}}
		lay.LogicalToVisual = [][]LogicalToVisualEntry{{{VisualRow: 0, ChunkStart: 0}}}
	}

	clampedCursor := position.Pos{
		Row: clamp(cursor.Row, 0, len(lay.LogicalToVisual)-1),
		Col: cursor.Col,
	}
	lay.Cursor = ToVisual(lay, lines, clampedCursor)
	return lay
}

// wrapLine splits one logical line into chunks for a viewport of the given
// width, per the accumulate/break/hard-break algorithm: accumulate code
// points while the running visual width fits; remember the last space seen
// as a candidate break; on overflow, break at that space (consuming it as
// the wrap delimiter) or, failing that, hard-break, falling back to a
// single-code-point line when even one code point overflows the width.
func wrapLine(line string, width int) []Chunk {
	cps := cputil.CodePoints(line)
	n := len(cps)
	if n == 0 {
		return []Chunk{{StartCol: 0, Len: 0, Text: ""}}
	}

	var chunks []Chunk
	chunkStart := 0
	curWidth := 0
	lastSpace := -1

	i := 0
	for i < n {
		w := cputil.VisualWidth(cps[i])
		if curWidth+w > width {
			if lastSpace >= chunkStart {
				chunks = append(chunks, newChunk(cps, chunkStart, lastSpace-chunkStart))
				chunkStart = lastSpace + 1 // skip exactly one delimiter space
				curWidth = 0
				lastSpace = -1
				i = chunkStart
				continue
			}
			if curWidth == 0 {
				// A single code point wider than the viewport: emit it alone
				// rather than loop forever.
				chunks = append(chunks, newChunk(cps, chunkStart, 1))
				chunkStart = i + 1
				i = chunkStart
				curWidth = 0
				lastSpace = -1
				continue
			}
			chunks = append(chunks, newChunk(cps, chunkStart, i-chunkStart))
			chunkStart = i
			curWidth = 0
			lastSpace = -1
			continue
		}

		if cps[i] == " " {
			lastSpace = i
		}
		curWidth += w
		i++
	}

	if chunkStart < n || len(chunks) == 0 {
		chunks = append(chunks, newChunk(cps, chunkStart, n-chunkStart))
	}
	return chunks
}

func newChunk(cps []string, start, length int) Chunk {
	var text string
	for _, c := range cps[start : start+length] {
		text += c
	}
	return Chunk{StartCol: start, Len: length, Text: text}
}

// locateChunk returns the index of the chunk that owns logical column col,
// per the trailing-edge rule: a column exactly at the end of a non-final
// chunk belongs to that chunk, not the head of the next one.
func locateChunk(chunks []Chunk, col int) (idx int, offsetInChunk int) {
	for i, c := range chunks {
		end := c.StartCol + c.Len
		if col <= end {
			return i, col - c.StartCol
		}
	}
	last := len(chunks) - 1
	return last, chunks[last].Len
}

// ToVisual maps a logical position to its visual position under lay.
func ToVisual(lay Layout, lines []string, p position.Pos) VisualPos {
	row := clamp(p.Row, 0, len(lines)-1)
	entries := lay.LogicalToVisual[row]
	if len(entries) == 0 {
		return VisualPos{}
	}

	chunks := make([]Chunk, len(entries))
	for i, e := range entries {
		chunks[i] = Chunk{StartCol: e.ChunkStart, Len: cputil.Len(lay.VisualLines[e.VisualRow])}
	}

	idx, off := locateChunk(chunks, p.Col)
	return VisualPos{Row: entries[idx].VisualRow, Col: off}
}

// FromVisual maps a visual position back to a logical position using lay's
// VisualToLogical map.
func FromVisual(lay Layout, vp VisualPos) position.Pos {
	row := clamp(vp.Row, 0, len(lay.VisualToLogical)-1)
	entry := lay.VisualToLogical[row]
	return position.Pos{Row: entry.LogicalRow, Col: entry.ChunkStart + vp.Col}
}

// VisualLineLen returns the code-point length of visual row vr.
func VisualLineLen(lay Layout, vr int) int {
	if vr < 0 || vr >= len(lay.VisualLines) {
		return 0
	}
	return cputil.Len(lay.VisualLines[vr])
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
