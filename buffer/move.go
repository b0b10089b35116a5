package buffer

import (
	"caretline/layout"
	"caretline/position"
)

// MoveDir is a direction for the MOVE action, operating in visual space.
type MoveDir int

const (
	MoveLeft MoveDir = iota
	MoveRight
	MoveUp
	MoveDown
	MoveHome
	MoveEnd
)

// Move implements MOVE: it resolves the cursor in visual space against a
// layout computed for the given viewport width, steps it, and maps the
// result back to a logical position. It never touches the selection
// anchor — callers drive selection by pairing START_SELECTION with plain
// Move calls.
func Move(s State, dir MoveDir, width int) State {
	lay := layout.Compute(s.Lines, s.Cursor, width)
	vp := lay.Cursor

	switch dir {
	case MoveLeft:
		vp = moveVisualLeft(lay, vp)
		s.PreferredCol = nil
	case MoveRight:
		vp = moveVisualRight(lay, vp)
		s.PreferredCol = nil
	case MoveUp:
		vp = s.moveVisualVertical(lay, vp, -1)
	case MoveDown:
		vp = s.moveVisualVertical(lay, vp, 1)
	case MoveHome:
		vp.Col = 0
		s.PreferredCol = nil
	case MoveEnd:
		vp.Col = layout.VisualLineLen(lay, vp.Row)
		s.PreferredCol = nil
	default:
		return s
	}

	next := layout.FromVisual(lay, vp)
	s.Cursor = s.clampPos(next)
	return s
}

func moveVisualLeft(lay layout.Layout, vp layout.VisualPos) layout.VisualPos {
	if vp.Col > 0 {
		vp.Col--
		return vp
	}
	if vp.Row > 0 {
		vp.Row--
		vp.Col = layout.VisualLineLen(lay, vp.Row)
	}
	return vp
}

func moveVisualRight(lay layout.Layout, vp layout.VisualPos) layout.VisualPos {
	lineLen := layout.VisualLineLen(lay, vp.Row)
	if vp.Col < lineLen {
		vp.Col++
		return vp
	}
	if vp.Row < len(lay.VisualLines)-1 {
		vp.Row++
		vp.Col = 0
	}
	return vp
}

// moveVisualVertical moves one visual row, reusing PreferredCol when set and
// recording it otherwise; it is a no-op past the first/last visual row.
func (s *State) moveVisualVertical(lay layout.Layout, vp layout.VisualPos, delta int) layout.VisualPos {
	col := vp.Col
	if s.PreferredCol != nil {
		col = *s.PreferredCol
	}

	newRow := vp.Row + delta
	if newRow < 0 || newRow >= len(lay.VisualLines) {
		return vp
	}

	pc := col
	s.PreferredCol = &pc

	target := layout.VisualLineLen(lay, newRow)
	if col > target {
		col = target
	}
	return layout.VisualPos{Row: newRow, Col: col}
}

// MoveToOffset implements MOVE_TO_OFFSET against the buffer's own text.
func MoveToOffset(s State, offset int) State {
	pos := position.OffsetToLogical(s.Text(), offset)
	s.Cursor = s.clampPos(pos)
	s.PreferredCol = nil
	return s
}
