package buffer

// snapshot captures the current state for the undo stack.
func snapshot(s State) Snapshot {
	lines := make([]string, len(s.Lines))
	copy(lines, s.Lines)
	return Snapshot{Lines: lines, CursorRow: s.Cursor.Row, CursorCol: s.Cursor.Col}
}

// pushUndo records prev onto s.Undo (capped at UndoLimit, oldest dropped)
// and clears s.Redo, per the contract that every mutating action pushes
// undo and clears redo before applying.
func pushUndo(s State, prev Snapshot) State {
	undo := append(append([]Snapshot(nil), s.Undo...), prev)
	if len(undo) > UndoLimit {
		undo = undo[len(undo)-UndoLimit:]
	}
	s.Undo = undo
	s.Redo = nil
	return s
}

func restoreSnapshot(s State, snap Snapshot) State {
	lines := make([]string, len(snap.Lines))
	copy(lines, snap.Lines)
	s.Lines = lines
	s.Cursor = clampPosIn(lines, Pos{Row: snap.CursorRow, Col: snap.CursorCol})
	return s
}

func applyUndo(s State) State {
	if len(s.Undo) == 0 {
		return s
	}
	i := len(s.Undo) - 1
	prev := s.Undo[i]
	cur := snapshot(s)

	s.Undo = append([]Snapshot(nil), s.Undo[:i]...)
	s = restoreSnapshot(s, prev)
	s.Redo = append(append([]Snapshot(nil), s.Redo...), cur)
	s.PreferredCol = nil
	s.Anchor = nil
	return s
}

// Checkpoint pushes s onto the undo stack without otherwise changing it.
// It is used by callers that replace buffer content out-of-band (the
// external-editor round trip) and need exactly one undo step recorded
// before the replacement, rather than SET_TEXT's own undo push (which
// also relocates the cursor to the end of the new text).
func Checkpoint(s State) State {
	prev := snapshot(s)
	return pushUndo(s, prev)
}

func applyRedo(s State) State {
	if len(s.Redo) == 0 {
		return s
	}
	i := len(s.Redo) - 1
	next := s.Redo[i]
	cur := snapshot(s)

	s.Redo = append([]Snapshot(nil), s.Redo[:i]...)
	s = restoreSnapshot(s, next)

	undo := append(append([]Snapshot(nil), s.Undo...), cur)
	if len(undo) > UndoLimit {
		undo = undo[len(undo)-UndoLimit:]
	}
	s.Undo = undo
	s.PreferredCol = nil
	s.Anchor = nil
	return s
}
