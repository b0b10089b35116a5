package buffer

// StartSelection implements START_SELECTION: sets the anchor to the current
// cursor. Non-mutating: no undo step, preferred column untouched.
func StartSelection(s State) State {
	anchor := s.Cursor
	s.Anchor = &anchor
	return s
}

// Copy implements COPY: writes the active selection to the clipboard and
// leaves the selection in place.
func Copy(s State) State {
	r, ok := s.Selection()
	if !ok {
		return s
	}
	s.Clipboard = textInRange(s.Lines, r)
	return s
}

// Paste implements PASTE: an insert of the clipboard contents.
func Paste(s State) State {
	if s.Clipboard == "" {
		return s
	}
	return ApplyOperations(s, []Op{InsertOp{Text: s.Clipboard}})
}
