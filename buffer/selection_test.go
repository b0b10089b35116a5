package buffer

import "testing"

func TestCopyWithNoSelectionIsNoop(t *testing.T) {
	s := New("hello", 2)
	s2 := Copy(s)
	if s2.Clipboard != "" {
		t.Fatalf("Clipboard=%q, want empty", s2.Clipboard)
	}
}

func TestCopyWritesSelectionAndKeepsIt(t *testing.T) {
	s := New("hello world", 0)
	s = StartSelection(s)
	s = Move(s, MoveRight, 80)
	s = Move(s, MoveRight, 80)
	s = Move(s, MoveRight, 80)
	s = Move(s, MoveRight, 80)
	s = Move(s, MoveRight, 80)
	s = Copy(s)
	if s.Clipboard != "hello" {
		t.Fatalf("Clipboard=%q, want %q", s.Clipboard, "hello")
	}
	if _, ok := s.Selection(); !ok {
		t.Fatalf("Copy must not clear the selection")
	}
}

func TestCopyMultilineJoinsWithNewline(t *testing.T) {
	s := State{Lines: []string{"abc", "def"}, Cursor: Pos{Row: 0, Col: 1}}
	anchor := Pos{Row: 1, Col: 2}
	s.Anchor = &anchor
	s = Copy(s)
	if s.Clipboard != "bc\nde" {
		t.Fatalf("Clipboard=%q, want %q", s.Clipboard, "bc\nde")
	}
}

func TestPasteWithEmptyClipboardIsNoop(t *testing.T) {
	s := New("hello", 2)
	s2 := Paste(s)
	if s2.Text() != s.Text() || len(s2.Undo) != 0 {
		t.Fatalf("paste with empty clipboard should be a no-op")
	}
}

func TestPasteInsertsClipboard(t *testing.T) {
	s := New("hello world", 0)
	s.Clipboard = "hi "
	s = Paste(s)
	if s.Lines[0] != "hi hello world" {
		t.Fatalf("Lines[0]=%q", s.Lines[0])
	}
}

func TestStartSelectionDoesNotPushUndo(t *testing.T) {
	s := New("hello", 2)
	s = StartSelection(s)
	if len(s.Undo) != 0 {
		t.Fatalf("Undo depth=%d, want 0 after START_SELECTION", len(s.Undo))
	}
}

func TestMutatingActionInvalidatesSelection(t *testing.T) {
	s := New("hello world", 0)
	s = StartSelection(s)
	s = Move(s, MoveRight, 80)
	if _, ok := s.Selection(); !ok {
		t.Fatalf("expected an active selection before the mutating action")
	}
	s = ApplyOperations(s, []Op{InsertOp{Text: "x"}})
	if s.Anchor != nil {
		t.Fatalf("expected Anchor cleared after a mutating action")
	}
}
