package controller

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"caretline/buffer"
)

func newTestController(text string) *Controller {
	return New(Config{
		InitialText: text,
		Viewport:    Viewport{Width: 20, Height: 3},
	})
}

func TestHandleInputInsertsPlainRunes(t *testing.T) {
	c := newTestController("")
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}
	if !c.HandleInput(msg) {
		t.Fatalf("HandleInput reported no change for a plain rune")
	}
	if c.Text() != "a" {
		t.Fatalf("Text()=%q, want %q", c.Text(), "a")
	}
}

func TestHandleInputEscapeIsNoop(t *testing.T) {
	c := newTestController("hello")
	msg := tea.KeyMsg{Type: tea.KeyEscape}
	if c.HandleInput(msg) {
		t.Fatalf("HandleInput reported change on Escape")
	}
	if c.Text() != "hello" {
		t.Fatalf("Text()=%q, want unchanged %q", c.Text(), "hello")
	}
}

func TestHandleInputBackspace(t *testing.T) {
	c := newTestController("ab")
	c.MoveToOffset(2)
	msg := tea.KeyMsg{Type: tea.KeyBackspace}
	if !c.HandleInput(msg) {
		t.Fatalf("HandleInput reported no change on Backspace")
	}
	if c.Text() != "a" {
		t.Fatalf("Text()=%q, want %q", c.Text(), "a")
	}
}

func TestHandleInputUnboundCtrlKeyIsNoop(t *testing.T) {
	c := newTestController("hello")
	msg := tea.KeyMsg{Type: tea.KeyCtrlZ}
	if c.HandleInput(msg) {
		t.Fatalf("HandleInput reported change on an unbound ctrl key")
	}
	if c.Text() != "hello" {
		t.Fatalf("Text()=%q, want unchanged %q", c.Text(), "hello")
	}
}

func TestOnChangeFiresOncePerTextChange(t *testing.T) {
	calls := 0
	var lastText string
	c := New(Config{
		InitialText: "",
		Viewport:    Viewport{Width: 20, Height: 3},
		Host: HostCapabilities{
			OnChange: func(text string) {
				calls++
				lastText = text
			},
		},
	})

	c.Insert("hi")
	if calls != 1 {
		t.Fatalf("OnChange called %d times for one Insert, want 1", calls)
	}
	if lastText != "hi" {
		t.Fatalf("OnChange saw %q, want %q", lastText, "hi")
	}

	c.Move(buffer.MoveLeft)
	if calls != 1 {
		t.Fatalf("OnChange fired on a non-mutating Move: calls=%d", calls)
	}
}

func TestInsertInfersDragDropPath(t *testing.T) {
	c := New(Config{
		Viewport: Viewport{Width: 20, Height: 3},
		Host: HostCapabilities{
			IsValidPath: func(p string) bool { return p == "/tmp/x" },
		},
	})
	c.Insert("'/tmp/x'")
	if c.Text() != "@/tmp/x" {
		t.Fatalf("Text()=%q, want %q", c.Text(), "@/tmp/x")
	}
}

func TestInsertUnescapesBackslashedSpaces(t *testing.T) {
	c := New(Config{
		Viewport: Viewport{Width: 20, Height: 3},
		Host: HostCapabilities{
			IsValidPath: func(p string) bool { return p == "/tmp/my file" },
		},
	})
	c.Insert(`/tmp/my\ file`)
	if c.Text() != "@/tmp/my file" {
		t.Fatalf("Text()=%q, want %q", c.Text(), "@/tmp/my file")
	}
}

func TestInsertLeavesNonPathTextLiteral(t *testing.T) {
	c := New(Config{
		Viewport: Viewport{Width: 20, Height: 3},
		Host: HostCapabilities{
			IsValidPath: func(p string) bool { return false },
		},
	})
	c.Insert("hello")
	if c.Text() != "hello" {
		t.Fatalf("Text()=%q, want %q", c.Text(), "hello")
	}
}

func TestScrollFollowsCursorByMinimumAmount(t *testing.T) {
	c := New(Config{
		InitialText: "l0\nl1\nl2\nl3\nl4\nl5",
		Viewport:    Viewport{Width: 20, Height: 2},
	})
	if c.VisualScrollRow() != 0 {
		t.Fatalf("initial VisualScrollRow()=%d, want 0", c.VisualScrollRow())
	}

	c.MoveToOffset(len("l0\nl1\nl2\nl3\n")) // start of "l4", visual row 4
	if got, want := c.VisualScrollRow(), 3; got != want {
		t.Fatalf("VisualScrollRow()=%d, want %d (cursor row 4, height 2)", got, want)
	}

	c.MoveToOffset(0)
	if got, want := c.VisualScrollRow(), 0; got != want {
		t.Fatalf("VisualScrollRow()=%d, want %d after moving back to the top", got, want)
	}
}

func TestUndoRedoReportWhetherAnythingChanged(t *testing.T) {
	c := newTestController("")
	if c.Undo() {
		t.Fatalf("Undo() on an empty history reported a change")
	}
	c.Insert("x")
	if !c.Undo() {
		t.Fatalf("Undo() after an insert reported no change")
	}
	if c.Text() != "" {
		t.Fatalf("Text()=%q after Undo, want empty", c.Text())
	}
	if !c.Redo() {
		t.Fatalf("Redo() reported no change")
	}
	if c.Text() != "x" {
		t.Fatalf("Text()=%q after Redo, want %q", c.Text(), "x")
	}
}

func TestCopyRequiresActiveSelection(t *testing.T) {
	c := newTestController("hello")
	if _, ok := c.Copy(); ok {
		t.Fatalf("Copy() reported a selection with no anchor set")
	}

	c.MoveToOffset(0)
	c.StartSelection()
	c.MoveToOffset(5)
	text, ok := c.Copy()
	if !ok || text != "hello" {
		t.Fatalf("Copy()=(%q,%v), want (%q,true)", text, ok, "hello")
	}
}

func TestReplaceRangeByOffset(t *testing.T) {
	c := newTestController("hello world")
	if !c.ReplaceRangeByOffset(6, 11, "there") {
		t.Fatalf("ReplaceRangeByOffset reported no change")
	}
	if c.Text() != "hello there" {
		t.Fatalf("Text()=%q, want %q", c.Text(), "hello there")
	}
}
