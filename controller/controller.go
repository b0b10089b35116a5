package controller

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"caretline/buffer"
	"caretline/internal/cputil"
	"caretline/layout"
	"caretline/position"
)

// Controller wraps a buffer.State with the stateful bookkeeping a terminal
// host needs: the derived visual layout, the scroll window into it, and
// change notification. It is not safe for concurrent use, the same
// constraint iw2rmb-flourish/editor.Model carries for its *buffer.Buffer.
type Controller struct {
	state    buffer.State
	viewport Viewport
	keyMap   KeyMap
	host     HostCapabilities

	lastText string
	lay      layout.Layout
	vp       viewport.Model
}

// New builds a Controller from cfg, computing the initial layout and
// scroll position the way iw2rmb-flourish/editor.New does for its Model.
func New(cfg Config) *Controller {
	vpCfg := cfg.Viewport
	if vpCfg.Width < 1 {
		vpCfg.Width = 1
	}
	if vpCfg.Height < 1 {
		vpCfg.Height = 1
	}

	km := cfg.KeyMap
	if len(km.Left.Keys()) == 0 {
		km = DefaultKeyMap()
	}

	host := cfg.Host
	def := DefaultHostCapabilities()
	if host.IsValidPath == nil {
		host.IsValidPath = def.IsValidPath
	}
	if host.UnescapePath == nil {
		host.UnescapePath = def.UnescapePath
	}
	if host.SetRawMode == nil {
		host.SetRawMode = def.SetRawMode
	}
	if host.IsRaw == nil {
		host.IsRaw = def.IsRaw
	}

	c := &Controller{
		state:    buffer.New(cfg.InitialText, cfg.InitialCursorOffset),
		viewport: vpCfg,
		keyMap:   km,
		host:     host,
		vp:       viewport.New(vpCfg.Width, vpCfg.Height),
	}
	c.lastText = c.state.Text()
	c.recompute()
	c.snapScroll(true)
	return c
}

// --- read-only accessors ---

func (c *Controller) Lines() []string    { return append([]string(nil), c.state.Lines...) }
func (c *Controller) Text() string       { return c.state.Text() }
func (c *Controller) Cursor() buffer.Pos { return c.state.Cursor }
func (c *Controller) PreferredCol() *int {
	if c.state.PreferredCol == nil {
		return nil
	}
	v := *c.state.PreferredCol
	return &v
}
func (c *Controller) SelectionAnchor() *buffer.Pos {
	if c.state.Anchor == nil {
		return nil
	}
	p := *c.state.Anchor
	return &p
}
func (c *Controller) Selection() (buffer.Range, bool) { return c.state.Selection() }

// AllVisualLines returns the full word-wrapped layout, unwindowed.
func (c *Controller) AllVisualLines() []string { return append([]string(nil), c.lay.VisualLines...) }

// ViewportVisualLines returns the slice of AllVisualLines currently
// scrolled into view, per c.vp.YOffset/c.viewport.Height.
func (c *Controller) ViewportVisualLines() []string {
	lo := c.vp.YOffset
	hi := lo + c.viewport.Height
	if lo > len(c.lay.VisualLines) {
		lo = len(c.lay.VisualLines)
	}
	if hi > len(c.lay.VisualLines) {
		hi = len(c.lay.VisualLines)
	}
	return append([]string(nil), c.lay.VisualLines[lo:hi]...)
}

func (c *Controller) VisualCursor() layout.VisualPos { return c.lay.Cursor }
func (c *Controller) VisualScrollRow() int           { return c.vp.YOffset }

// SetViewport resizes the viewport and recomputes layout and scroll, the
// way iw2rmb-flourish/editor.Model.SetSize does on a tea.WindowSizeMsg.
func (c *Controller) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.viewport = Viewport{Width: width, Height: height}
	c.vp.Width = width
	c.vp.Height = height
	c.recompute()
	c.snapScroll(true)
}

// --- internal plumbing ---

func (c *Controller) recompute() {
	c.lay = layout.Compute(c.state.Lines, c.state.Cursor, c.viewport.Width)
	c.vp.SetContent(strings.Join(c.lay.VisualLines, "\n"))
}

// snapScroll, when force is true, moves the viewport's YOffset by the
// minimum amount needed to keep the cursor's visual row in view; with
// force false it leaves YOffset unchanged. This is the same "scroll by the
// least necessary" policy
// iw2rmb-flourish/editor.Model.followCursorWithForce implements against
// viewport.Model.YOffset, frame size included via viewport.Style the same
// way.
func (c *Controller) snapScroll(force bool) {
	h := c.vp.Height - c.vp.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	if !force {
		return
	}
	cur := c.lay.Cursor.Row
	y := c.vp.YOffset
	if cur < y {
		c.vp.SetYOffset(cur)
		return
	}
	if cur >= y+h {
		c.vp.SetYOffset(cur - h + 1)
	}
}

// apply runs a through buffer.Apply, recomputes the derived layout and
// scroll, fires OnChange at most once if the text actually changed, and
// reports whether either the text or the cursor moved.
func (c *Controller) apply(a buffer.Action) bool {
	beforeText := c.state.Text()
	beforeCursor := c.state.Cursor
	c.state = buffer.Apply(c.state, a)
	c.recompute()
	c.snapScroll(true)

	textChanged := c.state.Text() != beforeText
	if textChanged {
		c.lastText = c.state.Text()
		if c.host.OnChange != nil {
			c.host.OnChange(c.lastText)
		}
	}
	return textChanged || c.state.Cursor != beforeCursor
}

// --- commands, per the controller's external verb surface ---

func (c *Controller) SetText(text string) { c.apply(buffer.NewSetText(text)) }

// Insert inserts s at the cursor, first checking it against the drag-drop
// path convention: a quoted or bare path the host recognizes via
// IsValidPath is inserted as "@path" instead of the literal dropped text.
func (c *Controller) Insert(s string) { c.apply(buffer.ApplyOperationsAction{Ops: []buffer.Op{buffer.InsertOp{Text: c.resolveInsertText(s)}}}) }

func (c *Controller) resolveInsertText(s string) string {
	if c.host.IsValidPath == nil {
		return s
	}
	candidate := trimSpace(s)
	if len(candidate) >= 2 && candidate[0] == '\'' && candidate[len(candidate)-1] == '\'' {
		candidate = candidate[1 : len(candidate)-1]
	}
	if c.host.UnescapePath != nil {
		candidate = c.host.UnescapePath(candidate)
	}
	if cputil.Len(candidate) < 3 || !c.host.IsValidPath(candidate) {
		return s
	}
	return "@" + candidate
}

func trimSpace(s string) string {
	start, end := 0, len(s)
	for start < end && isASCIISpace(s[start]) {
		start++
	}
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func (c *Controller) Newline() {
	c.apply(buffer.ApplyOperationsAction{Ops: []buffer.Op{buffer.InsertOp{Text: "\n"}}})
}

func (c *Controller) Backspace() {
	c.apply(buffer.ApplyOperationsAction{Ops: []buffer.Op{buffer.BackspaceOp{}}})
}

func (c *Controller) Delete() { c.apply(buffer.DeleteAction{}) }

func (c *Controller) Move(dir buffer.MoveDir) {
	c.apply(buffer.MoveAction{Dir: dir, Width: c.viewport.Width})
}

func (c *Controller) Undo() bool { return c.apply(buffer.UndoAction{}) }
func (c *Controller) Redo() bool { return c.apply(buffer.RedoAction{}) }

func (c *Controller) ReplaceRange(startRow, startCol, endRow, endCol int, text string) bool {
	return c.apply(buffer.ReplaceRangeAction{
		StartRow: startRow, StartCol: startCol,
		EndRow: endRow, EndCol: endCol,
		Text: text,
	})
}

func (c *Controller) ReplaceRangeByOffset(startOffset, endOffset int, text string) bool {
	full := c.state.Text()
	start := position.OffsetToLogical(full, startOffset)
	end := position.OffsetToLogical(full, endOffset)
	return c.ReplaceRange(start.Row, start.Col, end.Row, end.Col, text)
}

func (c *Controller) MoveToOffset(offset int) { c.apply(buffer.MoveToOffsetAction{Offset: offset}) }

func (c *Controller) DeleteWordLeft()  { c.apply(buffer.DeleteWordLeftAction{}) }
func (c *Controller) DeleteWordRight() { c.apply(buffer.DeleteWordRightAction{}) }
func (c *Controller) KillLineRight()   { c.apply(buffer.KillLineRightAction{}) }
func (c *Controller) KillLineLeft()    { c.apply(buffer.KillLineLeftAction{}) }

func (c *Controller) StartSelection() { c.apply(buffer.StartSelectionAction{}) }

// Copy returns the selected text and whether a selection was active.
func (c *Controller) Copy() (string, bool) {
	_, ok := c.state.Selection()
	if !ok {
		return "", false
	}
	c.apply(buffer.CopyAction{})
	return c.state.Clipboard, true
}

func (c *Controller) Paste() bool { return c.apply(buffer.PasteAction{}) }

func (c *Controller) ApplyOperations(ops []buffer.Op) {
	c.apply(buffer.ApplyOperationsAction{Ops: ops})
}

// HandleInput translates one key event into a buffer action via c.keyMap,
// the way iw2rmb-flourish/editor/update.go's updateKey dispatch chain
// does, and reports whether it changed the text or the cursor. Literal
// rune input not matched by the table (unmodified runes, the space key, and
// bracketed-paste rune batches) goes through Insert's path inference; any
// other unmatched key (e.g. an unbound ctrl/alt combination) is ignored.
func (c *Controller) HandleInput(msg tea.KeyMsg) bool {
	km := c.keyMap

	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return c.apply(buffer.ApplyOperationsAction{Ops: []buffer.Op{buffer.InsertOp{Text: c.resolveInsertText(string(msg.Runes))}}})
	}

	switch {
	case keyMatches(msg, km.Escape):
		return false
	case keyMatches(msg, km.Enter):
		return c.apply(buffer.ApplyOperationsAction{Ops: []buffer.Op{buffer.InsertOp{Text: "\n"}}})
	case keyMatches(msg, km.Left):
		return c.apply(buffer.MoveAction{Dir: buffer.MoveLeft, Width: c.viewport.Width})
	case keyMatches(msg, km.Right):
		return c.apply(buffer.MoveAction{Dir: buffer.MoveRight, Width: c.viewport.Width})
	case keyMatches(msg, km.Up):
		return c.apply(buffer.MoveAction{Dir: buffer.MoveUp, Width: c.viewport.Width})
	case keyMatches(msg, km.Down):
		return c.apply(buffer.MoveAction{Dir: buffer.MoveDown, Width: c.viewport.Width})
	case keyMatches(msg, km.Home):
		return c.apply(buffer.MoveAction{Dir: buffer.MoveHome, Width: c.viewport.Width})
	case keyMatches(msg, km.End):
		return c.apply(buffer.MoveAction{Dir: buffer.MoveEnd, Width: c.viewport.Width})
	case keyMatches(msg, km.Backspace):
		return c.apply(buffer.ApplyOperationsAction{Ops: []buffer.Op{buffer.BackspaceOp{}}})
	case keyMatches(msg, km.Delete):
		return c.apply(buffer.DeleteAction{})
	}

	if (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) && len(msg.Runes) > 0 && !msg.Alt {
		return c.apply(buffer.ApplyOperationsAction{Ops: []buffer.Op{buffer.InsertOp{Text: c.resolveInsertText(string(msg.Runes))}}})
	}
	return false
}

func keyMatches(msg tea.KeyMsg, b interface{ Keys() []string }) bool {
	for _, k := range b.Keys() {
		if msg.String() == k {
			return true
		}
	}
	return false
}
