package controller

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"caretline/buffer"
	"caretline/internal/debug"
)

// ResolveEditor picks the external editor command: an explicit argument
// wins, then $VISUAL, then $EDITOR, then a platform fallback.
func ResolveEditor(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

// OpenInExternalEditor writes the current text to a scratch file, launches
// editor against it with inherited stdio, and loads the edited content
// back on success. It records a single undo checkpoint before handing
// control to the subprocess, the same way iw2rmb-flourish's SET_TEXT path
// captures one snapshot rather than one per keystroke the external program
// makes. On any failure the buffer is left exactly as it was and the
// failure is logged via internal/debug, never returned as a corrupted
// state.
func (c *Controller) OpenInExternalEditor(editor string) error {
	editor = ResolveEditor(editor)

	dir, err := os.MkdirTemp("", "caretline")
	if err != nil {
		debug.Log("external editor: MkdirTemp failed: %v", err)
		return err
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "buffer.txt")
	if err := os.WriteFile(path, []byte(c.state.Text()), 0o600); err != nil {
		debug.Log("external editor: WriteFile failed: %v", err)
		return err
	}

	pre := c.state
	c.state = buffer.Checkpoint(c.state)

	wasRaw := false
	if c.host.IsRaw != nil {
		wasRaw = c.host.IsRaw()
	}
	if c.host.SetRawMode != nil && wasRaw {
		c.host.SetRawMode(false)
		defer c.host.SetRawMode(true)
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		debug.Log("external editor: %s failed: %v", editor, err)
		c.state = pre
		return err
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		debug.Log("external editor: ReadFile failed: %v", err)
		c.state = pre
		return err
	}

	beforeText := c.state.Text()
	c.state = buffer.SetText(c.state, string(edited), false)
	c.recompute()
	c.snapScroll(true)
	if c.state.Text() != beforeText {
		c.lastText = c.state.Text()
		if c.host.OnChange != nil {
			c.host.OnChange(c.lastText)
		}
	}
	return nil
}
