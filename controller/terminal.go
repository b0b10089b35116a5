package controller

import (
	"os"

	"golang.org/x/term"
)

// termOrigState is the terminal's cooked state captured by the first
// termSetRawMode(true) call; every later termSetRawMode(false) restores to
// it. Grounded on golang.org/x/term's MakeRaw/Restore pairing, the same
// raw-mode library grindlemire-go-tui depends on.
var (
	termOrigState *term.State
	termRaw       bool
)

func termSetRawMode(raw bool) {
	fd := int(os.Stdin.Fd())
	if raw {
		if termOrigState == nil {
			st, err := term.MakeRaw(fd)
			if err != nil {
				return
			}
			termOrigState = st
		} else {
			_, _ = term.MakeRaw(fd)
		}
		termRaw = true
		return
	}
	if termOrigState != nil {
		_ = term.Restore(fd, termOrigState)
	}
	termRaw = false
}

func termIsRaw() bool {
	return termRaw
}
