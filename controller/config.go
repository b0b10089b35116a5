// Package controller wraps the pure buffer engine with the stateful parts a
// terminal host needs: scroll tracking, change notification, key-to-action
// translation, drag-drop path inference, and the external-editor round
// trip.
package controller

import (
	"os"
	"strings"
)

// Viewport is the character-cell size of the visible area, used to compute
// the word-wrapped layout. Both dimensions are clamped to >= 1.
type Viewport struct {
	Width  int
	Height int
}

// HostCapabilities is the explicit capability object the host supplies,
// grounded on the same pattern iw2rmb-flourish/editor/clipboard.go uses for
// its Clipboard interface: behavior the library cannot provide itself is an
// injected dependency, never constructed unasked.
type HostCapabilities struct {
	// IsValidPath reports whether a drag-drop candidate names a real path.
	IsValidPath func(string) bool
	// UnescapePath undoes a terminal's shell-style escaping before the
	// IsValidPath check.
	UnescapePath func(string) string
	// SetRawMode toggles the host terminal's raw mode around the
	// external-editor subprocess launch.
	SetRawMode func(raw bool)
	// IsRaw reports the host terminal's current raw-mode state.
	IsRaw func() bool
	// OnChange is invoked at most once per call with the new text whenever
	// a command changes it. May be nil.
	OnChange func(text string)
}

// DefaultHostCapabilities returns a capability set wired to a real OS and
// terminal: IsValidPath backed by os.Stat, UnescapePath a backslash
// unescaper for the common shell-escaped drag-drop payloads a terminal
// emulator produces (e.g. "/tmp/my\ file"), SetRawMode/IsRaw backed by
// golang.org/x/term, OnChange nil.
func DefaultHostCapabilities() HostCapabilities {
	return HostCapabilities{
		IsValidPath: func(p string) bool {
			if p == "" {
				return false
			}
			_, err := os.Stat(p)
			return err == nil
		},
		UnescapePath: unescapeBackslashes,
		SetRawMode:   termSetRawMode,
		IsRaw:        termIsRaw,
	}
}

// unescapeBackslashes drops the backslash out of every "\X" pair, the
// common shell convention a terminal emulator's drag-drop payload follows
// for spaces and other shell-special characters ("/tmp/my\ file" ->
// "/tmp/my file").
func unescapeBackslashes(p string) string {
	if !strings.Contains(p, "\\") {
		return p
	}
	var sb strings.Builder
	for i := 0; i < len(p); i++ {
		if p[i] == '\\' && i+1 < len(p) {
			i++
		}
		sb.WriteByte(p[i])
	}
	return sb.String()
}

// Config constructs a Controller.
type Config struct {
	InitialText         string
	InitialCursorOffset int
	Viewport            Viewport
	KeyMap              KeyMap
	Host                HostCapabilities
}
