// Package console drives an ANSI text terminal.
//
// All methods are fire and forget: write errors are dropped.
package console

import (
	"fmt"
	"io"
)

const csi = "\x1b["

// ANSI writes ANSI escape sequences to the underlying writer.
type ANSI struct {
	w io.Writer
}

// New returns a console writing to w.
func New(w io.Writer) *ANSI { return &ANSI{w: w} }

func (c *ANSI) Write(p []byte) (int, error) { return c.w.Write(p) }

// SetCursorPosition moves the cursor. Rows and columns count from 1.
func (c *ANSI) SetCursorPosition(row, col int) { fmt.Fprintf(c.w, csi+"%d;%dH", row, col) }

func (c *ANSI) SetForegroundColor(r, g, b uint8) {
	fmt.Fprintf(c.w, csi+"38;2;%d;%d;%dm", r, g, b)
}

func (c *ANSI) ResetForegroundColor() { io.WriteString(c.w, csi+"39m") }

func (c *ANSI) SetBackgroundColor(r, g, b uint8) {
	fmt.Fprintf(c.w, csi+"48;2;%d;%d;%dm", r, g, b)
}

func (c *ANSI) ResetBackgroundColor() { io.WriteString(c.w, csi+"49m") }

// ClearScreen clears the whole screen. The cursor is not moved.
func (c *ANSI) ClearScreen() { io.WriteString(c.w, csi+"2J") }
