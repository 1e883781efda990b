package console

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequences(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	cases := []struct {
		name string
		f    func()
		want string
	}{
		{"cursor", func() { c.SetCursorPosition(1, 1) }, "\x1b[1;1H"},
		{"fg", func() { c.SetForegroundColor(0, 255, 0) }, "\x1b[38;2;0;255;0m"},
		{"fg reset", c.ResetForegroundColor, "\x1b[39m"},
		{"bg", func() { c.SetBackgroundColor(255, 0, 7) }, "\x1b[48;2;255;0;7m"},
		{"bg reset", c.ResetBackgroundColor, "\x1b[49m"},
		{"clear", c.ClearScreen, "\x1b[2J"},
		{"text", func() { fmt.Fprintf(c, "%06d", 42) }, "000042"},
	}
	for _, tc := range cases {
		buf.Reset()
		tc.f()
		assert.Equal(t, tc.want, buf.String(), tc.name)
	}
}
