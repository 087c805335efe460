// Package clipboard is the single boundary to the host clipboard.
//
// Only writing is supported. Callers treat a write as fire-and-forget:
// failures are returned so they can be logged, but the UI never blocks on
// or reports them.
package clipboard

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Writer writes text to a clipboard
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteAll implements Writer
func (System) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Available reports whether the host has a usable clipboard utility.
func Available() bool {
	return !clipboard.Unsupported
}

// Terminal copies through the terminal emulator with an OSC 52 escape
// sequence. It needs no clipboard utility, so it also works over SSH.
type Terminal struct {
	Out  io.Writer
	Term string // value of $TERM
	Tmux bool   // running inside tmux
}

// NewTerminal creates a Terminal writer for the current environment
func NewTerminal(out io.Writer) Terminal {
	return Terminal{
		Out:  out,
		Term: os.Getenv("TERM"),
		Tmux: os.Getenv("TMUX") != "",
	}
}

// WriteAll implements Writer
func (t Terminal) WriteAll(text string) error {
	seq := osc52.New(text)
	switch {
	case t.Tmux:
		seq = seq.Tmux()
	case strings.HasPrefix(t.Term, "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(t.Out)
	return err
}

// Recorder keeps written text in memory for tests.
type Recorder struct {
	mu     sync.Mutex
	writes []string
	Err    error // returned by every WriteAll when set
}

// WriteAll implements Writer
func (r *Recorder) WriteAll(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.writes = append(r.writes, text)
	return nil
}

// Last returns the most recent write
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.writes) == 0 {
		return "", false
	}
	return r.writes[len(r.writes)-1], true
}

// Count returns the number of successful writes
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.writes)
}

// Default returns the system clipboard when available, otherwise the
// terminal's OSC 52 clipboard on stderr.
func Default() Writer {
	if Available() {
		return System{}
	}
	return NewTerminal(os.Stderr)
}
