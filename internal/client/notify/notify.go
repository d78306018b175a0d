// Package notify delivers transient, non-blocking user notices: the
// terminal counterpart of toast messages.
package notify

import (
	"fmt"
	"io"
	"sync"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier shows a short message to the user. Implementations must not block.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Console prints notices to w, one per line.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Success(msg string) { c.print("✔", msg) }

func (c *Console) Error(msg string) { c.print("✖", msg) }

func (c *Console) print(mark, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.w, "%s %s\n", mark, msg)
}

// Notice is one recorded notification.
type Notice struct {
	Level   Level
	Message string
}

// Recorder keeps every notice in memory. It is safe for concurrent use.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }

func (r *Recorder) Error(msg string) { r.add(LevelError, msg) }

func (r *Recorder) add(l Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, Notice{Level: l, Message: msg})
}

// Notices returns a copy of everything recorded so far.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notice(nil), r.notices...)
}

// Errors returns the messages of recorded error notices, in order.
func (r *Recorder) Errors() []string {
	return r.messages(LevelError)
}

// Successes returns the messages of recorded success notices, in order.
func (r *Recorder) Successes() []string {
	return r.messages(LevelSuccess)
}

func (r *Recorder) messages(l Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.notices {
		if n.Level == l {
			out = append(out, n.Message)
		}
	}
	return out
}

// Discard drops every notice.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
