// Package notify delivers user-facing, fire-and-forget notifications.
// Emission is at most one per operation; there is no queryable event stream.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Sink receives success and error notifications.
type Sink interface {
	Success(msg string)
	Error(msg string)
}

// ConsoleSink prints colored notifications to a writer.
type ConsoleSink struct {
	out   io.Writer
	green *color.Color
	red   *color.Color
}

func NewConsoleSink(out io.Writer) *ConsoleSink {
	return &ConsoleSink{
		out:   out,
		green: color.New(color.FgGreen),
		red:   color.New(color.FgRed),
	}
}

func (s *ConsoleSink) Success(msg string) {
	_, _ = s.green.Fprintln(s.out, "✔ "+msg)
}

func (s *ConsoleSink) Error(msg string) {
	_, _ = s.red.Fprintln(s.out, "✖ "+msg)
}

// Recorder is a Sink that remembers everything it received; used in tests to
// assert the one-notification-per-operation rule.
type Recorder struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, msg)
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func (r *Recorder) Successes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.successes...)
}

func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.errors...)
}

var _ Sink = (*ConsoleSink)(nil)
var _ Sink = (*Recorder)(nil)

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Success(string) {}
func (discard) Error(string)   {}

// Fprintf-style convenience for sinks that format.
func Successf(s Sink, format string, args ...any) {
	s.Success(fmt.Sprintf(format, args...))
}

func Errorf(s Sink, format string, args ...any) {
	s.Error(fmt.Sprintf(format, args...))
}
