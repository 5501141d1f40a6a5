package logging

import (
	"fmt"
	"sync"

	"github.com/rupertdev/houston/pkg/houston"
)

// Level identifies the houston.Logger method that produced an Entry.
type Level string

const (
	LevelVerbose Level = "verbose"
	LevelInfo    Level = "info"
	LevelError   Level = "error"
)

// Entry is one formatted log call.
type Entry struct {
	Level   Level
	Message string
}

// Recorder keeps every log call in memory, including Verbose ones.
// Safe for concurrent use by multiple goroutines.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Verbose(format string, args ...interface{}) {
	r.record(LevelVerbose, format, args)
}

func (r *Recorder) Info(format string, args ...interface{}) {
	r.record(LevelInfo, format, args)
}

func (r *Recorder) Error(format string, args ...interface{}) {
	r.record(LevelError, format, args)
}

func (r *Recorder) record(level Level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Message: msg})
}

// Entries returns a copy of the recorded entries in call order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Messages returns the messages logged at level, in call order.
func (r *Recorder) Messages(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []string
	for _, e := range r.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

var _ houston.Logger = (*Recorder)(nil)
