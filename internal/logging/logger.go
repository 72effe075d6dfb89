// Package logging provides leveled logging and step tracing for turgles.
// It offers two complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - A StepTracer for structured JSONL per-step timing records
package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// LevelTrace is a custom slog level below Debug for the most verbose output.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Label the custom trace level
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// StepTracer writes one JSON object per line for each traced event.
// It is safe for concurrent use. A nil StepTracer is safe to use;
// all methods are no-ops on nil receiver.
type StepTracer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStepTracer creates a tracer writing to w.
// At "info" level (the default), returns nil and nothing is traced.
func NewStepTracer(w io.Writer, level string) *StepTracer {
	if ParseLevel(level) == slog.LevelInfo || w == nil {
		return nil
	}
	return &StepTracer{w: w}
}

// Log writes an event as a single JSONL line. The caller's map is not mutated.
// Safe to call on nil receiver.
func (st *StepTracer) Log(event map[string]any) {
	if st == nil || st.w == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	data = append(data, '\n')

	st.mu.Lock()
	defer st.mu.Unlock()
	_, _ = st.w.Write(data)
}

// Enabled reports whether events are written. Callers use it to skip
// building events. Safe to call on nil receiver.
func (st *StepTracer) Enabled() bool {
	return st != nil && st.w != nil
}
