// Copyright (c) 2026 EventInc. All rights reserved.

/*
Package logring provides a bounded, FIFO-evicting log buffer behind the
standard [log/slog.Handler] interface.

It is used by the EventInc client tooling to retain the most recent diagnostic
entries for later inspection, mirroring what the server does with structured
JSON logs but with a hard cap on retained history.

Core behavior:

  - Bounded: The buffer never exceeds MaxEntries; the oldest entries are
    evicted first when the cap is reached.
  - Filtered: Records below MinLevel (or when the handler is disabled) are
    dropped before they touch the buffer.
  - Durable: With Persist enabled, every accepted entry flushes the buffer
    snapshot to a [Store]. Persistence failures are reported to stderr only
    and never surface to the caller.

Concurrent processes sharing one Store race on read-modify-write of the
snapshot; the last writer wins. This is an accepted limitation.
*/
package logring

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"
)

// DefaultMaxEntries is the buffer cap applied when Options.MaxEntries is unset.
const DefaultMaxEntries = 1000

// Entry is a single retained log record.
type Entry struct {
	// Timestamp is the ISO-8601 time the record was produced.
	Timestamp string `json:"timestamp"`
	// Level is one of "debug", "info", "warn", "error".
	Level string `json:"level"`
	// Message is the log message.
	Message string `json:"message"`
	// Data holds the record's attributes, if any.
	Data map[string]any `json:"data,omitempty"`
}

// Options configures a [Handler].
//
// The handler is constructed explicitly and passed to whoever needs it; there
// is no package-level singleton.
type Options struct {
	// Enabled gates all output. A disabled handler drops every record.
	Enabled bool

	// MinLevel is the minimum level retained in the buffer.
	MinLevel slog.Level

	// Persist flushes the buffer to Store after every accepted record.
	Persist bool

	// MaxEntries caps the buffer length. Zero or negative means
	// [DefaultMaxEntries].
	MaxEntries int

	// Store is the durable backend used when Persist is set.
	Store Store

	// Console, when non-nil, receives every accepted record in addition to
	// the buffer (typically a text handler on stderr).
	Console slog.Handler
}

// Handler is a [slog.Handler] backed by a bounded in-memory ring of entries.
//
// Handler values returned by WithAttrs/WithGroup share the same underlying
// buffer, so derived loggers contribute to a single history.
type Handler struct {
	opts   Options
	attrs  []slog.Attr
	groups []string
	state  *ringState
}

// ringState is the shared mutable core guarded by a single mutex.
type ringState struct {
	mu      sync.Mutex
	max     int
	entries []Entry
}

// NewHandler constructs a Handler from opts.
//
// When persistence is enabled and the store already holds entries, they are
// loaded so history survives process restarts. A load failure starts with an
// empty buffer and is reported to stderr.
func NewHandler(opts Options) *Handler {
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}

	state := &ringState{max: opts.MaxEntries}

	if opts.Persist && opts.Store != nil {
		entries, err := opts.Store.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logring: failed to load persisted entries: %v\n", err)
		} else {
			if len(entries) > opts.MaxEntries {
				entries = entries[len(entries)-opts.MaxEntries:]
			}
			state.entries = entries
		}
	}

	return &Handler{opts: opts, state: state}
}

// Enabled reports whether records at the given level are accepted.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.opts.Enabled && level >= h.opts.MinLevel
}

// Handle appends the record to the buffer, evicting the oldest entries when
// the cap is exceeded, and flushes to the store when persistence is on.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	entry := Entry{
		Timestamp: record.Time.UTC().Format(time.RFC3339Nano),
		Level:     levelString(record.Level),
		Message:   record.Message,
	}

	data := make(map[string]any, record.NumAttrs()+len(h.attrs))
	for _, attr := range h.attrs {
		data[h.qualify(attr.Key)] = attr.Value.Resolve().Any()
	}
	record.Attrs(func(attr slog.Attr) bool {
		data[h.qualify(attr.Key)] = attr.Value.Resolve().Any()
		return true
	})
	if len(data) > 0 {
		entry.Data = data
	}

	h.state.mu.Lock()
	h.state.entries = append(h.state.entries, entry)
	if overflow := len(h.state.entries) - h.state.max; overflow > 0 {
		h.state.entries = append([]Entry(nil), h.state.entries[overflow:]...)
	}
	var snapshot []Entry
	if h.opts.Persist && h.opts.Store != nil {
		snapshot = append([]Entry(nil), h.state.entries...)
	}
	h.state.mu.Unlock()

	if snapshot != nil {
		if err := h.opts.Store.Save(snapshot); err != nil {
			// Persistence is best-effort: report to the console, never to the caller.
			fmt.Fprintf(os.Stderr, "logring: failed to persist entries: %v\n", err)
		}
	}

	if h.opts.Console != nil && h.opts.Console.Enabled(ctx, record.Level) {
		return h.opts.Console.Handle(ctx, record)
	}

	return nil
}

// WithAttrs returns a derived handler carrying the extra attributes.
// The derived handler shares the buffer with its parent.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	if h.opts.Console != nil {
		clone.opts.Console = h.opts.Console.WithAttrs(attrs)
	}
	return &clone
}

// WithGroup returns a derived handler that prefixes attribute keys with the
// group name ("group.key").
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	if h.opts.Console != nil {
		clone.opts.Console = h.opts.Console.WithGroup(name)
	}
	return &clone
}

// Entries returns a copy of the currently buffered entries, oldest first.
func (h *Handler) Entries() []Entry {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	return append([]Entry(nil), h.state.entries...)
}

// Len returns the current number of buffered entries.
func (h *Handler) Len() int {
	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	return len(h.state.entries)
}

// Clear empties the buffer and, when persistence is on, the backing store.
func (h *Handler) Clear() {
	h.state.mu.Lock()
	h.state.entries = nil
	h.state.mu.Unlock()

	if h.opts.Persist && h.opts.Store != nil {
		if err := h.opts.Store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "logring: failed to clear persisted entries: %v\n", err)
		}
	}
}

// qualify prefixes key with the accumulated group path.
func (h *Handler) qualify(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	prefix := ""
	for _, group := range h.groups {
		prefix += group + "."
	}
	return prefix + key
}

// levelString maps slog levels onto the four retained level names.
func levelString(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "debug"
	case level < slog.LevelWarn:
		return "info"
	case level < slog.LevelError:
		return "warn"
	default:
		return "error"
	}
}
