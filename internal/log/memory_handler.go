package log

import (
	"context"
	"log/slog"
	"sync"
)

// Entry is one captured log record.
type Entry struct {
	// Level is the record's level.
	Level slog.Level

	// Message is the record's message.
	Message string

	// Attrs holds the record's attributes as key/value pairs.
	Attrs map[string]slog.Value
}

// entryStore is the shared record storage behind a MemoryHandler and
// any handlers derived from it via WithAttrs.
type entryStore struct {
	mu      sync.Mutex
	entries []Entry
}

func (s *entryStore) add(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
}

func (s *entryStore) snapshot() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// MemoryHandler is an slog.Handler that stores records in memory.
// It is intended for tests that assert on what a stage logged.
//
// Design decision: We implement a handler rather than wrapping a
// bytes.Buffer behind a text handler because asserting on structured
// attributes is less brittle than matching formatted text.
type MemoryHandler struct {
	store *entryStore
	attrs []slog.Attr
}

// NewMemoryHandler creates an empty MemoryHandler.
func NewMemoryHandler() *MemoryHandler {
	return &MemoryHandler{store: &entryStore{}}
}

// Enabled reports whether the handler handles records at the given level.
// MemoryHandler captures everything.
func (h *MemoryHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle stores the record.
func (h *MemoryHandler) Handle(_ context.Context, r slog.Record) error {
	entry := Entry{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]slog.Value),
	}

	for _, a := range h.attrs {
		entry.Attrs[a.Key] = a.Value
	}
	r.Attrs(func(a slog.Attr) bool {
		entry.Attrs[a.Key] = a.Value
		return true
	})

	h.store.add(entry)
	return nil
}

// WithAttrs returns a handler that adds the given attributes to every
// captured record. The returned handler shares the entry store, so
// records logged through derived loggers remain visible to the test.
func (h *MemoryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &MemoryHandler{store: h.store, attrs: merged}
}

// WithGroup returns the handler unchanged; groups are not needed for
// the assertions these tests make.
func (h *MemoryHandler) WithGroup(_ string) slog.Handler {
	return h
}

// Entries returns a copy of all captured records.
func (h *MemoryHandler) Entries() []Entry {
	return h.store.snapshot()
}

// Messages returns the messages of all captured records in order.
func (h *MemoryHandler) Messages() []string {
	entries := h.store.snapshot()
	msgs := make([]string, len(entries))
	for i, e := range entries {
		msgs[i] = e.Message
	}
	return msgs
}
