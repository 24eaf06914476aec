// Package potatolog provides an in-memory sink for JSON log entries.
//
// A zerolog logger writing into a MemoryLogReaderWriter keeps every status
// record around, so the remote UI can render recent entries and tests can
// assert on the exact sequence of emitted lines.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// GlobalMemoryLogReaderWriter is a global MemoryLogReaderWriter.
var GlobalMemoryLogReaderWriter = MemoryLogReaderWriter{
	mtx: sync.Mutex{},
	log: []LogEntry{},
}

// MemoryLogReaderWriter is a simple in-memory log reader and writer.
type MemoryLogReaderWriter struct {
	mtx sync.Mutex
	log []LogEntry
}

// NewMemoryLogReaderWriter returns a new, empty MemoryLogReaderWriter.
func NewMemoryLogReaderWriter() *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{log: []LogEntry{}}
}

// Write appends a log entry to the log.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	return len(p), nil
}

// Get returns a copy of the log.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// Tail returns (a copy of) the last n entries of the log.
func (w *MemoryLogReaderWriter) Tail(n int) []LogEntry {
	entries := w.Get()
	if n < len(entries) {
		entries = entries[len(entries)-n:]
	}
	return entries
}

// Messages returns the messages of all entries, in order.
func (w *MemoryLogReaderWriter) Messages() []string {
	return w.MessagesWhere("", "")
}

// MessagesWhere returns the messages of all entries which have the given
// string value for the given field, in order.
// An empty field matches all entries.
func (w *MemoryLogReaderWriter) MessagesWhere(field, value string) []string {
	result := []string{}
	for _, entry := range w.Get() {
		if field != "" {
			v, ok := entry[field].(string)
			if !ok || v != value {
				continue
			}
		}
		msg, _ := entry["message"].(string)
		result = append(result, msg)
	}
	return result
}

// Reset drops all entries.
func (w *MemoryLogReaderWriter) Reset() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = []LogEntry{}
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Tail(n int) []LogEntry
}
