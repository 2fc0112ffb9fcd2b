package logger

import "sync"

// Entry is a single call captured by RecordingLogger.
type Entry struct {
	Level   Level
	Message string
	Err     error
	Fields  map[string]interface{}
}

// RecordingLogger keeps every call in memory. It is meant for tests.
type RecordingLogger struct {
	mu      sync.Mutex
	entries []Entry
}

var _ Logger = (*RecordingLogger)(nil)

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) record(e Entry) {
	l.mu.Lock()
	l.entries = append(l.entries, e)
	l.mu.Unlock()
}

func (l *RecordingLogger) Info(message string, properties map[string]interface{}) {
	l.record(Entry{Level: LevelInfo, Message: message, Fields: properties})
}

func (l *RecordingLogger) Error(err error, properties map[string]interface{}) {
	l.record(Entry{Level: LevelError, Message: err.Error(), Err: err, Fields: properties})
}

func (l *RecordingLogger) Fatal(err error, properties map[string]interface{}) {
	l.record(Entry{Level: LevelFatal, Message: err.Error(), Err: err, Fields: properties})
}

func (l *RecordingLogger) Debug(message string, properties map[string]interface{}) {
	l.record(Entry{Level: LevelDebug, Message: message, Fields: properties})
}

func (l *RecordingLogger) SetLevel(_ Level) {}

// Entries returns a copy of the captured calls, optionally filtered by level.
func (l *RecordingLogger) Entries(levels ...Level) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if len(levels) == 0 || containsLevel(levels, e.Level) {
			out = append(out, e)
		}
	}
	return out
}

func containsLevel(levels []Level, l Level) bool {
	for _, x := range levels {
		if x == l {
			return true
		}
	}
	return false
}
