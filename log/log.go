// Package log is the small structured logging surface shelf writes
// diagnostics to. The library defaults to the nop implementation so it
// stays quiet when embedded; programs that want output plug in the zerolog
// adapter.
package log

// Logger receives structured diagnostics from the store, most notably the
// decode failures Load collapses into an empty collection.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Err creates an error field with key "error".
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Any creates a field with any value.
func Any(key string, value any) Field { return Field{Key: key, Value: value} }
