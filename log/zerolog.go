package log

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Zerolog adapts a zerolog.Logger to the Logger interface.
type Zerolog struct {
	l zerolog.Logger
}

// NewZerolog returns a console logger writing to w.
func NewZerolog(w io.Writer) *Zerolog {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return &Zerolog{l: zerolog.New(out).With().Timestamp().Logger()}
}

// Wrap adapts an existing zerolog.Logger.
func Wrap(l zerolog.Logger) *Zerolog {
	return &Zerolog{l: l}
}

func (z *Zerolog) Debug(msg string, fields ...Field) { emit(z.l.Debug(), msg, fields) }
func (z *Zerolog) Info(msg string, fields ...Field)  { emit(z.l.Info(), msg, fields) }
func (z *Zerolog) Warn(msg string, fields ...Field)  { emit(z.l.Warn(), msg, fields) }
func (z *Zerolog) Error(msg string, fields ...Field) { emit(z.l.Error(), msg, fields) }

func emit(ev *zerolog.Event, msg string, fields []Field) {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			ev = ev.Str(f.Key, v)
		case int:
			ev = ev.Int(f.Key, v)
		case bool:
			ev = ev.Bool(f.Key, v)
		case error:
			ev = ev.Err(v)
		default:
			ev = ev.Interface(f.Key, v)
		}
	}
	ev.Msg(msg)
}
