package interruptor

import "github.com/joeycumines/logiface"

// LogifaceLogger adapts a github.com/joeycumines/logiface typed logger to
// this package's [Logger] interface, so an interruptor's lifecycle and
// send events can be routed into any logiface-backed sink
// (zerolog, logrus, slog, or a bespoke Event implementation) instead of
// only the built-in [DefaultLogger].
//
// Construct with a concrete Event type, e.g.:
//
//	lg := logiface.New[*myevent.Event](
//	    logiface.WithEventFactory[*myevent.Event](factory),
//	    logiface.WithWriter[*myevent.Event](writer),
//	)
//	interruptor.SetStructuredLogger(&interruptor.LogifaceLogger[*myevent.Event]{L: lg})
type LogifaceLogger[E logiface.Event] struct {
	L *logiface.Logger[E]
}

// IsEnabled reports whether level maps to a writable logiface level on
// the wrapped logger.
func (a *LogifaceLogger[E]) IsEnabled(level LogLevel) bool {
	if a == nil || a.L == nil {
		return false
	}
	return a.L.Build(logifaceLevel(level)).Enabled()
}

// Log emits entry through the wrapped logiface logger.
func (a *LogifaceLogger[E]) Log(entry LogEntry) {
	if a == nil || a.L == nil {
		return
	}
	b := a.L.Build(logifaceLevel(entry.Level))
	if !b.Enabled() {
		return
	}
	b = b.Str("category", entry.Category)
	if entry.Err != nil {
		b = b.Err(entry.Err)
	}
	b.Log(entry.Message)
}

// logifaceLevel maps this package's four-level scheme onto logiface's
// syslog-style levels.
func logifaceLevel(level LogLevel) logiface.Level {
	switch level {
	case LevelDebug:
		return logiface.LevelDebug
	case LevelInfo:
		return logiface.LevelInformational
	case LevelWarn:
		return logiface.LevelWarning
	case LevelError:
		return logiface.LevelError
	default:
		return logiface.LevelInformational
	}
}
