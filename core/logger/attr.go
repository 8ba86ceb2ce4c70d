package logger

import (
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
	"time"
)

// Helpers return an empty Attr for nil or empty input; slog drops empty
// attributes, so callers never need to guard them.

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Errors
// ============================================================================

// Error returns err under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups the non-nil errors under "errors", keyed by their argument index.
func Errors(errs ...error) slog.Attr {
	var as []slog.Attr
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return Group("errors", as...)
}

// ============================================================================
// Timing
// ============================================================================

// Duration returns d under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed returns the time since start under the key "elapsed".
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Identifiers and metadata
// ============================================================================

// ID returns value under key.
func ID(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// RunID identifies one execution of a program.
func RunID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("run_id", id)
}

func Component(name string) slog.Attr { return slog.String("component", name) }
func Event(name string) slog.Attr     { return slog.String("event", name) }
func Action(action string) slog.Attr  { return slog.String("action", action) }
func Result(result string) slog.Attr  { return slog.String("result", result) }
func Version(v string) slog.Attr      { return slog.String("version", v) }

// Count returns n under key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key returns value under key.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}

// ============================================================================
// Numeric values
// ============================================================================

// Vector logs the String form of v under key, so vectors read as "<2, 3>"
// in both text and JSON output.
func Vector(key string, v fmt.Stringer) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.String(key, v.String())
}

// Point returns the evaluation point x under the key "x".
func Point(x float64) slog.Attr {
	return slog.Float64("x", x)
}

// Value returns a computed number under key.
func Value(key string, f float64) slog.Attr {
	return slog.Float64(key, f)
}

// ============================================================================
// Debugging
// ============================================================================

// Caller returns "file:line" of the function calling Caller.
func Caller() slog.Attr {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return slog.Attr{}
	}
	return slog.String("caller", file+":"+strconv.Itoa(line))
}
