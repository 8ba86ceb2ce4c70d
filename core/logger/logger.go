package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type format int

const (
	formatText format = iota
	formatJSON
)

type options struct {
	level    slog.Leveler
	format   format
	output   io.Writer
	attrs    []slog.Attr
	omitTime bool
}

// Option configures a logger created by New.
type Option func(*options)

// WithLevel sets the minimum level. The default is slog.LevelInfo.
func WithLevel(level slog.Leveler) Option {
	return func(o *options) {
		if level != nil {
			o.level = level
		}
	}
}

// WithJSONFormatter selects JSON output.
func WithJSONFormatter() Option {
	return func(o *options) { o.format = formatJSON }
}

// WithTextFormatter selects key=value text output. This is the default.
func WithTextFormatter() Option {
	return func(o *options) { o.format = formatText }
}

// WithOutput sets the destination. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(o *options) {
		o.attrs = append(o.attrs, attrs...)
	}
}

// WithoutTime drops the timestamp from every record, which keeps output
// stable for files compared across runs and for tests.
func WithoutTime() Option {
	return func(o *options) { o.omitTime = true }
}

// WithDevelopment configures text output at debug level.
func WithDevelopment(service string) Option {
	return preset(service, "development", formatText, slog.LevelDebug)
}

// WithStaging configures JSON output at info level.
func WithStaging(service string) Option {
	return preset(service, "staging", formatJSON, slog.LevelInfo)
}

// WithProduction configures JSON output at info level.
func WithProduction(service string) Option {
	return preset(service, "production", formatJSON, slog.LevelInfo)
}

func preset(service, env string, f format, level slog.Level) Option {
	return func(o *options) {
		o.format = f
		o.level = level
		o.attrs = append(o.attrs, slog.String("service", service), slog.String("env", env))
	}
}

// WithEnvironment picks the preset matching env: "development", "staging" or "production".
func WithEnvironment(env, service string) (Option, error) {
	switch env {
	case "development":
		return WithDevelopment(service), nil
	case "staging":
		return WithStaging(service), nil
	case "production":
		return WithProduction(service), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnvironment, env)
	}
}

// New creates a logger. Options apply in order, so an explicit WithLevel
// after a preset overrides the preset level.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: formatText,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(o)
	}

	ho := &slog.HandlerOptions{Level: o.level}
	if o.omitTime {
		ho.ReplaceAttr = dropTime
	}

	var h slog.Handler
	switch o.format {
	case formatJSON:
		h = slog.NewJSONHandler(o.output, ho)
	default:
		h = slog.NewTextHandler(o.output, ho)
	}
	if len(o.attrs) > 0 {
		h = h.WithAttrs(o.attrs)
	}

	return slog.New(h)
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
