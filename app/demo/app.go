package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/mathkit/core/config"
	"github.com/dmitrymomot/mathkit/core/logger"
)

// App waits for the configured duration, then computes and reports the
// vector and derivative examples.
type App struct {
	config  Config
	logger  *slog.Logger
	out     io.Writer
	printer *message.Printer
	runID   string
	logFile *os.File
	hasCfg  bool
}

type AppOption func(*App) error

// NewApp loads Config from the environment unless WithConfig is given.
// The caller must Close the app to release the log file.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{
		out:   os.Stdout,
		runID: uuid.NewString(),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if !app.hasCfg {
		if err := config.Load(&app.config); err != nil {
			return nil, err
		}
	}

	tag, err := language.Parse(app.config.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidLocale, app.config.Locale, err)
	}
	app.printer = message.NewPrinter(tag)

	if app.logger == nil {
		if err := app.initLogger(); err != nil {
			return nil, err
		}
	}
	app.logger = app.logger.With(logger.RunID(app.runID))

	return app, nil
}

func (a *App) initLogger() error {
	envOpt, err := logger.WithEnvironment(a.config.Env, a.config.AppName)
	if err != nil {
		return err
	}

	var output io.Writer = os.Stderr
	if a.config.LogFile != "" {
		f, err := os.Create(a.config.LogFile)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOpenLogFile, err)
		}
		a.logFile = f
		output = f
	}

	a.logger = logger.New(
		envOpt,
		logger.WithTextFormatter(),
		logger.WithLevel(a.config.LogLevel),
		logger.WithOutput(output),
		logger.WithoutTime(),
	)
	return nil
}

func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		app.hasCfg = true
		return nil
	}
}

func WithLogger(l *slog.Logger) AppOption {
	return func(app *App) error {
		if l == nil {
			return ErrNilLogger
		}
		app.logger = l
		return nil
	}
}

// WithOutput sets where the report is written. The default is os.Stdout.
func WithOutput(w io.Writer) AppOption {
	return func(app *App) error {
		if w == nil {
			return ErrNilOutput
		}
		app.out = w
		return nil
	}
}

// RunID returns the identifier attached to every log record of this app.
func (a *App) RunID() string {
	return a.runID
}

// Run blocks for the configured wait, then computes, logs and reports the
// results. It returns ctx.Err() if ctx is done before the wait ends.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	a.logger.Info("Starting wait!", logger.Duration(a.config.Wait))

	timer := time.NewTimer(a.config.Wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		a.logger.Warn("Wait interrupted", logger.Elapsed(start), logger.Error(ctx.Err()))
		return ctx.Err()
	case <-timer.C:
	}

	a.logger.Info("Finished waiting!", logger.Elapsed(start))

	r := Compute(a.config.Point)
	a.logResult(r)

	if err := a.report(r); err != nil {
		a.logger.Error("Failed to write report", logger.Error(err))
		return err
	}
	return nil
}

func (a *App) logResult(r Result) {
	a.logger.Info("Vector algebra",
		logger.Component("vector"),
		logger.Vector("v", r.V),
		logger.Vector("w", r.W),
		logger.Value("dot", r.Dot),
		logger.Value("scaled_dot", r.ScaledDot),
		logger.Value("norm_v", r.NormV),
		logger.Value("norm_w", r.NormW),
		logger.Result(r.Order.String()),
	)
	if r.Dot != r.DotSwap {
		a.logger.Warn("Dot product is not commutative", logger.Value("dot", r.Dot), logger.Value("dot_swapped", r.DotSwap))
	}
	if r.ScaledDot != Scale*r.Dot {
		a.logger.Warn("Scaled dot product differs", logger.Value("scaled_dot", r.ScaledDot), logger.Value("expected", Scale*r.Dot))
	}

	a.logger.Info("Derivatives",
		logger.Component("deriv"),
		logger.Point(r.X),
		logger.Value("first", r.First),
		logger.Value("second", r.Second),
	)
}

func (a *App) report(r Result) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = a.printer.Fprintf(a.out, format, args...)
		}
	}

	printf("v = %s, w = %s\n", r.V.String(), r.W.String())
	printf("dot(v, w) = %.2f\n", r.Dot)
	printf("dot(w, v) = %.2f\n", r.DotSwap)
	printf("dot(%.0fv, w) = %.2f\n", Scale, r.ScaledDot)
	printf("|v| = %.4f, |w| = %.4f\n", r.NormV, r.NormW)
	printf("compare(v, w) = %s\n", r.Order.String())
	printf("f'(%.2f) ≈ %.4f\n", r.X, r.First)
	printf("f''(%.2f) ≈ %.2f\n", r.X, r.Second)

	return err
}

// Close releases the log file opened by NewApp, if any.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}
