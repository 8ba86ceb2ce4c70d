package demo_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mathkit/app/demo"
	"github.com/dmitrymomot/mathkit/core/logger"
)

func testConfig(t *testing.T) demo.Config {
	t.Helper()
	return demo.Config{
		AppName:  "mathkit-test",
		Env:      "development",
		LogLevel: slog.LevelInfo,
		LogFile:  filepath.Join(t.TempDir(), "log.txt"),
		Wait:     time.Millisecond,
		Locale:   "en",
		Point:    4,
	}
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	var out bytes.Buffer

	app, err := demo.NewApp(demo.WithConfig(cfg), demo.WithOutput(&out))
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))
	require.NoError(t, app.Close())

	report := out.String()
	assert.Contains(t, report, "v = <2, 3>, w = <4, 5>\n")
	assert.Contains(t, report, "dot(v, w) = 23.00\n")
	assert.Contains(t, report, "dot(w, v) = 23.00\n")
	assert.Contains(t, report, "dot(3v, w) = 69.00\n")
	assert.Contains(t, report, "|v| = 3.6056, |w| = 6.4031\n")
	assert.Contains(t, report, "compare(v, w) = less\n")
	assert.Contains(t, report, "f'(4.00) ≈ 23.0000\n")
	assert.Contains(t, report, "f''(4.00) ≈ 6.00\n")

	logs, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), `level=INFO msg="Starting wait!"`)
	assert.Contains(t, string(logs), `msg="Finished waiting!"`)
	assert.Contains(t, string(logs), "run_id="+app.RunID())
	assert.Contains(t, string(logs), "v=\"<2, 3>\"")
	assert.Contains(t, string(logs), "dot=23")
	assert.NotContains(t, string(logs), "time=")
}

func TestApp_Run_TruncatesLogFile(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.LogFile, []byte("stale\n"), 0o600))

	app, err := demo.NewApp(demo.WithConfig(cfg), demo.WithOutput(&bytes.Buffer{}))
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))
	require.NoError(t, app.Close())

	logs, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.NotContains(t, string(logs), "stale")
}

func TestApp_Run_Cancelled(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Wait = time.Hour

	var logs bytes.Buffer
	app, err := demo.NewApp(
		demo.WithConfig(cfg),
		demo.WithLogger(logger.New(logger.WithOutput(&logs))),
		demo.WithOutput(&bytes.Buffer{}),
	)
	require.NoError(t, err)
	defer app.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err = app.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, logs.String(), "Wait interrupted")
	assert.NotContains(t, logs.String(), "Finished waiting!")
}

func TestApp_Run_LocalizedReport(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Locale = "de"
	var out bytes.Buffer

	app, err := demo.NewApp(demo.WithConfig(cfg), demo.WithOutput(&out))
	require.NoError(t, err)
	defer app.Close()
	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "dot(v, w) = 23,00\n")
	assert.Contains(t, out.String(), "|v| = 3,6056, |w| = 6,4031\n")
}

func TestNewApp_Errors(t *testing.T) {
	t.Parallel()

	t.Run("invalid locale", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Locale = "!!"
		_, err := demo.NewApp(demo.WithConfig(cfg))
		assert.ErrorIs(t, err, demo.ErrInvalidLocale)
	})

	t.Run("unknown environment", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Env = "qa"
		_, err := demo.NewApp(demo.WithConfig(cfg))
		assert.ErrorIs(t, err, logger.ErrUnknownEnvironment)
	})

	t.Run("log file in missing directory", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.LogFile = filepath.Join(t.TempDir(), "missing", "log.txt")
		_, err := demo.NewApp(demo.WithConfig(cfg))
		assert.ErrorIs(t, err, demo.ErrOpenLogFile)
	})

	t.Run("nil logger", func(t *testing.T) {
		_, err := demo.NewApp(demo.WithConfig(testConfig(t)), demo.WithLogger(nil))
		assert.ErrorIs(t, err, demo.ErrNilLogger)
	})

	t.Run("nil output", func(t *testing.T) {
		_, err := demo.NewApp(demo.WithConfig(testConfig(t)), demo.WithOutput(nil))
		assert.ErrorIs(t, err, demo.ErrNilOutput)
	})
}

func TestNewApp_FromEnvironment(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FILE", logFile)
	t.Setenv("WAIT", "1ms")
	t.Setenv("POINT", "0")

	var out bytes.Buffer
	app, err := demo.NewApp(demo.WithOutput(&out))
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))
	require.NoError(t, app.Close())

	assert.Contains(t, out.String(), "f'(0.00) ≈ -1.0000\n")

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "env=production")
}
