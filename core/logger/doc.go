// Package logger builds log/slog loggers from functional options and provides
// nil-safe attribute helpers.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/mathkit/core/logger"
//
//	log := logger.New(
//		logger.WithDevelopment("mathkit"),
//		logger.WithOutput(f),
//	)
//
//	log.Info("Computed dot product",
//		logger.Component("vector"),
//		logger.Vector("v", v),
//		logger.Vector("w", w),
//		logger.Value("dot", v.Dot(w)),
//	)
//
// # Presets
//
//	logger.WithDevelopment(service) // text, debug level
//	logger.WithStaging(service)     // JSON, info level
//	logger.WithProduction(service)  // JSON, info level
//
// Presets add "service" and "env" attributes. WithEnvironment selects a preset
// by name, which is convenient when the environment comes from configuration:
//
//	opt, err := logger.WithEnvironment(cfg.Env, cfg.AppName)
//	if err != nil {
//		return err
//	}
//	log := logger.New(opt, logger.WithLevel(cfg.LogLevel))
//
// # Attributes
//
// Helpers such as Error, Errors, ID, RunID and Key return an empty slog.Attr
// for nil or empty input, and slog omits empty attributes:
//
//	log.Error("Evaluation failed", logger.Error(err)) // safe when err == nil
//
// # Compact Output
//
// WithoutTime removes timestamps; combined with the text formatter, records
// read as "level=INFO msg=..." which is stable across runs.
package logger
