// Package config loads environment variables into typed structs.
//
// Fields are described with caarlos0/env tags. A .env file in the working
// directory, if present, is read once before the first Load; variables that
// are already set are not overridden by it.
//
//	import "github.com/dmitrymomot/mathkit/core/config"
//
//	type Config struct {
//		Wait   time.Duration `env:"WAIT" envDefault:"5s"`
//		Point  float64       `env:"POINT" envDefault:"4"`
//		Secret string        `env:"SECRET,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err // wraps ErrParsingConfig
//	}
//
//	config.MustLoad(&cfg) // panics instead, for main()
//
// # Caching
//
// The first successful Load for a type is cached for the process lifetime.
// Later calls for the same type copy the cached value and ignore changes to
// the environment. Failed loads are not cached.
package config
