// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file is read once (if present), extra files can be requested
// with WithEnvFiles, and the environment is parsed into any struct using env
// field tags. WithPrefix scopes a struct to a variable namespace so the same
// type can be loaded for several components.
//
// # Usage
//
//	type Config struct {
//	    Parallelism int  `env:"PARALLELISM" envDefault:"4"`
//	    LogFailures bool `env:"LOG_FAILURES"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("VALIDATION_")); err != nil {
//	    log.Fatal(err)
//	}
//
// Results are cached per type and prefix for the lifetime of the process. Tests
// that mutate the environment call Reset between loads.
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig – env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile – a file passed to WithEnvFiles could not be read.
//   - ErrInvalidConfigType – cached value has an unexpected type.
//   - ErrNilPointer – nil pointer passed to Load or MustLoad.
package config
