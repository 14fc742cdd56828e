// Package config loads environment variables into tagged structs, caching
// the parsed value per struct type.
//
// It wraps github.com/joho/godotenv for reading .env files and
// github.com/caarlos0/env/v11 for parsing:
//
//	type Config struct {
//	    LogLevel   string `env:"TEXTKIT_LOG_LEVEL" envDefault:"info"`
//	    DateFormat string `env:"TEXTKIT_DATE_FORMAT" envDefault:"mm/dd/yyyy"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The default .env file in the working directory is read once, on the first
// Load, and a missing file is not an error. LoadEnv reads explicit files,
// which is an error when they do not exist.
//
// Each struct type is parsed once per process; later Load calls for the same
// type are served from the cache. ResetCache clears it, which is mostly
// useful in tests.
//
// Errors wrap ErrParsingConfig or ErrNilPointer and can be checked with
// errors.Is.
package config
