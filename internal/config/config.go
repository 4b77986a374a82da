// Package config loads cardcheck runtime settings from the environment.
//
// Settings come from process environment variables with an optional .env
// file for local development. The struct is parsed once per process; the
// validator tables themselves are code-level constants and are not
// configurable here.
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the config struct.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config holds the cardcheck CLI runtime settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"CARDCHECK_LOG_LEVEL" envDefault:"info"`
	// LogFormat is text or json.
	LogFormat string `env:"CARDCHECK_LOG_FORMAT" envDefault:"text"`
	// Strict makes the validate command exit non-zero when a record has any
	// invalid field.
	Strict bool `env:"CARDCHECK_STRICT" envDefault:"false"`
	// NoClean disables the OCR text cleanup pass before validation.
	NoClean bool `env:"CARDCHECK_NO_CLEAN" envDefault:"false"`
}

var (
	loadOnce   sync.Once
	loaded     Config
	loadErr    error
	envFileTry sync.Once
)

// Load parses the environment into a Config. The result is cached for the
// process lifetime; a missing .env file is not an error.
func Load() (Config, error) {
	envFileTry.Do(func() {
		_ = godotenv.Load()
	})
	loadOnce.Do(func() {
		if err := env.Parse(&loaded); err != nil {
			loadErr = errors.Join(ErrParsingConfig, err)
		}
	})
	return loaded, loadErr
}
