// Package config provides centralized configuration management for the
// census2011 command. It loads configuration from environment variables with
// sensible defaults and validates all settings on startup to fail fast on
// misconfiguration.
//
// Configuration only tunes logging and the defaults of command-line flags;
// flags given on the command line always win. CENSUS_INPUT_ENCODING and
// CENSUS_OUTPUT_XLSX (set directly or through .env) default to UTF-8 input and
// CSV-only output, so when they are unset the CSV outputs are exactly those of
// a run with no environment at all. Logging variables never affect outputs.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables or a .env file.
type Config struct {
	Logging LoggingConfig
	Input   InputConfig
	Output  OutputConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// InputConfig holds input decoding settings.
type InputConfig struct {
	// Encoding is the default character encoding of input files:
	// utf-8, latin1 or windows-1252 (default: utf-8)
	Encoding string `env:"CENSUS_INPUT_ENCODING" envAlt:"CENSUS_ENCODING" default:"utf-8"`
}

// OutputConfig holds output settings.
type OutputConfig struct {
	// XLSX also writes <stub>.xlsx with one sheet per tier (default: false)
	XLSX bool `env:"CENSUS_OUTPUT_XLSX" default:"false"`
}
