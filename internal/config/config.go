// Package config loads conversion defaults from environment variables.
// A .env file in the working directory, if present, is read first.
package config

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Logging LoggingConfig
	Output  OutputConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `env:"XLSX2CSV_LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"XLSX2CSV_LOG_FORMAT" default:"text"`
}

// OutputConfig holds defaults for generated files.
type OutputConfig struct {
	// Delimiter is the field separator; "tab" means \t (default: ,)
	Delimiter string `env:"XLSX2CSV_DELIMITER" default:","`

	// Encoding is the output encoding label (default: utf-8)
	Encoding string `env:"XLSX2CSV_ENCODING" default:"utf-8"`

	// CRLF terminates lines with \r\n (default: false)
	CRLF bool `env:"XLSX2CSV_CRLF" default:"false"`

	// Dir is the directory for generated files; empty means next to the source
	Dir string `env:"XLSX2CSV_OUTPUT_DIR"`
}
