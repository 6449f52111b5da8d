package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum severity written (trace, debug, info, warn, error).
	Level string `mapstructure:"level" default:"warn"`
	// Format is the encoding of log records (console, json).
	Format string `mapstructure:"format" default:"console"`
}
