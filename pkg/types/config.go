package types

import "errors"

// Config holds driver settings loaded from config.yaml. The Default* fields
// fill in menu answers left blank.
type Config struct {
	LogLevel           string
	DefaultCopies      int
	DefaultPages       int
	DefaultWeightGrams int
	DefaultFormat      string
	DefaultSizeMB      float64
}

// Log levels accepted by Config.LogLevel.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config validation errors.
var (
	ErrLogLevelUnknown       = errors.New("unknown log level")
	ErrDefaultCopiesNegative = errors.New("default copies must not be negative")
	ErrDefaultPagesNegative  = errors.New("default pages must not be negative")
	ErrDefaultWeightNegative = errors.New("default weight must not be negative")
	ErrDefaultFormatEmpty    = errors.New("default format must not be empty")
	ErrDefaultSizeNegative   = errors.New("default size must not be negative")
)

var knownLogLevels = map[string]bool{
	LogLevelDebug: true,
	LogLevelInfo:  true,
	LogLevelWarn:  true,
	LogLevelError: true,
}

// DefaultConfig returns the settings used when config.yaml is absent.
func DefaultConfig() Config {
	return Config{
		LogLevel:           LogLevelWarn,
		DefaultCopies:      1,
		DefaultPages:       100,
		DefaultWeightGrams: 300,
		DefaultFormat:      "PDF",
		DefaultSizeMB:      1.0,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	if c.DefaultCopies < 0 {
		return ErrDefaultCopiesNegative
	}
	if c.DefaultPages < 0 {
		return ErrDefaultPagesNegative
	}
	if c.DefaultWeightGrams < 0 {
		return ErrDefaultWeightNegative
	}
	if c.DefaultFormat == "" {
		return ErrDefaultFormatEmpty
	}
	if c.DefaultSizeMB < 0 {
		return ErrDefaultSizeNegative
	}
	return nil
}
