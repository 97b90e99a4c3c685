package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown log level returns ErrLogLevelUnknown",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "negative copies returns ErrDefaultCopiesNegative",
			mutate:  func(c *Config) { c.DefaultCopies = -1 },
			wantErr: ErrDefaultCopiesNegative,
		},
		{
			name:    "negative pages returns ErrDefaultPagesNegative",
			mutate:  func(c *Config) { c.DefaultPages = -1 },
			wantErr: ErrDefaultPagesNegative,
		},
		{
			name:    "negative weight returns ErrDefaultWeightNegative",
			mutate:  func(c *Config) { c.DefaultWeightGrams = -1 },
			wantErr: ErrDefaultWeightNegative,
		},
		{
			name:    "empty format returns ErrDefaultFormatEmpty",
			mutate:  func(c *Config) { c.DefaultFormat = "" },
			wantErr: ErrDefaultFormatEmpty,
		},
		{
			name:    "negative size returns ErrDefaultSizeNegative",
			mutate:  func(c *Config) { c.DefaultSizeMB = -0.5 },
			wantErr: ErrDefaultSizeNegative,
		},
		{
			name:   "zero copies is valid",
			mutate: func(c *Config) { c.DefaultCopies = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
