package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/librarian/pkg/types"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing config.yaml yields defaults", func(t *testing.T) {
		dir := t.TempDir()
		cfg, gotDir, err := loadConfig(&rootFlags{configDir: dir})
		require.NoError(t, err)
		assert.Equal(t, dir, gotDir)
		assert.Equal(t, types.DefaultConfig(), cfg)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		dir := writeConfig(t, "log_level: info\ndefaults:\n  copies: 5\n  pages: 250\n  format: epub\n  size_mb: 3.5\n")
		cfg, _, err := loadConfig(&rootFlags{configDir: dir})
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 5, cfg.DefaultCopies)
		assert.Equal(t, 250, cfg.DefaultPages)
		assert.Equal(t, 300, cfg.DefaultWeightGrams, "unset keys keep defaults")
		assert.Equal(t, "epub", cfg.DefaultFormat)
		assert.Equal(t, 3.5, cfg.DefaultSizeMB)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := writeConfig(t, "defaults:\n  pages: 250\n")
		t.Setenv("LIBRARIAN_DEFAULTS_PAGES", "42")
		cfg, _, err := loadConfig(&rootFlags{configDir: dir})
		require.NoError(t, err)
		assert.Equal(t, 42, cfg.DefaultPages)
	})

	t.Run("flag overrides log level", func(t *testing.T) {
		dir := writeConfig(t, "log_level: error\n")
		cfg, _, err := loadConfig(&rootFlags{configDir: dir, logLevel: "DEBUG"})
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("config dir from environment", func(t *testing.T) {
		dir := writeConfig(t, "defaults:\n  copies: 9\n")
		t.Setenv("LIBRARIAN_CONFIG_DIR", dir)
		cfg, gotDir, err := loadConfig(&rootFlags{})
		require.NoError(t, err)
		assert.Equal(t, dir, gotDir)
		assert.Equal(t, 9, cfg.DefaultCopies)
	})
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		flags   rootFlags
		wantErr error
	}{
		{name: "negative copies", content: "defaults:\n  copies: -1\n", wantErr: types.ErrDefaultCopiesNegative},
		{name: "negative pages", content: "defaults:\n  pages: -1\n", wantErr: types.ErrDefaultPagesNegative},
		{name: "negative size", content: "defaults:\n  size_mb: -2\n", wantErr: types.ErrDefaultSizeNegative},
		{name: "unknown log level", content: "log_level: loud\n", wantErr: types.ErrLogLevelUnknown},
		{name: "unknown log level flag", content: "", flags: rootFlags{logLevel: "loud"}, wantErr: types.ErrLogLevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := tt.flags
			flags.configDir = writeConfig(t, tt.content)
			_, _, err := loadConfig(&flags)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "defaults: [unclosed\n")
	_, _, err := loadConfig(&rootFlags{configDir: dir})
	assert.Error(t, err)
}

func TestMenuUsesConfigDefaults(t *testing.T) {
	dir := writeConfig(t, "defaults:\n  copies: 5\n  format: epub\n  size_mb: 2.25\n")
	res := runCLI(t, lines("2", "dune", "herbert", "", "", "", "3", "0"), "--config-dir", dir)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Stdout, "Copies: 5 | Format: EPUB, Size: 2.25MB")
}

func TestMenuRejectsInvalidConfig(t *testing.T) {
	dir := writeConfig(t, "defaults:\n  copies: -1\n")
	res := runCLI(t, "", "--config-dir", dir)
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, types.ErrDefaultCopiesNegative)
	assert.Equal(t, exitUserError, exitCode(res.Err))
}
