// Package paths resolves where librarian looks for its configuration.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under the platform config root.
const appDirName = "librarian"

// ConfigFileName is the file read from the resolved config directory.
const ConfigFileName = "config.yaml"

// EnvConfigDir overrides the platform default config directory.
const EnvConfigDir = "LIBRARIAN_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/librarian (fallback ~/.config/librarian)
// macOS:   ~/Library/Application Support/librarian
// Windows: %APPDATA%/librarian
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > LIBRARIAN_CONFIG_DIR env > DefaultConfigDir().
// Explicit values are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ConfigFile returns the path of config.yaml inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}
