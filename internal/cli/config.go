// Config loading for the librarian CLI.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/librarian/internal/paths"
	"github.com/mesh-intelligence/librarian/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "LIBRARIAN"

	cfgKeyLogLevel       = "log_level"
	cfgKeyDefCopies      = "defaults.copies"
	cfgKeyDefPages       = "defaults.pages"
	cfgKeyDefWeightGrams = "defaults.weight_grams"
	cfgKeyDefFormat      = "defaults.format"
	cfgKeyDefSizeMB      = "defaults.size_mb"
)

// loadConfig resolves the config directory and reads config.yaml from it
// using Viper. A missing config.yaml is not an error; defaults apply.
// Environment variables such as LIBRARIAN_DEFAULTS_COPIES override the file.
func loadConfig(flags *rootFlags) (types.Config, string, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, "", fmt.Errorf("resolve config dir: %w", err)
	}

	def := types.DefaultConfig()
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, def.LogLevel)
	v.SetDefault(cfgKeyDefCopies, def.DefaultCopies)
	v.SetDefault(cfgKeyDefPages, def.DefaultPages)
	v.SetDefault(cfgKeyDefWeightGrams, def.DefaultWeightGrams)
	v.SetDefault(cfgKeyDefFormat, def.DefaultFormat)
	v.SetDefault(cfgKeyDefSizeMB, def.DefaultSizeMB)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, configDir, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		LogLevel:           strings.ToLower(v.GetString(cfgKeyLogLevel)),
		DefaultCopies:      v.GetInt(cfgKeyDefCopies),
		DefaultPages:       v.GetInt(cfgKeyDefPages),
		DefaultWeightGrams: v.GetInt(cfgKeyDefWeightGrams),
		DefaultFormat:      v.GetString(cfgKeyDefFormat),
		DefaultSizeMB:      v.GetFloat64(cfgKeyDefSizeMB),
	}
	if flags.logLevel != "" {
		cfg.LogLevel = strings.ToLower(flags.logLevel)
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, configDir, fmt.Errorf("invalid config in %s: %w", configDir, err)
	}
	return cfg, configDir, nil
}
