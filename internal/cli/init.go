package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/librarian/internal/paths"
	"github.com/mesh-intelligence/librarian/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	LogLevel string          `yaml:"log_level"`
	Defaults defaultsSection `yaml:"defaults"`
}

// defaultsSection holds the menu defaults written under "defaults".
type defaultsSection struct {
	Copies      int     `yaml:"copies"`
	Pages       int     `yaml:"pages"`
	WeightGrams int     `yaml:"weight_grams"`
	Format      string  `yaml:"format"`
	SizeMB      float64 `yaml:"size_mb"`
}

func newInitCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default config.yaml",
		Long:  "Create the configuration directory and write config.yaml with default\nmenu values. An existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags)
		},
	}
}

func runInit(cmd *cobra.Command, flags *rootFlags) error {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return sysError(fmt.Errorf("create config directory: %w", err))
	}

	path := paths.ConfigFile(configDir)
	written, err := writeConfigIfMissing(path)
	if err != nil {
		return sysError(fmt.Errorf("write config: %w", err))
	}

	if written {
		fmt.Fprintln(cmd.OutOrStdout(), "Librarian initialized successfully")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "Librarian already initialized")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "  config:", path)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. It reports whether the file was written.
func writeConfigIfMissing(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	def := types.DefaultConfig()
	cfg := configFile{
		LogLevel: def.LogLevel,
		Defaults: defaultsSection{
			Copies:      def.DefaultCopies,
			Pages:       def.DefaultPages,
			WeightGrams: def.DefaultWeightGrams,
			Format:      def.DefaultFormat,
			SizeMB:      def.DefaultSizeMB,
		},
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
