package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/curio/internal/logging"
	"github.com/mesh-intelligence/curio/internal/paths"
	"github.com/mesh-intelligence/curio/pkg/types"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	types.Config `yaml:",inline"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	MetricsFile  string `yaml:"metrics_file,omitempty"`
}

// sampleRecords seeds a data directory so that "curio run" has input.
var sampleRecords = map[string]string{
	types.DefaultInventoryFile: "S, 9, 1989, Near Mint, Ken Griffey Jr., Upper Deck\n" +
		"M, 3, 2001, 65, Lincoln Cent\n" +
		"C, 1, 1938, Mint, Superman, DC\n",
	types.DefaultCustomersFile: "001, Mickey Mouse\n" +
		"002, Donald Duck\n",
	types.DefaultCommandsFile: "B, 001, S, 1989, Near Mint, Ken Griffey Jr., Upper Deck\n" +
		"S, 002, M, 2001, 65, Lincoln Cent\n" +
		"D\n" +
		"H\n",
}

func newInitCmd(flags *rootFlags) *cobra.Command {
	var sample bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the curio configuration",
		Long:  "Create the configuration directory and a default config.yaml, and optionally\nsample record files in the data directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return sysError("resolve config dir: %w", err)
			}
			dataDir, err := paths.ResolveDataDir(flags.dataDir, "")
			if err != nil {
				return sysError("resolve data dir: %w", err)
			}

			if err := os.MkdirAll(configDir, 0o755); err != nil {
				return sysError("create config directory: %w", err)
			}
			configPath := filepath.Join(configDir, configFileExt)
			if err := writeConfigIfMissing(configPath, dataDir, flags.dataDir != ""); err != nil {
				return sysError("write config: %w", err)
			}

			if sample {
				if err := writeSampleRecords(dataDir); err != nil {
					return sysError("write sample records: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "curio initialized (config: %s)\n", configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sample, "sample", false, "write sample record files into the data directory")
	return cmd
}

// writeConfigIfMissing creates config.yaml with default values. An existing
// file is left alone. data_dir is recorded only when it was given
// explicitly; otherwise curio keeps reading from the working directory.
func writeConfigIfMissing(path, dataDir string, pinDataDir bool) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{
		Config:    types.DefaultConfig(""),
		LogLevel:  "warn",
		LogFormat: logging.FormatConsole,
	}
	cfg.SQLitePath = types.DefaultSQLiteFile
	if pinDataDir {
		cfg.DataDir = dataDir
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// writeSampleRecords writes each sample file that does not exist yet.
func writeSampleRecords(dataDir string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	for name, content := range sampleRecords {
		path := filepath.Join(dataDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}
