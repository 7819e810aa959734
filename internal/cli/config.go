package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/curio/internal/logging"
	"github.com/mesh-intelligence/curio/internal/paths"
	"github.com/mesh-intelligence/curio/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "CURIO"
)

// Config keys.
const (
	cfgKeySource        = "source"
	cfgKeyDataDir       = "data_dir"
	cfgKeyInventoryFile = "inventory_file"
	cfgKeyCustomersFile = "customers_file"
	cfgKeyCommandsFile  = "commands_file"
	cfgKeySQLitePath    = "sqlite_path"
	cfgKeyLogLevel      = "log_level"
	cfgKeyLogFormat     = "log_format"
	cfgKeyMetricsFile   = "metrics_file"
)

// envKeys are the keys that CURIO_<KEY> overrides. data_dir is resolved by
// the paths package so that config.yaml wins over CURIO_DATA_DIR.
var envKeys = []string{
	cfgKeySource,
	cfgKeyInventoryFile,
	cfgKeyCustomersFile,
	cfgKeyCommandsFile,
	cfgKeySQLitePath,
	cfgKeyLogLevel,
	cfgKeyLogFormat,
	cfgKeyMetricsFile,
}

// settings is the resolved configuration of one invocation.
type settings struct {
	types.Config
	ConfigDir   string
	Logging     logging.Config
	MetricsFile string
}

// loadConfig reads config.yaml from configDir. A missing file is not an
// error; defaults and environment overrides still apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeySource, types.SourceFile)
	v.SetDefault(cfgKeyInventoryFile, types.DefaultInventoryFile)
	v.SetDefault(cfgKeyCustomersFile, types.DefaultCustomersFile)
	v.SetDefault(cfgKeyCommandsFile, types.DefaultCommandsFile)
	v.SetDefault(cfgKeySQLitePath, types.DefaultSQLiteFile)
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFormat, logging.FormatConsole)

	v.SetEnvPrefix(envPrefix)
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolveSettings combines flags, config.yaml and the environment.
func resolveSettings(flags *rootFlags) (settings, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return settings{}, fmt.Errorf("resolve config dir: %w", err)
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return settings{}, err
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return settings{}, fmt.Errorf("resolve data dir: %w", err)
	}

	s := settings{
		Config: types.Config{
			Source:        v.GetString(cfgKeySource),
			DataDir:       dataDir,
			InventoryFile: v.GetString(cfgKeyInventoryFile),
			CustomersFile: v.GetString(cfgKeyCustomersFile),
			CommandsFile:  v.GetString(cfgKeyCommandsFile),
			SQLitePath:    v.GetString(cfgKeySQLitePath),
		},
		ConfigDir: configDir,
		Logging: logging.Config{
			Level:  v.GetString(cfgKeyLogLevel),
			Format: v.GetString(cfgKeyLogFormat),
		},
		MetricsFile: v.GetString(cfgKeyMetricsFile),
	}
	if err := s.Validate(); err != nil {
		return settings{}, fmt.Errorf("invalid config in %s: %w", filepath.Join(configDir, configFileExt), err)
	}
	return s, nil
}

// file resolves a configured file name against the data directory.
func (s settings) file(name string) string {
	return paths.InDataDir(s.DataDir, name)
}
