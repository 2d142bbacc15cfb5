package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".fistsum"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for fistsum settings.
const envPrefix = "FISTSUM"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Default configuration values.
const (
	DefaultOutput       = "-"
	DefaultReportFormat = FormatJSON
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// Load loads configuration from file, env vars, and defaults. If
// configPath is non-empty, it is used as the explicit config file path;
// otherwise the config file is searched in CWD and $HOME. A missing
// config file is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	return &cfg, nil
}

// applyDefaults registers every key so that environment variables are
// visible to Unmarshal even without a config file.
func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("group", "")
	viperCfg.SetDefault("special_group", "")
	viperCfg.SetDefault("output", DefaultOutput)
	viperCfg.SetDefault("histogram.output", "")
	viperCfg.SetDefault("histogram.plot", "")
	viperCfg.SetDefault("report.format", DefaultReportFormat)
	viperCfg.SetDefault("report.no_color", false)
	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)
}
