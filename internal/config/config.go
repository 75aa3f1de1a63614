package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DocsConfig struct {
	// Dir holds the generator output: index.json plus one <package>.json
	// (or .json.zst) per package.
	Dir string `mapstructure:"dir"`
	// Packages optionally restricts which package files load.
	Packages []string `mapstructure:"packages"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

type SearchConfig struct {
	MinQueryLength int `mapstructure:"min_query_length"`
	Limit          int `mapstructure:"limit"`
}

type Config struct {
	Docs   DocsConfig   `mapstructure:"docs"`
	Server ServerConfig `mapstructure:"server"`
	Search SearchConfig `mapstructure:"search"`
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "griffedoc"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "griffedoc"))
	}

	viper.SetDefault("docs.dir", "docs/api")
	viper.SetDefault("docs.packages", []string{})
	viper.SetDefault("server.listen", "127.0.0.1:8488")
	viper.SetDefault("search.min_query_length", 2)
	viper.SetDefault("search.limit", 20)

	viper.SetEnvPrefix("GRIFFEDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

// stringToSliceHookFunc lets docs.packages be written either as a TOML array
// or as a comma-separated string (the only form an environment variable can
// carry).
func stringToSliceHookFunc() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf([]string{}) || f.Kind() != reflect.String {
			return data, nil
		}
		raw := strings.TrimSpace(data.(string))
		if raw == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	}
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}

	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: stringToSliceHookFunc(),
		Result:     &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
