package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"strings"

	"portinfo/core/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the environment-driven configuration of the program.
// The port is deliberately absent: it is only accepted on the command line.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and an optional .env file in path.
func LoadConfig(path string) (*Config, error) {
	// Variables already present in the environment win over the .env file.
	if err := godotenv.Load(filepath.Join(path, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. LOG_LEVEL -> log.level)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues registers every mapstructure key of iface with its `default` tag,
// so AutomaticEnv can resolve keys that were never set explicitly.
func bindValues(v *viper.Viper, iface any, prefix string) {
	registerDefaults(v, reflect.Indirect(reflect.ValueOf(iface)).Type(), prefix)
}

func registerDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for _, field := range reflect.VisibleFields(t) {
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok || name == "" {
			continue
		}

		key := strings.TrimPrefix(prefix+"."+name, ".")
		if field.Type.Kind() == reflect.Struct {
			registerDefaults(v, field.Type, key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
