package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"server-launcher/core/launcher"
	"server-launcher/core/logger"
	"server-launcher/core/paths"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the launcher reads.
const EnvPrefix = "LAUNCHER"

// SettingsFile is the optional YAML file read from the directory passed to LoadConfig.
const SettingsFile = "launcher.yaml"

// Config holds the launcher's own settings.
// The server list lives in the JSON configuration handled by core/storage, not here.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Paths holds configuration for locating the server configuration file.
	Paths paths.Config `mapstructure:"paths"`
	// Launcher holds configuration for starting server processes.
	Launcher launcher.Config `mapstructure:"launcher"`
}

// LoadConfig loads configuration from defaults, an optional launcher.yaml in path,
// a .env file and environment variables, in increasing order of precedence.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Optional settings file; only read when present
	settingsFile := filepath.Join(path, SettingsFile)
	if _, err := os.Stat(settingsFile); err == nil {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", settingsFile, err)
		}
	}

	// Map environment variables to nested keys (e.g. LAUNCHER_LOG_LEVEL -> log.level)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
