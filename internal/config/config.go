package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bloomcart/storeseed/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyScaffoldRoot    = "scaffold.root"
	KeyDescriptionsDir = "descriptions.dir"
	KeyDescriptionsExt = "descriptions.ext"
	KeyLogLevel        = "log.level"
	KeyColor           = "color"
)

// Defaults for every known key. The descriptions directory matches the path
// the storefront reads product copy from.
var defaults = map[string]any{
	KeyScaffoldRoot:    ".",
	KeyDescriptionsDir: "data/descriptions",
	KeyDescriptionsExt: "md",
	KeyLogLevel:        "info",
	KeyColor:           true,
}

// Dir returns the path to the config directory (~/.storeseed/).
// STORESEED_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.storeseed/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; a malformed one is.
func Load() error {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// Set writes a config key-value pair and saves the config file. Only keys
// already in the file plus key are written; defaults and environment
// overrides never reach the file. The process-wide config sees the new value
// immediately.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	v := typedValue(key, value)
	file.Set(key, v)

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, v)
	return nil
}

// typedValue stores booleans for keys whose default is a boolean.
func typedValue(key, value string) any {
	if _, ok := defaults[key].(bool); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return value
}
