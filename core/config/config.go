package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"

	"translations-manager/core/logger"
	"translations-manager/core/storage"
	"translations-manager/feature/translations"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// FileName is the base name of the optional configuration file.
	FileName = "translations"
	// EnvPrefix prefixes every environment variable. Unprefixed, the system
	// LANG variable would shadow the whole lang section.
	EnvPrefix = "TRANSLATIONS"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Lang holds configuration for the lang directory and its locales.
	Lang translations.LangConfig `mapstructure:"lang"`
	// Storage holds configuration for the working area (lockfiles, fixes, ignores).
	Storage storage.Config `mapstructure:"storage"`
	// Fixes holds configuration for fix file naming.
	Fixes translations.FixesConfig `mapstructure:"fixes"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Run holds per invocation settings.
	Run translations.RunConfig `mapstructure:"run"`
}

// LoadConfig loads configuration from translations.yaml, a .env file and environment variables.
// Environment variables win over the file, the file wins over defaults.
func LoadConfig(path string) (*Config, error) {
	// Ignore error if file doesn't exist
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	bindValues(v, Config{}, "")

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Map environment variables to nested keys (e.g. TRANSLATIONS_LANG_DIR -> lang.dir)
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

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
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
