// Package config provides configuration management for the translations manager.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional translations.yaml file, and a .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Lang: lang directory, file format, reference and supported locales
//   - Storage: working area for lockfiles, fix files and the ignore registry
//   - Fixes: fix file naming (git branch or date, optional label override)
//   - Log: logging level and format
//   - Run: comparison parallelism
//
// Environment variables carry the TRANSLATIONS_ prefix and use underscores for
// nesting, e.g. TRANSLATIONS_LANG_REFERENCE_LOCALE.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Lang.ReferenceLocale)
package config
