package translations

// LangConfig holds configuration for the lang directory.
type LangConfig struct {
	// Dir is the directory holding one folder per locale.
	Dir string `mapstructure:"dir" default:"lang"`
	// Format is the encoding of lang files (json or yaml).
	Format string `mapstructure:"format" default:"json"`
	// ReferenceLocale is the locale every other locale is validated against.
	ReferenceLocale string `mapstructure:"reference_locale" default:"en"`
	// SupportedLocales restricts the dependent locales. Empty means every locale folder.
	SupportedLocales []string `mapstructure:"supported_locales" default:""`
}

// FixesConfig holds configuration for fix file naming.
type FixesConfig struct {
	// NameFormat selects the fix file suffix (git or date).
	NameFormat string `mapstructure:"name_format" default:"date"`
	// Label overrides the suffix produced by NameFormat.
	Label string `mapstructure:"label" default:""`
}

// RunConfig holds configuration for a single invocation.
type RunConfig struct {
	// Parallelism bounds the number of locales compared at once.
	Parallelism int `mapstructure:"parallelism" default:"4"`
}

const (
	FormatJSON = "json"
	FormatYAML = "yaml"

	NameFormatGit  = "git"
	NameFormatDate = "date"
)

// IsValidFormat checks if the configured lang file format is supported.
func (c LangConfig) IsValidFormat() bool {
	switch c.Format {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Extension returns the file extension of lang files, including the dot.
func (c LangConfig) Extension() string {
	if c.Format == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// IsValidNameFormat checks if the configured fix name format is supported.
func (c FixesConfig) IsValidNameFormat() bool {
	switch c.NameFormat {
	case NameFormatGit, NameFormatDate:
		return true
	default:
		return false
	}
}
