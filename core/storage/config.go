package storage

import "path/filepath"

// Config holds configuration for the working storage area.
type Config struct {
	// Dir is the root of the working area holding lockfiles, fix files and ignores.
	Dir string `mapstructure:"dir" default:"storage/translations"`
	// CacheSize is the number of parsed trees kept in memory per run.
	CacheSize int `mapstructure:"cache_size" default:"256"`
}

// LockDir returns the directory holding lockfiles.
func (c Config) LockDir() string {
	return filepath.Join(c.Dir, "lock")
}

// FixesDir returns the directory generated fix files are written to.
func (c Config) FixesDir() string {
	return filepath.Join(c.Dir, "fixes")
}

// FixedDir returns the directory translated fix files are read from.
func (c Config) FixedDir() string {
	return filepath.Join(c.Dir, "fixed")
}

// IgnoresPath returns the path of the ignore registry.
func (c Config) IgnoresPath() string {
	return filepath.Join(c.Dir, "ignores.toml")
}
