// Package config loads layoutctl settings from a YAML file, LAYOUTCTL_*
// environment variables and defaults, in that order of precedence
// (environment first).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/grindlemire/go-layout/pkg/debug"
)

const (
	envPrefix      = "LAYOUTCTL"
	configFileName = "layoutctl"
	configFileType = "yaml"
)

// Output formats accepted by output.format.
const (
	FormatTree  = "tree"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatASCII = "ascii"
)

// ErrBadConfig is returned when a loaded value is out of range.
var ErrBadConfig = errors.New("invalid configuration")

// Config is the full layoutctl configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Layout LayoutConfig `mapstructure:"layout"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// LayoutConfig holds engine options and the fallback viewport used when a
// scene does not declare its available space.
type LayoutConfig struct {
	Rounding bool    `mapstructure:"rounding"`
	Cache    bool    `mapstructure:"cache"`
	Width    float64 `mapstructure:"width"`
	Height   float64 `mapstructure:"height"`
}

// OutputConfig selects how results are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Debug converts the log section to the logger's settings.
func (l LogConfig) Debug() debug.Config {
	return debug.Config{
		Level:      l.Level,
		Format:     l.Format,
		File:       l.File,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
	}
}

// New returns a viper instance with defaults and environment binding set.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("layout.rounding", true)
	v.SetDefault("layout.cache", true)
	v.SetDefault("layout.width", 80)
	v.SetDefault("layout.height", 24)
	v.SetDefault("output.format", FormatTree)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path, or layoutctl.yaml from the working directory when path
// is empty. A missing default file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated and numeric fields.
func (c Config) Validate() error {
	switch c.Output.Format {
	case FormatTree, FormatJSON, FormatYAML, FormatASCII:
	default:
		return fmt.Errorf("%w: output.format %q", ErrBadConfig, c.Output.Format)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrBadConfig, c.Log.Format)
	}
	if c.Layout.Width < 0 || c.Layout.Height < 0 {
		return fmt.Errorf("%w: negative viewport %vx%v", ErrBadConfig, c.Layout.Width, c.Layout.Height)
	}
	return nil
}
