// Package config loads CLI settings from nncomponent.yaml and the
// environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix namespaces environment overrides, e.g.
// NNCOMPONENT_ASSEMBLE_SKIP_UNRECOGNIZED=true.
const EnvPrefix = "NNCOMPONENT"

// Config holds the CLI settings.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Assemble AssembleConfig `mapstructure:"assemble"`
	Loader   LoaderConfig   `mapstructure:"loader"`
	Report   ReportConfig   `mapstructure:"report"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// AssembleConfig configures graph assembly.
type AssembleConfig struct {
	SkipUnrecognized bool   `mapstructure:"skip_unrecognized"`
	Annotate         bool   `mapstructure:"annotate"`
	RootPath         string `mapstructure:"root_path"`
}

// LoaderConfig configures schema loading.
type LoaderConfig struct {
	AllowHTTP bool          `mapstructure:"allow_http"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// ReportConfig configures report output.
type ReportConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
	Title  string `mapstructure:"title"`
}

// Load reads configuration from path, or from nncomponent.yaml in the
// working directory when path is empty. A missing default file is not an
// error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.development", false)
	v.SetDefault("assemble.skip_unrecognized", false)
	v.SetDefault("assemble.annotate", true)
	v.SetDefault("assemble.root_path", "")
	v.SetDefault("loader.allow_http", true)
	v.SetDefault("loader.timeout", 30*time.Second)
	v.SetDefault("report.format", "text")
	v.SetDefault("report.color", true)
	v.SetDefault("report.title", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("nncomponent")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Loader.Timeout < 0 {
		return fmt.Errorf("loader.timeout must not be negative, got: %s", c.Loader.Timeout)
	}
	switch strings.ToLower(c.Report.Format) {
	case "text", "html":
	default:
		return fmt.Errorf("report.format must be text or html, got: %s", c.Report.Format)
	}
	if strings.HasPrefix(c.Assemble.RootPath, "[]") {
		return fmt.Errorf("assemble.root_path must not start with an array segment, got: %s", c.Assemble.RootPath)
	}
	return nil
}

// Logger builds a zap logger for the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	if c.Log.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

func parseLevel(raw string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return level, err
	}
	return level, nil
}
