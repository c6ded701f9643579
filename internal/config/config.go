package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// DefaultServer is the portal API used when nothing else is configured
	DefaultServer = "http://localhost:3500"

	appDirName = ".pgtctl"
	envPrefix  = "PGT"
)

// Config is the pgtctl configuration
type Config struct {
	Server         string        `mapstructure:"server"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Storage        StorageConfig `mapstructure:"storage"`
	Log            LogConfig     `mapstructure:"log"`
}

// StorageConfig durable session store settings
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig logging settings
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	FilePath  string `mapstructure:"file_path"`
	AddSource bool   `mapstructure:"add_source"`
}

// Options are values set from command-line flags. Empty fields are ignored.
type Options struct {
	ConfigFile string
	Server     string
	LogLevel   string
}

// AppDir returns ~/.pgtctl
func AppDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, appDirName), nil
}

// Load reads .env files, the optional config file and PGT_* environment
// variables, then applies flag overrides.
func Load(opts Options) (*Config, error) {
	// .env is optional; values already in the environment win
	_ = godotenv.Load()

	appDir, err := AppDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v, appDir)

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(appDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if opts.Server != "" {
		v.Set("server", opts.Server)
	}
	if opts.LogLevel != "" {
		v.Set("log.level", opts.LogLevel)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, appDir string) {
	v.SetDefault("server", DefaultServer)
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("storage.path", filepath.Join(appDir, "storage.db"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "file")
	v.SetDefault("log.file_path", filepath.Join(appDir, "pgtctl.log"))
	v.SetDefault("log.add_source", false)
}

// Validate checks the configuration
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid server URL: %q", c.Server)
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}

	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}

	return nil
}

// ServerURL returns the server address without a trailing slash
func (c *Config) ServerURL() string {
	return strings.TrimRight(c.Server, "/")
}
