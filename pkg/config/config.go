// Package config loads calm's settings from .calm.yaml, CALM_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Storage backends.
const (
	BackendDisk   = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the resolved configuration.
type Config struct {
	Path    string `mapstructure:"path"`
	Storage string `mapstructure:"storage"`

	Journal   Journal   `mapstructure:"journal"`
	Engine    Engine    `mapstructure:"engine"`
	Narration Narration `mapstructure:"narration"`
	Log       Log       `mapstructure:"log"`
}

type Journal struct {
	Debounce    time.Duration `mapstructure:"debounce"`
	RequireText bool          `mapstructure:"require_text"`
}

type Engine struct {
	Pattern  string        `mapstructure:"pattern"`
	MinPhase time.Duration `mapstructure:"min_phase"`
	MaxPhase time.Duration `mapstructure:"max_phase"`
}

type Narration struct {
	Enabled bool    `mapstructure:"enabled"`
	Command string  `mapstructure:"command"`
	Voice   string  `mapstructure:"voice"`
	Rate    float64 `mapstructure:"rate"`
	Pitch   float64 `mapstructure:"pitch"`
	Volume  float64 `mapstructure:"volume"`
}

type Log struct {
	Level string `mapstructure:"level"`
	// File receives log output; "-" means stderr. Empty selects calm.log
	// under Path.
	File string `mapstructure:"file"`
}

// BasePath is the expanded storage directory.
func (c *Config) BasePath() string {
	return c.Path
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("path", "~/.calm.db")
	v.SetDefault("storage", BackendDisk)
	v.SetDefault("journal.debounce", time.Second)
	v.SetDefault("journal.require_text", false)
	v.SetDefault("engine.pattern", "box")
	v.SetDefault("engine.min_phase", time.Second)
	v.SetDefault("engine.max_phase", 10*time.Second)
	v.SetDefault("narration.enabled", true)
	v.SetDefault("narration.rate", 1.0)
	v.SetDefault("narration.pitch", 1.0)
	v.SetDefault("narration.volume", 1.0)
	v.SetDefault("log.level", "info")
}

// LoadConfig walks the usual places for a .calm config file and merges it
// with the environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigName(".calm") // .yaml is implicit
	v.SetEnvPrefix("CALM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("CALM_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, cfg.normalize()
}

func (c *Config) normalize() error {
	path, err := homedir.Expand(c.Path)
	if err != nil {
		return fmt.Errorf("config: expand path %q: %w", c.Path, err)
	}
	c.Path = path

	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	switch c.Storage {
	case BackendDisk, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("config: unknown storage %q", c.Storage)
	}

	if c.Engine.MinPhase <= 0 || c.Engine.MaxPhase < c.Engine.MinPhase {
		return fmt.Errorf("config: invalid phase bounds [%v, %v]", c.Engine.MinPhase, c.Engine.MaxPhase)
	}

	switch c.Log.File {
	case "-":
	case "":
		c.Log.File = filepath.Join(c.Path, "calm.log")
	default:
		if c.Log.File, err = homedir.Expand(c.Log.File); err != nil {
			return fmt.Errorf("config: expand log file: %w", err)
		}
	}
	return nil
}

// Default returns the built-in configuration rooted at path, without
// reading files or the environment.
func Default(path string) *Config {
	v := viper.New()
	setDefaults(v)
	v.Set("path", path)
	cfg, err := fromViper(v)
	if err != nil {
		// The defaults are static and always valid.
		panic(err)
	}
	return cfg
}
