package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"refstudio/internal/menu"
)

// LegacyDevtoolsEnv is checked for presence only.
const LegacyDevtoolsEnv = "DEV_TOOLS"

// Config holds application configuration.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Devtools DevtoolsConfig
	Window   WindowConfig
}

type AppConfig struct {
	Name string
	ID   string
}

type LogConfig struct {
	Level string
	JSON  bool
}

// DevtoolsConfig is the runtime devtools opt-in.
type DevtoolsConfig struct {
	Enabled     bool
	OpenOnStart bool `mapstructure:"open_on_start"`
}

type WindowConfig struct {
	Width  float32
	Height float32
}

// Load reads configuration from file and env. Env var overrides use prefix
// REFSTUDIO_. The legacy DEV_TOOLS variable enables devtools whenever it is
// set, whatever its value, and in debug builds also opens them at start.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "Ref Studio")
	v.SetDefault("app.id", "studio.ref.desktop")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("devtools.enabled", false)
	v.SetDefault("devtools.open_on_start", false)
	v.SetDefault("window.width", 1200)
	v.SetDefault("window.height", 800)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("REFSTUDIO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "refstudio"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("REFSTUDIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, ok := os.LookupEnv(LegacyDevtoolsEnv); ok {
		c.Devtools.Enabled = true
		if DebugBuild {
			c.Devtools.OpenOnStart = true
		}
	}
	return c, nil
}

// Variant resolves the build variant once from the compile-time flag and the
// devtools opt-in.
func (c Config) Variant() menu.Variant {
	return menu.ResolveVariant(DebugBuild, c.Devtools.Enabled)
}
