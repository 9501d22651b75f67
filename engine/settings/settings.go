// Package settings holds engine configuration.
package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds application configuration, fixed before bootstrap.
type Settings struct {
	Title   string
	Width   int
	Height  int
	Version string

	// Profiling enables the per-tick diagnostics sink and overlay.
	Profiling bool
	// Menus enables the main/game menu states and the menu handler.
	Menus bool
	// Intro enables the intro state on startup; off goes straight to the menu.
	Intro bool
	// Audio enables the tone player service.
	Audio bool

	// SavePath is the sqlite save-slot database location.
	SavePath string
	// IntroSeconds is how long the intro state runs before the main menu.
	IntroSeconds float64
}

// Default returns the built-in configuration.
func Default() Settings {
	return Settings{
		Title:        "Ember Game",
		Width:        320,
		Height:       320,
		Version:      "0.1",
		Profiling:    false,
		Menus:        true,
		Intro:        true,
		Audio:        true,
		SavePath:     filepath.Join(os.Getenv("HOME"), ".local", "share", "ember", "saves.db"),
		IntroSeconds: 2.0,
	}
}

// Load reads configuration from file and env. Env var overrides use prefix EMBER_.
func Load() (Settings, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("title", def.Title)
	v.SetDefault("width", def.Width)
	v.SetDefault("height", def.Height)
	v.SetDefault("version", def.Version)
	v.SetDefault("profiling", def.Profiling)
	v.SetDefault("menus", def.Menus)
	v.SetDefault("intro", def.Intro)
	v.SetDefault("audio", def.Audio)
	v.SetDefault("save_path", def.SavePath)
	v.SetDefault("intro_seconds", def.IntroSeconds)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("EMBER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "ember"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("EMBER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	s := Settings{
		Title:        v.GetString("title"),
		Width:        v.GetInt("width"),
		Height:       v.GetInt("height"),
		Version:      v.GetString("version"),
		Profiling:    v.GetBool("profiling"),
		Menus:        v.GetBool("menus"),
		Intro:        v.GetBool("intro"),
		Audio:        v.GetBool("audio"),
		SavePath:     v.GetString("save_path"),
		IntroSeconds: v.GetFloat64("intro_seconds"),
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects configurations the engine cannot run with.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("invalid display size %dx%d", s.Width, s.Height)
	}
	if s.IntroSeconds < 0 {
		return fmt.Errorf("negative intro duration %v", s.IntroSeconds)
	}
	return nil
}
