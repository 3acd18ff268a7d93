// Package config resolves the pickers configuration directory and loads
// user overrides from init.lua.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Dir returns the pickers configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "pickers")
}

// InitFile returns the path to init.lua
func InitFile() string {
	return filepath.Join(Dir(), "init.lua")
}

// Config is the full application configuration.
type Config struct {
	Country  Country
	Language Language
	Log      Log
}

// Country configures the country picker.
type Country struct {
	Banners []string // Carousel image tokens
	// ShuffleAt is the 0-based carousel index that regenerates the list in
	// random order.
	ShuffleAt int
}

// Language configures the language picker.
type Language struct {
	Count     int
	GroupSize int
	Banners   []string
	IconEven  string
	IconOdd   string
}

// Log configures the rotating log file.
type Log struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Country: Country{
			Banners:   []string{"imagedan", "bisb", "ila"},
			ShuffleAt: 2,
		},
		Language: Language{
			Count:     60,
			GroupSize: 20,
			Banners:   []string{"image1", "image2", "image3"},
			IconEven:  "image4",
			IconOdd:   "image5",
		},
		Log: Log{
			Level:      "INFO",
			File:       filepath.Join(Dir(), "pickers.log"),
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error

	if len(c.Country.Banners) == 0 {
		errs = append(errs, errors.New("country.banners must not be empty"))
	} else if c.Country.ShuffleAt < 0 || c.Country.ShuffleAt >= len(c.Country.Banners) {
		errs = append(errs, fmt.Errorf("country.shuffle_at %d outside banner range [0, %d)",
			c.Country.ShuffleAt, len(c.Country.Banners)))
	}

	if c.Language.Count <= 0 {
		errs = append(errs, fmt.Errorf("language.count must be positive, got %d", c.Language.Count))
	}
	if c.Language.GroupSize < 0 {
		errs = append(errs, fmt.Errorf("language.group_size must not be negative, got %d", c.Language.GroupSize))
	}
	if len(c.Language.Banners) == 0 {
		errs = append(errs, errors.New("language.banners must not be empty"))
	}

	switch strings.ToUpper(c.Log.Level) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}
