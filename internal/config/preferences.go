package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Preferences holds per-user defaults for the CLI and TUI.
type Preferences struct {
	Output     OutputPreferences     `toml:"output"`
	Forecast   ForecastPreferences   `toml:"forecast"`
	Ledger     LedgerPreferences     `toml:"ledger"`
	Appearance AppearancePreferences `toml:"appearance"`
}

// OutputPreferences holds formatting defaults.
type OutputPreferences struct {
	Format string `toml:"format"`
}

// ForecastPreferences holds cash-flow defaults.
type ForecastPreferences struct {
	HorizonMonths int `toml:"horizon_months"`
}

// LedgerPreferences points at the default ledger database.
type LedgerPreferences struct {
	Path string `toml:"path,omitempty"`
}

// AppearancePreferences holds theme settings.
type AppearancePreferences struct {
	Theme string `toml:"theme"`
}

// DefaultPreferences returns the built-in defaults.
func DefaultPreferences() Preferences {
	return Preferences{
		Output:     OutputPreferences{Format: "console"},
		Forecast:   ForecastPreferences{HorizonMonths: 12},
		Appearance: AppearancePreferences{Theme: "dark"},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "finproj")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "finproj")
}

// PreferencesPath returns the full path to the preferences file.
func PreferencesPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadPreferences reads the preferences at path, returning defaults if it
// doesn't exist. FINPROJ_LEDGER overrides the ledger path.
func LoadPreferences(path string) (Preferences, error) {
	prefs := DefaultPreferences()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &prefs); err != nil {
			return prefs, fmt.Errorf("parsing preferences: %w", err)
		}
	case !os.IsNotExist(err):
		return prefs, fmt.Errorf("reading preferences: %w", err)
	}

	if env := os.Getenv("FINPROJ_LEDGER"); env != "" {
		prefs.Ledger.Path = env
	}
	if prefs.Forecast.HorizonMonths < 1 {
		prefs.Forecast.HorizonMonths = DefaultPreferences().Forecast.HorizonMonths
	}
	return prefs, nil
}

// SavePreferences writes prefs to path, creating the directory as needed.
func SavePreferences(path string, prefs Preferences) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating preferences file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(prefs)
}
