package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Log     LogConfig     `toml:"log"`
	Web     WebConfig     `toml:"web"`
	Overlay OverlayConfig `toml:"overlay"`
	Hotkey  HotkeyConfig  `toml:"hotkey"`
	Tray    TrayConfig    `toml:"tray"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type WebConfig struct {
	Listen string `toml:"listen"`
	Port   int    `toml:"port"`
}

type OverlayConfig struct {
	FadeMillis int `toml:"fade_ms"`
	MaxKeys    int `toml:"max_keys"`
}

type HotkeyConfig struct {
	Pause string `toml:"pause"`
}

type TrayConfig struct {
	Enabled bool `toml:"enabled"`
}

const maxOverlayKeys = 20

// Default configuration
func defaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Web: WebConfig{
			Listen: "127.0.0.1",
			Port:   7331,
		},
		Overlay: OverlayConfig{
			FadeMillis: 2000,
			MaxKeys:    5,
		},
		Hotkey: HotkeyConfig{
			Pause: "ctrl+alt+k",
		},
		Tray: TrayConfig{
			Enabled: true,
		},
	}
}

// ConfigPath returns the path to the configuration file
func ConfigPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}

	configDir := filepath.Join(base, "keyglyph")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// Load loads the configuration from the default location
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from the TOML file at configPath.
// If the file doesn't exist, it creates it with default values.
func LoadFrom(configPath string) (*Config, error) {
	// If config doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := defaultConfig()
		if err := save(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	// Load existing config; missing keys keep their defaults
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	return cfg, nil
}

// save writes the configuration to the TOML file
func save(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Validate checks every setting is usable
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	if c.Web.Port < 1 || c.Web.Port > 65535 {
		return fmt.Errorf("web port out of range: %d", c.Web.Port)
	}
	if c.Overlay.FadeMillis <= 0 {
		return fmt.Errorf("overlay fade_ms must be positive: %d", c.Overlay.FadeMillis)
	}
	if c.Overlay.MaxKeys < 1 || c.Overlay.MaxKeys > maxOverlayKeys {
		return fmt.Errorf("overlay max_keys must be between 1 and %d: %d", maxOverlayKeys, c.Overlay.MaxKeys)
	}
	if c.Hotkey.Pause != "" {
		if _, err := ParseHotkey(c.Hotkey.Pause); err != nil {
			return fmt.Errorf("invalid pause hotkey: %w", err)
		}
	}
	return nil
}

// SlogLevel parses the configured log level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("unknown log level: %q", l.Level)
	}
	return level, nil
}

// Addr returns the host:port the overlay server listens on
func (w WebConfig) Addr() string {
	return fmt.Sprintf("%s:%d", w.Listen, w.Port)
}

// URL returns the address a browser should open
func (w WebConfig) URL() string {
	host := w.Listen
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s:%d", host, w.Port)
}

// KeyCombo represents a parsed keyboard combination
type KeyCombo struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Win   bool
	Key   string
}

// ParseHotkey parses a hotkey combo string like "ctrl+alt+k"
func ParseHotkey(combo string) (KeyCombo, error) {
	var kc KeyCombo
	if strings.TrimSpace(combo) == "" {
		return kc, fmt.Errorf("empty hotkey combo")
	}
	parts := strings.Split(strings.ToLower(combo), "+")

	for i, part := range parts {
		part = strings.TrimSpace(part)

		// Check if this part is a modifier
		isModifier := false
		switch part {
		case "ctrl", "control":
			kc.Ctrl = true
			isModifier = true
		case "shift":
			kc.Shift = true
			isModifier = true
		case "alt", "option":
			kc.Alt = true
			isModifier = true
		case "win", "windows", "super", "cmd":
			kc.Win = true
			isModifier = true
		}

		// If it's not a modifier and it's the last part, it's the key
		if !isModifier {
			if i == len(parts)-1 {
				kc.Key = part
			} else {
				return kc, fmt.Errorf("unknown modifier: %s", part)
			}
		}
	}

	// A global hotkey needs a key and at least one modifier
	if kc.Key == "" {
		return kc, fmt.Errorf("no key specified in combo")
	}
	if !IsHotkeyKey(kc.Key) {
		return kc, fmt.Errorf("unsupported hotkey key: %s (use a-z, 0-9, f1-f12 or space)", kc.Key)
	}
	if !kc.Ctrl && !kc.Shift && !kc.Alt && !kc.Win {
		return kc, fmt.Errorf("no modifiers specified in combo")
	}

	return kc, nil
}

// IsHotkeyKey reports whether key can be registered as a global hotkey:
// a letter, a digit, f1 to f12 or space
func IsHotkeyKey(key string) bool {
	if key == "space" {
		return true
	}
	if len(key) == 1 {
		c := key[0]
		return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
	}
	if strings.HasPrefix(key, "f") {
		n, err := strconv.Atoi(key[1:])
		return err == nil && n >= 1 && n <= 12 && key[1] != '0' && key[1] != '+'
	}
	return false
}
