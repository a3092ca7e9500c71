package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Render holds the settings shared by every channel.
type Render struct {
	Karaoke     bool      `toml:"karaoke"`
	OffsetMs    float64   `toml:"offset_ms"`
	MarkerKey   int       `toml:"marker_key"`
	FormatLayer string    `toml:"format_layer"`
	Margins     [3]string `toml:"margins"`
	// Preamble is a path to a file whose contents precede the events.
	// Empty means a preamble is generated.
	Preamble string `toml:"preamble"`
}

// Channel overrides render settings for one MIDI channel.
type Channel struct {
	Dialogue string   `toml:"dialogue"`
	Style    string   `toml:"style"`
	OffsetMs *float64 `toml:"offset_ms"`
	Karaoke  *bool    `toml:"karaoke"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Worker controls channel processing.
type Worker struct {
	MaxConcurrent int  `toml:"max_concurrent"`
	Strict        bool `toml:"strict"`
}

// Config holds the full application configuration.
type Config struct {
	Render   Render             `toml:"render"`
	Channels map[string]Channel `toml:"channels"`
	Logging  Logging            `toml:"logging"`
	Worker   Worker             `toml:"worker"`
}

// Default returns a Config with built-in defaults.
func Default() *Config {
	return &Config{
		Render: Render{
			Karaoke:     true,
			MarkerKey:   72,
			FormatLayer: "Dialogue: 0",
			Margins:     [3]string{"0", "0", "0"},
		},
		Channels: map[string]Channel{},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
		Worker: Worker{
			MaxConcurrent: 4,
		},
	}
}

// DefaultConfigPath returns the per-user configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/midikara/config.toml")
}

// Load resolves, parses, and validates a configuration file. It returns the
// config, the path that was resolved, and whether that file existed. A
// missing file yields defaults.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(filepath.Dir(resolvedPath)); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("midikara.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

// normalize trims values, applies environment fallbacks, and resolves
// relative file paths against baseDir.
func (c *Config) normalize(baseDir string) error {
	if c.Channels == nil {
		c.Channels = map[string]Channel{}
	}

	var err error
	if value, ok := os.LookupEnv("MIDIKARA_PREAMBLE"); ok && strings.TrimSpace(c.Render.Preamble) == "" {
		// Environment paths are relative to the working directory, not the
		// config file.
		if c.Render.Preamble, err = ExpandPath(strings.TrimSpace(value)); err != nil {
			return err
		}
	}
	if value, ok := os.LookupEnv("MIDIKARA_LOG_LEVEL"); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Render.FormatLayer = strings.TrimSpace(c.Render.FormatLayer)

	if c.Render.Preamble, err = resolvePath(baseDir, c.Render.Preamble); err != nil {
		return err
	}

	normalized := make(map[string]Channel, len(c.Channels))
	for key, ch := range c.Channels {
		ch.Style = strings.TrimSpace(ch.Style)
		if ch.Dialogue, err = resolvePath(baseDir, ch.Dialogue); err != nil {
			return err
		}
		normalized[strings.TrimSpace(key)] = ch
	}
	c.Channels = normalized
	return nil
}

// ChannelSettings are the effective settings of one channel after overrides.
type ChannelSettings struct {
	Dialogue string
	Style    string
	OffsetMs float64
	Karaoke  bool
}

// ForChannel merges the render defaults with the overrides of channel ch.
func (c *Config) ForChannel(ch int) ChannelSettings {
	settings := ChannelSettings{
		Style:    StyleForChannel(ch),
		OffsetMs: c.Render.OffsetMs,
		Karaoke:  c.Render.Karaoke,
	}
	override, ok := c.Channels[strconv.Itoa(ch)]
	if !ok {
		return settings
	}
	settings.Dialogue = override.Dialogue
	if override.Style != "" {
		settings.Style = override.Style
	}
	if override.OffsetMs != nil {
		settings.OffsetMs = *override.OffsetMs
	}
	if override.Karaoke != nil {
		settings.Karaoke = *override.Karaoke
	}
	return settings
}

// SetDialogue records the dialogue file of channel ch, keeping its other
// overrides.
func (c *Config) SetDialogue(ch int, path string) {
	key := strconv.Itoa(ch)
	override := c.Channels[key]
	override.Dialogue = path
	c.Channels[key] = override
}

// CreateSample writes a sample configuration file to path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func resolvePath(baseDir, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" || filepath.IsAbs(value) || strings.HasPrefix(value, "~") {
		return ExpandPath(value)
	}
	return ExpandPath(filepath.Join(baseDir, value))
}

// ExpandPath expands a leading ~ and makes the path absolute against the
// working directory. An empty path is returned unchanged.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
