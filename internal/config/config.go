// Package config locates the application directory and loads the settings
// of the fontpictures command.
//
// Settings come from, in order of precedence: the process environment, a
// .env.local file, a .env file (both in the application directory), and
// built-in defaults. The application directory also holds config.xml, which
// remembers the most recently used font and is created on first run.
package config

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvHome     = "FONTPICTURES_HOME"      // application directory
	EnvFontsDir = "FONTPICTURES_FONTS_DIR" // fonts root
	EnvFallback = "FONTPICTURES_FALLBACK"  // fallback output file
	EnvLogLevel = "FONTPICTURES_LOG_LEVEL" // slog level name
)

// Defaults, relative to the application directory.
const (
	FileName        = "config.xml"
	DefaultFontsDir = "Fonts"
	DefaultFallback = "output.png"
)

// envFiles are read in this order; later files override earlier ones.
var envFiles = []string{".env", ".env.local"}

// Config is the resolved application configuration.
type Config struct {
	AppDir         string     // directory of the executable or FONTPICTURES_HOME
	FontsDir       string     // fonts root
	FallbackPath   string     // where output goes when the text is not a safe file name
	LogLevel       slog.Level // minimum level when not verbose
	MostRecentFont string     // last font rendered with, from config.xml
}

// AppDir returns the application directory: FONTPICTURES_HOME when set,
// otherwise the directory of the running executable.
func AppDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("config: locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// Load resolves the application directory and loads the configuration in it.
func Load() (*Config, error) {
	dir, err := AppDir()
	if err != nil {
		return nil, err
	}
	return LoadDir(dir)
}

// LoadSettings is Load without config.xml: it resolves the application
// directory and its environment settings and writes nothing.
// MostRecentFont is left empty.
func LoadSettings() (*Config, error) {
	dir, err := AppDir()
	if err != nil {
		return nil, err
	}
	return LoadEnv(dir)
}

// LoadDir loads the configuration for application directory dir, creating
// config.xml with defaults when it does not exist.
func LoadDir(dir string) (*Config, error) {
	c, err := LoadEnv(dir)
	if err != nil {
		return nil, err
	}

	state, err := loadState(c.Path())
	if err != nil {
		return nil, err
	}
	c.MostRecentFont = state.MostRecentFont
	return c, nil
}

// LoadEnv resolves the settings for application directory dir from the
// process environment and the .env files in dir. An empty environment
// variable counts as unset. Nothing is written.
func LoadEnv(dir string) (*Config, error) {
	env, err := readEnvFiles(dir)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return env[key]
	}

	c := &Config{
		AppDir:       dir,
		FontsDir:     resolve(dir, lookup(EnvFontsDir), DefaultFontsDir),
		FallbackPath: resolve(dir, lookup(EnvFallback), DefaultFallback),
		LogLevel:     slog.LevelInfo,
	}
	if lvl := lookup(EnvLogLevel); lvl != "" {
		if err := c.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
	}
	return c, nil
}

// Path returns the path of config.xml.
func (c *Config) Path() string {
	return filepath.Join(c.AppDir, FileName)
}

// SetMostRecentFont records name as the most recently used font.
func (c *Config) SetMostRecentFont(name string) error {
	c.MostRecentFont = name
	return saveState(c.Path(), state{MostRecentFont: name})
}

// readEnvFiles merges the .env files present in dir. Missing files are
// skipped.
func readEnvFiles(dir string) (map[string]string, error) {
	var present []string
	for _, name := range envFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			present = append(present, path)
		}
	}
	if len(present) == 0 {
		return map[string]string{}, nil
	}

	env, err := godotenv.Read(present...)
	if err != nil {
		return nil, fmt.Errorf("config: read env files: %w", err)
	}
	return env, nil
}

// resolve returns value, or def when value is empty, made absolute against dir.
func resolve(dir, value, def string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		value = def
	}
	if filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(dir, value)
}

const stateComment = "Stores the most recently used font."

// state is the on-disk shape of config.xml.
type state struct {
	XMLName        xml.Name `xml:"config"`
	Comment        string   `xml:"Comment"`
	MostRecentFont string   `xml:"MostRecentFont"`
}

func loadState(path string) (state, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		var s state
		return s, saveState(path, s)
	}
	if err != nil {
		return state{}, fmt.Errorf("config: %w", err)
	}

	var s state
	if err := xml.Unmarshal(data, &s); err != nil {
		return state{}, fmt.Errorf("config: parse %s: %w", FileName, err)
	}
	s.MostRecentFont = strings.TrimSpace(s.MostRecentFont)
	return s, nil
}

func saveState(path string, s state) error {
	s.Comment = stateComment

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	buf.WriteByte('\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil { //nolint:gosec // application directory
		return fmt.Errorf("config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // settings are not secret
		return fmt.Errorf("config: write: %w", err)
	}
	return nil
}
