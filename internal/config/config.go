package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultDir is where budgetbuddy keeps its config and data unless told otherwise.
const DefaultDir = "~/.budgetbuddy"

// FileName is the config file name inside DefaultDir.
const FileName = "budgetbuddy.yaml"

// Config represents the top-level budgetbuddy.yaml configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// StorageConfig selects and locates the collection store.
type StorageConfig struct {
	Backend    string `yaml:"backend"` // "file" or "sqlite"
	Dir        string `yaml:"dir"`
	SQLitePath string `yaml:"sqlite_path,omitempty"`
}

// DisplayConfig controls how amounts are printed.
type DisplayConfig struct {
	Currency string `yaml:"currency"` // ISO 4217, e.g. "CRC"
	Locale   string `yaml:"locale"`   // BCP 47, e.g. "es-CR"
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
}

// Load reads a budgetbuddy.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file, creating its directory.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new install.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Dir:     filepath.Join(DefaultDir, "data"),
		},
		Display: DisplayConfig{
			Currency: "CRC",
			Locale:   "es-CR",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// DefaultPath returns the expanded path of the default config file.
func DefaultPath() string {
	return ExpandPath(filepath.Join(DefaultDir, FileName))
}

// StoreLocation returns the expanded path the configured backend opens.
func (c *Config) StoreLocation() string {
	if c.Storage.Backend == "sqlite" {
		if c.Storage.SQLitePath != "" {
			return ExpandPath(c.Storage.SQLitePath)
		}
		return filepath.Join(ExpandPath(c.Storage.Dir), "budgetbuddy.db")
	}
	return ExpandPath(c.Storage.Dir)
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	validBackends := []string{"file", "sqlite"}
	if !slices.Contains(validBackends, c.Storage.Backend) {
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be one of %v", c.Storage.Backend, validBackends))
	}
	if c.Storage.Backend == "file" && c.Storage.Dir == "" {
		problems = append(problems, "storage dir cannot be empty when using the file backend")
	}
	if c.Storage.Backend == "sqlite" && c.Storage.SQLitePath == "" && c.Storage.Dir == "" {
		problems = append(problems, "either storage sqlite_path or dir must be set when using the sqlite backend")
	}

	if _, err := currency.ParseISO(c.Display.Currency); err != nil {
		problems = append(problems, fmt.Sprintf("invalid display currency %q: %v", c.Display.Currency, err))
	}
	if _, err := language.Parse(c.Display.Locale); err != nil {
		problems = append(problems, fmt.Sprintf("invalid display locale %q: %v", c.Display.Locale, err))
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.Log.Level))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		problems = append(problems, fmt.Sprintf("invalid log format %q: must be text or json", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// ExpandPath expands a leading ~ and $VAR references in path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return os.ExpandEnv(path)
}
