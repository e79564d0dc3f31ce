// internal/config/config.go
//
// This package handles configuration and the .estoque directory structure.
// Every directory the tracker runs in gets a .estoque/ folder holding the
// inventory document, the activity journal, and config.yaml.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// EstoqueDir is the name of the directory created next to the data.
	EstoqueDir = ".estoque"

	defaultCurrency     = "R$"
	defaultDataFile     = "database.json"
	defaultPeriodMonths = 1
)

const defaultConfigYAML = `# estoque configuration
version: 1

# Symbol prefixed to every price and total.
currency: R$

# Inventory document, relative to the .estoque directory.
data_file: database.json

report:
  # How far back the sales filter and period report default to.
  default_period_months: 1
`

// ReportConfig captures reporting preferences.
type ReportConfig struct {
	DefaultPeriodMonths int `yaml:"default_period_months"`
}

// FileConfig models .estoque/config.yaml.
type FileConfig struct {
	Version  int          `yaml:"version"`
	Currency string       `yaml:"currency"`
	DataFile string       `yaml:"data_file"`
	Report   ReportConfig `yaml:"report"`
}

// Config holds the runtime configuration for the tracker.
type Config struct {
	// BaseDir is the directory the operator ran estoque from.
	BaseDir string

	// StateDir is BaseDir/.estoque.
	StateDir string

	File FileConfig
}

// Init creates the .estoque directory structure and a default config.yaml
// when one does not exist yet. Called once at startup.
func Init(baseDir string) error {
	stateDir := filepath.Join(baseDir, EstoqueDir)
	dirs := []string{
		stateDir,
		filepath.Join(stateDir, "logs"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensureConfigFile(filepath.Join(stateDir, "config.yaml"))
}

// New loads configuration for baseDir, applying defaults when config.yaml is
// absent.
func New(baseDir string) (*Config, error) {
	cfg := &Config{
		BaseDir:  baseDir,
		StateDir: filepath.Join(baseDir, EstoqueDir),
		File:     defaultFileConfig(),
	}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath returns the on-disk location of config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.StateDir, "config.yaml")
}

// DataPath returns the inventory document path.
func (c *Config) DataPath() string {
	file := c.File.DataFile
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	return filepath.Join(c.StateDir, file)
}

// LogsDir returns the directory holding the activity journal.
func (c *Config) LogsDir() string {
	return filepath.Join(c.StateDir, "logs")
}

// JournalPath returns the activity journal file.
func (c *Config) JournalPath() string {
	return filepath.Join(c.LogsDir(), "journey.log")
}

// Currency returns the symbol prefixed to money values.
func (c *Config) Currency() string {
	return c.File.Currency
}

// DefaultPeriodMonths returns how far back date filters default to.
func (c *Config) DefaultPeriodMonths() int {
	return c.File.Report.DefaultPeriodMonths
}

func (c *Config) load() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.File = parsed
	return nil
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Version:  1,
		Currency: defaultCurrency,
		DataFile: defaultDataFile,
		Report: ReportConfig{
			DefaultPeriodMonths: defaultPeriodMonths,
		},
	}
}

func (fc *FileConfig) applyDefaults() {
	if fc.Version == 0 {
		fc.Version = 1
	}
	if strings.TrimSpace(fc.Currency) == "" {
		fc.Currency = defaultCurrency
	}
	if strings.TrimSpace(fc.DataFile) == "" {
		fc.DataFile = defaultDataFile
	}
	if fc.Report.DefaultPeriodMonths == 0 {
		fc.Report.DefaultPeriodMonths = defaultPeriodMonths
	}
}

func (fc *FileConfig) normalize() {
	fc.Currency = strings.TrimSpace(fc.Currency)
	fc.DataFile = strings.TrimSpace(fc.DataFile)
}

func (fc *FileConfig) validate() error {
	if fc.Version < 1 {
		return fmt.Errorf("version must be >= 1")
	}
	if fc.Report.DefaultPeriodMonths < 0 {
		return fmt.Errorf("report.default_period_months must not be negative")
	}
	return nil
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
