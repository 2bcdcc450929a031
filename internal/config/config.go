package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"obsidian-logging/internal/journal"
)

// VaultEnvVar overrides the configured vault directory when set.
const VaultEnvVar = "OBSIDIAN_VAULT_DIR"

// Config is the full YAML configuration surface. The journal enums implement
// encoding.TextUnmarshaler, so yaml.v3 decodes them directly and rejects
// unknown values with a useful message.
type Config struct {
	Vault          string             `yaml:"vault"`
	FilePathFormat string             `yaml:"file_path_format"`
	SectionHeader  string             `yaml:"section_header"`
	ListType       journal.ListType   `yaml:"list_type"`
	TimeFormat     journal.TimeFormat `yaml:"time_format"`
	TimeLabel      string             `yaml:"time_label"`
	EventLabel     string             `yaml:"event_label"`
	TemplatePath   string             `yaml:"template_path,omitempty"`
	Locale         string             `yaml:"locale,omitempty"`
	Categories     map[string]string  `yaml:"categories,omitempty"`
	Phrases        map[string]string  `yaml:"phrases,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		Vault:          os.Getenv(VaultEnvVar),
		FilePathFormat: "10-Journal/{year}/{month}/{date}.md",
		SectionHeader:  "## 🕗",
		ListType:       journal.Bullet,
		TimeFormat:     journal.Hour24,
		TimeLabel:      "Tidspunkt",
		EventLabel:     "Hendelse",
	}
}

// Load reads the configuration file, falling back to defaults when it does
// not exist. The OBSIDIAN_VAULT_DIR environment variable always wins over the
// vault value in the file.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads configuration from an explicit path.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyFallbacks()

	if vault := os.Getenv(VaultEnvVar); vault != "" {
		cfg.Vault = vault
	}
	return cfg, nil
}

// applyFallbacks fills fields an older or hand-trimmed config file may omit.
func (c *Config) applyFallbacks() {
	defaults := Default()
	if strings.TrimSpace(c.FilePathFormat) == "" {
		c.FilePathFormat = defaults.FilePathFormat
	}
	if strings.TrimSpace(c.SectionHeader) == "" {
		c.SectionHeader = defaults.SectionHeader
	}
	if strings.TrimSpace(c.TimeLabel) == "" {
		c.TimeLabel = defaults.TimeLabel
	}
	if strings.TrimSpace(c.EventLabel) == "" {
		c.EventLabel = defaults.EventLabel
	}
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Labels returns the configured table column labels.
func (c Config) Labels() journal.Labels {
	return journal.Labels{Time: c.TimeLabel, Event: c.EventLabel}
}

// HeaderFor resolves the section header for a category. An empty category
// selects the default section header.
func (c Config) HeaderFor(category string) (string, error) {
	if category == "" {
		return c.SectionHeader, nil
	}
	header, ok := c.Categories[category]
	if !ok {
		return "", fmt.Errorf("unknown category %q (add it under categories: in %s)", category, Path())
	}
	return header, nil
}

// Validate reports configuration problems that make runs impossible.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Vault) == "" {
		return fmt.Errorf("vault directory not configured (set vault: in %s or export %s)", Path(), VaultEnvVar)
	}
	if strings.TrimSpace(c.SectionHeader) == "" {
		return fmt.Errorf("section_header must not be empty")
	}
	if strings.TrimSpace(c.FilePathFormat) == "" {
		return fmt.Errorf("file_path_format must not be empty")
	}
	return nil
}
