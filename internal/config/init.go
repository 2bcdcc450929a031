package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultTemplate is written next to a fresh configuration so new daily notes
// have a usable scaffold out of the box.
const DefaultTemplate = "[[{yesterday}]] [[{tomorrow}]]\n\n## 📅️ {today} {weekday}\n\n## 🎯\n\n## 👀️\n\n## 🕗\n"

// Init scaffolds the configuration interactively, prompting on out for each
// answer read from in. An existing config file is loaded instead of being
// overwritten.
func Init(in io.Reader, out io.Writer) (Config, error) {
	path := Path()
	if path == "" {
		return Config{}, fmt.Errorf("cannot determine config directory")
	}

	if _, err := os.Stat(path); err == nil {
		return LoadFrom(path)
	}

	reader := bufio.NewReader(in)
	cfg := Default()

	fmt.Fprintln(out, "Welcome to obsidian-logging! Let's set up your configuration.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Path to your Obsidian vault (the directory containing your notes):")
	vault, err := readLine(reader)
	if err != nil {
		return cfg, err
	}
	cfg.Vault = expandHome(vault)

	fmt.Fprintln(out)
	fmt.Fprintf(out, "File path format for daily notes within the vault.\nTokens: {year}, {month}, {date}. Default: %s\n", cfg.FilePathFormat)
	if format, err := readLine(reader); err == nil && format != "" {
		cfg.FilePathFormat = format
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Section header marking where log entries go. Default: %s\n", cfg.SectionHeader)
	if header, err := readLine(reader); err == nil && header != "" {
		cfg.SectionHeader = header
	}

	if err := writeDefaultTemplate(&cfg); err != nil {
		fmt.Fprintf(out, "Warning: could not create default template: %v\n", err)
	}

	if err := cfg.Save(path); err != nil {
		return cfg, err
	}
	fmt.Fprintf(out, "\nConfiguration written to %s\n", path)
	return cfg, nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func writeDefaultTemplate(cfg *Config) error {
	dir := Dir()
	if dir == "" {
		return fmt.Errorf("no config directory")
	}
	path := filepath.Join(dir, "template.md")
	if _, err := os.Stat(path); err == nil {
		cfg.TemplatePath = path
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(DefaultTemplate), 0o644); err != nil {
		return err
	}
	cfg.TemplatePath = path
	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), string(filepath.Separator)))
}
