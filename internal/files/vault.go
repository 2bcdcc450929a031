// Package files resolves daily-note paths inside the vault and performs the
// raw read/write cycle the synchronizer stays out of.
package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Vault locates daily note files beneath a root directory using a path
// format with {year}, {month}, and {date} tokens.
type Vault struct {
	root       string
	pathFormat string
}

// NewVault constructs a Vault. The root must be non-empty; the path format
// falls back to the bare date filename when empty.
func NewVault(root, pathFormat string) (*Vault, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("vault root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(pathFormat) == "" {
		pathFormat = "{date}.md"
	}
	return &Vault{root: abs, pathFormat: pathFormat}, nil
}

// Root returns the absolute vault root directory.
func (v *Vault) Root() string {
	return v.root
}

// DayPath resolves the absolute path of the daily note for the given date.
func (v *Vault) DayPath(date time.Time) string {
	relative := v.pathFormat
	relative = strings.ReplaceAll(relative, "{year}", fmt.Sprintf("%04d", date.Year()))
	relative = strings.ReplaceAll(relative, "{month}", fmt.Sprintf("%02d", int(date.Month())))
	relative = strings.ReplaceAll(relative, "{date}", date.Format("2006-01-02"))
	return filepath.Join(v.root, filepath.FromSlash(relative))
}

// Read returns the daily note content for the date. A missing file is not an
// error; it reports exists=false with empty content.
func (v *Vault) Read(date time.Time) (content string, exists bool, err error) {
	data, err := os.ReadFile(v.DayPath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read daily note: %w", err)
	}
	return string(data), true, nil
}

// Write replaces the daily note for the date, creating parent directories as
// needed. The content lands in a temp file first and is renamed into place so
// a crash cannot leave a half-written note.
func (v *Vault) Write(date time.Time, content string) error {
	path := v.DayPath(date)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create note directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".olog-*")
	if err != nil {
		return fmt.Errorf("create temp note: %w", err)
	}
	defer os.Remove(temp.Name())

	if !strings.HasSuffix(content, "\n") && content != "" {
		content += "\n"
	}

	if _, err := temp.WriteString(content); err != nil {
		temp.Close()
		return fmt.Errorf("write temp note: %w", err)
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return fmt.Errorf("sync temp note: %w", err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("close temp note: %w", err)
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return fmt.Errorf("chmod temp note: %w", err)
	}

	if err := os.Rename(temp.Name(), path); err != nil {
		return fmt.Errorf("replace daily note: %w", err)
	}
	return nil
}
