// Package editor opens files in the user's preferred text editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

const defaultEditor = "vim"

// Open launches the editor named by $EDITOR (falling back to vim) on path
// and blocks until it exits. The editor inherits the caller's terminal.
func Open(path string) error {
	name := os.Getenv("EDITOR")
	if name == "" {
		name = defaultEditor
	}

	cmd := exec.Command(name, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", name, err)
	}
	return nil
}
