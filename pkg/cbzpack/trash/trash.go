// Package trash removes source directories after successful packaging.
// It prefers the system trash so an accidental --delete is recoverable,
// falling back to permanent removal when no trash integration exists.
package trash

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// commandTimeout is the maximum time to wait for trash commands.
const commandTimeout = 30 * time.Second

// Remove moves a file or directory to the system trash.
// On macOS it asks Finder via AppleScript; on Linux it tries gio and
// trash-put. When no trash tool works, the path is removed permanently.
func Remove(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot remove %q: %w", path, err)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("cannot resolve absolute path for %q: %w", path, err)
	}

	switch runtime.GOOS {
	case "darwin":
		return removeMacOS(absPath)
	case "linux":
		return removeLinux(absPath)
	default:
		return removePermanently(absPath)
	}
}

// removeMacOS moves the path to Trash through Finder, which keeps
// "Put Back" working.
func removeMacOS(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	script := fmt.Sprintf(`tell application "Finder" to delete POSIX file %q`, path)
	if err := exec.CommandContext(ctx, "osascript", "-e", script).Run(); err != nil {
		return removePermanently(path)
	}
	return nil
}

// removeLinux tries the common trash CLIs in order.
func removeLinux(path string) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	candidates := [][]string{
		{"gio", "trash", path},
		{"trash-put", path},
	}
	for _, argv := range candidates {
		bin, err := exec.LookPath(argv[0])
		if err != nil {
			continue
		}
		if err := exec.CommandContext(ctx, bin, argv[1:]...).Run(); err == nil {
			return nil
		}
	}

	return removePermanently(path)
}

// removePermanently deletes the path and everything under it.
func removePermanently(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to delete %q: %w", path, err)
	}
	return nil
}
