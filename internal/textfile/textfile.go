// Package textfile provides the small idempotent file edits the switchers
// are built from: append-once marker lines, marker line removal, and
// narrowly scoped pattern substitution. Every operation reports whether it
// changed the file so callers can tell a mutation from a no-op.
package textfile

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// EnsureLine guarantees that the file at path contains line exactly once,
// using substring membership over the whole content. The file is created
// (with parent directories) when absent. Returns true if the file was
// modified, false if the line was already present.
func EnsureLine(path, line string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("reading %s: %w", path, err)
		}
		if err := Write(path, line+"\n", 0644); err != nil {
			return false, err
		}
		return true, nil
	}

	if strings.Contains(string(data), line) {
		return false, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + line + "\n"); err != nil {
		return false, fmt.Errorf("appending to %s: %w", path, err)
	}

	return true, nil
}

// RemoveLine rewrites the file omitting every line that contains substr,
// preserving all other lines and their order verbatim. Returns true if a
// line was removed. A missing file is a no-op, not an error.
func RemoveLine(path, substr string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	// SplitAfter keeps each line's terminator so untouched lines are
	// written back byte-for-byte, trailing newline or not.
	lines := strings.SplitAfter(string(data), "\n")
	kept := make([]string, 0, len(lines))
	removed := false
	for _, line := range lines {
		if strings.Contains(line, substr) {
			removed = true
			continue
		}
		kept = append(kept, line)
	}

	if !removed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(strings.Join(kept, "")), 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}

	return true, nil
}

// Patch applies a regex substitution to the whole file content. Lines that
// do not match are left untouched. Returns (applied, changed): applied is
// false when the file does not exist (reported by callers, never fatal),
// changed is true when the substitution altered the content.
func Patch(path string, re *regexp.Regexp, repl string) (applied, changed bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, false, nil
		}
		return false, false, fmt.Errorf("reading %s: %w", path, err)
	}

	patched := re.ReplaceAllString(string(data), repl)
	if patched == string(data) {
		return true, false, nil
	}

	if err := os.WriteFile(path, []byte(patched), 0644); err != nil {
		return true, false, fmt.Errorf("writing %s: %w", path, err)
	}

	return true, true, nil
}

// Write writes content to path, creating parent directories as needed.
func Write(path, content string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Remove deletes the file at path. Returns true if a file was removed;
// a missing file is a no-op, not an error.
func Remove(path string) (bool, error) {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("removing %s: %w", path, err)
	}
	return true, nil
}

// Exists reports whether a file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
