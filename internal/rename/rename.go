// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rename moves a paper's PDF to a new name within its directory.
package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/paper-renamer/internal/filename"
)

var (
	// ErrSourceMissing is returned when the source path does not exist.
	ErrSourceMissing = errors.New("source file does not exist")
	// ErrNotAFile is returned when the source path is not a regular file.
	ErrNotAFile = errors.New("path is not a file")
	// ErrDestinationExists is returned when a file already has the new name.
	ErrDestinationExists = errors.New("target file already exists")
)

// CheckSource verifies that path names an existing regular file.
func CheckSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	return nil
}

// Rename renames the file at src to newName in the same directory and
// returns the new path. It refuses to overwrite an existing file; in that
// case src is left untouched. The existence check and the rename are not
// atomic.
func Rename(src, newName string) (string, error) {
	if err := filename.Validate(newName); err != nil {
		return "", err
	}
	if err := CheckSource(src); err != nil {
		return "", err
	}

	dst := filepath.Join(filepath.Dir(src), newName)
	if _, err := os.Lstat(dst); err == nil {
		return "", fmt.Errorf("%w: %s. Choose a different name", ErrDestinationExists, dst)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("stat %s: %w", dst, err)
	}

	if err := os.Rename(src, dst); err != nil {
		return "", fmt.Errorf("renaming %s: %w", src, err)
	}
	return dst, nil
}

// BaseName returns the final element of path.
func BaseName(path string) (string, error) {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return "", fmt.Errorf("no filename in path %q", path)
	}
	return base, nil
}
