// Package fileutil provides filesystem access checks for upload sources and
// data directories.
package fileutil

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// CheckReadableFile verifies that path names a readable regular file and
// returns its size.
func CheckReadableFile(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%s is a directory", path)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s is not a regular file", path)
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return 0, fmt.Errorf("%s is not readable: %w", path, err)
	}
	return info.Size(), nil
}

// CheckWritableDir verifies that path names a directory this process can
// read, write, and traverse.
func CheckWritableDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%s has insufficient permissions: %w", path, err)
	}
	return nil
}
