// Package fs provides common filesystem helper functions.
package fs

import (
	"io"
	"os"
	"path/filepath"
	"sort"
)

// FileExists checks if a file or directory exists at the given path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirExists checks if a directory exists at the given path.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExistsIn checks if a file exists within a directory.
func FileExistsIn(dir, name string) bool {
	return FileExists(filepath.Join(dir, name))
}

// DirExistsIn checks if a subdirectory exists within a directory.
func DirExistsIn(dir, name string) bool {
	return DirExists(filepath.Join(dir, name))
}

// ReadFile reads a file and returns its contents as a string.
// Returns an empty string if the file cannot be read.
func ReadFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// ReadFileIn reads a file within a directory and returns its contents as a string.
// Returns an empty string if the file cannot be read.
func ReadFileIn(dir, name string) string {
	return ReadFile(filepath.Join(dir, name))
}

// ReadFileCap reads at most limit bytes from a file. Returns an empty string
// if the file cannot be read.
func ReadFileCap(path string, limit int64) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return ""
	}
	return string(data)
}

// Subdirs returns the names of the immediate subdirectories of dir, sorted
// alphabetically. Returns nil if dir cannot be listed.
func Subdirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// FileSize returns the size of a file in bytes, or 0 if it cannot be stat'ed.
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
