package fileutil

import (
	"os"
	"path/filepath"
)

// SearchPathsOptional looks for a file in multiple locations.
// Returns the first path where the file exists, or empty string if not found.
// This is useful when a file is optional and you don't want an error.
func SearchPathsOptional(paths []string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultConfigPaths returns standard config search paths for a given filename.
// Search order:
// 1. Current directory (./<filename>)
// 2. Config subdirectory (./config/<filename>)
// 3. System-wide config (/etc/tagtrack/<filename>)
func DefaultConfigPaths(filename string) []string {
	return []string{
		filepath.Join(".", filename),
		filepath.Join(".", "config", filename),
		filepath.Join("/etc/tagtrack", filename),
	}
}

// FindConfigOptional searches for a config file in default locations.
// Returns the path if found, or empty string if not found.
func FindConfigOptional(filename string) string {
	return SearchPathsOptional(DefaultConfigPaths(filename))
}
