// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// ResolveOutputPath decides where a file called name should be written.
//
// An empty target means name in the working directory, an existing directory
// means name inside it, and anything else is taken as the file path itself.
func ResolveOutputPath(target, name string) string {
	if target == "" {
		return name
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, name)
	}
	return target
}

// SiblingPath returns name placed next to target: inside it when target is a
// directory, otherwise in target's parent directory.
func SiblingPath(target, name string) string {
	if target == "" {
		return name
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, name)
	}
	return filepath.Join(filepath.Dir(target), name)
}
