// ABOUTME: Standard filesystem paths for chatbuddy configuration and data
// ABOUTME: Resolves ~/.chatbuddy/ for global and .chatbuddy/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".chatbuddy"
	projectDirName = ".chatbuddy"
)

// GlobalDir returns the user-global config directory (~/.chatbuddy/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.chatbuddy/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalSettingsFile returns the path to the global settings file.
func GlobalSettingsFile() string {
	return filepath.Join(GlobalDir(), "settings.json")
}

// ProjectSettingsFile returns the path to the project-local settings file.
func ProjectSettingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "settings.json")
}

// GlobalKBFile returns the default knowledge base location.
func GlobalKBFile() string {
	return filepath.Join(GlobalDir(), "knowledge_base.json")
}

// ReplyPacksDir returns the global reply pack directory.
func ReplyPacksDir() string {
	return filepath.Join(GlobalDir(), "replies")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
