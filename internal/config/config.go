package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.quickie)
	ConfigDir string

	// ConfigFile is the settings file
	ConfigFile string

	// ToolchainFile is the runner tool definition file
	ToolchainFile string

	// DatabasePath is the SQLite database file for command history
	DatabasePath string

	// ProjectsDir is the directory all projects are created under (~/Code/Quickies)
	ProjectsDir string
)

// Initialize sets up the configuration directories and files
// It creates ~/.quickie/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	// Set global paths
	ConfigDir = filepath.Join(homeDir, ".quickie")
	ConfigFile = filepath.Join(ConfigDir, "config.json")
	ToolchainFile = filepath.Join(ConfigDir, "toolchain.yaml")
	DatabasePath = filepath.Join(ConfigDir, "quickie.db")
	ProjectsDir = filepath.Join(homeDir, "Code", "Quickies")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}
