package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Toolchain defines the external tool pair used to initialize new projects
// and run files inside them. The tool is invoked as
// "<name> <init...>" once per new project directory and
// "<name> <run...> <file>" per run action.
type Toolchain struct {
	Name string   `yaml:"name"`
	Init []string `yaml:"init"`
	Run  []string `yaml:"run"`
}

// Default returns the built-in uv toolchain
func Default() Toolchain {
	return Toolchain{
		Name: "uv",
		Init: []string{"init", "--bare"},
		Run:  []string{"run"},
	}
}

// Load reads the toolchain definition from the given path.
// A missing file is created with the default definition. A file that cannot
// be read or parsed falls back to the default without touching it.
func Load(path string) Toolchain {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		tc := Default()
		_ = Save(path, tc)
		return tc
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	var tc Toolchain
	if err := yaml.Unmarshal(data, &tc); err != nil {
		return Default()
	}
	if tc.Name == "" {
		return Default()
	}

	return tc
}

// Save writes the toolchain definition to the given path
func Save(path string, tc Toolchain) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(tc)
	if err != nil {
		return fmt.Errorf("failed to marshal toolchain: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write toolchain file: %w", err)
	}

	return nil
}

// InitArgv returns the argv run once inside a newly created project directory
func (tc Toolchain) InitArgv() []string {
	return append([]string{tc.Name}, tc.Init...)
}

// RunCommand returns the shell command line that runs the given
// project-relative file path
func (tc Toolchain) RunCommand(relPath string) string {
	parts := make([]string, 0, len(tc.Run)+2)
	parts = append(parts, Quote(tc.Name))
	for _, arg := range tc.Run {
		parts = append(parts, Quote(arg))
	}
	parts = append(parts, Quote(relPath))
	return strings.Join(parts, " ")
}
