package project

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/studiowebux/quickie/internal/config"
)

// DefaultFileName is the entry file created in every new project
const DefaultFileName = "main.py"

// DefaultFileTemplate is the content written to the entry file when it is created
const DefaultFileTemplate = `def main():
    print("Hello, World!")


if __name__ == "__main__":
    main()
`

var nameRegexp = regexp.MustCompile(`^[\w\-]+$`)

// Validation messages shown verbatim next to the project name input
const (
	msgEmptyName   = "Please enter a project name"
	msgInvalidName = "Name can only contain letters, numbers, hyphens, underscores"
)

// Project identifies a scaffolded project on disk.
// It is created once by the welcome flow and immutable afterwards.
type Project struct {
	Name string
	Path string
}

// New returns the project identity for a name under the given base directory
func New(baseDir, name string) Project {
	return Project{
		Name: name,
		Path: filepath.Join(baseDir, name),
	}
}

// ValidateName checks a submitted project name.
// The returned error text is displayed to the user as-is.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New(msgEmptyName)
	}
	if !nameRegexp.MatchString(name) {
		return errors.New(msgInvalidName)
	}
	return nil
}

// EnsureDir creates the project directory (and parents) if needed.
// It reports whether the directory was newly created, so the caller can
// decide whether to run the toolchain initializer.
func (p Project) EnsureDir() (created bool, err error) {
	_, statErr := os.Stat(p.Path)
	created = os.IsNotExist(statErr)

	if err := os.MkdirAll(p.Path, config.DirPermissions); err != nil {
		return false, fmt.Errorf("failed to create project directory %s: %w", p.Path, err)
	}

	return created, nil
}

// RunInit executes the toolchain initializer inside the project directory
// and waits for it. A non-zero exit surfaces the captured stderr.
func (p Project) RunInit(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = p.Path

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return errors.New(msg)
		}
		return err
	}

	return nil
}

// EnsureDefaultFile creates the default entry file with the hello-world
// template if it does not exist, and returns its absolute path.
func (p Project) EnsureDefaultFile() (string, error) {
	path := filepath.Join(p.Path, DefaultFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(DefaultFileTemplate), config.FilePermissions); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", DefaultFileName, err)
		}
	}

	return path, nil
}

// RelPath returns the project-relative form of an absolute file path
func (p Project) RelPath(absPath string) (string, error) {
	rel, err := filepath.Rel(p.Path, absPath)
	if err != nil {
		return "", fmt.Errorf("path %s is not inside the project: %w", absPath, err)
	}
	return rel, nil
}
