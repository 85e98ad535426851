package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProjectFile(t *testing.T, root string, relPath string) {
	t.Helper()
	path := filepath.Join(root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", relPath, err)
	}
}

func TestListFiles_SortedByName(t *testing.T) {
	base := t.TempDir()
	p := New(base, "demo")
	if _, err := p.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir returned error: %v", err)
	}

	writeProjectFile(t, p.Path, "zeta.py")
	writeProjectFile(t, p.Path, "alpha.py")
	writeProjectFile(t, p.Path, filepath.Join("sub", "beta.py"))

	files, err := p.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles returned error: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("Expected 3 files, got %d", len(files))
	}
	if files[0].Name != "alpha.py" || files[1].Name != "beta.py" || files[2].Name != "zeta.py" {
		t.Errorf("Expected sort by file name, got %v %v %v", files[0].Name, files[1].Name, files[2].Name)
	}
	if files[1].RelPath != filepath.Join("sub", "beta.py") {
		t.Errorf("Expected relative path 'sub/beta.py', got %q", files[1].RelPath)
	}
	if !filepath.IsAbs(files[0].Path) {
		t.Errorf("Expected absolute path, got %q", files[0].Path)
	}
}

func TestListFiles_SkipsHiddenAndDependencyDirs(t *testing.T) {
	base := t.TempDir()
	p := New(base, "demo")
	if _, err := p.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir returned error: %v", err)
	}

	writeProjectFile(t, p.Path, "visible.py")
	writeProjectFile(t, p.Path, ".hidden")
	writeProjectFile(t, p.Path, filepath.Join(".git", "config"))
	writeProjectFile(t, p.Path, filepath.Join(".venv", "lib", "module.py"))
	writeProjectFile(t, p.Path, filepath.Join("__pycache__", "visible.cpython-312.pyc"))
	writeProjectFile(t, p.Path, filepath.Join("node_modules", "pkg", "index.js"))
	writeProjectFile(t, p.Path, filepath.Join("src", ".secret"))
	writeProjectFile(t, p.Path, filepath.Join("src", "ok.py"))

	files, err := p.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles returned error: %v", err)
	}

	if len(files) != 2 {
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.RelPath)
		}
		t.Fatalf("Expected 2 files, got %d: %v", len(files), names)
	}
	if files[0].Name != "ok.py" || files[1].Name != "visible.py" {
		t.Errorf("Unexpected files: %v, %v", files[0].Name, files[1].Name)
	}
}

func TestListFiles_EmptyProject(t *testing.T) {
	base := t.TempDir()
	p := New(base, "empty")
	if _, err := p.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir returned error: %v", err)
	}

	files, err := p.ListFiles()
	if err != nil {
		t.Fatalf("ListFiles returned error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Expected no files, got %d", len(files))
	}
}
