package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/felixgeelhaar/cowork/pkg/storage"
)

func TestLoadServicesSucceeds(t *testing.T) {
	tempDir := t.TempDir()
	repo := storage.NewFilesystemRepository(tempDir)
	if err := repo.Initialize(); err != nil {
		t.Fatalf("initialize repo: %v", err)
	}

	services, err := loadServices(tempDir)
	if err != nil {
		t.Fatalf("load services: %v", err)
	}
	if services == nil || services.Clients == nil || services.Billing == nil {
		t.Fatalf("expected services, got %+v", services)
	}
}

func TestGetProjectRoot_DefaultToCwd(t *testing.T) {
	old := projectPath
	defer func() { projectPath = old }()
	projectPath = ""

	got, err := getProjectRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cwd, _ := os.Getwd()
	if got != cwd {
		t.Fatalf("expected %s, got %s", cwd, got)
	}
}

func TestGetProjectRoot_WithFlag(t *testing.T) {
	tmpDir := t.TempDir()

	old := projectPath
	defer func() { projectPath = old }()
	projectPath = tmpDir

	got, err := getProjectRoot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	abs, _ := filepath.Abs(tmpDir)
	if got != abs {
		t.Fatalf("expected %s, got %s", abs, got)
	}
}

func TestGetProjectRoot_InvalidPath(t *testing.T) {
	old := projectPath
	defer func() { projectPath = old }()
	projectPath = "/nonexistent/path/that/does/not/exist"

	_, err := getProjectRoot()
	if err == nil {
		t.Fatal("expected error for nonexistent path")
	}
	if !strings.Contains(err.Error(), "workspace path") {
		t.Fatalf("expected 'workspace path' in error, got: %v", err)
	}
}

func TestGetProjectRoot_FileNotDir(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "plain.txt")
	if err := os.WriteFile(filePath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	old := projectPath
	defer func() { projectPath = old }()
	projectPath = filePath

	_, err := getProjectRoot()
	if err == nil {
		t.Fatal("expected error for non-directory path")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("expected 'not a directory' in error, got: %v", err)
	}
}
