package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(filepath.Join(dir, "absent")) {
		t.Error("absent path reported as existing")
	}
	if !Exists(dir) {
		t.Error("directory reported as absent")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	if !Exists(dir) {
		t.Fatal("nested directory not created")
	}
	// Idempotent on an existing directory.
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir on existing: %v", err)
	}
}

func TestWriteFileBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favicon.ico")

	if err := WriteFile(path, []byte("old"), true); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if Exists(path + ".bak") {
		t.Error("backup created for a fresh write")
	}

	if err := WriteFile(path, []byte("new"), true); err != nil {
		t.Fatalf("second write: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != "new" {
		t.Fatalf("file contents = %q, %v", got, err)
	}
	bak, err := os.ReadFile(path + ".bak")
	if err != nil || string(bak) != "old" {
		t.Fatalf("backup contents = %q, %v", bak, err)
	}
}

func TestWriteFileNoBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.webmanifest")
	if err := WriteFile(path, []byte("one"), false); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("two"), false); err != nil {
		t.Fatal(err)
	}
	if Exists(path + ".bak") {
		t.Error("backup created with backup disabled")
	}
}
