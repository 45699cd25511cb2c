package platform

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rs/zerolog"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "album")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCleanupDirectory(t *testing.T) {
	dir := t.TempDir()
	files := []string{"one.mp3", "two.MP3", "one.webm", "two.m4a", "notes.txt"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), DefaultDirPermissions); err != nil {
		t.Fatalf("Failed to create subdir: %v", err)
	}

	removed := CleanupDirectory(dir, ".mp3", zerolog.Nop())
	if removed != 3 {
		t.Errorf("CleanupDirectory() removed %d files, want 3", removed)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	want := []string{"one.mp3", "sub", "two.MP3"}
	if len(names) != len(want) {
		t.Fatalf("remaining = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("remaining[%d] = %s, want %s", i, names[i], want[i])
		}
	}

	// Second run is a no-op
	if again := CleanupDirectory(dir, ".mp3", zerolog.Nop()); again != 0 {
		t.Errorf("second CleanupDirectory() removed %d files, want 0", again)
	}
}

func TestCleanupDirectory_MissingDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	if removed := CleanupDirectory(missing, ".mp3", zerolog.Nop()); removed != 0 {
		t.Errorf("CleanupDirectory() on missing dir removed %d, want 0", removed)
	}
}

func TestRemoveIfExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raw.webm")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	if err := RemoveIfExists(path); err != nil {
		t.Fatalf("RemoveIfExists() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after RemoveIfExists")
	}
	if err := RemoveIfExists(path); err != nil {
		t.Errorf("RemoveIfExists() on missing file error = %v", err)
	}
	if err := RemoveIfExists(""); err != nil {
		t.Errorf("RemoveIfExists(\"\") error = %v", err)
	}
}

func TestOpenFolder_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.mp3")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := OpenFolder(path); err == nil {
		t.Error("Expected error for a regular file")
	}
	if err := OpenFolder(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Expected error for a missing folder")
	}
}
