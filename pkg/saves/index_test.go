package saves

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestListArchive(t *testing.T) {
	t.Run("returns only matching files", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"a.cogsav", "b.cogsav", "c.txt"} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
				t.Fatalf("Failed to write %s: %v", name, err)
			}
		}

		got := ListArchive(dir)
		sort.Strings(got)

		want := []string{filepath.Join(dir, "a.cogsav"), filepath.Join(dir, "b.cogsav")}
		if len(got) != len(want) {
			t.Fatalf("Expected %d entries, got %d: %v", len(want), len(got), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Entry %d: expected %s, got %s", i, want[i], got[i])
			}
		}
	})

	t.Run("skips directories with matching names", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.Mkdir(filepath.Join(dir, "nested.cogsav"), 0o755); err != nil {
			t.Fatalf("Failed to create directory: %v", err)
		}

		if got := ListArchive(dir); len(got) != 0 {
			t.Errorf("Expected empty listing, got %v", got)
		}
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "SHOUTY.COGSAV"), []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to write file: %v", err)
		}

		if got := ListArchive(dir); len(got) != 0 {
			t.Errorf("Expected empty listing, got %v", got)
		}
	})

	t.Run("missing directory yields empty listing", func(t *testing.T) {
		if got := ListArchive(filepath.Join(t.TempDir(), "does-not-exist")); got != nil {
			t.Errorf("Expected nil, got %v", got)
		}
	})

	t.Run("empty directory yields empty listing", func(t *testing.T) {
		if got := ListArchive(t.TempDir()); len(got) != 0 {
			t.Errorf("Expected empty listing, got %v", got)
		}
	})
}
