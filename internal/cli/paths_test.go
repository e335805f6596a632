package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Run("home", func(t *testing.T) {
		t.Setenv("XDG_CACHE_HOME", "")
		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory")
		}

		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir: %v", err)
		}
		if want := filepath.Join(home, ".cache", appName); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})

	t.Run("xdg", func(t *testing.T) {
		custom := t.TempDir()
		t.Setenv("XDG_CACHE_HOME", custom)

		dir, err := cacheDir()
		if err != nil {
			t.Fatalf("cacheDir: %v", err)
		}
		if want := filepath.Join(custom, appName); dir != want {
			t.Errorf("cacheDir() = %q, want %q", dir, want)
		}
	})
}
