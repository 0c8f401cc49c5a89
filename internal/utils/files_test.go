package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/strokelens-cli/internal/utils"
)

func TestSafeWriteFileReplacesContent(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.csv")
	if err := utils.SafeWriteFile(p, []byte("first")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := utils.SafeWriteFile(p, []byte("second")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "second" {
		t.Fatalf("content = %q, want second", b)
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestSafeWriteFileMissingDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope", "out.csv")
	if err := utils.SafeWriteFile(p, []byte("x")); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := utils.ExpandHome("~/exports")
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if got != filepath.Join(home, "exports") {
		t.Fatalf("got %q", got)
	}
	if got, _ := utils.ExpandHome("rel/path"); got != "rel/path" {
		t.Fatalf("relative path changed: %q", got)
	}
	if !utils.IsDir(home) || utils.IsDir(filepath.Join(home, "missing")) {
		t.Fatalf("IsDir mismatch")
	}
}
