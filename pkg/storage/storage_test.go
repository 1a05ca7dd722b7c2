package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestTree(t *testing.T) *Storage {
	t.Helper()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "assets", "icons"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "assets", "icons", "alpha.svg"), []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := New(root)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestHasFile(t *testing.T) {
	s := setupTestTree(t)

	loopA := filepath.Join(s.Root, "assets", "loop_a.svg")
	loopB := filepath.Join(s.Root, "assets", "loop_b.svg")
	if err := os.Symlink(loopB, loopA); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(loopA, loopB); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(s.Root, "assets", "icons", "alpha.svg"), filepath.Join(s.Root, "assets", "link.svg")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", "assets/icons/alpha.svg", true},
		{"missing file", "assets/icons/gamma.svg", false},
		{"existing directory", "assets/icons", true},
		{"absolute path", filepath.Join(s.Root, "assets", "icons", "alpha.svg"), true},
		{"path through a regular file", "assets/icons/alpha.svg/x.svg", false},
		{"symlink loop", "assets/loop_a.svg", false},
		{"symlink to existing file", "assets/link.svg", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.HasFile(tt.path); got != tt.want {
				t.Errorf("HasFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestHasFile_PermissionDeniedCountsAsPresent(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}
	s := setupTestTree(t)

	locked := filepath.Join(s.Root, "assets", "locked")
	if err := os.MkdirAll(locked, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(locked, "secret.svg"), []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(locked, 0755)

	if !s.HasFile("assets/locked/secret.svg") {
		t.Error("HasFile() = false for a path behind a permission error, want true")
	}
}

func TestGetFileStats(t *testing.T) {
	s := setupTestTree(t)

	stats, err := s.GetFileStats("assets/icons/alpha.svg")
	if err != nil {
		t.Fatalf("GetFileStats() error = %v", err)
	}
	if stats.SizeBytes != 6 {
		t.Errorf("SizeBytes = %d, want 6", stats.SizeBytes)
	}

	if _, err := s.GetFileStats("nope.svg"); err == nil {
		t.Error("GetFileStats(missing) error = nil")
	}
}

func TestReadText(t *testing.T) {
	s := setupTestTree(t)

	text, err := s.ReadText("assets/icons/alpha.svg")
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if text != "<svg/>" {
		t.Errorf("ReadText() = %q", text)
	}
	if _, err := s.ReadText("missing.dart"); err == nil {
		t.Error("ReadText(missing) error = nil")
	}
}

func TestRootFromTool(t *testing.T) {
	tool := filepath.Join(string(filepath.Separator)+"work", "app", "bin", "validate-icons")
	want := filepath.Join(string(filepath.Separator)+"work", "app")
	if got := RootFromTool(tool); got != want {
		t.Errorf("RootFromTool(%q) = %q, want %q", tool, got, want)
	}
}

func TestResolveRoot_Override(t *testing.T) {
	dir := t.TempDir()
	got, err := ResolveRoot(dir)
	if err != nil {
		t.Fatalf("ResolveRoot() error = %v", err)
	}
	want, _ := filepath.Abs(dir)
	if got != want {
		t.Errorf("ResolveRoot() = %q, want %q", got, want)
	}
}
