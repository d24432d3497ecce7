package uploads

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.png":           "photo.png",
		"../../etc/passwd":    "etc_passwd",
		"..\\..\\boot.ini":    "boot.ini",
		"my photo (1).png":    "my_photo_1.png",
		"...":                 "",
		"":                    "",
		".hidden":             "hidden",
		"weird$na#me.jpg":     "weirdname.jpg",
		"nested/dir/file.gif": "nested_dir_file.gif",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSaveAndPath(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	name, err := store.Save("../../etc/passwd", strings.NewReader("contents"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if name != "etc_passwd" {
		t.Fatalf("stored name = %q, want etc_passwd", name)
	}

	p, err := store.Path(name)
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if rel, err := filepath.Rel(store.Dir(), p); err != nil || strings.HasPrefix(rel, "..") {
		t.Fatalf("resolved path %q escapes upload dir %q", p, store.Dir())
	}
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "contents" {
		t.Fatalf("unexpected contents %q", data)
	}
}

func TestSaveOverwritesOnCollision(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := store.Save("a.png", strings.NewReader("first")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := store.Save("a.png", strings.NewReader("second")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	p, err := store.Path("a.png")
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	data, _ := os.ReadFile(p)
	if string(data) != "second" {
		t.Fatalf("expected overwrite, got %q", data)
	}
}

func TestPathRejectsTraversalAndMissing(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, name := range []string{"missing.png", "../../etc/passwd", "..", ""} {
		if _, err := store.Path(name); !errors.Is(err, ErrNotFound) {
			t.Errorf("Path(%q) err = %v, want ErrNotFound", name, err)
		}
	}
}

func TestSaveRejectsEmptySanitizedName(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := store.Save("...", strings.NewReader("x")); !errors.Is(err, ErrInvalidFilename) {
		t.Fatalf("expected ErrInvalidFilename, got %v", err)
	}
}
