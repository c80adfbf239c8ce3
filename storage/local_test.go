package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	path, err := store.Save(ctx, "evidence/abc.jpg", strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("stored content mismatch: %q", data)
	}
	if filepath.Base(path) != "abc.jpg" {
		t.Errorf("unexpected file name: %q", path)
	}

	if err := store.Delete(ctx, path); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected file to be gone, stat returned %v", err)
	}
}

func TestEvidenceKeyKeepsExtension(t *testing.T) {
	key := EvidenceKey("My Photo.JPG")
	if !strings.HasPrefix(key, "evidence/") {
		t.Errorf("expected evidence/ prefix, got %q", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Errorf("expected lowercased extension, got %q", key)
	}
	if strings.Contains(key, "My Photo") {
		t.Errorf("client file name must not leak into the key: %q", key)
	}
}

func TestEvidenceKeyUnique(t *testing.T) {
	if EvidenceKey("a.jpg") == EvidenceKey("a.jpg") {
		t.Error("two keys for the same file name must differ")
	}
}

func TestIsAllowedExtension(t *testing.T) {
	cases := []struct {
		name    string
		allowed bool
	}{
		{"a.jpg", true},
		{"a.JPEG", true},
		{"a.png", true},
		{"a.mp4", true},
		{"a.avi", true},
		{"a.mov", true},
		{"a.wmv", true},
		{"a.exe", false},
		{"a.pdf", false},
		{"a", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsAllowedExtension(tc.name); got != tc.allowed {
			t.Errorf("IsAllowedExtension(%q) = %v, want %v", tc.name, got, tc.allowed)
		}
	}
}
