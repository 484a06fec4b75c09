package local

import (
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpen(t *testing.T) {
	store := New(t.TempDir())

	key, size, mimeType, err := store.Save(context.Background(), "resume.txt", strings.NewReader("hello resume"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len("hello resume")) {
		t.Fatalf("expected size %d, got %d", len("hello resume"), size)
	}
	if !strings.HasPrefix(mimeType, "text/plain") {
		t.Fatalf("unexpected mime type %q", mimeType)
	}
	if !strings.HasPrefix(key, "uploads/") || !strings.HasSuffix(key, "_resume.txt") {
		t.Fatalf("unexpected storage key %q", key)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello resume" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestSaveWithKey(t *testing.T) {
	store := New(t.TempDir())

	written, err := store.SaveWithKey(context.Background(), "uploads/x/resume.extracted.txt", "text/plain", strings.NewReader("extracted"))
	if err != nil {
		t.Fatalf("SaveWithKey: %v", err)
	}
	if written != int64(len("extracted")) {
		t.Fatalf("expected %d bytes, got %d", len("extracted"), written)
	}

	rc, err := store.Open(context.Background(), "uploads/x/resume.extracted.txt")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "extracted" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestSaveWithKeyRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	if _, err := store.SaveWithKey(context.Background(), "../escape.txt", "text/plain", strings.NewReader("x")); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
	if _, err := store.Open(context.Background(), "/etc/passwd"); err == nil {
		t.Fatalf("expected absolute key to be rejected")
	}
}

func TestSaveRejectsBadFileName(t *testing.T) {
	store := New(t.TempDir())

	if _, _, _, err := store.Save(context.Background(), "../../evil", strings.NewReader("x")); err == nil {
		t.Fatalf("expected bad file name to be rejected")
	}
}
