package artifacts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fluidcontent/internal/core"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	artifact := &core.HTMLArtifact{
		ID:            "art-1",
		UserID:        "u1",
		ContentTitle:  "T",
		Filename:      "art-1.html",
		HTML:          "<!DOCTYPE html><html></html>",
		Confidence:    core.ExtractionExact,
		DateGenerated: time.Now().UTC(),
	}

	path, err := writer.Write(artifact)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if path != filepath.Join(dir, "art-1.html") {
		t.Errorf("unexpected path: %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read artifact: %v", err)
	}
	if string(data) != artifact.HTML {
		t.Errorf("file content mismatch: %q", data)
	}
}

func TestWriteCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	writer := NewWriter(dir)

	_, err := writer.Write(&core.HTMLArtifact{
		ID:       "art-2",
		Filename: "art-2.html",
		HTML:     "<html></html>",
	})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected output directory created: %v", err)
	}
}

func TestWriteAsyncDoesNotBlock(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir)

	artifact := &core.HTMLArtifact{
		ID:       "art-3",
		Filename: "art-3.html",
		HTML:     "<html></html>",
	}
	writer.WriteAsync(artifact)

	// The write happens in the background; poll until the file shows up.
	path := filepath.Join(dir, "art-3.html")
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Error("async write did not complete in time")
}
