// Package artifacts persists generated HTML documents to durable storage.
// Artifacts are write-once: a file is created under its artifact ID and
// never updated in place.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"

	"fluidcontent/internal/core"
	"fluidcontent/internal/logger"
)

// Writer writes HTML artifacts into a fixed output directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a writer rooted at outputDir.
func NewWriter(outputDir string) *Writer {
	if outputDir == "" {
		outputDir = "generated_html_files"
	}
	return &Writer{outputDir: outputDir}
}

// Write persists the artifact's document as {id}.html and returns the full
// path of the written file.
func (w *Writer) Write(artifact *core.HTMLArtifact) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	path := filepath.Join(w.outputDir, artifact.Filename)
	if err := os.WriteFile(path, []byte(artifact.HTML), 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact %s: %w", artifact.ID, err)
	}
	return path, nil
}

// WriteAsync persists the artifact in the background. The request cycle
// does not wait for the write, and a write failure must not fail the
// overall operation: it is logged and absorbed.
func (w *Writer) WriteAsync(artifact *core.HTMLArtifact) {
	go func() {
		path, err := w.Write(artifact)
		if err != nil {
			logger.Error("Failed to persist HTML artifact", err,
				"artifact_id", artifact.ID)
			return
		}
		logger.Info("Persisted HTML artifact",
			"artifact_id", artifact.ID, "path", path)
	}()
}
