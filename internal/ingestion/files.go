// Package ingestion handles uploaded résumé files: extension validation,
// safe storage under the upload directory, and text extraction from PDF,
// DOCX and plain-text documents.
package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedFormat is returned for files whose extension is not one of
// the accepted résumé formats.
var ErrUnsupportedFormat = fmt.Errorf("unsupported file format")

// allowedExtensions are the résumé formats the extractors can handle.
var allowedExtensions = map[string]bool{
	"pdf":  true,
	"docx": true,
	"doc":  true,
	"txt":  true,
}

var unsafeFilenameRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// AllowedFile reports whether the filename carries an accepted extension.
func AllowedFile(filename string) bool {
	ext := FileExtension(filename)
	return ext != "" && allowedExtensions[ext]
}

// FileExtension returns the lowercase extension without the dot, or "" when
// the path has none.
func FileExtension(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// path components are dropped and anything outside [A-Za-z0-9._-] becomes an
// underscore.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameRe.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		name = "upload"
	}
	return name
}

// SaveUpload writes an uploaded file into dir under a unique name and
// returns the stored path. The stored name is a UUID prefix plus the
// sanitized original filename, so concurrent uploads of the same file never
// collide.
func SaveUpload(dir, filename string, r io.Reader) (string, error) {
	if !AllowedFile(filename) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	unique := strings.ReplaceAll(uuid.New().String(), "-", "")
	stored := filepath.Join(dir, unique+"_"+SanitizeFilename(filename))

	f, err := os.Create(stored)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(stored)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return stored, nil
}

// DeleteUpload removes a stored upload. Deleting a file that is already gone
// is not an error.
func DeleteUpload(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete upload file: %w", err)
	}
	return nil
}
