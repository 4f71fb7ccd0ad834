package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

// ObjectStore is the slice of object storage the evidence flow needs:
// caller-chosen paths, transient display URLs, hard deletes.
type ObjectStore interface {
	Put(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) error
	URL(ctx context.Context, objectPath string) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

// BuildEvidencePath derives a unique object path without any central
// coordination: evidence/<context>-<millis>-<original filename>.
func BuildEvidencePath(evidenceContext, filename string) string {
	filename = sanitizeFilename(filename)
	return fmt.Sprintf("evidence/%s-%d-%s", evidenceContext, time.Now().UnixMilli(), filename)
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == "/" {
		return "foto.jpg"
	}
	replacer := strings.NewReplacer(" ", "_", "#", "_", "?", "_", "&", "_", "%", "_")
	return replacer.Replace(name)
}
