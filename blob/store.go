//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_blob_store.go -package=mocks

// Package blob stores photo and video payloads outside the document
// tree. The sync core only ever persists the returned URL; it does no
// validation of reachability.
package blob

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	errs "messenger-lab/errors"
)

type IBlobStore interface {
	Upload(data []byte, key string) (string, error)
}

// DiskBlobStore writes media under a root directory, one file per
// upload, named by the caller-supplied key plus the sniffed extension.
type DiskBlobStore struct {
	root string
	log  *slog.Logger
}

func NewDiskBlobStore(root string, log *slog.Logger) *DiskBlobStore {
	return &DiskBlobStore{root: root, log: log}
}

// Upload sniffs the payload's MIME type, rejects anything that is not
// an image or a video, and returns a file URL for the stored blob.
// Uploading twice under the same key overwrites the previous blob.
func (s *DiskBlobStore) Upload(data []byte, key string) (string, error) {
	kind := mimetype.Detect(data)
	if !strings.HasPrefix(kind.String(), "image/") && !strings.HasPrefix(kind.String(), "video/") {
		return "", fmt.Errorf("%w: %s", errs.ErrUnsupportedMedia, kind.String())
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUploadFailed, err)
	}

	name := filepath.Join(s.root, key+kind.Extension())
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUploadFailed, err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrUploadFailed, err)
	}
	s.log.Debug("Blob stored", "key", key, "mime", kind.String(), "size", len(data))
	return "file://" + abs, nil
}
