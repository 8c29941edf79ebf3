package storage

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sulochan19/image-conversion-api/internal/logger"
)

// MediaStore writes originals and converted images into a directory served
// statically. Every upload gets its own uuid-qualified subdirectory, so
// concurrent uploads of the same filename never overwrite each other while the
// returned paths still end in the client's filename.
type MediaStore struct {
	root string // filesystem directory, also the URL prefix of returned paths
}

// NewMediaStore creates the media directory if needed and returns a store over it.
func NewMediaStore(root string) (*MediaStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media directory: %w", err)
	}
	return &MediaStore{root: root}, nil
}

// SaveOriginal writes the uploaded bytes verbatim under a fresh subdirectory.
// It returns the subdirectory name and the path of the file relative to the
// served root.
func (s *MediaStore) SaveOriginal(ctx context.Context, filename string, data []byte) (dir, relPath string, err error) {
	filename = filepath.Base(filename)
	dir = uuid.NewString()

	if err = os.MkdirAll(filepath.Join(s.root, dir), 0o755); err != nil {
		logger.FromContext(ctx).Errorw("failed to create upload directory", "dir", dir, "error", err)
		return "", "", fmt.Errorf("create upload directory: %w", err)
	}

	fsPath := filepath.Join(s.root, dir, filename)
	if err = os.WriteFile(fsPath, data, 0o644); err != nil {
		logger.FromContext(ctx).Errorw("failed to write original file", "path", fsPath, "error", err)
		return "", "", fmt.Errorf("write original file: %w", err)
	}

	relPath = path.Join(s.root, dir, filename)
	logger.FromContext(ctx).Infow("original saved", "path", relPath, "size", len(data))
	return dir, relPath, nil
}

// SavePNG encodes img as PNG into the given subdirectory and returns the path
// of the file relative to the served root.
func (s *MediaStore) SavePNG(ctx context.Context, dir, filename string, img image.Image) (string, error) {
	filename = filepath.Base(filename)

	fsPath := filepath.Join(s.root, dir, filename)
	f, err := os.Create(fsPath)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create png file", "path", fsPath, "error", err)
		return "", fmt.Errorf("create png file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		logger.FromContext(ctx).Errorw("failed to encode png", "path", fsPath, "error", err)
		return "", fmt.Errorf("encode png: %w", err)
	}

	relPath := path.Join(s.root, dir, filename)
	logger.FromContext(ctx).Infow("png saved", "path", relPath)
	return relPath, nil
}
