package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/kbukum/diarize2kaldi/storage"
)

// Storage implements storage.Storage on a directory of an afero filesystem.
type Storage struct {
	fs       afero.Fs
	basePath string
}

// NewStorage creates a storage rooted at cfg.BasePath on fs.
func NewStorage(fs afero.Fs, cfg Config) (*Storage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base := filepath.Clean(cfg.BasePath)

	info, err := fs.Stat(base)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, fmt.Errorf("storage: %s is not a directory", base)
		}
	case os.IsNotExist(err) && cfg.CreateDir:
		if err := fs.MkdirAll(base, DefaultDirPerm); err != nil {
			return nil, fmt.Errorf("storage: create base directory: %w", err)
		}
	case os.IsNotExist(err):
		return nil, fmt.Errorf("storage: output directory %s does not exist", base)
	default:
		return nil, fmt.Errorf("storage: stat base directory: %w", err)
	}
	return &Storage{fs: fs, basePath: base}, nil
}

// BasePath returns the directory files are written to.
func (s *Storage) BasePath() string { return s.basePath }

func (s *Storage) fullPath(path string) string {
	return filepath.Join(s.basePath, filepath.Clean("/"+path))
}

// Upload writes data from reader to a file, truncating any previous content.
func (s *Storage) Upload(ctx context.Context, path string, reader io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fullPath := s.fullPath(path)
	if err := s.fs.MkdirAll(filepath.Dir(fullPath), DefaultDirPerm); err != nil {
		return fmt.Errorf("storage: create directory: %w", err)
	}

	f, err := s.fs.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("storage: create file: %w", err)
	}
	if _, err := io.Copy(f, reader); err != nil {
		_ = f.Close()
		return fmt.Errorf("storage: write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: close file: %w", err)
	}
	return nil
}

// compile-time check
var _ storage.Storage = (*Storage)(nil)
