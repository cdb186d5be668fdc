// Package localfs keeps the most recent upload in a single file slot.
package localfs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"cidgate/internal/domain"
	"cidgate/internal/port"
)

// SlotBaseName is the file name, without extension, every upload is written to.
const SlotBaseName = "uploaded_image"

// Slot stores one file under dir as SlotBaseName plus the upload's extension.
// A write replaces whatever the slot held before, whatever its extension.
type Slot struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewSlot creates the directory if needed and returns a slot rooted in it.
func NewSlot(fs afero.Fs, dir string) (*Slot, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir %q: %w", dir, err)
	}
	return &Slot{fs: fs, dir: dir}, nil
}

func (s *Slot) Save(_ context.Context, ext string, body io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := afero.TempFile(s.fs, s.dir, "."+SlotBaseName+"-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := io.Copy(tmp, body); err != nil {
		_ = tmp.Close()
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}

	target := filepath.Join(s.dir, SlotBaseName+ext)
	existing, err := s.slotFiles()
	if err != nil {
		_ = s.fs.Remove(tmpName)
		return err
	}
	for _, p := range existing {
		if p != target {
			_ = s.fs.Remove(p)
		}
	}

	if err := s.fs.Rename(tmpName, target); err != nil {
		_ = s.fs.Remove(tmpName)
		return fmt.Errorf("replacing slot: %w", err)
	}
	return nil
}

func (s *Slot) Open(_ context.Context) (io.ReadCloser, int64, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	files, err := s.slotFiles()
	if err != nil {
		return nil, 0, "", err
	}
	if len(files) == 0 {
		return nil, 0, "", domain.ErrImageNotFound
	}

	f, err := s.fs.Open(files[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, "", domain.ErrImageNotFound
		}
		return nil, 0, "", fmt.Errorf("opening slot: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, 0, "", fmt.Errorf("stat slot: %w", err)
	}

	contentType := "application/octet-stream"
	if mt, err := mimetype.DetectReader(f); err == nil {
		contentType = mt.String()
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, 0, "", fmt.Errorf("rewinding slot: %w", err)
	}

	return f, info.Size(), contentType, nil
}

// slotFiles lists files named SlotBaseName or SlotBaseName.<ext> in dir.
func (s *Slot) slotFiles() ([]string, error) {
	var out []string
	for _, pattern := range []string{SlotBaseName, SlotBaseName + ".*"} {
		matches, err := afero.Glob(s.fs, filepath.Join(s.dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("listing slot: %w", err)
		}
		out = append(out, matches...)
	}
	return out, nil
}

// Compile-time check.
var _ port.ImageSlot = (*Slot)(nil)
