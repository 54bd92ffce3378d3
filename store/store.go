// Package store manages the scratch directory of sequentially numbered frame
// files that feeds the video compiler.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Frame filenames are zero padded so that lexicographic order equals capture
// order. Width 6 covers up to 999999 frames.
const frameNameFormat = "frame_%06d.jpg"

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

func (s *Store) Dir() string {
	return s.dir
}

// Pattern returns the glob the compiler consumes. Shell-style glob order over
// the fixed-width names matches capture order.
func (s *Store) Pattern() string {
	return filepath.Join(s.dir, "frame_*.jpg")
}

// Prepare deletes any previous contents and creates the directory fresh, so a
// session never inherits frames from an earlier run.
func (s *Store) Prepare() error {
	if _, err := os.Stat(s.dir); err == nil {
		if err := os.RemoveAll(s.dir); err != nil {
			return fmt.Errorf("frame store clean: %w", err)
		}
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("frame store create: %w", err)
	}
	return nil
}

// Save persists one frame at the given sequence index and returns its path.
// Frames are write-once; the scheduler never reuses an index after a
// successful save.
func (s *Store) Save(index int, data []byte) (string, error) {
	path := filepath.Join(s.dir, fmt.Sprintf(frameNameFormat, index))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("frame store save %d: %w", index, err)
	}
	return path, nil
}

// Purge removes the directory and everything in it. Safe to call repeatedly
// and when the directory was never created.
func (s *Store) Purge() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("frame store purge: %w", err)
	}
	return nil
}
