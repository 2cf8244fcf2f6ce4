package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrBadName is returned for names that are not a single plain file name.
var ErrBadName = errors.New("store: invalid file name")

// FS is a flat directory of rendered images. Names are random, so concurrent
// writers never collide and nothing needs locking.
type FS struct{ Root string }

func New(root string) (*FS, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{Root: root}, nil
}

// Save writes data under a fresh "<uuid>.png" name and returns that name.
func (s *FS) Save(data []byte) (string, error) {
	name := uuid.NewString() + ".png"
	if err := os.WriteFile(filepath.Join(s.Root, name), data, 0o644); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return name, nil
}

// Path resolves name inside Root, rejecting anything that could escape it.
func (s *FS) Path(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", ErrBadName
	}
	return filepath.Join(s.Root, name), nil
}
