// Package blob treats the filesystem under a fixed storage root as a
// key-value store of immutable blobs: created once, read whole, never
// mutated or deleted.
package blob

import (
	"errors"
	"io/fs"
	"os"
)

var ErrAlreadyExists = errors.New("blob already exists")

// Store is keyed by raw path remainders appended onto the storage root. The
// key is joined verbatim, it is neither cleaned nor decoded, so keys
// containing traversal sequences reach outside of the root. Callers facing
// untrusted input must sanitize keys themselves.
type Store struct {
	root string
}

// NewStore wires a store to its root. The root is held explicitly and never
// read from the environment.
func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) path(key string) string {
	return s.root + key
}

// Exists reports whether the blob is present.
func (s *Store) Exists(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

// Read returns the complete contents of the blob. Any failure, be it a
// missing blob or a permission problem, is returned as-is and not
// distinguished.
func (s *Store) Read(key string) ([]byte, error) {
	return os.ReadFile(s.path(key))
}

// CreateNew atomically creates the blob and returns a writable handle to it.
// If the blob already exists, ErrAlreadyExists is returned; concurrent
// creators of the same key therefore cannot both succeed.
func (s *Store) CreateNew(key string) (*os.File, error) {
	file, err := os.OpenFile(s.path(key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, ErrAlreadyExists
		}

		return nil, err
	}

	return file, nil
}
