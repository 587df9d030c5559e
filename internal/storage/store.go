package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Store resolves and removes the physical files owned by projects. Paths in
// the database are stored relative to a fixed root; every project keeps its
// files in one subdirectory named from its sanitized title and id.
//
// The filesystem is abstracted behind afero.Fs so deletion behavior can be
// tested against an in-memory filesystem.
type Store struct {
	fs   afero.Fs
	root string
}

// New creates a store over the given filesystem and root directory
func New(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: root}
}

// NewOSStore creates a store over the operating system filesystem
func NewOSStore(root string) *Store {
	return New(afero.NewOsFs(), root)
}

// Root returns the storage root
func (s *Store) Root() string {
	return s.root
}

// ProjectDir returns the project's directory relative to the root,
// named "<sanitized-title>-<id>".
func (s *Store) ProjectDir(title string, id uuid.UUID) string {
	return fmt.Sprintf("%s-%s", sanitizeTitle(title), id)
}

// Resolve turns a stored relative path into an absolute path under the root
func (s *Store) Resolve(rel string) string {
	return filepath.Join(s.root, rel)
}

// confine resolves rel and refuses any path that would land outside the root
func (s *Store) confine(rel string) (string, error) {
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("path %q escapes the storage root", rel)
	}
	return filepath.Join(s.root, rel), nil
}

// Remove deletes a single stored file. A file that is already gone is not an
// error; removal is idempotent. Paths escaping the root are refused.
func (s *Store) Remove(rel string) error {
	abs, err := s.confine(rel)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RemoveDir deletes a project directory and anything left inside it.
// Paths escaping the root are refused.
func (s *Store) RemoveDir(rel string) error {
	abs, err := s.confine(rel)
	if err != nil {
		return err
	}
	if err := s.fs.RemoveAll(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// sanitizeTitle lowers the title and keeps only [a-z0-9-], collapsing runs
// of other characters into single dashes.
func sanitizeTitle(title string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
