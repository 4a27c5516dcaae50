package textfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Repository defines persistence operations for a single text file.
type Repository interface {
	Load() (string, error)
	Save(contents string) error
	Path() string
}

// defaultFileMode is used for files that did not exist before.
const defaultFileMode fs.FileMode = 0o644

var (
	// ErrNotFound is returned when the file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrNoChanges is returned by Save when the content equals what was loaded.
	ErrNoChanges = errors.New("no changes")
)

// FileRepository reads a file fully into memory and overwrites it in place.
type FileRepository struct {
	// path is the filesystem location of the file.
	path string
	// mu protects original and loaded.
	mu sync.Mutex
	// original is the content returned by the last Load.
	original string
	// loaded reports whether Load succeeded.
	loaded bool
	// mode is the permission of the loaded file.
	mode fs.FileMode
}

// NewFileRepository creates a repository for the file at path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
		mode: defaultFileMode,
	}
}

// Path returns the cleaned file path.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the whole file.
func (r *FileRepository) Load() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, r.path)
		}

		return "", fmt.Errorf("stat %s: %w", r.path, err)
	}

	contents, err := os.ReadFile(r.path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", r.path, err)
	}

	r.original = string(contents)
	r.loaded = true
	r.mode = info.Mode().Perm()

	return r.original, nil
}

// Save overwrites the file with contents unless they equal what was loaded.
// The write is in place, not through a temporary file.
func (r *FileRepository) Save(contents string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loaded && contents == r.original {
		return ErrNoChanges
	}

	if err := os.WriteFile(r.path, []byte(contents), r.mode); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}

	r.original = contents
	r.loaded = true

	return nil
}
