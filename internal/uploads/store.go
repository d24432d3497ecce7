package uploads

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	ErrNotFound        = errors.New("file not found")
	ErrInvalidFilename = errors.New("invalid filename")
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Store keeps uploaded image blobs as flat files under a single
// server-controlled directory. Filenames are sanitized on every path in
// and out, so a stored or requested name can never escape the root.
// Collisions overwrite.
type Store struct {
	dir string
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save writes the blob under the sanitized name and returns the name it
// was stored as.
func (s *Store) Save(name string, r io.Reader) (string, error) {
	safe := SanitizeFilename(name)
	if safe == "" {
		return "", ErrInvalidFilename
	}

	f, err := os.Create(filepath.Join(s.dir, safe))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return safe, nil
}

// Path resolves a stored file by name. Missing files and names that
// sanitize away entirely both report ErrNotFound.
func (s *Store) Path(name string) (string, error) {
	safe := SanitizeFilename(name)
	if safe == "" {
		return "", ErrNotFound
	}
	p := filepath.Join(s.dir, safe)
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return p, nil
}

// SanitizeFilename flattens path separators, collapses whitespace to
// underscores, drops characters outside [A-Za-z0-9_.-] and strips leading
// dots and underscores. "../../etc/passwd" becomes "etc_passwd".
func SanitizeFilename(name string) string {
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, "._")
	return name
}
