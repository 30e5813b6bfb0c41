package audio

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/voxcast/voxcast/pkg/provider"

	"github.com/google/uuid"
)

// IOError indicates a local persistence failure. It is fatal for the current
// request and never subject to provider fallback.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

type Storage struct {
	dir string
}

func NewStorage(dir string) *Storage {
	if dir == "" {
		dir = "audio"
	}

	return &Storage{
		dir: dir,
	}
}

func (s *Storage) Dir() string {
	return s.dir
}

// Store writes data into the storage directory under a collision-resistant
// name carrying the format extension and returns the path of the fully
// written file.
func (s *Storage) Store(data []byte, format provider.Format) (string, error) {
	if len(data) == 0 {
		return "", &IOError{Err: errors.New("empty audio payload")}
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &IOError{Err: err}
	}

	name := "speech-" + time.Now().UTC().Format("20060102-150405") + "-" + uuid.NewString() + format.Extension()
	path := filepath.Join(s.dir, name)

	temp := path + ".tmp"

	if err := os.WriteFile(temp, data, 0o644); err != nil {
		os.Remove(temp)
		return "", &IOError{Err: err}
	}

	if err := os.Rename(temp, path); err != nil {
		os.Remove(temp)
		return "", &IOError{Err: err}
	}

	return path, nil
}
