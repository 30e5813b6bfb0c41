package audio_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/voxcast/voxcast/pkg/audio"
	"github.com/voxcast/voxcast/pkg/provider"
)

func TestStore(t *testing.T) {
	t.Run("returns a readable non-empty file", func(t *testing.T) {
		s := audio.NewStorage(t.TempDir())

		data := []byte("fake audio data")

		path, err := s.Store(data, provider.FormatMP3)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		read, err := os.ReadFile(path)

		if err != nil {
			t.Fatalf("expected readable file: %v", err)
		}

		if !bytes.Equal(read, data) {
			t.Error("expected file content to match written bytes")
		}
	})

	t.Run("path carries the format extension", func(t *testing.T) {
		s := audio.NewStorage(t.TempDir())

		for _, format := range []provider.Format{provider.FormatMP3, provider.FormatWAV, provider.FormatOGG, provider.FormatAAC} {
			path, err := s.Store([]byte("data"), format)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.HasSuffix(path, format.Extension()) {
				t.Errorf("expected %s suffix, got %s", format.Extension(), path)
			}
		}
	})

	t.Run("creates the directory if absent", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "audio")

		s := audio.NewStorage(dir)

		if _, err := s.Store([]byte("data"), provider.FormatMP3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := os.Stat(dir); err != nil {
			t.Errorf("expected directory to exist: %v", err)
		}
	})

	t.Run("concurrent writes do not collide", func(t *testing.T) {
		s := audio.NewStorage(t.TempDir())

		paths := make(map[string]bool)

		for range 25 {
			path, err := s.Store([]byte("data"), provider.FormatMP3)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if paths[path] {
				t.Fatalf("duplicate path: %s", path)
			}

			paths[path] = true
		}
	})

	t.Run("rejects empty payloads", func(t *testing.T) {
		s := audio.NewStorage(t.TempDir())

		_, err := s.Store(nil, provider.FormatMP3)

		var ioError *audio.IOError

		if !errors.As(err, &ioError) {
			t.Fatalf("expected IOError, got %v", err)
		}
	})

	t.Run("leaves no partial file on failure", func(t *testing.T) {
		dir := t.TempDir()

		if err := os.Chmod(dir, 0o555); err != nil {
			t.Skipf("cannot make directory read-only: %v", err)
		}

		defer os.Chmod(dir, 0o755)

		if os.Mkdir(filepath.Join(dir, "probe"), 0o755) == nil {
			t.Skip("permissions not enforced for this user")
		}

		target := filepath.Join(dir, "out")

		s := audio.NewStorage(target)

		_, err := s.Store([]byte("data"), provider.FormatMP3)

		var ioError *audio.IOError

		if !errors.As(err, &ioError) {
			t.Fatalf("expected IOError, got %v", err)
		}

		entries, _ := os.ReadDir(dir)

		for _, entry := range entries {
			if strings.HasSuffix(entry.Name(), ".tmp") {
				t.Errorf("expected no partial file, found %s", entry.Name())
			}
		}
	})
}
